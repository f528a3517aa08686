// internal/models/applicant_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradingTime_Months(t *testing.T) {
	tests := []struct {
		bucket TradingTime
		months int
	}{
		{TradingUnder3Months, 1},
		{Trading3To6Months, 4},
		{Trading6To12Months, 7},
		{Trading1To2Years, 13},
		{TradingOver2Years, 25},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			m := tt.bucket.Months()
			require.NotNil(t, m)
			assert.Equal(t, tt.months, *m)
		})
	}
}

func TestTradingTime_UnknownBucket(t *testing.T) {
	assert.Nil(t, TradingTime("36+").Months())
	assert.Nil(t, TradingTime("").Months())
}

func TestApplicantProfile_TradingMonths(t *testing.T) {
	var p ApplicantProfile
	assert.Nil(t, p.TradingMonths())

	bucket := Trading6To12Months
	p.TradingTime = &bucket
	m := p.TradingMonths()
	require.NotNil(t, m)
	assert.Equal(t, 7, *m)
}

func TestApplicantProfile_AbsentFieldsStayAbsent(t *testing.T) {
	// false and nil are different answers and must survive a decode.
	var p ApplicantProfile
	require.NoError(t, json.Unmarshal([]byte(`{"hasCcjs": false}`), &p))

	require.NotNil(t, p.HasCCJs)
	assert.False(t, *p.HasCCJs)
	assert.Nil(t, p.HasFiledAccounts)
	assert.Nil(t, p.MonthlyRevenue)
	assert.Nil(t, p.TradingTime)
}
