// internal/workers/matching/validate-applicant-profile/handler_test.go
package validateapplicantprofile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"broker-workers/internal/common/logger"
	"broker-workers/internal/models"
)

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(&Config{Timeout: 5 * time.Second}, logger.NewTestLogger(t))
}

func TestHandler_Execute_NilPayloadIsValid(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{ApplicationID: "app-1"})

	require.NoError(t, err)
	assert.True(t, output.Valid)
	require.NotNil(t, output.ApplicantProfile)
	assert.Nil(t, output.ApplicantProfile.TradingTime)
	assert.Nil(t, output.ApplicantProfile.MonthlyRevenue)
}

func TestHandler_Execute_FullPayloadDecodes(t *testing.T) {
	h := newTestHandler(t)

	input := &Input{
		ApplicationID: "app-2",
		ProfileData: map[string]interface{}{
			"tradingTime":         "12-24",
			"monthlyRevenue":      15000.0,
			"fundingAmount":       50000.0,
			"businessType":        "limited_company",
			"industry":            "hospitality",
			"hasFiledAccounts":    true,
			"hasCcjs":             false,
			"directorsHomeowners": true,
			"cardPaymentPct":      60.0,
			"hasExistingLending":  true,
			"existingLenderCount": 1,
			"annualProfit":        -4000.0,
			"netAssets":           120000.0,
		},
	}

	output, err := h.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Empty(t, output.Errors)

	p := output.ApplicantProfile
	require.NotNil(t, p)
	require.NotNil(t, p.TradingTime)
	assert.Equal(t, models.Trading1To2Years, *p.TradingTime)
	require.NotNil(t, p.MonthlyRevenue)
	assert.Equal(t, 15000.0, *p.MonthlyRevenue)
	require.NotNil(t, p.HasCCJs)
	assert.False(t, *p.HasCCJs)
	require.NotNil(t, p.ExistingLenderCount)
	assert.Equal(t, 1, *p.ExistingLenderCount)
	// Negative profit is a legitimate answer, not a validation failure.
	require.NotNil(t, p.AnnualProfit)
	assert.Equal(t, -4000.0, *p.AnnualProfit)
}

func TestHandler_Execute_AbsentFieldsStayNil(t *testing.T) {
	h := newTestHandler(t)

	input := &Input{
		ApplicationID: "app-3",
		ProfileData: map[string]interface{}{
			"monthlyRevenue": 8000.0,
		},
	}

	output, err := h.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, output.Valid)

	p := output.ApplicantProfile
	require.NotNil(t, p)
	require.NotNil(t, p.MonthlyRevenue)
	assert.Nil(t, p.TradingTime)
	assert.Nil(t, p.FundingAmount)
	assert.Nil(t, p.HasCCJs)
	assert.Nil(t, p.HasFiledAccounts)
	assert.Nil(t, p.CCJValue)
}

func TestHandler_Execute_RejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name        string
		profileData map[string]interface{}
	}{
		{
			name:        "unknown trading bucket",
			profileData: map[string]interface{}{"tradingTime": "36+"},
		},
		{
			name:        "wrongly typed revenue",
			profileData: map[string]interface{}{"monthlyRevenue": "lots"},
		},
		{
			name:        "negative funding amount",
			profileData: map[string]interface{}{"fundingAmount": -100.0},
		},
		{
			name:        "card payment share over 100",
			profileData: map[string]interface{}{"cardPaymentPct": 150.0},
		},
		{
			name:        "fractional lender count",
			profileData: map[string]interface{}{"existingLenderCount": 1.5},
		},
		{
			name:        "boolean answered as string",
			profileData: map[string]interface{}{"hasCcjs": "yes"},
		},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := h.Execute(context.Background(), &Input{
				ApplicationID: "app-4",
				ProfileData:   tt.profileData,
			})

			// A rejected profile is a normal outcome, not a job failure.
			require.NoError(t, err)
			assert.False(t, output.Valid)
			assert.NotEmpty(t, output.Errors)
			assert.Nil(t, output.ApplicantProfile)
		})
	}
}

func TestHandler_Execute_ValidationErrorsNameTheField(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		ApplicationID: "app-5",
		ProfileData: map[string]interface{}{
			"cardPaymentPct": -5.0,
		},
	})

	require.NoError(t, err)
	assert.False(t, output.Valid)
	require.NotEmpty(t, output.Errors)
	assert.Equal(t, "cardPaymentPct", output.Errors[0].Field)
	assert.NotEmpty(t, output.Errors[0].Message)
}
