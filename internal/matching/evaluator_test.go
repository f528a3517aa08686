// internal/matching/evaluator_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"broker-workers/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func iptr(v int) *int                                { return &v }
func fptr(v float64) *float64                        { return &v }
func bptr(v bool) *bool                              { return &v }
func sptr(v string) *string                          { return &v }
func ttptr(v models.TradingTime) *models.TradingTime { return &v }

func newTestEvaluator() *Evaluator {
	return NewEvaluator(DefaultWeights())
}

// ==========================
// Core Functionality Tests
// ==========================

func TestEvaluate_TradingTime(t *testing.T) {
	tests := []struct {
		name          string
		criteria      models.LenderCriteria
		profile       models.ApplicantProfile
		wantEligible  bool
		wantScore     int
		wantReason    string
	}{
		{
			name:         "bucket above minimum awards standard weight",
			criteria:     models.LenderCriteria{MinTradingMonths: iptr(6)},
			profile:      models.ApplicantProfile{TradingTime: ttptr(models.Trading6To12Months)},
			wantEligible: true,
			wantScore:    10,
			wantReason:   "Trading history meets the lender's minimum",
		},
		{
			name:         "bucket below minimum disqualifies",
			criteria:     models.LenderCriteria{MinTradingMonths: iptr(6)},
			profile:      models.ApplicantProfile{TradingTime: ttptr(models.Trading3To6Months)},
			wantEligible: false,
			wantScore:    0,
		},
		{
			name:         "absent bucket is skipped",
			criteria:     models.LenderCriteria{MinTradingMonths: iptr(6)},
			profile:      models.ApplicantProfile{},
			wantEligible: true,
			wantScore:    0,
		},
		{
			name:         "no minimum is skipped",
			criteria:     models.LenderCriteria{},
			profile:      models.ApplicantProfile{TradingTime: ttptr(models.TradingUnder3Months)},
			wantEligible: true,
			wantScore:    0,
		},
		{
			name:         "lowest bucket reads as one month",
			criteria:     models.LenderCriteria{MinTradingMonths: iptr(1)},
			profile:      models.ApplicantProfile{TradingTime: ttptr(models.TradingUnder3Months)},
			wantEligible: true,
			wantScore:    10,
			wantReason:   "Trading history meets the lender's minimum",
		},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := e.Evaluate(&tt.criteria, &tt.profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
			if tt.wantReason != "" {
				assert.Contains(t, ev.Reasons, tt.wantReason)
			}
		})
	}
}

func TestEvaluate_MonthlyRevenue(t *testing.T) {
	tests := []struct {
		name         string
		criteria     models.LenderCriteria
		profile      models.ApplicantProfile
		wantEligible bool
		wantScore    int
	}{
		{
			name:         "revenue above minimum",
			criteria:     models.LenderCriteria{MinMonthlyRevenue: fptr(5000)},
			profile:      models.ApplicantProfile{MonthlyRevenue: fptr(8000)},
			wantEligible: true,
			wantScore:    10,
		},
		{
			name:         "revenue below minimum disqualifies",
			criteria:     models.LenderCriteria{MinMonthlyRevenue: fptr(5000)},
			profile:      models.ApplicantProfile{MonthlyRevenue: fptr(2000)},
			wantEligible: false,
			wantScore:    0,
		},
		{
			name:         "absent revenue skips both revenue checks",
			criteria:     models.LenderCriteria{MinMonthlyRevenue: fptr(5000), MaxLoanToRevenue: fptr(3)},
			profile:      models.ApplicantProfile{FundingAmount: fptr(10000)},
			wantEligible: true,
			wantScore:    0,
		},
		{
			name:         "funding within revenue multiple",
			criteria:     models.LenderCriteria{MaxLoanToRevenue: fptr(3)},
			profile:      models.ApplicantProfile{MonthlyRevenue: fptr(10000), FundingAmount: fptr(25000)},
			wantEligible: true,
			wantScore:    10,
		},
		{
			name:         "funding beyond revenue multiple disqualifies",
			criteria:     models.LenderCriteria{MaxLoanToRevenue: fptr(3)},
			profile:      models.ApplicantProfile{MonthlyRevenue: fptr(10000), FundingAmount: fptr(50000)},
			wantEligible: false,
			wantScore:    0,
		},
		{
			name:         "zero revenue cannot satisfy a multiple",
			criteria:     models.LenderCriteria{MaxLoanToRevenue: fptr(3)},
			profile:      models.ApplicantProfile{MonthlyRevenue: fptr(0), FundingAmount: fptr(10000)},
			wantEligible: false,
			wantScore:    0,
		},
		{
			name:         "minimum and multiple both satisfied awards twice",
			criteria:     models.LenderCriteria{MinMonthlyRevenue: fptr(5000), MaxLoanToRevenue: fptr(3)},
			profile:      models.ApplicantProfile{MonthlyRevenue: fptr(10000), FundingAmount: fptr(20000)},
			wantEligible: true,
			wantScore:    20,
		},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := e.Evaluate(&tt.criteria, &tt.profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
		})
	}
}

func TestEvaluate_LoanAmount(t *testing.T) {
	criteria := models.LenderCriteria{
		MinLoanAmount: fptr(5000),
		MaxLoanAmount: fptr(250000),
	}

	tests := []struct {
		name         string
		funding      *float64
		wantEligible bool
		wantScore    int
	}{
		{"below the floor disqualifies", fptr(3000), false, 0},
		{"inside the range awards once", fptr(50000), true, 10},
		{"above the ceiling disqualifies", fptr(300000), false, 0},
		{"at the floor is inside", fptr(5000), true, 10},
		{"absent amount is skipped", nil, true, 0},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := models.ApplicantProfile{FundingAmount: tt.funding}
			ev := e.Evaluate(&criteria, &profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
		})
	}
}

func TestEvaluate_BusinessType(t *testing.T) {
	criteria := models.LenderCriteria{
		AcceptedBusinessTypes: []string{"limited_company", "llp"},
	}

	tests := []struct {
		name         string
		businessType *string
		wantEligible bool
		wantScore    int
	}{
		{"accepted type awards standard weight", sptr("limited_company"), true, 10},
		{"unlisted type disqualifies", sptr("sole_trader"), false, 0},
		// An allow-list is the exception to unknown-is-neutral.
		{"unknown type disqualifies", nil, false, 0},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := models.ApplicantProfile{BusinessType: tt.businessType}
			ev := e.Evaluate(&criteria, &profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
		})
	}

	t.Run("no allow-list skips even an unknown type", func(t *testing.T) {
		ev := e.Evaluate(&models.LenderCriteria{}, &models.ApplicantProfile{})
		assert.True(t, ev.Eligible)
		assert.Equal(t, 0, ev.Score)
	})
}

func TestEvaluate_Industry(t *testing.T) {
	criteria := models.LenderCriteria{
		ProhibitedIndustries: []string{"gambling", "adult_entertainment"},
	}

	tests := []struct {
		name         string
		industry     *string
		wantEligible bool
		wantScore    int
	}{
		{"prohibited industry disqualifies", sptr("gambling"), false, 0},
		{"clean industry awards reduced weight", sptr("retail"), true, 5},
		{"unknown industry is skipped", nil, true, 0},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := models.ApplicantProfile{Industry: tt.industry}
			ev := e.Evaluate(&criteria, &profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
		})
	}
}

func TestEvaluate_FiledAccounts(t *testing.T) {
	tests := []struct {
		name         string
		requires     *bool
		hasFiled     *bool
		wantEligible bool
		wantScore    int
	}{
		{"required and filed", bptr(true), bptr(true), true, 10},
		{"required and not filed disqualifies", bptr(true), bptr(false), false, 0},
		// The award fires whenever the lender states a preference either way.
		{"not required but filed still awards", bptr(false), bptr(true), true, 10},
		{"not required and not filed", bptr(false), bptr(false), true, 0},
		{"required but unknown is skipped", bptr(true), nil, true, 0},
		{"no preference is skipped", nil, bptr(true), true, 0},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := models.LenderCriteria{RequiresFiledAccounts: tt.requires}
			profile := models.ApplicantProfile{HasFiledAccounts: tt.hasFiled}
			ev := e.Evaluate(&criteria, &profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
		})
	}
}

func TestEvaluate_CCJs(t *testing.T) {
	tests := []struct {
		name         string
		criteria     models.LenderCriteria
		profile      models.ApplicantProfile
		wantEligible bool
		wantScore    int
		wantReason   string
	}{
		{
			name:         "not accepted with CCJs disqualifies",
			criteria:     models.LenderCriteria{AcceptsCCJs: bptr(false)},
			profile:      models.ApplicantProfile{HasCCJs: bptr(true)},
			wantEligible: false,
		},
		{
			name:         "not accepted without CCJs passes silently",
			criteria:     models.LenderCriteria{AcceptsCCJs: bptr(false)},
			profile:      models.ApplicantProfile{HasCCJs: bptr(false)},
			wantEligible: true,
			wantScore:    0,
		},
		{
			name:         "accepted without CCJs awards standard weight",
			criteria:     models.LenderCriteria{AcceptsCCJs: bptr(true)},
			profile:      models.ApplicantProfile{HasCCJs: bptr(false)},
			wantEligible: true,
			wantScore:    10,
			wantReason:   "No county court judgments",
		},
		{
			name:         "accepted with CCJs and no cap awards reduced weight",
			criteria:     models.LenderCriteria{AcceptsCCJs: bptr(true)},
			profile:      models.ApplicantProfile{HasCCJs: bptr(true)},
			wantEligible: true,
			wantScore:    5,
			wantReason:   "County court judgments accepted by the lender",
		},
		{
			name:         "CCJ value within the cap awards reduced weight",
			criteria:     models.LenderCriteria{AcceptsCCJs: bptr(true), MaxCCJValue: fptr(5000)},
			profile:      models.ApplicantProfile{HasCCJs: bptr(true), CCJValue: fptr(2500)},
			wantEligible: true,
			wantScore:    5,
			wantReason:   "CCJ value within the lender's limit",
		},
		{
			name:         "CCJ value above the cap disqualifies",
			criteria:     models.LenderCriteria{AcceptsCCJs: bptr(true), MaxCCJValue: fptr(5000)},
			profile:      models.ApplicantProfile{HasCCJs: bptr(true), CCJValue: fptr(9000)},
			wantEligible: false,
		},
		{
			name:         "capped but value unknown is skipped",
			criteria:     models.LenderCriteria{AcceptsCCJs: bptr(true), MaxCCJValue: fptr(5000)},
			profile:      models.ApplicantProfile{HasCCJs: bptr(true)},
			wantEligible: true,
			wantScore:    0,
		},
		{
			name:         "unknown CCJ status is skipped",
			criteria:     models.LenderCriteria{AcceptsCCJs: bptr(false)},
			profile:      models.ApplicantProfile{},
			wantEligible: true,
			wantScore:    0,
		},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := e.Evaluate(&tt.criteria, &tt.profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
			if tt.wantReason != "" {
				assert.Contains(t, ev.Reasons, tt.wantReason)
			}
		})
	}
}

func TestEvaluate_Homeowner(t *testing.T) {
	tests := []struct {
		name         string
		requires     *bool
		homeowners   *bool
		wantEligible bool
		wantScore    int
	}{
		{"required and homeowners", bptr(true), bptr(true), true, 10},
		{"required and not homeowners disqualifies", bptr(true), bptr(false), false, 0},
		{"required but unknown is skipped", bptr(true), nil, true, 0},
		{"not required never fires", bptr(false), bptr(true), true, 0},
		{"no requirement never fires", nil, bptr(false), true, 0},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := models.LenderCriteria{RequiresHomeowner: tt.requires}
			profile := models.ApplicantProfile{DirectorsHomeowners: tt.homeowners}
			ev := e.Evaluate(&criteria, &profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
		})
	}
}

func TestEvaluate_CardPayments(t *testing.T) {
	tests := []struct {
		name         string
		criteria     models.LenderCriteria
		profile      models.ApplicantProfile
		wantEligible bool
		wantScore    int
	}{
		{
			name:         "requires card payments and none taken disqualifies",
			criteria:     models.LenderCriteria{RequiresCardPayments: bptr(true)},
			profile:      models.ApplicantProfile{CardPaymentPct: fptr(0)},
			wantEligible: false,
		},
		// Absent card-payment share is the other exception to unknown-is-neutral.
		{
			name:         "requires card payments and share unknown disqualifies",
			criteria:     models.LenderCriteria{RequiresCardPayments: bptr(true)},
			profile:      models.ApplicantProfile{},
			wantEligible: false,
		},
		{
			name:         "share above the minimum awards standard weight",
			criteria:     models.LenderCriteria{MinCardPaymentPct: fptr(30)},
			profile:      models.ApplicantProfile{CardPaymentPct: fptr(55)},
			wantEligible: true,
			wantScore:    10,
		},
		{
			name:         "share below the minimum disqualifies",
			criteria:     models.LenderCriteria{MinCardPaymentPct: fptr(30)},
			profile:      models.ApplicantProfile{CardPaymentPct: fptr(10)},
			wantEligible: false,
		},
		{
			name:         "minimum set and share unknown disqualifies",
			criteria:     models.LenderCriteria{MinCardPaymentPct: fptr(30)},
			profile:      models.ApplicantProfile{},
			wantEligible: false,
		},
		{
			name:         "requirement plus satisfied minimum awards once",
			criteria:     models.LenderCriteria{RequiresCardPayments: bptr(true), MinCardPaymentPct: fptr(30)},
			profile:      models.ApplicantProfile{CardPaymentPct: fptr(60)},
			wantEligible: true,
			wantScore:    10,
		},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := e.Evaluate(&tt.criteria, &tt.profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
		})
	}
}

func TestEvaluate_ExistingLending(t *testing.T) {
	tests := []struct {
		name         string
		criteria     models.LenderCriteria
		profile      models.ApplicantProfile
		wantEligible bool
		wantScore    int
	}{
		{
			name:         "requires lending and applicant has none disqualifies",
			criteria:     models.LenderCriteria{RequiresExistingLending: bptr(true)},
			profile:      models.ApplicantProfile{HasExistingLending: bptr(false)},
			wantEligible: false,
		},
		{
			name:         "requires lending and status unknown is skipped",
			criteria:     models.LenderCriteria{RequiresExistingLending: bptr(true)},
			profile:      models.ApplicantProfile{},
			wantEligible: true,
			wantScore:    0,
		},
		{
			name:         "count within the cap awards reduced weight",
			criteria:     models.LenderCriteria{MaxExistingLenders: iptr(2)},
			profile:      models.ApplicantProfile{HasExistingLending: bptr(true), ExistingLenderCount: iptr(1)},
			wantEligible: true,
			wantScore:    5,
		},
		{
			name:         "count above the cap disqualifies",
			criteria:     models.LenderCriteria{MaxExistingLenders: iptr(2)},
			profile:      models.ApplicantProfile{HasExistingLending: bptr(true), ExistingLenderCount: iptr(4)},
			wantEligible: false,
		},
		{
			name:         "capped but count unknown is skipped",
			criteria:     models.LenderCriteria{MaxExistingLenders: iptr(2)},
			profile:      models.ApplicantProfile{HasExistingLending: bptr(true)},
			wantEligible: true,
			wantScore:    0,
		},
		{
			name:         "no existing lending never reaches the cap",
			criteria:     models.LenderCriteria{MaxExistingLenders: iptr(2)},
			profile:      models.ApplicantProfile{HasExistingLending: bptr(false), ExistingLenderCount: iptr(0)},
			wantEligible: true,
			wantScore:    0,
		},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := e.Evaluate(&tt.criteria, &tt.profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
		})
	}
}

func TestEvaluate_Profitability(t *testing.T) {
	tests := []struct {
		name         string
		criteria     models.LenderCriteria
		profile      models.ApplicantProfile
		wantEligible bool
		wantScore    int
	}{
		{
			name:         "profitable business awards standard weight",
			criteria:     models.LenderCriteria{RequiresProfitability: bptr(true)},
			profile:      models.ApplicantProfile{AnnualProfit: fptr(40000)},
			wantEligible: true,
			wantScore:    10,
		},
		{
			name:         "loss-making and required disqualifies",
			criteria:     models.LenderCriteria{RequiresProfitability: bptr(true)},
			profile:      models.ApplicantProfile{AnnualProfit: fptr(-5000)},
			wantEligible: false,
		},
		{
			name:         "loss-making but not required passes without award",
			criteria:     models.LenderCriteria{RequiresProfitability: bptr(false)},
			profile:      models.ApplicantProfile{AnnualProfit: fptr(-5000)},
			wantEligible: true,
			wantScore:    0,
		},
		{
			name:         "unknown profit is skipped",
			criteria:     models.LenderCriteria{RequiresProfitability: bptr(true)},
			profile:      models.ApplicantProfile{},
			wantEligible: true,
			wantScore:    0,
		},
		{
			name:         "margin below the bound disqualifies",
			criteria:     models.LenderCriteria{MinProfitMarginPct: fptr(10)},
			profile:      models.ApplicantProfile{AnnualProfit: fptr(5000), MonthlyRevenue: fptr(10000)},
			wantEligible: false,
		},
		{
			name:         "margin above the bound passes",
			criteria:     models.LenderCriteria{MinProfitMarginPct: fptr(10)},
			profile:      models.ApplicantProfile{AnnualProfit: fptr(20000), MonthlyRevenue: fptr(10000)},
			wantEligible: true,
			wantScore:    0,
		},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := e.Evaluate(&tt.criteria, &tt.profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
		})
	}
}

func TestEvaluate_NetAssets(t *testing.T) {
	tests := []struct {
		name         string
		criteria     models.LenderCriteria
		profile      models.ApplicantProfile
		wantEligible bool
		wantScore    int
	}{
		{
			name:         "positive net assets awards standard weight",
			criteria:     models.LenderCriteria{RequiresPositiveNetAssets: bptr(true)},
			profile:      models.ApplicantProfile{NetAssets: fptr(80000)},
			wantEligible: true,
			wantScore:    10,
		},
		{
			name:         "negative net assets and required disqualifies",
			criteria:     models.LenderCriteria{RequiresPositiveNetAssets: bptr(true)},
			profile:      models.ApplicantProfile{NetAssets: fptr(-20000)},
			wantEligible: false,
		},
		{
			name:         "ratio below the bound disqualifies",
			criteria:     models.LenderCriteria{MinNetAssetsRatio: fptr(0.5)},
			profile:      models.ApplicantProfile{NetAssets: fptr(10000), FundingAmount: fptr(50000)},
			wantEligible: false,
		},
		{
			name:         "ratio above the bound passes",
			criteria:     models.LenderCriteria{MinNetAssetsRatio: fptr(0.5)},
			profile:      models.ApplicantProfile{NetAssets: fptr(40000), FundingAmount: fptr(50000)},
			wantEligible: true,
			wantScore:    0,
		},
		{
			name:         "unknown net assets is skipped",
			criteria:     models.LenderCriteria{RequiresPositiveNetAssets: bptr(true), MinNetAssetsRatio: fptr(0.5)},
			profile:      models.ApplicantProfile{FundingAmount: fptr(50000)},
			wantEligible: true,
			wantScore:    0,
		},
	}

	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := e.Evaluate(&tt.criteria, &tt.profile)
			assert.Equal(t, tt.wantEligible, ev.Eligible)
			assert.Equal(t, tt.wantScore, ev.Score)
		})
	}
}

// ==========================
// Cross-Check Behaviour
// ==========================

func TestEvaluate_HardGateFailureKeepsScoring(t *testing.T) {
	// A tripped hard gate must not short-circuit the remaining checks; the
	// audit trail records the full picture.
	criteria := models.LenderCriteria{
		AcceptsCCJs:       bptr(false),
		MinMonthlyRevenue: fptr(1000),
	}
	profile := models.ApplicantProfile{
		HasCCJs:        bptr(true),
		MonthlyRevenue: fptr(9000),
	}

	ev := newTestEvaluator().Evaluate(&criteria, &profile)

	assert.False(t, ev.Eligible)
	assert.Equal(t, 10, ev.Score)
	assert.Contains(t, ev.Reasons, "Monthly revenue meets the lender's minimum")
}

func TestEvaluate_EmptyProfileAgainstDemandingLender(t *testing.T) {
	// With no facts collected, only the two absent-fact gates can fire. This
	// lender sets neither, so every check skips.
	criteria := models.LenderCriteria{
		MinTradingMonths:      iptr(12),
		MinMonthlyRevenue:     fptr(10000),
		MinLoanAmount:         fptr(5000),
		MaxLoanAmount:         fptr(100000),
		AcceptsCCJs:           bptr(false),
		RequiresFiledAccounts: bptr(true),
		RequiresHomeowner:     bptr(true),
	}

	ev := newTestEvaluator().Evaluate(&criteria, &models.ApplicantProfile{})

	assert.True(t, ev.Eligible)
	assert.Equal(t, 0, ev.Score)
	assert.Empty(t, ev.Reasons)
}

func TestEvaluate_ReasonsFollowCheckOrder(t *testing.T) {
	criteria := models.LenderCriteria{
		MinTradingMonths:  iptr(3),
		MinMonthlyRevenue: fptr(1000),
		AcceptsCCJs:       bptr(true),
	}
	profile := models.ApplicantProfile{
		TradingTime:    ttptr(models.TradingOver2Years),
		MonthlyRevenue: fptr(5000),
		HasCCJs:        bptr(false),
	}

	ev := newTestEvaluator().Evaluate(&criteria, &profile)

	assert.True(t, ev.Eligible)
	assert.Equal(t, 30, ev.Score)
	assert.Equal(t, []string{
		"Trading history meets the lender's minimum",
		"Monthly revenue meets the lender's minimum",
		"No county court judgments",
	}, ev.Reasons)
}

func TestEvaluate_CustomWeights(t *testing.T) {
	e := NewEvaluator(Weights{Standard: 20, Reduced: 3})
	criteria := models.LenderCriteria{
		MinMonthlyRevenue:    fptr(1000),
		ProhibitedIndustries: []string{"gambling"},
	}
	profile := models.ApplicantProfile{
		MonthlyRevenue: fptr(5000),
		Industry:       sptr("retail"),
	}

	ev := e.Evaluate(&criteria, &profile)

	assert.True(t, ev.Eligible)
	assert.Equal(t, 23, ev.Score)
}
