// internal/models/lender.go
package models

// LenderCriteria is one lender's underwriting rule set as stored in the panel
// catalog. Every threshold and flag is optional: a nil pointer (or empty
// slice) means the lender imposes no constraint on that dimension. The
// catalog reader guarantees that malformed or NULL columns surface here as
// nil, so a bad record fails open rather than disqualifying applicants.
type LenderCriteria struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Scalar thresholds.
	MinTradingMonths      *int     `json:"minTradingMonths,omitempty"`
	MinMonthlyRevenue     *float64 `json:"minMonthlyRevenue,omitempty"`
	MaxLoanToRevenue      *float64 `json:"maxLoanToRevenue,omitempty"`
	MinLoanAmount         *float64 `json:"minLoanAmount,omitempty"`
	MaxLoanAmount         *float64 `json:"maxLoanAmount,omitempty"`
	MinAccountsFiledYears *int     `json:"minAccountsFiledYears,omitempty"`
	MaxCCJValue           *float64 `json:"maxCcjValue,omitempty"`
	MinCardPaymentPct     *float64 `json:"minCardPaymentPct,omitempty"`
	MaxExistingLenders    *int     `json:"maxExistingLenders,omitempty"`
	MinProfitMarginPct    *float64 `json:"minProfitMarginPct,omitempty"`
	MinNetAssetsRatio     *float64 `json:"minNetAssetsRatio,omitempty"`

	// Boolean requirements.
	RequiresFiledAccounts     *bool `json:"requiresFiledAccounts,omitempty"`
	AcceptsCCJs               *bool `json:"acceptsCcjs,omitempty"`
	RequiresHomeowner         *bool `json:"requiresHomeowner,omitempty"`
	RequiresCardPayments      *bool `json:"requiresCardPayments,omitempty"`
	RequiresExistingLending   *bool `json:"requiresExistingLending,omitempty"`
	RequiresProfitability     *bool `json:"requiresProfitability,omitempty"`
	RequiresPositiveNetAssets *bool `json:"requiresPositiveNetAssets,omitempty"`

	// Set membership. Empty means no restriction.
	AcceptedBusinessTypes []string `json:"acceptedBusinessTypes,omitempty"`
	ProhibitedIndustries  []string `json:"prohibitedIndustries,omitempty"`
}
