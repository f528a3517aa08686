// internal/models/applicant.go
package models

// TradingTime is the bucketed trading-history answer collected by the
// onboarding wizard. The raw month count is never collected, only the bucket.
type TradingTime string

const (
	TradingUnder3Months TradingTime = "0-3"
	Trading3To6Months   TradingTime = "3-6"
	Trading6To12Months  TradingTime = "6-12"
	Trading1To2Years    TradingTime = "12-24"
	TradingOver2Years   TradingTime = "24+"
)

// tradingTimeMonths resolves a bucket to a representative month count
// (lower bound of the bucket plus one, so "3-6" reads as 4 months).
var tradingTimeMonths = map[TradingTime]int{
	TradingUnder3Months: 1,
	Trading3To6Months:   4,
	Trading6To12Months:  7,
	Trading1To2Years:    13,
	TradingOver2Years:   25,
}

// Months returns the representative month count for the bucket, or nil when
// the bucket is unrecognised.
func (t TradingTime) Months() *int {
	if m, ok := tradingTimeMonths[t]; ok {
		return &m
	}
	return nil
}

// ApplicantProfile holds the business and financial facts gathered about a
// prospective borrower before matching. Every field is optional: a nil pointer
// means the fact was never collected, which is different from a zero or false
// answer. Lender checks that depend on an absent fact are skipped, they are
// never failed.
type ApplicantProfile struct {
	TradingTime         *TradingTime `json:"tradingTime,omitempty"`
	MonthlyRevenue      *float64     `json:"monthlyRevenue,omitempty"`
	FundingAmount       *float64     `json:"fundingAmount,omitempty"`
	BusinessType        *string      `json:"businessType,omitempty"`
	Industry            *string      `json:"industry,omitempty"`
	HasFiledAccounts    *bool        `json:"hasFiledAccounts,omitempty"`
	HasCCJs             *bool        `json:"hasCcjs,omitempty"`
	CCJValue            *float64     `json:"ccjValue,omitempty"`
	DirectorsHomeowners *bool        `json:"directorsHomeowners,omitempty"`
	CardPaymentPct      *float64     `json:"cardPaymentPct,omitempty"`
	HasExistingLending  *bool        `json:"hasExistingLending,omitempty"`
	ExistingLenderCount *int         `json:"existingLenderCount,omitempty"`
	// AnnualProfit and NetAssets may be negative.
	AnnualProfit *float64 `json:"annualProfit,omitempty"`
	NetAssets    *float64 `json:"netAssets,omitempty"`
}

// TradingMonths resolves the trading-time bucket to months, nil when the
// bucket is absent or unrecognised.
func (p *ApplicantProfile) TradingMonths() *int {
	if p.TradingTime == nil {
		return nil
	}
	return p.TradingTime.Months()
}
