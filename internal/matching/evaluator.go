// internal/matching/evaluator.go
package matching

import (
	"broker-workers/internal/models"
)

// Evaluation is the outcome of running one lender's criteria against one
// applicant profile. Eligible is the AND of every hard gate; Score is the sum
// of the satisfied soft checks; Reasons lists the satisfied soft checks in
// evaluation order.
type Evaluation struct {
	Eligible bool
	Score    int
	Reasons  []string
}

func (ev *Evaluation) award(weight int, reason string) {
	ev.Score += weight
	ev.Reasons = append(ev.Reasons, reason)
}

func (ev *Evaluation) disqualify() {
	ev.Eligible = false
}

// criterionCheck inspects one dimension of the criteria/profile pair and
// updates the evaluation. Checks never read each other's output; each one
// skips itself when either side has nothing to say about its dimension.
type criterionCheck func(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation)

// Evaluator walks a fixed, ordered list of independent criterion checks.
// A check only fires when the lender actually constrains that dimension, and
// an absent applicant fact leaves the check untouched (no score, no
// disqualification) except where noted: a business-type allow-list rejects an
// unknown type, and a card-payment minimum rejects an absent percentage.
// Evaluation is pure: no I/O, no shared state, deterministic for identical
// inputs, so it is safe to call from any number of goroutines.
type Evaluator struct {
	weights Weights
	checks  []criterionCheck
}

func NewEvaluator(weights Weights) *Evaluator {
	e := &Evaluator{weights: weights}
	e.checks = []criterionCheck{
		e.checkTradingTime,
		e.checkMonthlyRevenue,
		e.checkLoanAmount,
		e.checkBusinessType,
		e.checkIndustry,
		e.checkFiledAccounts,
		e.checkCCJs,
		e.checkHomeowner,
		e.checkCardPayments,
		e.checkExistingLending,
		e.checkProfitability,
		e.checkNetAssets,
	}
	return e
}

// Evaluate runs every check in order. Evaluation continues after a hard-gate
// failure so the score and reasons stay complete for auditing; the aggregator
// is what drops ineligible lenders from the result.
func (e *Evaluator) Evaluate(c *models.LenderCriteria, p *models.ApplicantProfile) Evaluation {
	ev := Evaluation{Eligible: true}
	for _, check := range e.checks {
		check(c, p, &ev)
	}
	return ev
}

func (e *Evaluator) checkTradingTime(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if c.MinTradingMonths == nil {
		return
	}
	months := p.TradingMonths()
	if months == nil {
		return
	}
	if *months >= *c.MinTradingMonths {
		ev.award(e.weights.Standard, "Trading history meets the lender's minimum")
	} else {
		ev.disqualify()
	}
}

func (e *Evaluator) checkMonthlyRevenue(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if c.MinMonthlyRevenue != nil && p.MonthlyRevenue != nil {
		if *p.MonthlyRevenue >= *c.MinMonthlyRevenue {
			ev.award(e.weights.Standard, "Monthly revenue meets the lender's minimum")
		} else {
			ev.disqualify()
		}
	}

	// The multiple check only runs when the lender caps the loan-to-revenue
	// multiple and the applicant stated a funding amount.
	if c.MaxLoanToRevenue == nil || p.FundingAmount == nil || p.MonthlyRevenue == nil {
		return
	}
	if *p.MonthlyRevenue <= 0 {
		// A zero-revenue business cannot satisfy any revenue multiple.
		ev.disqualify()
		return
	}
	if *p.FundingAmount / *p.MonthlyRevenue <= *c.MaxLoanToRevenue {
		ev.award(e.weights.Standard, "Requested amount within the lender's revenue multiple")
	} else {
		ev.disqualify()
	}
}

func (e *Evaluator) checkLoanAmount(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if (c.MinLoanAmount == nil && c.MaxLoanAmount == nil) || p.FundingAmount == nil {
		return
	}
	if c.MinLoanAmount != nil && *p.FundingAmount < *c.MinLoanAmount {
		ev.disqualify()
		return
	}
	if c.MaxLoanAmount != nil && *p.FundingAmount > *c.MaxLoanAmount {
		ev.disqualify()
		return
	}
	ev.award(e.weights.Standard, "Requested amount within the lender's loan range")
}

func (e *Evaluator) checkBusinessType(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if len(c.AcceptedBusinessTypes) == 0 {
		return
	}
	// An allow-list is a hard gate even for an unknown business type: the
	// lender cannot be offered an applicant whose structure it may not accept.
	if p.BusinessType == nil {
		ev.disqualify()
		return
	}
	for _, accepted := range c.AcceptedBusinessTypes {
		if accepted == *p.BusinessType {
			ev.award(e.weights.Standard, "Business type accepted by the lender")
			return
		}
	}
	ev.disqualify()
}

func (e *Evaluator) checkIndustry(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if len(c.ProhibitedIndustries) == 0 || p.Industry == nil {
		return
	}
	for _, prohibited := range c.ProhibitedIndustries {
		if prohibited == *p.Industry {
			ev.disqualify()
			return
		}
	}
	ev.award(e.weights.Reduced, "Industry not restricted by the lender")
}

func (e *Evaluator) checkFiledAccounts(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if c.RequiresFiledAccounts == nil || p.HasFiledAccounts == nil {
		return
	}
	if *p.HasFiledAccounts {
		// Awarded whenever the lender has an opinion on the attribute.
		ev.award(e.weights.Standard, "Statutory accounts have been filed")
		return
	}
	if *c.RequiresFiledAccounts {
		ev.disqualify()
	}
}

func (e *Evaluator) checkCCJs(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if c.AcceptsCCJs == nil || p.HasCCJs == nil {
		return
	}
	if !*c.AcceptsCCJs {
		if *p.HasCCJs {
			ev.disqualify()
		}
		return
	}
	if !*p.HasCCJs {
		ev.award(e.weights.Standard, "No county court judgments")
		return
	}
	// Accepted with conditions: the CCJ total decides between a reduced award
	// and disqualification.
	if c.MaxCCJValue == nil {
		ev.award(e.weights.Reduced, "County court judgments accepted by the lender")
		return
	}
	if p.CCJValue == nil {
		return
	}
	if *p.CCJValue <= *c.MaxCCJValue {
		ev.award(e.weights.Reduced, "CCJ value within the lender's limit")
	} else {
		ev.disqualify()
	}
}

func (e *Evaluator) checkHomeowner(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if c.RequiresHomeowner == nil || !*c.RequiresHomeowner || p.DirectorsHomeowners == nil {
		return
	}
	if *p.DirectorsHomeowners {
		ev.award(e.weights.Standard, "Directors are homeowners")
	} else {
		ev.disqualify()
	}
}

func (e *Evaluator) checkCardPayments(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if c.RequiresCardPayments != nil && *c.RequiresCardPayments {
		if p.CardPaymentPct == nil || *p.CardPaymentPct <= 0 {
			ev.disqualify()
			return
		}
	}
	if c.MinCardPaymentPct == nil {
		return
	}
	// A card-payment minimum is the one scalar gate where an absent fact
	// disqualifies: these lenders advance against card takings and cannot
	// proceed without the figure.
	if p.CardPaymentPct == nil || *p.CardPaymentPct < *c.MinCardPaymentPct {
		ev.disqualify()
		return
	}
	ev.award(e.weights.Standard, "Card payment share meets the lender's minimum")
}

func (e *Evaluator) checkExistingLending(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if c.RequiresExistingLending != nil && *c.RequiresExistingLending {
		if p.HasExistingLending != nil && !*p.HasExistingLending {
			ev.disqualify()
			return
		}
	}
	if p.HasExistingLending == nil || !*p.HasExistingLending || c.MaxExistingLenders == nil {
		return
	}
	if p.ExistingLenderCount == nil {
		return
	}
	if *p.ExistingLenderCount <= *c.MaxExistingLenders {
		ev.award(e.weights.Reduced, "Existing lender count within the lender's cap")
	} else {
		ev.disqualify()
	}
}

func (e *Evaluator) checkProfitability(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if c.RequiresProfitability != nil && p.AnnualProfit != nil {
		if *p.AnnualProfit > 0 {
			ev.award(e.weights.Standard, "Business is profitable")
		} else if *c.RequiresProfitability {
			ev.disqualify()
		}
	}

	// Margin bound, evaluated against annualised monthly revenue.
	if c.MinProfitMarginPct == nil || p.AnnualProfit == nil || p.MonthlyRevenue == nil || *p.MonthlyRevenue <= 0 {
		return
	}
	margin := *p.AnnualProfit / (*p.MonthlyRevenue * 12) * 100
	if margin < *c.MinProfitMarginPct {
		ev.disqualify()
	}
}

func (e *Evaluator) checkNetAssets(c *models.LenderCriteria, p *models.ApplicantProfile, ev *Evaluation) {
	if c.RequiresPositiveNetAssets != nil && p.NetAssets != nil {
		if *p.NetAssets > 0 {
			ev.award(e.weights.Standard, "Positive net assets")
		} else if *c.RequiresPositiveNetAssets {
			ev.disqualify()
		}
	}

	// Ratio bound against the requested amount.
	if c.MinNetAssetsRatio == nil || p.NetAssets == nil || p.FundingAmount == nil || *p.FundingAmount <= 0 {
		return
	}
	if *p.NetAssets / *p.FundingAmount < *c.MinNetAssetsRatio {
		ev.disqualify()
	}
}
