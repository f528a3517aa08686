// internal/matching/aggregator.go
package matching

import (
	"context"
	"sort"
	"time"

	"broker-workers/internal/common/logger"
	"broker-workers/internal/common/metrics"
	"broker-workers/internal/models"
)

// CatalogReader supplies the active, panel-eligible lender criteria snapshot.
// Filtering by status is the reader's job; the matcher never re-filters.
type CatalogReader interface {
	ActiveCriteria(ctx context.Context) ([]models.LenderCriteria, error)
}

// Aggregator turns a catalog snapshot into a ranked panel for one applicant.
type Aggregator struct {
	evaluator *Evaluator
}

func NewAggregator(evaluator *Evaluator) *Aggregator {
	return &Aggregator{evaluator: evaluator}
}

// Match evaluates every lender in the snapshot and returns the eligible ones
// with a positive score, highest score first. A lender that tripped no hard
// gate but satisfied nothing is still excluded: an entirely unverified fit is
// not worth surfacing. The sort is stable over catalog order so equal scores
// keep a deterministic relative order across runs.
func (a *Aggregator) Match(profile *models.ApplicantProfile, catalog []models.LenderCriteria) []models.MatchedLender {
	matched := make([]models.MatchedLender, 0, len(catalog))
	for i := range catalog {
		ev := a.evaluator.Evaluate(&catalog[i], profile)
		if !ev.Eligible || ev.Score == 0 {
			continue
		}
		matched = append(matched, models.MatchedLender{
			ID:      catalog[i].ID,
			Name:    catalog[i].Name,
			Score:   ev.Score,
			Reasons: ev.Reasons,
		})
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})
	return matched
}

// Result is one match run, with enough context for the audit trail.
type Result struct {
	Matches       []models.MatchedLender
	CatalogSize   int
	CatalogFailed bool
	Duration      time.Duration
}

// Matcher binds the aggregator to a catalog source. It is the boundary where
// infrastructure failure is absorbed: a catalog error yields an empty panel,
// indistinguishable to the consumer from "no eligible lenders". That is the
// product contract; the failure is surfaced to operators through the error
// log and the catalog-failure counter instead.
type Matcher struct {
	aggregator *Aggregator
	catalog    CatalogReader
	logger     logger.Logger
}

func NewMatcher(aggregator *Aggregator, catalog CatalogReader, log logger.Logger) *Matcher {
	return &Matcher{
		aggregator: aggregator,
		catalog:    catalog,
		logger:     log,
	}
}

func (m *Matcher) Match(ctx context.Context, profile *models.ApplicantProfile) Result {
	start := time.Now()

	catalog, err := m.catalog.ActiveCriteria(ctx)
	if err != nil {
		m.logger.Error("lender catalog unavailable, returning empty panel", map[string]interface{}{
			"error": err,
		})
		metrics.CatalogFailures.Inc()
		return Result{
			Matches:       []models.MatchedLender{},
			CatalogFailed: true,
			Duration:      time.Since(start),
		}
	}

	matches := m.aggregator.Match(profile, catalog)

	metrics.LendersEvaluated.Add(float64(len(catalog)))
	metrics.LendersMatched.Add(float64(len(matches)))

	return Result{
		Matches:     matches,
		CatalogSize: len(catalog),
		Duration:    time.Since(start),
	}
}
