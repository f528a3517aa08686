// internal/catalog/reader.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"broker-workers/internal/common/logger"
	"broker-workers/internal/models"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// SnapshotKey is the Redis key holding the decoded active-panel snapshot.
// The catalog loader deletes it after every panel update.
const SnapshotKey = "lender:criteria:active"

const activeCriteriaQuery = `
	SELECT id, name,
	       min_trading_months, min_monthly_revenue, max_loan_to_revenue,
	       min_loan_amount, max_loan_amount, min_accounts_filed_years,
	       max_ccj_value, min_card_payment_pct, max_existing_lenders,
	       min_profit_margin_pct, min_net_assets_ratio,
	       requires_filed_accounts, accepts_ccjs, requires_homeowner,
	       requires_card_payments, requires_existing_lending,
	       requires_profitability, requires_positive_net_assets,
	       accepted_business_types, prohibited_industries
	FROM lender_criteria
	WHERE active = true AND panel_eligible = true
	ORDER BY name`

// Reader supplies the active, panel-eligible lender criteria snapshot from
// PostgreSQL, with a Redis read-through cache so a busy onboarding flow does
// not hammer the catalog table. The cache stores the decoded snapshot as
// JSON; a cache miss or a cache error both fall through to the database.
type Reader struct {
	db     *sql.DB
	cache  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewReader(db *sql.DB, cache *redis.Client, ttl time.Duration, log logger.Logger) *Reader {
	return &Reader{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "lender-catalog"}),
	}
}

// ActiveCriteria returns the current snapshot. The caller owns the returned
// slice; it is never shared with the cache.
func (r *Reader) ActiveCriteria(ctx context.Context) ([]models.LenderCriteria, error) {
	if r.cache != nil {
		if val, err := r.cache.Get(ctx, SnapshotKey).Result(); err == nil {
			var criteria []models.LenderCriteria
			if err := json.Unmarshal([]byte(val), &criteria); err == nil {
				return criteria, nil
			}
			// A corrupt cache entry is dropped and re-read from the database.
			r.cache.Del(ctx, SnapshotKey)
		}
	}

	criteria, err := r.queryActiveCriteria(ctx)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if data, err := json.Marshal(criteria); err == nil {
			if err := r.cache.Set(ctx, SnapshotKey, data, r.ttl).Err(); err != nil {
				r.logger.Warn("failed to cache catalog snapshot", map[string]interface{}{
					"error": err,
				})
			}
		}
	}

	return criteria, nil
}

func (r *Reader) queryActiveCriteria(ctx context.Context) ([]models.LenderCriteria, error) {
	rows, err := r.db.QueryContext(ctx, activeCriteriaQuery)
	if err != nil {
		return nil, fmt.Errorf("query lender criteria: %w", err)
	}
	defer rows.Close()

	var criteria []models.LenderCriteria
	for rows.Next() {
		c, err := scanCriteria(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lender criteria: %w", err)
		}
		criteria = append(criteria, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read lender criteria: %w", err)
	}

	return criteria, nil
}

// scanCriteria decodes one catalog row. Every threshold column is nullable;
// NULL scans to an invalid sql.Null* and surfaces as a nil pointer, which the
// evaluator reads as "no constraint on this dimension". A malformed record
// therefore fails open on display instead of hiding lenders or crashing.
func scanCriteria(rows *sql.Rows) (models.LenderCriteria, error) {
	var (
		c models.LenderCriteria

		minTradingMonths      sql.NullInt64
		minMonthlyRevenue     sql.NullFloat64
		maxLoanToRevenue      sql.NullFloat64
		minLoanAmount         sql.NullFloat64
		maxLoanAmount         sql.NullFloat64
		minAccountsFiledYears sql.NullInt64
		maxCCJValue           sql.NullFloat64
		minCardPaymentPct     sql.NullFloat64
		maxExistingLenders    sql.NullInt64
		minProfitMarginPct    sql.NullFloat64
		minNetAssetsRatio     sql.NullFloat64

		requiresFiledAccounts     sql.NullBool
		acceptsCCJs               sql.NullBool
		requiresHomeowner         sql.NullBool
		requiresCardPayments      sql.NullBool
		requiresExistingLending   sql.NullBool
		requiresProfitability     sql.NullBool
		requiresPositiveNetAssets sql.NullBool

		acceptedBusinessTypes pq.StringArray
		prohibitedIndustries  pq.StringArray
	)

	err := rows.Scan(
		&c.ID, &c.Name,
		&minTradingMonths, &minMonthlyRevenue, &maxLoanToRevenue,
		&minLoanAmount, &maxLoanAmount, &minAccountsFiledYears,
		&maxCCJValue, &minCardPaymentPct, &maxExistingLenders,
		&minProfitMarginPct, &minNetAssetsRatio,
		&requiresFiledAccounts, &acceptsCCJs, &requiresHomeowner,
		&requiresCardPayments, &requiresExistingLending,
		&requiresProfitability, &requiresPositiveNetAssets,
		&acceptedBusinessTypes, &prohibitedIndustries,
	)
	if err != nil {
		return c, err
	}

	c.MinTradingMonths = nullableInt(minTradingMonths)
	c.MinMonthlyRevenue = nullableFloat(minMonthlyRevenue)
	c.MaxLoanToRevenue = nullableFloat(maxLoanToRevenue)
	c.MinLoanAmount = nullableFloat(minLoanAmount)
	c.MaxLoanAmount = nullableFloat(maxLoanAmount)
	c.MinAccountsFiledYears = nullableInt(minAccountsFiledYears)
	c.MaxCCJValue = nullableFloat(maxCCJValue)
	c.MinCardPaymentPct = nullableFloat(minCardPaymentPct)
	c.MaxExistingLenders = nullableInt(maxExistingLenders)
	c.MinProfitMarginPct = nullableFloat(minProfitMarginPct)
	c.MinNetAssetsRatio = nullableFloat(minNetAssetsRatio)

	c.RequiresFiledAccounts = nullableBool(requiresFiledAccounts)
	c.AcceptsCCJs = nullableBool(acceptsCCJs)
	c.RequiresHomeowner = nullableBool(requiresHomeowner)
	c.RequiresCardPayments = nullableBool(requiresCardPayments)
	c.RequiresExistingLending = nullableBool(requiresExistingLending)
	c.RequiresProfitability = nullableBool(requiresProfitability)
	c.RequiresPositiveNetAssets = nullableBool(requiresPositiveNetAssets)

	c.AcceptedBusinessTypes = []string(acceptedBusinessTypes)
	c.ProhibitedIndustries = []string(prohibitedIndustries)

	return c, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullableBool(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}
