// cmd/tools/catalog-loader/main.go
package main

import (
	"context"
	"flag"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"broker-workers/internal/catalog"
	"broker-workers/internal/common/config"
	"broker-workers/internal/common/database"
	"broker-workers/internal/common/logger"
	"broker-workers/pkg/panel"
)

const upsertQuery = `
	INSERT INTO lender_criteria (
		id, name,
		min_trading_months, min_monthly_revenue, max_loan_to_revenue,
		min_loan_amount, max_loan_amount, min_accounts_filed_years,
		max_ccj_value, min_card_payment_pct, max_existing_lenders,
		min_profit_margin_pct, min_net_assets_ratio,
		requires_filed_accounts, accepts_ccjs, requires_homeowner,
		requires_card_payments, requires_existing_lending,
		requires_profitability, requires_positive_net_assets,
		accepted_business_types, prohibited_industries,
		active, panel_eligible, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, NOW()
	)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		min_trading_months = EXCLUDED.min_trading_months,
		min_monthly_revenue = EXCLUDED.min_monthly_revenue,
		max_loan_to_revenue = EXCLUDED.max_loan_to_revenue,
		min_loan_amount = EXCLUDED.min_loan_amount,
		max_loan_amount = EXCLUDED.max_loan_amount,
		min_accounts_filed_years = EXCLUDED.min_accounts_filed_years,
		max_ccj_value = EXCLUDED.max_ccj_value,
		min_card_payment_pct = EXCLUDED.min_card_payment_pct,
		max_existing_lenders = EXCLUDED.max_existing_lenders,
		min_profit_margin_pct = EXCLUDED.min_profit_margin_pct,
		min_net_assets_ratio = EXCLUDED.min_net_assets_ratio,
		requires_filed_accounts = EXCLUDED.requires_filed_accounts,
		accepts_ccjs = EXCLUDED.accepts_ccjs,
		requires_homeowner = EXCLUDED.requires_homeowner,
		requires_card_payments = EXCLUDED.requires_card_payments,
		requires_existing_lending = EXCLUDED.requires_existing_lending,
		requires_profitability = EXCLUDED.requires_profitability,
		requires_positive_net_assets = EXCLUDED.requires_positive_net_assets,
		accepted_business_types = EXCLUDED.accepted_business_types,
		prohibited_industries = EXCLUDED.prohibited_industries,
		active = EXCLUDED.active,
		panel_eligible = EXCLUDED.panel_eligible,
		updated_at = NOW()`

func main() {
	filePath := flag.String("file", "lender-panel.json", "path to the lender panel file")
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	p, err := panel.Load(*filePath)
	if err != nil {
		zapLog.Fatal("panel file load failed", zap.String("file", *filePath), zap.Error(err))
	}

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := pg.Ping(ctx); err != nil {
		zapLog.Fatal("postgres ping failed", zap.Error(err))
	}

	for _, lender := range p.Lenders {
		_, err := pg.DB.ExecContext(ctx, upsertQuery,
			lender.ID, lender.Name,
			lender.MinTradingMonths, lender.MinMonthlyRevenue, lender.MaxLoanToRevenue,
			lender.MinLoanAmount, lender.MaxLoanAmount, lender.MinAccountsFiledYears,
			lender.MaxCCJValue, lender.MinCardPaymentPct, lender.MaxExistingLenders,
			lender.MinProfitMarginPct, lender.MinNetAssetsRatio,
			lender.RequiresFiledAccounts, lender.AcceptsCCJs, lender.RequiresHomeowner,
			lender.RequiresCardPayments, lender.RequiresExistingLending,
			lender.RequiresProfitability, lender.RequiresPositiveNetAssets,
			pq.Array(lender.AcceptedBusinessTypes), pq.Array(lender.ProhibitedIndustries),
			lender.Active, lender.PanelEligible,
		)
		if err != nil {
			zapLog.Fatal("lender upsert failed", zap.String("lenderId", lender.ID), zap.Error(err))
		}
	}

	zapLog.Info("panel loaded", zap.Int("lenders", len(p.Lenders)))

	// Drop the cached snapshot so workers pick up the new panel immediately.
	rds, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Warn("redis connection failed, snapshot cache not invalidated", zap.Error(err))
		return
	}
	defer rds.Close()

	if err := rds.Client.Del(ctx, catalog.SnapshotKey).Err(); err != nil {
		zapLog.Warn("snapshot cache invalidation failed", zap.Error(err))
		return
	}

	zapLog.Info("snapshot cache invalidated")
}
