package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"creditsea/internal/domain"
	"creditsea/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const summaryQuery = `SELECT
	COUNT(*) AS total_reports,
	COALESCE(AVG(credit_score), 0) AS avg_credit_score,
	COALESCE(MAX(credit_score), 0) AS max_credit_score,
	COALESCE(MIN(credit_score), 0) AS min_credit_score,
	COALESCE(SUM(current_balance_amount), 0) AS total_current_balance,
	COALESCE(SUM(total_accounts), 0) AS total_accounts,
	COALESCE(SUM(active_accounts), 0) AS total_active_accounts,
	COUNT(*) FILTER (WHERE processed_at >= NOW() - INTERVAL '7 days') AS recent_reports
FROM credit_reports`

const scoreDistributionQuery = `SELECT
	CASE
		WHEN credit_score >= 300 AND credit_score < 400 THEN '300-400'
		WHEN credit_score >= 400 AND credit_score < 500 THEN '400-500'
		WHEN credit_score >= 500 AND credit_score < 600 THEN '500-600'
		WHEN credit_score >= 600 AND credit_score < 700 THEN '600-700'
		WHEN credit_score >= 700 AND credit_score < 800 THEN '700-800'
		WHEN credit_score >= 800 AND credit_score <= 900 THEN '800-900'
		ELSE 'Other'
	END AS bucket,
	COUNT(*) AS count,
	COALESCE(AVG(current_balance_amount), 0) AS avg_balance
FROM credit_reports
GROUP BY bucket
ORDER BY bucket`

func (r *statsRepo) Summary(ctx context.Context) (*domain.ReportStats, error) {
	var stats domain.ReportStats
	if err := r.db.GetContext(ctx, &stats, summaryQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.Summary: %w", err)
	}
	return &stats, nil
}

func (r *statsRepo) ScoreDistribution(ctx context.Context) ([]domain.ScoreBucket, error) {
	var buckets []domain.ScoreBucket
	if err := r.db.SelectContext(ctx, &buckets, scoreDistributionQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.ScoreDistribution: %w", err)
	}
	return buckets, nil
}
