package port

import (
	"context"

	"creditsea/internal/domain"
)

// StatsRepository provides aggregate statistics queries over the
// stored credit reports.
type StatsRepository interface {
	Summary(ctx context.Context) (*domain.ReportStats, error)
	ScoreDistribution(ctx context.Context) ([]domain.ScoreBucket, error)
}
