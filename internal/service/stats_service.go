package service

import (
	"context"

	"creditsea/internal/domain"
	"creditsea/internal/port"
)

// StatsService provides aggregate statistics over stored reports.
type StatsService interface {
	Summary(ctx context.Context) (*domain.ReportStats, error)
	ScoreDistribution(ctx context.Context) ([]domain.ScoreBucket, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Summary(ctx context.Context) (*domain.ReportStats, error) {
	return s.statsRepo.Summary(ctx)
}

func (s *statsService) ScoreDistribution(ctx context.Context) ([]domain.ScoreBucket, error) {
	return s.statsRepo.ScoreDistribution(ctx)
}
