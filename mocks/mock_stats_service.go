package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"creditsea/internal/domain"
)

// MockStatsService is a mock implementation of service.StatsService.
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Summary(ctx context.Context) (*domain.ReportStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportStats), args.Error(1)
}

func (m *MockStatsService) ScoreDistribution(ctx context.Context) ([]domain.ScoreBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScoreBucket), args.Error(1)
}
