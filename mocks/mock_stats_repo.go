package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"creditsea/internal/domain"
)

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) Summary(ctx context.Context) (*domain.ReportStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportStats), args.Error(1)
}

func (m *MockStatsRepo) ScoreDistribution(ctx context.Context) ([]domain.ScoreBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScoreBucket), args.Error(1)
}
