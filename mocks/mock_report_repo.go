package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"creditsea/internal/domain"
	"creditsea/internal/port"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Create(ctx context.Context, report *domain.CreditReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepo) Update(ctx context.Context, report *domain.CreditReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditReport), args.Error(1)
}

func (m *MockReportRepo) GetByPAN(ctx context.Context, pan string) (*domain.CreditReport, error) {
	args := m.Called(ctx, pan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditReport), args.Error(1)
}

func (m *MockReportRepo) List(ctx context.Context, filter port.ReportListFilter) ([]domain.CreditReport, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CreditReport), args.Int(1), args.Error(2)
}

func (m *MockReportRepo) ListAll(ctx context.Context) ([]domain.CreditReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditReport), args.Error(1)
}

func (m *MockReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
