package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"creditsea/internal/domain"
	"creditsea/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Ingest(ctx context.Context, input service.IngestInput) (*service.IngestResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.IngestResult), args.Error(1)
}

func (m *MockReportService) IngestBatch(ctx context.Context, inputs []service.IngestInput) []domain.IngestOutcome {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.IngestOutcome)
}

func (m *MockReportService) List(ctx context.Context, search, sortBy, sortOrder string, offset, limit int) ([]domain.CreditReport, int, error) {
	args := m.Called(ctx, search, sortBy, sortOrder, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CreditReport), args.Int(1), args.Error(2)
}

func (m *MockReportService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditReport, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.CreditReport), args.String(1), args.Error(2)
}

func (m *MockReportService) GetByPAN(ctx context.Context, pan string) (*domain.CreditReport, error) {
	args := m.Called(ctx, pan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditReport), args.Error(1)
}

func (m *MockReportService) ListAll(ctx context.Context) ([]domain.CreditReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditReport), args.Error(1)
}

func (m *MockReportService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
