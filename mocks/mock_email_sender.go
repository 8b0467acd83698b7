package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendIngestSummary(ctx context.Context, toEmail string, total, successful, failed int, failures []string) error {
	args := m.Called(ctx, toEmail, total, successful, failed, failures)
	return args.Error(0)
}
