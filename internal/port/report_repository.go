package port

import (
	"context"

	"github.com/google/uuid"

	"creditsea/internal/domain"
)

// ReportListFilter holds the query parameters for paginated report
// listing. SortBy and SortOrder are validated by the service layer
// before reaching the repository.
type ReportListFilter struct {
	Search    string
	SortBy    domain.ReportSortField
	SortOrder string
	Offset    int
	Limit     int
}

// ReportRepository defines the contract for credit report persistence.
// List results omit the raw document tree; GetByID returns it.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.CreditReport) error
	Update(ctx context.Context, report *domain.CreditReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditReport, error)
	GetByPAN(ctx context.Context, pan string) (*domain.CreditReport, error)
	List(ctx context.Context, filter ReportListFilter) ([]domain.CreditReport, int, error)
	ListAll(ctx context.Context) ([]domain.CreditReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
