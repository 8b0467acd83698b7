package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"creditsea/internal/domain"
	"creditsea/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

// reportColumns lists every column except raw_tree. List queries use
// it so the full parsed document never travels with paginated results.
const reportColumns = `id, name, mobile_phone, pan, credit_score,
	total_accounts, active_accounts, closed_accounts,
	current_balance_amount, secured_accounts_amount, unsecured_accounts_amount,
	last_seven_days_credit_enquiries,
	credit_accounts, addresses, report_date,
	original_file_name, processed_at, raw_file_key, created_at, updated_at`

func (r *reportRepo) Create(ctx context.Context, report *domain.CreditReport) error {
	report.ID = uuid.New()
	now := time.Now().UTC()
	report.CreatedAt = now
	report.UpdatedAt = now

	query := `INSERT INTO credit_reports (id, name, mobile_phone, pan, credit_score,
		total_accounts, active_accounts, closed_accounts,
		current_balance_amount, secured_accounts_amount, unsecured_accounts_amount,
		last_seven_days_credit_enquiries,
		credit_accounts, addresses, report_date,
		original_file_name, processed_at, raw_file_key, raw_tree, created_at, updated_at)
		VALUES (:id, :name, :mobile_phone, :pan, :credit_score,
		:total_accounts, :active_accounts, :closed_accounts,
		:current_balance_amount, :secured_accounts_amount, :unsecured_accounts_amount,
		:last_seven_days_credit_enquiries,
		:credit_accounts, :addresses, :report_date,
		:original_file_name, :processed_at, :raw_file_key, :raw_tree, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		return fmt.Errorf("reportRepo.Create: %w", err)
	}
	return nil
}

func (r *reportRepo) Update(ctx context.Context, report *domain.CreditReport) error {
	report.UpdatedAt = time.Now().UTC()

	query := `UPDATE credit_reports SET name = :name, mobile_phone = :mobile_phone,
		credit_score = :credit_score,
		total_accounts = :total_accounts, active_accounts = :active_accounts,
		closed_accounts = :closed_accounts,
		current_balance_amount = :current_balance_amount,
		secured_accounts_amount = :secured_accounts_amount,
		unsecured_accounts_amount = :unsecured_accounts_amount,
		last_seven_days_credit_enquiries = :last_seven_days_credit_enquiries,
		credit_accounts = :credit_accounts, addresses = :addresses,
		report_date = :report_date, original_file_name = :original_file_name,
		processed_at = :processed_at, raw_file_key = :raw_file_key,
		raw_tree = :raw_tree, updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, report)
	if err != nil {
		return fmt.Errorf("reportRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditReport, error) {
	var report domain.CreditReport
	err := r.db.GetContext(ctx, &report, "SELECT * FROM credit_reports WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reportRepo.GetByID: %w", err)
	}
	return &report, nil
}

func (r *reportRepo) GetByPAN(ctx context.Context, pan string) (*domain.CreditReport, error) {
	var report domain.CreditReport
	err := r.db.GetContext(ctx, &report, "SELECT * FROM credit_reports WHERE pan = $1", pan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reportRepo.GetByPAN: %w", err)
	}
	return &report, nil
}

func (r *reportRepo) List(ctx context.Context, filter port.ReportListFilter) ([]domain.CreditReport, int, error) {
	where := ""
	args := []any{}
	if filter.Search != "" {
		where = " WHERE name ILIKE $1 OR pan ILIKE $1 OR mobile_phone ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM credit_reports"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("reportRepo.List count: %w", err)
	}

	// SortBy comes from the service's whitelist, never from raw input.
	query := fmt.Sprintf("SELECT %s FROM credit_reports%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		reportColumns, where, filter.SortBy, filter.SortOrder, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	var reports []domain.CreditReport
	if err := r.db.SelectContext(ctx, &reports, query, args...); err != nil {
		return nil, 0, fmt.Errorf("reportRepo.List: %w", err)
	}
	return reports, total, nil
}

func (r *reportRepo) ListAll(ctx context.Context) ([]domain.CreditReport, error) {
	var reports []domain.CreditReport
	query := fmt.Sprintf("SELECT %s FROM credit_reports ORDER BY processed_at DESC", reportColumns)
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("reportRepo.ListAll: %w", err)
	}
	return reports, nil
}

func (r *reportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM credit_reports WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("reportRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
