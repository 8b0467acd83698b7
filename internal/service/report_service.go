package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"creditsea/internal/config"
	"creditsea/internal/domain"
	"creditsea/internal/extractor"
	"creditsea/internal/port"
)

// IngestInput is the DTO for a single XML report upload.
type IngestInput struct {
	FileName string
	Data     []byte
}

// IngestResult is the outcome of a successful ingest. Created is false
// when an existing record for the same PAN was replaced.
type IngestResult struct {
	Report  *domain.CreditReport
	Created bool
}

// ReportService defines the credit report management contract.
type ReportService interface {
	Ingest(ctx context.Context, input IngestInput) (*IngestResult, error)
	IngestBatch(ctx context.Context, inputs []IngestInput) []domain.IngestOutcome
	List(ctx context.Context, search, sortBy, sortOrder string, offset, limit int) ([]domain.CreditReport, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditReport, string, error)
	GetByPAN(ctx context.Context, pan string) (*domain.CreditReport, error)
	ListAll(ctx context.Context) ([]domain.CreditReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportService struct {
	repo      port.ReportRepository
	storage   port.ObjectStorage
	email     port.EmailSender
	extractor *extractor.Extractor
	s3Cfg     *config.S3Config
	uploadCfg *config.UploadConfig
	emailCfg  *config.EmailConfig
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	repo port.ReportRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	ext *extractor.Extractor,
	s3Cfg *config.S3Config,
	uploadCfg *config.UploadConfig,
	emailCfg *config.EmailConfig,
) ReportService {
	return &reportService{
		repo:      repo,
		storage:   storage,
		email:     email,
		extractor: ext,
		s3Cfg:     s3Cfg,
		uploadCfg: uploadCfg,
		emailCfg:  emailCfg,
	}
}

// Ingest extracts a report from raw XML and persists it. Reports are
// keyed by PAN: a second upload for a known PAN replaces the stored
// record in place instead of creating a duplicate.
func (s *reportService) Ingest(ctx context.Context, input IngestInput) (*IngestResult, error) {
	extracted, err := s.extractor.Extract(input.Data, input.FileName)
	if err != nil {
		return nil, err
	}

	report := extracted.Report
	rawJSON, err := json.Marshal(extracted.RawTree)
	if err != nil {
		return nil, fmt.Errorf("encoding raw tree: %w", err)
	}
	report.RawTree = rawJSON
	report.OriginalFileName = input.FileName
	report.ProcessedAt = time.Now().UTC()
	report.RawFileKey = s.archiveRawXML(ctx, report.PAN, input.Data)

	existing, err := s.repo.GetByPAN(ctx, report.PAN)
	switch {
	case err == nil:
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
		if report.RawFileKey == "" {
			report.RawFileKey = existing.RawFileKey
		}
		if err := s.repo.Update(ctx, report); err != nil {
			return nil, err
		}
		log.Printf("reportService.Ingest: replaced report %s for PAN %s (file %s)",
			report.ID, report.MaskedPAN(), input.FileName)
		return &IngestResult{Report: report, Created: false}, nil

	case errors.Is(err, domain.ErrNotFound):
		if err := s.repo.Create(ctx, report); err != nil {
			return nil, err
		}
		log.Printf("reportService.Ingest: created report %s for PAN %s (file %s)",
			report.ID, report.MaskedPAN(), input.FileName)
		return &IngestResult{Report: report, Created: true}, nil

	default:
		return nil, err
	}
}

// archiveRawXML stores the original document in object storage.
// Archival is best-effort: failures are logged and ingestion proceeds.
func (s *reportService) archiveRawXML(ctx context.Context, pan string, data []byte) string {
	if s.s3Cfg.Bucket == "" {
		return ""
	}
	key := fmt.Sprintf("reports/%s/%s.xml", pan, uuid.New())
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: "application/xml",
		Size:        int64(len(data)),
	})
	if err != nil {
		log.Printf("reportService.archiveRawXML: upload failed for key %s: %v", key, err)
		return ""
	}
	return key
}

// IngestBatch processes files concurrently with a bounded worker pool.
// One outcome is returned per input, in input order; a failed file
// never aborts its siblings.
func (s *reportService) IngestBatch(ctx context.Context, inputs []IngestInput) []domain.IngestOutcome {
	concurrency := s.uploadCfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	outcomes := make([]domain.IngestOutcome, len(inputs))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i := range inputs {
		input := inputs[i]

		sem <- struct{}{} // acquire
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }() // release

			outcomes[idx] = s.ingestOne(ctx, input)
		}(i)
	}
	wg.Wait()

	s.notifyBatchOutcome(ctx, outcomes)
	return outcomes
}

func (s *reportService) ingestOne(ctx context.Context, input IngestInput) domain.IngestOutcome {
	result, err := s.Ingest(ctx, input)
	if err != nil {
		outcome := domain.IngestOutcome{FileName: input.FileName, Error: err.Error()}
		var vErr *extractor.ValidationError
		if errors.As(err, &vErr) {
			outcome.Details = vErr.Missing
		}
		return outcome
	}
	return domain.IngestOutcome{
		FileName: input.FileName,
		Success:  true,
		ReportID: &result.Report.ID,
		Name:     result.Report.Name,
		PAN:      result.Report.MaskedPAN(),
		Created:  result.Created,
	}
}

func (s *reportService) notifyBatchOutcome(ctx context.Context, outcomes []domain.IngestOutcome) {
	if s.email == nil || s.emailCfg.NotifyAddress == "" {
		return
	}

	var failed int
	var failures []string
	for _, o := range outcomes {
		if !o.Success {
			failed++
			failures = append(failures, fmt.Sprintf("%s: %s", o.FileName, o.Error))
		}
	}

	err := s.email.SendIngestSummary(ctx, s.emailCfg.NotifyAddress,
		len(outcomes), len(outcomes)-failed, failed, failures)
	if err != nil {
		log.Printf("reportService.notifyBatchOutcome: sending summary failed: %v", err)
	}
}

func (s *reportService) List(ctx context.Context, search, sortBy, sortOrder string, offset, limit int) ([]domain.CreditReport, int, error) {
	sortField := domain.SortByProcessedAt
	if sortBy != "" {
		field, ok := domain.AllowedSortFields[sortBy]
		if !ok {
			return nil, 0, domain.ErrInvalidSortField
		}
		sortField = field
	}

	order := domain.SortOrderDesc
	if sortOrder == "asc" || sortOrder == "ASC" {
		order = domain.SortOrderAsc
	}

	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.List(ctx, port.ReportListFilter{
		Search:    search,
		SortBy:    sortField,
		SortOrder: order,
		Offset:    offset,
		Limit:     limit,
	})
}

// GetByID returns the full report including the raw document tree,
// plus a presigned download URL for the archived XML when available.
func (s *reportService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditReport, string, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var rawURL string
	if report.RawFileKey != "" && s.s3Cfg.Bucket != "" {
		rawURL, err = s.storage.GetPresignedURL(ctx, s.s3Cfg.Bucket, report.RawFileKey, s.s3Cfg.PresignExpiry)
		if err != nil {
			log.Printf("reportService.GetByID: presign failed for %s: %v", report.RawFileKey, err)
			rawURL = ""
		}
	}
	return report, rawURL, nil
}

// GetByPAN returns the stored record without the raw document tree;
// the full tree stays behind the by-ID lookup.
func (s *reportService) GetByPAN(ctx context.Context, pan string) (*domain.CreditReport, error) {
	report, err := s.repo.GetByPAN(ctx, pan)
	if err != nil {
		return nil, err
	}
	report.RawTree = nil
	return report, nil
}

func (s *reportService) ListAll(ctx context.Context) ([]domain.CreditReport, error) {
	return s.repo.ListAll(ctx)
}

func (s *reportService) Delete(ctx context.Context, id uuid.UUID) error {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if report.RawFileKey != "" && s.s3Cfg.Bucket != "" {
		if err := s.storage.Delete(ctx, s.s3Cfg.Bucket, report.RawFileKey); err != nil {
			log.Printf("reportService.Delete: removing archived XML %s failed: %v", report.RawFileKey, err)
		}
	}
	return s.repo.Delete(ctx, id)
}
