package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"creditsea/internal/config"
	"creditsea/internal/domain"
	"creditsea/internal/service"
)

// UploadHandler handles XML report upload endpoints.
type UploadHandler struct {
	reportService service.ReportService
	uploadCfg     *config.UploadConfig
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(reportService service.ReportService, uploadCfg *config.UploadConfig) *UploadHandler {
	return &UploadHandler{reportService: reportService, uploadCfg: uploadCfg}
}

// uploadSummary is the response body for a processed report.
type uploadSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PAN            string  `json:"pan"`
	CreditScore    float64 `json:"credit_score"`
	TotalAccounts  float64 `json:"total_accounts"`
	CurrentBalance float64 `json:"current_balance"`
	ProcessedAt    string  `json:"processed_at"`
}

func summarize(report *domain.CreditReport) uploadSummary {
	return uploadSummary{
		ID:             report.ID.String(),
		Name:           report.Name,
		PAN:            report.MaskedPAN(),
		CreditScore:    report.CreditScore,
		TotalAccounts:  report.TotalAccounts,
		CurrentBalance: report.CurrentBalanceAmount,
		ProcessedAt:    report.ProcessedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// readUpload validates and reads one multipart file into memory.
func (h *UploadHandler) readUpload(header *multipart.FileHeader) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xml" {
		return nil, domain.ErrUnsupportedFileType
	}
	if header.Size == 0 {
		return nil, domain.ErrEmptyFile
	}
	if header.Size > h.uploadCfg.MaxFileSizeMB*1024*1024 {
		return nil, domain.ErrFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return io.ReadAll(file)
}

// Upload handles POST /api/v1/reports/upload
// @Summary Upload an XML credit report
// @Description Upload a single XML credit bureau report for extraction and storage
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param xmlFile formData file true "XML report file"
// @Success 201 {object} APIResponse{data=uploadSummary} "Report processed"
// @Failure 400 {object} APIResponse "Missing file, malformed XML, or missing credit data"
// @Failure 413 {object} APIResponse "File too large"
// @Router /reports/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("xmlFile")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "xmlFile field is required")
		return
	}

	data, err := h.readUpload(header)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.reportService.Ingest(c.Request.Context(), service.IngestInput{
		FileName: header.Filename,
		Data:     data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	message := "report created"
	if !result.Created {
		message = "report updated"
	}
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data: gin.H{
			"message": message,
			"report":  summarize(result.Report),
		},
	})
}

// UploadBatch handles POST /api/v1/reports/upload/batch
// @Summary Upload multiple XML credit reports
// @Description Upload a batch of XML reports; files are processed concurrently and one failure never aborts the rest
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param xmlFiles formData file true "XML report files"
// @Success 200 {object} APIResponse "Per-file outcomes with summary"
// @Failure 400 {object} APIResponse "No files or too many files"
// @Router /reports/upload/batch [post]
func (h *UploadHandler) UploadBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}

	headers := form.File["xmlFiles"]
	if len(headers) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILES", "xmlFiles field is required")
		return
	}
	if len(headers) > h.uploadCfg.MaxBatchFiles {
		RespondError(c, http.StatusBadRequest, "TOO_MANY_FILES", "batch exceeds the maximum number of files")
		return
	}

	// Read everything up front so per-file validation failures land in
	// the outcome list alongside extraction failures.
	inputs := make([]service.IngestInput, 0, len(headers))
	outcomes := make([]domain.IngestOutcome, 0, len(headers))
	for _, header := range headers {
		data, err := h.readUpload(header)
		if err != nil {
			_, _, msg := MapDomainError(err)
			outcomes = append(outcomes, domain.IngestOutcome{FileName: header.Filename, Error: msg})
			continue
		}
		inputs = append(inputs, service.IngestInput{FileName: header.Filename, Data: data})
	}

	outcomes = append(outcomes, h.reportService.IngestBatch(c.Request.Context(), inputs)...)

	var results, failures []domain.IngestOutcome
	for _, o := range outcomes {
		if o.Success {
			results = append(results, o)
		} else {
			failures = append(failures, o)
		}
	}

	RespondOK(c, gin.H{
		"results": results,
		"errors":  failures,
		"summary": gin.H{
			"total":      len(outcomes),
			"successful": len(results),
			"failed":     len(failures),
		},
	})
}

// Sample handles GET /api/v1/reports/upload/sample
// @Summary Download a sample XML report
// @Description Returns a minimal Experian-format XML document for trying out the upload endpoints
// @Tags reports
// @Produce application/xml
// @Success 200 {string} string "Sample XML document"
// @Router /reports/upload/sample [get]
func (h *UploadHandler) Sample(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="sample_credit_report.xml"`)
	c.Data(http.StatusOK, "application/xml", []byte(sampleReportXML))
}
