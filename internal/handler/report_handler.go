package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creditsea/internal/domain"
	"creditsea/internal/service"
	"creditsea/internal/xlsxexport"
)

// ReportHandler handles stored credit report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// List handles GET /api/v1/reports
// @Summary List credit reports
// @Description Paginated report listing with substring search over name, PAN, and phone
// @Tags reports
// @Produce json
// @Param search query string false "Substring match against name, PAN, or mobile phone"
// @Param sort_by query string false "Sort field: name, credit_score, processed_at, pan" default(processed_at)
// @Param sort_order query string false "asc or desc" default(desc)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(10)
// @Success 200 {object} APIResponse{data=[]domain.CreditReport,meta=PagMeta} "List of reports"
// @Failure 400 {object} APIResponse "Invalid sort field"
// @Router /reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	reports, total, err := h.reportService.List(
		c.Request.Context(),
		c.Query("search"),
		c.Query("sort_by"),
		c.Query("sort_order"),
		offset, limit,
	)
	if err != nil {
		HandleError(c, err)
		return
	}

	if reports == nil {
		reports = []domain.CreditReport{}
	}
	RespondPaginated(c, reports, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/reports/:id
// @Summary Get a credit report
// @Description Full report including the parsed raw document and a presigned URL for the archived XML
// @Tags reports
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} APIResponse "Report with raw document URL"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Report not found"
// @Router /reports/{id} [get]
func (h *ReportHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID")
		return
	}

	report, rawURL, err := h.reportService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"report":       report,
		"raw_file_url": rawURL,
	})
}

// GetByPAN handles GET /api/v1/reports/pan/:pan
// @Summary Get a credit report by PAN
// @Tags reports
// @Produce json
// @Param pan path string true "10-character PAN"
// @Success 200 {object} APIResponse{data=domain.CreditReport} "Report"
// @Failure 400 {object} APIResponse "Invalid PAN"
// @Failure 404 {object} APIResponse "Report not found"
// @Router /reports/pan/{pan} [get]
func (h *ReportHandler) GetByPAN(c *gin.Context) {
	pan := strings.ToUpper(strings.TrimSpace(c.Param("pan")))
	if len(pan) != 10 {
		HandleError(c, domain.ErrInvalidPAN)
		return
	}

	report, err := h.reportService.GetByPAN(c.Request.Context(), pan)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Export handles GET /api/v1/reports/export
// @Summary Export all reports as an Excel workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Workbook attachment"
// @Router /reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	reports, err := h.reportService.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	workbook, err := xlsxexport.BuildWorkbook(reports)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+xlsxexport.BuildFilename()+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		// Headers are already out; nothing sensible left to send.
		_ = c.Error(err)
	}
}

// Delete handles DELETE /api/v1/reports/:id
// @Summary Delete a credit report
// @Description Removes the stored record and its archived raw XML
// @Tags reports
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} APIResponse "Deleted"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Report not found"
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID")
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "report deleted"})
}
