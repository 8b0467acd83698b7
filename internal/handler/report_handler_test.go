package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creditsea/internal/domain"
	"creditsea/internal/handler"
	"creditsea/internal/service"
	"creditsea/mocks"
)

func newReportRouter(svc service.ReportService) *gin.Engine {
	h := handler.NewReportHandler(svc)
	r := gin.New()
	r.GET("/reports", h.List)
	r.GET("/reports/export", h.Export)
	r.GET("/reports/pan/:pan", h.GetByPAN)
	r.GET("/reports/:id", h.GetByID)
	r.DELETE("/reports/:id", h.Delete)
	return r
}

func TestListReports(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("List", mock.Anything, "jane", "credit_score", "asc", 5, 10).
		Return([]domain.CreditReport{{Name: "Jane Doe", PAN: "FGHIJ5678K"}}, 1, nil)

	req := httptest.NewRequest(http.MethodGet, "/reports?search=jane&sort_by=credit_score&sort_order=asc&offset=5&limit=10", nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
	assert.Equal(t, 5, resp.Meta.Offset)
}

func TestListReportsInvalidSortField(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("List", mock.Anything, "", "bogus", "", 0, 10).
		Return(nil, 0, domain.ErrInvalidSortField)

	req := httptest.NewRequest(http.MethodGet, "/reports?sort_by=bogus", nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_SORT_FIELD")
}

func TestListReportsEmptyResultIsArray(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("List", mock.Anything, "", "", "", 0, 10).Return(nil, 0, nil)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetReportByID(t *testing.T) {
	id := uuid.New()
	svc := new(mocks.MockReportService)
	svc.On("GetByID", mock.Anything, id).
		Return(&domain.CreditReport{ID: id, Name: "Jane Doe"}, "https://signed.example/raw.xml", nil)

	req := httptest.NewRequest(http.MethodGet, "/reports/"+id.String(), nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://signed.example/raw.xml")
}

func TestGetReportByIDInvalidUUID(t *testing.T) {
	svc := new(mocks.MockReportService)

	req := httptest.NewRequest(http.MethodGet, "/reports/not-a-uuid", nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}

func TestGetReportByIDNotFound(t *testing.T) {
	id := uuid.New()
	svc := new(mocks.MockReportService)
	svc.On("GetByID", mock.Anything, id).Return(nil, "", domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/reports/"+id.String(), nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReportByPAN(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("GetByPAN", mock.Anything, "FGHIJ5678K").
		Return(&domain.CreditReport{PAN: "FGHIJ5678K", Name: "Jane Doe"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/reports/pan/fghij5678k", nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Doe")
}

func TestGetReportByPANInvalidLength(t *testing.T) {
	svc := new(mocks.MockReportService)

	req := httptest.NewRequest(http.MethodGet, "/reports/pan/SHORT", nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_PAN")
	svc.AssertNotCalled(t, "GetByPAN", mock.Anything, mock.Anything)
}

func TestExportReturnsWorkbook(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("ListAll", mock.Anything).
		Return([]domain.CreditReport{{Name: "Jane Doe", PAN: "FGHIJ5678K"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/reports/export", nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestDeleteReport(t *testing.T) {
	id := uuid.New()
	svc := new(mocks.MockReportService)
	svc.On("Delete", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/reports/"+id.String(), nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "report deleted")
}

func TestDeleteReportNotFound(t *testing.T) {
	id := uuid.New()
	svc := new(mocks.MockReportService)
	svc.On("Delete", mock.Anything, id).Return(domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/reports/"+id.String(), nil)
	w := httptest.NewRecorder()
	newReportRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
