package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creditsea/internal/config"
	"creditsea/internal/domain"
	"creditsea/internal/handler"
	"creditsea/internal/service"
	"creditsea/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newUploadRouter(svc service.ReportService) *gin.Engine {
	h := handler.NewUploadHandler(svc, &config.UploadConfig{MaxFileSizeMB: 10, MaxBatchFiles: 3, Concurrency: 2})
	r := gin.New()
	r.POST("/upload", h.Upload)
	r.POST("/upload/batch", h.UploadBatch)
	r.GET("/upload/sample", h.Sample)
	return r
}

func multipartBody(t *testing.T, field string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadCreatesReport(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("Ingest", mock.Anything, mock.MatchedBy(func(in service.IngestInput) bool {
		return in.FileName == "report.xml" && len(in.Data) > 0
	})).Return(&service.IngestResult{
		Report:  &domain.CreditReport{ID: uuid.New(), Name: "Jane Doe", PAN: "FGHIJ5678K"},
		Created: true,
	}, nil)

	body, contentType := multipartBody(t, "xmlFile", map[string]string{"report.xml": "<creditReport/>"})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	newUploadRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "report created", data["message"])
	report := data["report"].(map[string]interface{})
	assert.Equal(t, "FGHIJ****K", report["pan"])
}

func TestUploadUpdatedMessage(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("Ingest", mock.Anything, mock.Anything).Return(&service.IngestResult{
		Report:  &domain.CreditReport{ID: uuid.New(), Name: "Jane Doe", PAN: "FGHIJ5678K"},
		Created: false,
	}, nil)

	body, contentType := multipartBody(t, "xmlFile", map[string]string{"report.xml": "<creditReport/>"})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	newUploadRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "report updated")
}

func TestUploadMissingFile(t *testing.T) {
	svc := new(mocks.MockReportService)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	newUploadRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FILE")
	svc.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
}

func TestUploadRejectsNonXMLExtension(t *testing.T) {
	svc := new(mocks.MockReportService)

	body, contentType := multipartBody(t, "xmlFile", map[string]string{"report.pdf": "%PDF-1.4"})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	newUploadRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_FILE_TYPE")
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	svc := new(mocks.MockReportService)

	body, contentType := multipartBody(t, "xmlFile", map[string]string{"report.xml": ""})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	newUploadRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "EMPTY_FILE")
	svc.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
}

func TestUploadBatchReturnsOutcomes(t *testing.T) {
	id := uuid.New()
	svc := new(mocks.MockReportService)
	svc.On("IngestBatch", mock.Anything, mock.AnythingOfType("[]service.IngestInput")).
		Return([]domain.IngestOutcome{
			{FileName: "a.xml", Success: true, ReportID: &id, PAN: "FGHIJ****K"},
			{FileName: "b.xml", Error: "parsing b.xml: malformed"},
		})

	body, contentType := multipartBody(t, "xmlFiles", map[string]string{
		"a.xml": "<creditReport/>",
		"b.xml": "<broken",
	})
	req := httptest.NewRequest(http.MethodPost, "/upload/batch", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	newUploadRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, float64(2), summary["total"])
	assert.Equal(t, float64(1), summary["successful"])
	assert.Equal(t, float64(1), summary["failed"])
}

func TestUploadBatchTooManyFiles(t *testing.T) {
	svc := new(mocks.MockReportService)

	files := map[string]string{}
	for _, name := range []string{"a.xml", "b.xml", "c.xml", "d.xml"} {
		files[name] = "<creditReport/>"
	}
	body, contentType := multipartBody(t, "xmlFiles", files)
	req := httptest.NewRequest(http.MethodPost, "/upload/batch", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	newUploadRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "TOO_MANY_FILES")
	svc.AssertNotCalled(t, "IngestBatch", mock.Anything, mock.Anything)
}

func TestSampleServesXML(t *testing.T) {
	svc := new(mocks.MockReportService)

	req := httptest.NewRequest(http.MethodGet, "/upload/sample", nil)
	w := httptest.NewRecorder()
	newUploadRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<INProfileResponse>")
}
