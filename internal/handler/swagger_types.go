package handler

import "creditsea/internal/domain"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// ReportWithRawFile is the GET /reports/:id response body.
type ReportWithRawFile struct {
	Report     domain.CreditReport `json:"report"`
	RawFileURL string              `json:"raw_file_url"`
}

// BatchSummary aggregates per-file outcomes of a batch upload.
type BatchSummary struct {
	Total      int `json:"total" example:"5"`
	Successful int `json:"successful" example:"4"`
	Failed     int `json:"failed" example:"1"`
}

// BatchResponse is the POST /reports/upload/batch response body.
type BatchResponse struct {
	Results []domain.IngestOutcome `json:"results"`
	Errors  []domain.IngestOutcome `json:"errors"`
	Summary BatchSummary           `json:"summary"`
}
