// Package extractor turns raw XML credit bureau reports into
// normalized CreditReport records. It recognizes the Experian
// INProfileResponse layout and falls back to generic field names for
// other schemas; unfamiliar documents degrade to placeholder values
// instead of failing. The only error conditions are malformed XML and
// missing identity fields.
package extractor

import (
	"creditsea/internal/domain"
	"creditsea/internal/xmltree"
)

// Extractor is stateless and safe for concurrent use.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Result is a successful extraction: the normalized record plus the
// original parsed tree, retained for audit.
type Result struct {
	Report  *domain.CreditReport
	RawTree xmltree.Tree
}

// Extract parses xmlData and extracts a normalized credit report.
// It returns *ParseError when the document is not well-formed XML and
// *ValidationError when the mandatory identity fields are missing;
// every other input yields a best-effort record. The file name is
// advisory, used only in error messages.
func (e *Extractor) Extract(xmlData []byte, fileName string) (*Result, error) {
	tree, err := xmltree.Decode(xmlData)
	if err != nil {
		return nil, &ParseError{FileName: fileName, Err: err}
	}

	data := Normalize(tree)

	report := &domain.CreditReport{
		Name:           extractName(data),
		MobilePhone:    extractMobilePhone(data),
		PAN:            extractPAN(data),
		CreditScore:    extractCreditScore(data),
		ReportSummary:  extractReportSummary(data),
		CreditAccounts: extractCreditAccounts(data),
		Addresses:      extractAddresses(data),
		ReportDate:     extractReportDate(data),
	}

	if result := Validate(report); !result.OK {
		return nil, &ValidationError{FileName: fileName, Missing: result.Errors}
	}

	return &Result{Report: report, RawTree: tree}, nil
}
