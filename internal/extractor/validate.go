package extractor

import "creditsea/internal/domain"

// ValidationResult reports whether an extracted record carries the
// mandatory identity fields.
type ValidationResult struct {
	OK     bool
	Errors []string
}

// Validate checks the three identity fields. A field equal to the
// "N/A" placeholder counts as missing. Other fields are never
// inspected; missing account or address data degrades gracefully and
// is not an error.
func Validate(report *domain.CreditReport) ValidationResult {
	var errs []string
	if report.Name == "" || report.Name == notAvailable {
		errs = append(errs, "Name is required")
	}
	if report.PAN == "" || report.PAN == notAvailable {
		errs = append(errs, "PAN is required")
	}
	if report.MobilePhone == "" || report.MobilePhone == notAvailable {
		errs = append(errs, "Mobile phone is required")
	}
	return ValidationResult{OK: len(errs) == 0, Errors: errs}
}
