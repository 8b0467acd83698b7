package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"creditsea/internal/xmltree"
)

// notAvailable marks a field that could not be extracted. The
// validator treats it the same as an empty value.
const notAvailable = "N/A"

var (
	numericStrip = regexp.MustCompile(`[^0-9.\-]`)
	digitStrip   = regexp.MustCompile(`[^0-9]`)
	panStrip     = regexp.MustCompile(`[^A-Z0-9]`)
)

// ParseNumeric coerces a noisy scalar ("₹1,50,000.00", " 750 ") into a
// float64. Everything except digits, dots and minus signs is stripped
// before parsing; anything unparseable yields 0. It never fails.
func ParseNumeric(v any) float64 {
	s := xmltree.Scalar(v)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(numericStrip.ReplaceAllString(s, ""), 64)
	if err != nil {
		return 0
	}
	return n
}

// CleanPhone strips non-digits from a phone number and returns the
// cleaned value only when exactly 10 digits remain. Otherwise the
// original input is returned unchanged: only a confidently
// reformatted 10-digit number overrides the raw text.
func CleanPhone(raw string) string {
	cleaned := digitStrip.ReplaceAllString(raw, "")
	if len(cleaned) == 10 {
		return cleaned
	}
	return raw
}

// cleanPAN uppercases a PAN and strips everything outside [A-Z0-9].
func cleanPAN(raw string) string {
	return panStrip.ReplaceAllString(strings.ToUpper(raw), "")
}

var accountTypeLabels = map[string]string{
	"10": "Credit Card",
	"51": "Personal Loan",
	"52": "Home Loan",
	"53": "Auto Loan",
	"54": "Education Loan",
	"55": "Business Loan",
}

var accountStatusLabels = map[string]string{
	"11": "Active",
	"13": "Closed",
	"53": "Written Off",
	"71": "Settled",
}

// AccountTypeLabel translates a bureau account type code into a
// human-readable label. Unknown codes stay visible in the output
// instead of being dropped.
func AccountTypeLabel(code string) string {
	if label, ok := accountTypeLabels[code]; ok {
		return label
	}
	return "Account Type " + code
}

// AccountStatusLabel translates a bureau account status code into a
// human-readable label.
func AccountStatusLabel(code string) string {
	if label, ok := accountStatusLabels[code]; ok {
		return label
	}
	return "Status " + code
}

// bureauDateLayout is the 8-digit YYYYMMDD form used in bureau report
// headers.
const bureauDateLayout = "20060102"

var genericDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
}

// parseDate tries the generic date layouts in order.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
