package extractor

import (
	"fmt"
	"strings"
)

// ParseError indicates the uploaded document is not well-formed XML.
// Fatal for that document; never retried.
type ParseError struct {
	FileName string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.FileName, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError indicates the mandatory identity fields were missing
// after extraction. The document is never persisted.
type ValidationError struct {
	FileName string
	Missing  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid credit data in %s: %s", e.FileName, strings.Join(e.Missing, "; "))
}
