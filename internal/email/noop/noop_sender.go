package noop

import (
	"context"
	"log"
	"strings"

	"creditsea/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs batch summaries
// to stdout instead of sending them.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendIngestSummary(_ context.Context, toEmail string, total, successful, failed int, failures []string) error {
	log.Printf("[NOOP EMAIL] Ingest summary for %s: %d processed, %d succeeded, %d failed", toEmail, total, successful, failed)
	if len(failures) > 0 {
		log.Printf("[NOOP EMAIL] Failures:\n%s", strings.Join(failures, "\n"))
	}
	return nil
}
