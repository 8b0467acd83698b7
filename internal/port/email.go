package port

import "context"

// EmailSender defines the contract for operational notifications.
type EmailSender interface {
	// SendIngestSummary reports the outcome of a batch ingest run.
	// failures carries one human-readable line per failed file.
	SendIngestSummary(ctx context.Context, toEmail string, total, successful, failed int, failures []string) error
}
