package ses

import (
	"context"
	"fmt"
	"html"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"creditsea/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendIngestSummary(ctx context.Context, toEmail string, total, successful, failed int, failures []string) error {
	subject := fmt.Sprintf("CreditSea batch ingest: %d/%d reports processed", successful, total)
	htmlBody := buildSummaryHTML(total, successful, failed, failures)

	textBody := fmt.Sprintf("Batch ingest finished.\n\nTotal files: %d\nSuccessful: %d\nFailed: %d\n", total, successful, failed)
	if len(failures) > 0 {
		textBody += "\nFailures:\n" + strings.Join(failures, "\n") + "\n"
	}
	textBody += "\nCreditSea"

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildSummaryHTML(total, successful, failed int, failures []string) string {
	var failureList strings.Builder
	if len(failures) > 0 {
		failureList.WriteString(`<h3 style="color: #333;">Failures</h3><ul style="color: #666;">`)
		for _, f := range failures {
			failureList.WriteString("<li>" + html.EscapeString(f) + "</li>")
		}
		failureList.WriteString("</ul>")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Batch ingest finished</h2>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0;">Total files</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;">Successful</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;">Failed</td><td>%d</td></tr>
  </table>
  %s
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">CreditSea - Credit Report Processing</p>
</body>
</html>`, total, successful, failed, failureList.String())
}
