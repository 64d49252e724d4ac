package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/northwind-studio/website/internal/config"
	"github.com/northwind-studio/website/pkg/logger"
)

const maxErrorBody = 256

// WebhookPayload is the JSON document posted to the configured endpoint.
type WebhookPayload struct {
	ID          string            `json:"id"`
	SubmittedAt time.Time         `json:"submitted_at"`
	Site        string            `json:"site"`
	Fields      map[string]string `json:"fields"`
}

type webhookResponse struct {
	ID string `json:"id"`
}

// WebhookSubmitter posts enquiries as JSON to an HTTP endpoint such as a CRM
// intake hook.
type WebhookSubmitter struct {
	url      string
	token    string
	siteName string
	client   *resty.Client
	log      *slog.Logger
}

func NewWebhookSubmitter(url, token, siteName string, log *slog.Logger) *WebhookSubmitter {
	client := resty.New().
		SetHeader("User-Agent", "northwind-website/1.0").
		SetHeader("Accept", "application/json")

	return &WebhookSubmitter{
		url:      url,
		token:    token,
		siteName: siteName,
		client:   client,
		log:      log.With(logger.Scope("submission.webhook")),
	}
}

func (s *WebhookSubmitter) Transport() string { return config.TransportWebhook }

func (s *WebhookSubmitter) Submit(ctx context.Context, fields Fields) (Ack, error) {
	if s.url == "" {
		return Ack{}, ErrNotConfigured
	}

	enquiry := newEnquiry(fields)
	payload := WebhookPayload{
		ID:          enquiry.ID,
		SubmittedAt: enquiry.SubmittedAt,
		Site:        s.siteName,
		Fields:      enquiry.Fields,
	}

	var result webhookResponse
	req := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result)
	if s.token != "" {
		req.SetAuthToken(s.token)
	}

	resp, err := req.Post(s.url)
	if err != nil {
		return Ack{}, fmt.Errorf("post enquiry: %w", err)
	}
	if resp.IsError() {
		body := resp.String()
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return Ack{}, &StatusError{StatusCode: resp.StatusCode(), Body: body}
	}

	s.log.Info("enquiry posted",
		slog.String("enquiry_id", enquiry.ID),
		slog.Int("status", resp.StatusCode()))

	return Ack{ID: enquiry.ID, Transport: s.Transport(), Reference: result.ID}, nil
}
