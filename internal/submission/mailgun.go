package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/northwind-studio/website/internal/config"
	"github.com/northwind-studio/website/pkg/logger"
)

// MailgunSubmitter delivers enquiries to the agency inbox via the Mailgun API.
type MailgunSubmitter struct {
	cfg      config.ContactConfig
	log      *slog.Logger
	client   *mailgun.MailgunImpl
	renderer *TemplateRenderer
}

// NewMailgunSubmitter creates a Mailgun submitter.
// Returns nil if Mailgun is not configured.
func NewMailgunSubmitter(cfg config.ContactConfig, renderer *TemplateRenderer, log *slog.Logger) *MailgunSubmitter {
	if !cfg.MailgunConfigured() {
		return nil
	}

	return &MailgunSubmitter{
		cfg:      cfg,
		log:      log.With(logger.Scope("submission.mailgun")),
		client:   mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		renderer: renderer,
	}
}

func (s *MailgunSubmitter) Transport() string { return config.TransportMailgun }

// Submit renders the enquiry and sends it. The caller's context bounds the
// request.
func (s *MailgunSubmitter) Submit(ctx context.Context, fields Fields) (Ack, error) {
	if err := s.validate(); err != nil {
		return Ack{}, fmt.Errorf("%w: %s", ErrNotConfigured, err)
	}

	enquiry := newEnquiry(fields)
	rendered, err := s.renderer.RenderEnquiry(enquiry)
	if err != nil {
		return Ack{}, fmt.Errorf("render enquiry: %w", err)
	}

	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	message := s.client.NewMessage(from, rendered.Subject, rendered.Text, s.cfg.Inbox)
	message.SetHtml(rendered.HTML)
	if email := fields["email"]; email != "" {
		replyTo := email
		if name := fields["name"]; name != "" {
			replyTo = fmt.Sprintf("%s <%s>", name, email)
		}
		message.AddHeader("Reply-To", replyTo)
	}
	if err := message.AddTag("website-enquiry"); err != nil {
		s.log.Debug("tag enquiry", logger.Error(err))
	}

	s.log.Debug("sending enquiry",
		slog.String("enquiry_id", enquiry.ID),
		slog.String("subject", rendered.Subject))

	_, messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return Ack{}, fmt.Errorf("mailgun send: %w", err)
	}

	s.log.Info("enquiry sent",
		slog.String("enquiry_id", enquiry.ID),
		slog.String("message_id", messageID))

	return Ack{ID: enquiry.ID, Transport: s.Transport(), Reference: messageID}, nil
}

// validate checks that the configuration is valid
func (s *MailgunSubmitter) validate() error {
	if s.cfg.MailgunDomain == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if s.cfg.MailgunAPIKey == "" {
		return fmt.Errorf("MAILGUN_API_KEY is required")
	}
	if s.cfg.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required")
	}
	if s.cfg.FromName == "" {
		return fmt.Errorf("EMAIL_FROM_NAME is required")
	}
	if s.cfg.Inbox == "" {
		return fmt.Errorf("CONTACT_INBOX is required")
	}
	return nil
}
