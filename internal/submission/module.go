package submission

import (
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"github.com/northwind-studio/website/internal/config"
)

// Module provides the enquiry Submitter selected by CONTACT_TRANSPORT.
var Module = fx.Module("submission",
	fx.Provide(
		NewTemplateRendererFromConfig,
		New,
	),
)

func NewTemplateRendererFromConfig(cfg *config.Config, log *slog.Logger) (*TemplateRenderer, error) {
	return NewTemplateRenderer(cfg.SiteName, log)
}

// New creates the Submitter for the configured transport. Outside production
// an unconfigured Mailgun transport falls back to the no-op submitter.
func New(cfg *config.Config, renderer *TemplateRenderer, log *slog.Logger) (Submitter, error) {
	contact := cfg.Contact

	switch strings.ToLower(contact.Transport) {
	case config.TransportMailgun:
		if s := NewMailgunSubmitter(contact, renderer, log); s != nil {
			log.Info("using Mailgun submitter",
				slog.String("domain", contact.MailgunDomain),
				slog.String("inbox", contact.Inbox))
			return s, nil
		}
		if cfg.IsProduction() {
			return nil, fmt.Errorf("%w: MAILGUN_DOMAIN and MAILGUN_API_KEY are required", ErrNotConfigured)
		}
		log.Warn("Mailgun not configured, falling back to no-op submitter")
	case config.TransportWebhook:
		log.Info("using webhook submitter", slog.String("url", contact.WebhookURL))
		return NewWebhookSubmitter(contact.WebhookURL, contact.WebhookToken, cfg.SiteName, log), nil
	}

	log.Info("using no-op submitter")
	return NewNoopSubmitter(log), nil
}
