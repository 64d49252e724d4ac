package wizard

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/northwind-studio/website/internal/config"
	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/submission"
)

// Module provides the contact form definition and the session store.
var Module = fx.Module("wizard",
	fx.Provide(
		NewContactForm,
		NewStoreFromConfig,
	),
)

func NewContactForm(reg *content.Registry) (Form, error) {
	form := ContactForm(reg)
	if err := form.Validate(); err != nil {
		return Form{}, err
	}
	return form, nil
}

func NewStoreFromConfig(cfg *config.Config, form Form, submitter submission.Submitter, log *slog.Logger) *Store {
	factory := func() *Wizard {
		return New(form, submitter,
			WithTimeout(cfg.Contact.SubmitTimeout),
			WithLogger(log))
	}
	return NewStore(factory, cfg.Contact.SessionTTL, log)
}
