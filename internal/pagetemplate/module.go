package pagetemplate

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/northwind-studio/website/internal/config"
	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/imageload"
)

// DefaultPlaceholder is served when neither an image nor its fallback loads.
const DefaultPlaceholder = "/static/images/placeholder.svg"

var Module = fx.Module("pagetemplate",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(reg *content.Registry, prober *imageload.Prober, cfg *config.Config, log *slog.Logger) *Composer {
	return New(reg, prober, SiteFromConfig(cfg), log)
}

// SiteFromConfig derives the site-wide page values from configuration.
func SiteFromConfig(cfg *config.Config) Site {
	placeholder := cfg.Images.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return Site{
		Name:        cfg.SiteName,
		BaseURL:     cfg.SiteBaseURL,
		Placeholder: placeholder,
		Year:        time.Now().Year(),
	}
}
