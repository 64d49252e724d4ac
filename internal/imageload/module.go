package imageload

import (
	"io/fs"
	"log/slog"

	"go.uber.org/fx"

	"github.com/northwind-studio/website/internal/config"
)

var Module = fx.Module("imageload",
	fx.Provide(NewProberFromConfig),
)

// NewProberFromConfig builds a Prober over the site's static assets.
func NewProberFromConfig(static fs.FS, cfg *config.Config, log *slog.Logger) *Prober {
	return NewProber(static, cfg.Images.ProbeTimeout, log)
}
