package ratelimit

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/northwind-studio/website/internal/config"
)

var Module = fx.Module("ratelimit",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg *config.Config, log *slog.Logger) *Limiter {
	return New(cfg.Contact.RatePerMinute, cfg.Contact.RateBurst, log)
}
