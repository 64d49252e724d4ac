package handlers

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/northwind-studio/website/pkg/apperror"
)

var Module = fx.Module("handlers",
	fx.Provide(
		NewPages,
		NewContact,
		NewErrorHandler,
	),
)

// NewErrorHandler renders errors as site pages for browsers and JSON for API
// clients.
func NewErrorHandler(pages *Pages, log *slog.Logger) *apperror.Handler {
	return apperror.NewHandler(log, pages.ErrorPage)
}
