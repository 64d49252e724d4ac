package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/pagetemplate"
	"github.com/northwind-studio/website/pkg/apperror"
	"github.com/northwind-studio/website/pkg/logger"
)

// Pages serves the non-interactive pages.
type Pages struct {
	composer *pagetemplate.Composer
	log      *slog.Logger
}

func NewPages(composer *pagetemplate.Composer, log *slog.Logger) *Pages {
	return &Pages{
		composer: composer,
		log:      log.With(logger.Scope("handlers.pages")),
	}
}

// Page returns a handler for the page with the given key.
func (h *Pages) Page(key string) func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		page, err := h.composer.Page(r.Context(), key)
		if errors.Is(err, content.ErrPageNotFound) {
			return apperror.ErrNotFound
		}
		if err != nil {
			return apperror.NewInternal("failed to compose page", err)
		}
		countRender(key)
		return writePage(w, http.StatusOK, page)
	}
}

// ErrorPage renders an application error as a full page. It satisfies
// apperror.PageRenderer.
func (h *Pages) ErrorPage(w http.ResponseWriter, r *http.Request, appErr *apperror.Error) error {
	countRender("error")
	return writePage(w, appErr.HTTPStatus, h.composer.Error(appErr.HTTPStatus, appErr.Message))
}
