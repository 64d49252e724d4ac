package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/northwind-studio/website/pkg/logger"
)

// PageRenderer writes a full HTML error page for browsers.
type PageRenderer func(w http.ResponseWriter, r *http.Request, appErr *Error) error

// Handler turns errors returned by request handlers into responses: JSON for
// API clients, an HTML page for everyone else.
type Handler struct {
	log  *slog.Logger
	page PageRenderer
}

// NewHandler creates an error handler. page may be nil, in which case browsers
// get a plain-text body.
func NewHandler(log *slog.Logger, page PageRenderer) *Handler {
	return &Handler{
		log:  log.With(logger.Scope("apperror")),
		page: page,
	}
}

// Render writes err to w.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request, err error) {
	appErr := From(err)

	if appErr.HTTPStatus >= 500 {
		h.log.Error("request error",
			slog.Int("status", appErr.HTTPStatus),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", appErr.Error()),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(appErr.HTTPStatus)
		return
	}

	if wantsJSON(r) || h.page == nil {
		writeJSON(w, appErr)
		return
	}

	if pageErr := h.page(w, r, appErr); pageErr != nil {
		h.log.Error("failed to render error page", logger.Error(pageErr))
	}
}

// Wrap adapts an error-returning handler to http.HandlerFunc.
func (h *Handler) Wrap(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.Render(w, r, err)
		}
	}
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "text/html") {
		return false
	}
	return strings.Contains(accept, "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func writeJSON(w http.ResponseWriter, appErr *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(appErr.Body())
}
