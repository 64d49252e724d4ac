package apperror

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-studio/website/pkg/logger"
)

func TestHandler_JSONClient(t *testing.T) {
	h := NewHandler(logger.Nop(), nil)

	req := httptest.NewRequest(http.MethodPost, "/contact/submit", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	h.Render(rec, req, NewBadRequest("invalid input"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bad_request", resp["error"]["code"])
	assert.Equal(t, "invalid input", resp["error"]["message"])
}

func TestHandler_BrowserGetsPage(t *testing.T) {
	var rendered *Error
	h := NewHandler(logger.Nop(), func(w http.ResponseWriter, r *http.Request, appErr *Error) error {
		rendered = appErr
		w.WriteHeader(appErr.HTTPStatus)
		_, err := io.WriteString(w, "<h1>"+appErr.Message+"</h1>")
		return err
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()

	h.Render(rec, req, ErrNotFound)

	require.NotNil(t, rendered)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestHandler_UnknownErrorIsInternal(t *testing.T) {
	h := NewHandler(logger.Nop(), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.Render(rec, req, errors.New("something leaked"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "something leaked")
}

func TestHandler_HeadRequest(t *testing.T) {
	h := NewHandler(logger.Nop(), nil)

	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()

	h.Render(rec, req, ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandler_Wrap(t *testing.T) {
	h := NewHandler(logger.Nop(), nil)

	ok := h.Wrap(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
	failing := h.Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return ErrTimeout
	})

	rec := httptest.NewRecorder()
	ok(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	failing(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
