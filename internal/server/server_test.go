package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-studio/website/internal/config"
	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/handlers"
	"github.com/northwind-studio/website/internal/imageload"
	"github.com/northwind-studio/website/internal/pagetemplate"
	"github.com/northwind-studio/website/internal/ratelimit"
	"github.com/northwind-studio/website/internal/submission"
	"github.com/northwind-studio/website/internal/wizard"
	"github.com/northwind-studio/website/pkg/logger"
)

// staticImages treats every source as loadable so tests stay offline.
type staticImages struct{}

func (staticImages) Resolve(_ context.Context, primary, fallback string) imageload.State {
	return imageload.New(primary, fallback)
}

func newRouter(t *testing.T, metricsEnabled bool) http.Handler {
	t.Helper()
	log := logger.Nop()
	reg := content.MustLoad()
	static := fstest.MapFS{
		"images/favicon.svg": {Data: []byte("<svg/>")},
	}

	cfg := &config.Config{
		MetricsEnabled: metricsEnabled,
		Contact:        config.ContactConfig{SessionTTL: time.Hour},
	}
	composer := pagetemplate.New(reg, staticImages{}, pagetemplate.SiteFromConfig(cfg), log)
	form := wizard.ContactForm(reg)
	noop := submission.NewNoopSubmitter(log)
	store := wizard.NewStore(func() *wizard.Wizard { return wizard.New(form, noop) }, time.Hour, log)
	pages := handlers.NewPages(composer, log)

	return NewRouter(RouterParams{
		Config:   cfg,
		Log:      log,
		Static:   static,
		Registry: reg,
		Pages:    pages,
		Contact:  handlers.NewContact(composer, store, form, cfg, log),
		Errors:   handlers.NewErrorHandler(pages, log),
		Limiter:  ratelimit.New(60, 2, log),
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newRouter(t, true)
	city := content.MustLoad().CityPages()
	require.NotEmpty(t, city)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"home", http.MethodGet, "/", http.StatusOK},
		{"about", http.MethodGet, "/about", http.StatusOK},
		{"trailing slash", http.MethodGet, "/about/", http.StatusOK},
		{"projects", http.MethodGet, "/projects", http.StatusOK},
		{"landing page", http.MethodGet, city[0].Path, http.StatusOK},
		{"contact", http.MethodGet, "/contact", http.StatusOK},
		{"static asset", http.MethodGet, "/static/images/favicon.svg", http.StatusOK},
		{"missing asset", http.MethodGet, "/static/images/nope.svg", http.StatusNotFound},
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"healthz", http.MethodGet, "/healthz", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"unknown page", http.MethodGet, "/no-such-page", http.StatusNotFound},
		{"wrong method", http.MethodDelete, "/", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRouter_NotFoundPage(t *testing.T) {
	router := newRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "We couldn&#39;t find that page")
}

func TestRouter_MetricsDisabled(t *testing.T) {
	router := newRouter(t, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{
		Address:      "127.0.0.1",
		Port:         4100,
		ReadTimeout:  time.Second,
		WriteTimeout: 2 * time.Second,
		IdleTimeout:  3 * time.Second,
	}
	srv := NewHTTPServer(cfg, http.NotFoundHandler())

	assert.Equal(t, "127.0.0.1:4100", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
	assert.Equal(t, 3*time.Second, srv.IdleTimeout)
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestRouter_ContactPostsAreRateLimited(t *testing.T) {
	router := newRouter(t, true)

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/contact/retreat", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "203.0.113.9:4000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Page views are not limited.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
