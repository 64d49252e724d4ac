package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/northwind-studio/website/internal/components"
	"github.com/northwind-studio/website/internal/config"
	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/handlers"
	"github.com/northwind-studio/website/internal/ratelimit"
	"github.com/northwind-studio/website/pkg/apperror"
	"github.com/northwind-studio/website/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for building the router
type RouterParams struct {
	fx.In

	Config   *config.Config
	Log      *slog.Logger
	Static   fs.FS
	Registry *content.Registry
	Pages    *handlers.Pages
	Contact  *handlers.Contact
	Errors   *apperror.Handler
	Limiter  *ratelimit.Limiter
}

// NewRouter wires middleware and every site route.
func NewRouter(p RouterParams) http.Handler {
	log := p.Log.With(logger.Scope("http"))
	wrap := p.Errors.Wrap

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(log),
		recoverer(log, p.Errors),
		middleware.StripSlashes,
	)

	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(p.Static)))

	health := handlers.Health(time.Now())
	r.Get("/health", health)
	r.Get("/healthz", health)
	if p.Config.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/", wrap(p.Pages.Page(content.KeyHome)))
	r.Get(pathOr(p.Registry, content.KeyAbout, "/about"), wrap(p.Pages.Page(content.KeyAbout)))
	r.Get(pathOr(p.Registry, content.KeyProjects, "/projects"), wrap(p.Pages.Page(content.KeyProjects)))
	for _, rec := range p.Registry.Pages() {
		r.Get(rec.Path, wrap(p.Pages.Page(rec.Key)))
	}

	r.Get(pathOr(p.Registry, content.KeyContact, "/contact"), wrap(p.Contact.Show))
	r.Group(func(r chi.Router) {
		r.Use(p.Limiter.Middleware(p.Errors))
		r.Post(components.ContactAdvancePath, wrap(p.Contact.Advance))
		r.Post(components.ContactRetreatPath, wrap(p.Contact.Retreat))
		r.Post(components.ContactSubmitPath, wrap(p.Contact.Submit))
		r.Post(components.ContactResetPath, wrap(p.Contact.Reset))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		p.Errors.Render(w, r, apperror.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		p.Errors.Render(w, r, apperror.ErrMethodNotAllowed)
	})

	return r
}

func pathOr(reg *content.Registry, key, fallback string) string {
	if p, ok := reg.PathFor(key); ok {
		return p
	}
	return fallback
}

func staticHandler(static fs.FS) http.Handler {
	files := http.FileServer(http.FS(static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request, skipping probes and scrapes.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/health", "/healthz", "/metrics":
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status", ww.Status()),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			}
			if ww.Status() >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
			} else {
				log.Info("request", attrs...)
			}
		})
	}
}

func recoverer(log *slog.Logger, errs *apperror.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("path", r.URL.Path),
				)
				errs.Render(w, r, apperror.ErrInternal)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// NewHTTPServer builds the http.Server for cfg.
func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, handler http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))
	server := NewHTTPServer(cfg, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
