package imageload

import (
	"context"
	"io/fs"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/northwind-studio/website/internal/metrics"
	"github.com/northwind-studio/website/pkg/logger"
)

const staticPrefix = "/static/"

// Prober decides whether an image source loads. Local /static/ paths are
// checked against the static file system; remote sources get a HEAD request.
// Results are cached until Refresh.
type Prober struct {
	static fs.FS
	client *resty.Client
	log    *slog.Logger

	mu    sync.RWMutex
	cache map[string]bool
}

// NewProber creates a prober. static holds the files served under /static/.
func NewProber(static fs.FS, timeout time.Duration, log *slog.Logger) *Prober {
	return &Prober{
		static: static,
		client: resty.New().
			SetTimeout(timeout).
			SetRedirectPolicy(resty.FlexibleRedirectPolicy(3)).
			SetHeader("User-Agent", "northwind-website-image-probe/1.0"),
		log:   log.With(logger.Scope("imageload.prober")),
		cache: make(map[string]bool),
	}
}

// Resolve runs src through the fallback chain until it reaches a source that
// loads or the chain is exhausted.
func (p *Prober) Resolve(ctx context.Context, primary, fallback string) State {
	st := New(primary, fallback)
	for !st.Exhausted() && !p.Loads(ctx, st.Src()) {
		st.Fail()
	}
	metrics.ImageResolutions.WithLabelValues(st.Stage().String()).Inc()
	if st.Stage() != StagePrimary {
		p.log.Debug("image fell back",
			slog.String("primary", primary),
			slog.String("stage", st.Stage().String()))
	}
	return st
}

// Loads reports whether src resolves to an image.
func (p *Prober) Loads(ctx context.Context, src string) bool {
	switch {
	case strings.HasPrefix(src, "data:image/"):
		return true
	case strings.HasPrefix(src, staticPrefix):
		return p.loadsStatic(src)
	case isRemote(src):
		p.mu.RLock()
		ok, cached := p.cache[src]
		p.mu.RUnlock()
		if cached {
			return ok
		}
		ok = p.probe(ctx, src)
		p.mu.Lock()
		p.cache[src] = ok
		p.mu.Unlock()
		return ok
	default:
		return false
	}
}

// Refresh re-probes every cached remote source.
func (p *Prober) Refresh(ctx context.Context) error {
	p.mu.RLock()
	srcs := make([]string, 0, len(p.cache))
	for src := range p.cache {
		srcs = append(srcs, src)
	}
	p.mu.RUnlock()

	changed := 0
	for _, src := range srcs {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok := p.probe(ctx, src)
		p.mu.Lock()
		if p.cache[src] != ok {
			changed++
		}
		p.cache[src] = ok
		p.mu.Unlock()
	}

	p.log.Debug("image probe cache refreshed",
		slog.Int("sources", len(srcs)),
		slog.Int("changed", changed))
	return nil
}

func (p *Prober) loadsStatic(src string) bool {
	if p.static == nil {
		return false
	}
	name := strings.TrimPrefix(src, staticPrefix)
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(p.static, name)
	return err == nil && !info.IsDir()
}

func (p *Prober) probe(ctx context.Context, src string) bool {
	resp, err := p.client.R().SetContext(ctx).Head(src)
	if err != nil {
		p.log.Debug("image probe failed", slog.String("src", src), logger.Error(err))
		return false
	}
	if !resp.IsSuccess() {
		p.log.Debug("image probe rejected",
			slog.String("src", src),
			slog.Int("status", resp.StatusCode()))
		return false
	}
	ct := resp.Header().Get("Content-Type")
	return ct == "" || strings.HasPrefix(ct, "image/")
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "https://") || strings.HasPrefix(src, "http://")
}
