package handlers

import (
	"bytes"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/northwind-studio/website/internal/metrics"
)

// writePage renders into a buffer first so a render failure can still become
// a clean error response.
func writePage(w http.ResponseWriter, status int, page g.Node) error {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func countRender(key string) {
	metrics.PageRenders.WithLabelValues(key).Inc()
}
