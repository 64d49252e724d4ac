// Package export renders the site to plain files so it can be served from
// any static host. The contact wizard needs a server and is not exported.
package export

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/pagetemplate"
	"github.com/northwind-studio/website/pkg/logger"
)

// Result summarises an export run.
type Result struct {
	Pages  []string
	Assets int
}

type Exporter struct {
	composer *pagetemplate.Composer
	static   fs.FS
	baseURL  string
	log      *slog.Logger
}

func New(composer *pagetemplate.Composer, static fs.FS, baseURL string, log *slog.Logger) *Exporter {
	return &Exporter{
		composer: composer,
		static:   static,
		baseURL:  strings.TrimRight(baseURL, "/"),
		log:      log.With(logger.Scope("export")),
	}
}

// Run writes every static page, the sitemap and the static assets under dir.
func (e *Exporter) Run(ctx context.Context, dir string) (Result, error) {
	var res Result

	for _, key := range e.composer.StaticKeys() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		urlPath := e.pathFor(key)
		if err := e.writePage(ctx, dir, key, urlPath); err != nil {
			return res, err
		}
		res.Pages = append(res.Pages, urlPath)
	}

	if err := e.writeSitemap(dir, res.Pages); err != nil {
		return res, err
	}

	n, err := copyFS(e.static, filepath.Join(dir, "static"))
	if err != nil {
		return res, fmt.Errorf("copy static assets: %w", err)
	}
	res.Assets = n

	e.log.Info("site exported",
		slog.String("dir", dir),
		slog.Int("pages", len(res.Pages)),
		slog.Int("assets", n))
	return res, nil
}

func (e *Exporter) pathFor(key string) string {
	reg := e.composer.Registry()
	if key == content.KeyHome {
		return "/"
	}
	if rec, err := reg.Page(key); err == nil {
		return rec.Path
	}
	if p, ok := reg.PathFor(key); ok {
		return p
	}
	return "/" + key
}

func (e *Exporter) writePage(ctx context.Context, dir, key, urlPath string) error {
	page, err := e.composer.Page(ctx, key)
	if err != nil {
		return fmt.Errorf("compose %s: %w", key, err)
	}
	var buf bytes.Buffer
	if err := pagetemplate.Render(&buf, page); err != nil {
		return fmt.Errorf("render %s: %w", key, err)
	}
	return writeFile(OutputPath(dir, urlPath), buf.Bytes())
}

// OutputPath maps a URL path to the index.html that serves it under dir.
func OutputPath(dir, urlPath string) string {
	clean := strings.Trim(path.Clean("/"+urlPath), "/")
	if clean == "" {
		return filepath.Join(dir, "index.html")
	}
	return filepath.Join(dir, filepath.FromSlash(clean), "index.html")
}

type urlSet struct {
	XMLName xml.Name  `xml:"urlset"`
	XMLNS   string    `xml:"xmlns,attr"`
	URLs    []siteURL `xml:"url"`
}

type siteURL struct {
	Loc string `xml:"loc"`
}

func (e *Exporter) writeSitemap(dir string, paths []string) error {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range paths {
		set.URLs = append(set.URLs, siteURL{Loc: e.baseURL + p})
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return writeFile(filepath.Join(dir, "sitemap.xml"), append([]byte(xml.Header), out...))
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func copyFS(src fs.FS, dst string) (int, error) {
	n := 0
	err := fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		in, err := src.Open(name)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, in); err != nil {
			out.Close()
			return err
		}
		n++
		return out.Close()
	})
	return n, err
}
