// Package pagetemplate composes pages from the content registry. Landing
// pages are driven entirely by their page record: the record picks sections
// and supplies copy, the composer fixes their order and fills shared sections
// from the registry.
package pagetemplate

import (
	"context"
	"io"
	"log/slog"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/northwind-studio/website/internal/components"
	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/imageload"
	"github.com/northwind-studio/website/pkg/logger"
)

// ImageResolver settles an image source against its fallback.
type ImageResolver interface {
	Resolve(ctx context.Context, primary, fallback string) imageload.State
}

// Site holds the site-wide values every page needs.
type Site struct {
	Name        string
	BaseURL     string
	Placeholder string
	Year        int
}

// PageMeta is the per-page head metadata.
type PageMeta struct {
	Title       string
	Description string
	Path        string
	OGImage     string
	NoIndex     bool
}

type Composer struct {
	reg    *content.Registry
	images ImageResolver
	site   Site
	log    *slog.Logger
}

func New(reg *content.Registry, images ImageResolver, site Site, log *slog.Logger) *Composer {
	return &Composer{
		reg:    reg,
		images: images,
		site:   site,
		log:    log.With(logger.Scope("pagetemplate")),
	}
}

func (c *Composer) Registry() *content.Registry { return c.reg }

// Render writes a composed page.
func Render(w io.Writer, page g.Node) error {
	return page.Render(w)
}

// Compose returns the record's sections in canonical order regardless of the
// order they were declared in.
func (c *Composer) Compose(ctx context.Context, rec content.PageRecord) []g.Node {
	kinds := rec.Ordered()
	nodes := make([]g.Node, 0, len(kinds))
	for _, kind := range kinds {
		nodes = append(nodes, c.section(ctx, rec, kind, rec.Sections[kind]))
	}
	return nodes
}

// Landing renders a city or service page from its record.
func (c *Composer) Landing(ctx context.Context, rec content.PageRecord) g.Node {
	meta := PageMeta{
		Title:       rec.Title,
		Description: rec.Description,
		Path:        rec.Path,
	}
	if hero, ok := rec.Sections[content.SectionHero]; ok && strings.HasPrefix(hero.Image, "/static/") {
		meta.OGImage = hero.Image
	}
	return c.Scaffold(meta, rec.Key, c.Compose(ctx, rec)...)
}

// Scaffold wraps page content in the shared layout: head, background,
// navigation and footer. current is the key of the page being rendered.
func (c *Composer) Scaffold(meta PageMeta, current string, nodes ...g.Node) g.Node {
	title := meta.Title
	if title == "" {
		title = c.site.Name
	} else if !strings.Contains(title, c.site.Name) {
		title = title + " | " + c.site.Name
	}

	canonical := ""
	if c.site.BaseURL != "" && meta.Path != "" {
		canonical = strings.TrimRight(c.site.BaseURL, "/") + meta.Path
	}

	return components.Layout(
		components.PageConfig{
			Title:       title,
			Description: meta.Description,
			OGImage:     meta.OGImage,
			Canonical:   canonical,
			NoIndex:     meta.NoIndex,
		},
		components.Background(),
		components.Topbar(c.navProps(current)),
		g.El("main", g.Attr("id", "main"), g.Group(nodes)),
		components.PageFooter(components.FooterProps{
			SiteName: c.site.Name,
			Year:     c.site.Year,
			Main:     c.reg.NavLinksByCategory(content.CategoryMain),
			Services: c.reg.NavLinksByCategory(content.CategoryService),
			Cities:   c.cityLinks(),
		}),
	)
}

func (c *Composer) navProps(current string) components.NavProps {
	return components.NavProps{
		SiteName: c.site.Name,
		Main:     c.reg.NavLinksByCategory(content.CategoryMain),
		Services: c.reg.NavLinksByCategory(content.CategoryService),
		Current:  current,
	}
}

func (c *Composer) cityLinks() []content.NavLink {
	cities := c.reg.CityPages()
	links := make([]content.NavLink, len(cities))
	for i, p := range cities {
		label := p.Label
		if label == "" {
			label = p.City
		}
		links[i] = content.NavLink{Key: p.Key, Label: label, Path: p.Path, Category: content.CategoryService}
	}
	return links
}

func (c *Composer) image(ctx context.Context, src string) imageload.State {
	return c.images.Resolve(ctx, src, c.site.Placeholder)
}

// link returns href when it points at a page the site serves, otherwise the
// contact page.
func (c *Composer) link(href string) string {
	contact, _ := c.reg.PathFor(content.KeyContact)
	if href == "" {
		return contact
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
		return href
	}
	if !c.reg.IsValidTarget(href) {
		c.log.Warn("page links to unknown target", slog.String("href", href))
		return contact
	}
	return href
}

func (c *Composer) contactPath() string {
	p, _ := c.reg.PathFor(content.KeyContact)
	return p
}

func or(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
