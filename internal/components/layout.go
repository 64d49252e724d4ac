package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	ThemeLight = "northwind"
	ThemeDark  = "northwind-dark"
)

type PageConfig struct {
	Title       string
	Description string
	Theme       string
	OGImage     string
	Canonical   string
	NoIndex     bool
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Theme == "" {
		config.Theme = ThemeLight
	}

	if config.Title == "" {
		config.Title = "Northwind Studio | Web Design for Small Businesses"
	}

	if config.Description == "" {
		config.Description = "Custom websites, local SEO and fixed pricing for small businesses."
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", config.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				g.If(config.NoIndex, Meta(Name("robots"), Content("noindex"))),
				g.If(config.Canonical != "", Link(Rel("canonical"), Href(config.Canonical))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Link(Rel("icon"), Type("image/svg+xml"), Href("/static/images/favicon.svg")),

				Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/daisyui@5")),
				Script(Src("https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				// must load before any <img onerror> can fire
				Script(Src("/static/js/image-fallback.js")),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/theme.js")),
				Script(Type("module"), Src("/static/js/topbar-scroll.js")),
			),
		),
	})
}

// Background is the decorative layer behind every page.
func Background() g.Node {
	return Div(
		Class("pointer-events-none fixed inset-0 -z-10 overflow-hidden"),
		g.Attr("aria-hidden", "true"),
		Div(Class("absolute -top-40 -start-32 size-[28rem] rounded-full bg-primary/20 blur-[140px]")),
		Div(Class("absolute top-1/3 -end-40 size-[32rem] rounded-full bg-secondary/15 blur-[160px]")),
		Div(Class("absolute bottom-0 start-1/3 size-[24rem] rounded-full bg-accent/10 blur-[140px]")),
		Div(Class("absolute inset-0 opacity-20 grainy")),
	)
}
