package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northwind-studio/website/internal/content"
)

// NavProps carries the navigation selection. Current is the key of the page
// being rendered; it is passed down explicitly rather than looked up.
type NavProps struct {
	SiteName string
	Main     []content.NavLink
	Services []content.NavLink
	Current  string
}

func navItem(link content.NavLink, current string) g.Node {
	active := link.Key == current
	return Li(
		A(
			Href(link.Path),
			g.If(active, Class("menu-active")),
			g.If(active, g.Attr("aria-current", "page")),
			g.Text(link.Label),
		),
	)
}

func servicesActive(p NavProps) bool {
	for _, link := range p.Services {
		if link.Key == p.Current {
			return true
		}
	}
	return false
}

func Topbar(p NavProps) g.Node {
	return Div(
		g.Attr("data-scrolling", ""),
		g.Attr("data-at-top", "true"),
		Class("group fixed inset-x-0 z-[60] flex justify-center transition-[top] duration-500 data-[scrolling=down]:-top-full sm:container [&:not([data-scrolling=down])]:top-0 [&:not([data-scrolling=down])]:sm:top-4"),

		Nav(
			g.Attr("aria-label", "Main"),
			Class("flex justify-between items-center group-data-[at-top=false]:bg-base-100 group-data-[at-top=false]:shadow px-3 sm:px-6 py-3 lg:py-1.5 sm:rounded-full w-full transition-all duration-500"),

			Div(
				Class("flex items-center gap-2"),

				Div(
					Class("lg:hidden flex-none"),
					Div(
						Class("drawer"),
						Input(
							ID("site-menu-drawer"),
							Type("checkbox"),
							Class("drawer-toggle"),
						),
						Div(
							Class("drawer-content"),
							Label(
								g.Attr("for", "site-menu-drawer"),
								g.Attr("aria-label", "open menu"),
								Class("btn drawer-button btn-ghost btn-square btn-sm"),
								Icon("lucide--menu size-4.5", ""),
							),
						),
						Div(
							Class("z-[50] drawer-side"),
							Label(
								g.Attr("for", "site-menu-drawer"),
								g.Attr("aria-label", "close sidebar"),
								Class("drawer-overlay"),
							),
							Ul(
								Class("bg-base-100 p-4 w-80 min-h-full text-base-content menu"),
								g.Group(g.Map(p.Main, func(link content.NavLink) g.Node {
									return navItem(link, p.Current)
								})),
								Li(Class("menu-title mt-4"), g.Text("Services")),
								g.Group(g.Map(p.Services, func(link content.NavLink) g.Node {
									return navItem(link, p.Current)
								})),
							),
						),
					),
				),

				A(
					Href("/"),
					Logo(p.SiteName),
				),
			),

			Ul(
				Class("hidden lg:inline-flex gap-2 px-0 menu menu-horizontal"),
				g.Group(g.Map(p.Main, func(link content.NavLink) g.Node {
					return navItem(link, p.Current)
				})),
				Li(
					Details(
						Summary(
							g.If(servicesActive(p), Class("menu-active")),
							g.Text("Services"),
						),
						Ul(
							Class("bg-base-100 rounded-box w-48 p-2 shadow"),
							g.Group(g.Map(p.Services, func(link content.NavLink) g.Node {
								return navItem(link, p.Current)
							})),
						),
					),
				),
			),

			Div(
				Class("inline-flex items-center gap-3"),

				ThemePicker(),

				A(
					Href("/contact"),
					Class("gap-2 bg-linear-to-r from-primary to-secondary border-0 text-primary-content text-sm btn btn-sm max-sm:btn-square"),
					Icon("lucide--message-square size-4", ""),
					Span(Class("max-sm:hidden"), g.Text("Get a quote")),
				),
			),
		),
	)
}
