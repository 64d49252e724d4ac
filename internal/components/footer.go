package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northwind-studio/website/internal/content"
)

type FooterProps struct {
	SiteName string
	Year     int
	Main     []content.NavLink
	Services []content.NavLink
	Cities   []content.NavLink
}

func footerColumn(title string, links []content.NavLink) g.Node {
	return Div(
		Class("col-span-1"),
		P(Class("font-medium"), g.Text(title)),
		Div(
			Class("flex flex-col space-y-1.5 mt-5 text-base-content/80"),
			g.Group(g.Map(links, func(link content.NavLink) g.Node {
				return A(Class("link-hover"), Href(link.Path), g.Text(link.Label))
			})),
		),
	)
}

func PageFooter(p FooterProps) g.Node {
	return Footer(
		Class("relative mt-16"),

		Div(Class("z-0 absolute inset-0 opacity-20 grainy")),

		Div(
			Class("z-[2] relative pt-8 md:pt-12 2xl:pt-24 xl:pt-16 container"),

			Div(
				Class("gap-6 grid grid-cols-2 md:grid-cols-5"),

				Div(
					Class("col-span-2"),
					Logo(p.SiteName),

					P(
						Class("mt-3 max-sm:text-sm text-base-content/80"),
						g.Text("Websites and local SEO for small businesses. Fixed prices, real people, and sites that bring in customers."),
					),

					Div(
						Class("flex items-center gap-2.5 mt-6 xl:mt-16"),
						A(Class("btn btn-sm btn-circle"), Href("https://www.linkedin.com"), g.Attr("target", "_blank"), g.Attr("rel", "noopener"),
							Icon("lucide--linkedin", "LinkedIn"),
						),
						A(Class("btn btn-sm btn-circle"), Href("https://www.instagram.com"), g.Attr("target", "_blank"), g.Attr("rel", "noopener"),
							Icon("lucide--instagram", "Instagram"),
						),
						A(Class("btn btn-sm btn-circle"), Href("/contact"),
							Icon("lucide--mail", "Email"),
						),
					),
				),

				footerColumn("Company", p.Main),
				footerColumn("Services", p.Services),
				footerColumn("Locations", p.Cities),
			),

			Div(
				Class("flex flex-wrap justify-between items-center gap-3 mt-12 py-6 border-t border-base-300"),
				P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", p.Year, p.SiteName))),
				ThemePicker(),
			),
		),
	)
}
