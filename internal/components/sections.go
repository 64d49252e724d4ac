package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northwind-studio/website/internal/content"
)

func StatsRow(stats []content.Stat) g.Node {
	return Div(
		Class("stats stats-vertical sm:stats-horizontal w-full mt-8 border border-base-300 bg-base-100"),
		g.Group(g.Map(stats, func(s content.Stat) g.Node {
			return Div(
				Class("stat place-items-center"),
				Div(Class("stat-value text-primary"), g.Text(s.Value)),
				Div(Class("stat-desc text-sm"), g.Text(s.Label)),
			)
		})),
	)
}

func FAQList(faqs []content.FAQ) g.Node {
	return Div(
		Class("mx-auto mt-10 max-w-3xl space-y-3"),
		g.Group(g.Map(faqs, func(f content.FAQ) g.Node {
			return Details(
				Class("collapse collapse-arrow border border-base-300 bg-base-100"),
				Summary(Class("collapse-title font-medium"), g.Text(f.Question)),
				Div(
					Class("collapse-content text-sm text-base-content/80"),
					P(g.Text(f.Answer)),
				),
			)
		})),
	)
}

func AreaList(areas []string) g.Node {
	return Ul(
		Class("mt-8 flex flex-wrap justify-center gap-2"),
		g.Group(g.Map(areas, func(a string) g.Node {
			return Li(
				Class("badge badge-lg badge-outline gap-1"),
				Icon("lucide--map-pin size-3.5", ""),
				g.Text(a),
			)
		})),
	)
}

type CTAProps struct {
	Heading  string
	Body     string
	Label    string
	Href     string
	Benefits []string
}

func CTA(p CTAProps) g.Node {
	if p.Label == "" {
		p.Label = "Start your project"
	}
	if p.Href == "" {
		p.Href = "/contact"
	}

	return Div(
		Class("sm:px-16 container"),
		Div(
			Class("relative py-8 md:py-12 xl:py-16 2xl:py-24 sm:rounded-[60px] overflow-hidden"),

			Div(Class("max-sm:hidden -bottom-40 absolute bg-secondary blur-[180px] w-72 h-64 start-16")),
			Div(Class("max-sm:hidden -bottom-40 absolute bg-accent blur-[180px] w-72 h-64 -translate-x-1/2 start-1/2")),
			Div(Class("max-sm:hidden -bottom-40 absolute bg-primary blur-[180px] w-72 h-64 end-16")),
			Div(Class("max-sm:hidden z-0 absolute inset-0 opacity-20 grainy")),

			Div(
				Class("relative"),
				Div(
					Class("text-center"),
					Div(
						Class("inline-flex items-center bg-linear-to-tr from-secondary to-accent p-2.5 rounded-full text-primary-content"),
						Icon("lucide--rocket size-5", "Launch"),
					),
					H2(Class("mt-4 font-bold text-xl sm:text-2xl lg:text-4xl"), g.Text(p.Heading)),
					g.If(p.Body != "", P(Class("inline-block mt-3 max-w-2xl max-sm:text-sm"), g.Text(p.Body))),
				),

				g.If(len(p.Benefits) > 0, Div(
					Class("flex justify-center mt-6 xl:mt-8"),
					Ul(
						Class("space-y-3 max-w-md text-center"),
						g.Group(g.Map(p.Benefits, func(benefit string) g.Node {
							return Li(
								Class("flex items-center gap-2 max-sm:text-sm"),
								Icon("lucide--badge-check size-6 text-success", "Check"),
								g.Text(benefit),
							)
						})),
					),
				)),

				Div(
					Class("flex justify-center items-center gap-3 sm:gap-5 mt-6 xl:mt-8"),
					A(
						Href(p.Href),
						Class("group relative gap-3 bg-linear-to-r from-secondary to-accent border-0 text-primary-content text-base btn"),
						Icon("lucide--send size-4 sm:size-5", ""),
						g.Text(p.Label),
					),
				),
			),
		),
	)
}
