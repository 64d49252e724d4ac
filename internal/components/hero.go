package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northwind-studio/website/internal/imageload"
)

type HeroProps struct {
	Badge          string
	Heading        string
	Highlight      string
	Subheading     string
	Image          imageload.State
	ImageAlt       string
	CTALabel       string
	CTAHref        string
	SecondaryLabel string
	SecondaryHref  string
}

func Hero(p HeroProps) g.Node {
	return g.Group([]g.Node{
		Div(
			Class("relative z-2 overflow-hidden"),
			ID("hero"),

			Div(
				Class("container grid items-center gap-10 pt-28 md:pt-36 xl:pt-44 pb-16 md:pb-24 lg:grid-cols-2"),
				Div(
					Class("max-lg:text-center"),

					g.If(p.Badge != "", Div(
						Class("inline-flex items-center rounded-full border border-base-300 bg-base-100/60 py-0.5 ps-1 pe-3 text-sm"),
						Span(
							Class("inline-flex items-center bg-primary/10 px-1.5 py-0.5 border border-primary/10 rounded-full text-primary me-2"),
							Icon("lucide--map-pin size-3", ""),
						),
						g.Text(p.Badge),
					)),

					H1(
						Class("mt-3 text-3xl leading-tight font-extrabold tracking-[-0.5px] md:text-4xl xl:text-5xl"),
						g.Text(p.Heading),
						g.If(p.Highlight != "", g.Group([]g.Node{
							Br(),
							Span(
								Class("from-primary via-secondary to-accent bg-linear-to-r bg-clip-text text-transparent"),
								g.Text(p.Highlight),
							),
						})),
					),

					g.If(p.Subheading != "", P(
						Class("text-base-content/80 mt-5 xl:text-lg"),
						g.Text(p.Subheading),
					)),

					Div(
						Class("mt-8 inline-flex flex-wrap justify-center gap-3"),
						g.If(p.CTAHref != "", A(
							Href(p.CTAHref),
							Class("btn btn-primary shadow-primary/20 shadow-xl"),
							Icon("lucide--arrow-right size-4", ""),
							g.Text(p.CTALabel),
						)),
						g.If(p.SecondaryHref != "", A(
							Href(p.SecondaryHref),
							Class("btn btn-ghost"),
							g.Text(p.SecondaryLabel),
						)),
					),
				),

				g.If(p.Image.Primary != "", Div(
					Class("relative"),
					Div(Class("absolute -inset-4 -z-1 rounded-[2rem] bg-linear-to-tr from-primary/30 to-secondary/30 blur-2xl")),
					FallbackImage(p.Image, p.ImageAlt, "w-full aspect-[3/2] rounded-box object-cover shadow-2xl"),
				)),
			),
		),

		Div(Class("from-primary via-secondary to-accent mb-8 h-1 w-full bg-linear-to-r md:mb-12")),
	})
}
