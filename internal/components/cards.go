package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/imageload"
)

func PackageCard(p content.ServicePackage, ctaHref string) g.Node {
	border := "border-base-300"
	if p.Popular {
		border = fmt.Sprintf("border-%s shadow-xl shadow-%s/10", p.Color, p.Color)
	}

	return Div(
		Class("relative card border-2 bg-base-100 "+border),
		g.If(p.Popular, Span(
			Class(fmt.Sprintf("badge badge-%s absolute -top-3 start-1/2 -translate-x-1/2", p.Color)),
			g.Text("Most popular"),
		)),
		Div(
			Class("card-body"),
			H3(Class("font-semibold text-xl"), g.Text(p.Name)),
			P(Class("text-sm text-base-content/70"), g.Text(p.Description)),
			P(
				Class("mt-4"),
				Span(Class(fmt.Sprintf("font-extrabold text-4xl text-%s", p.Color)), g.Text(p.Price)),
			),
			P(
				Class("text-sm text-base-content/60"),
				Icon("lucide--clock size-3.5", ""),
				g.Text(" Delivered in "+p.Delivery),
			),
			Ul(
				Class("mt-4 space-y-2 text-sm"),
				g.Group(g.Map(p.Features, func(f string) g.Node {
					return Li(
						Class("flex items-start gap-2"),
						Icon("lucide--check size-4 text-success mt-0.5", ""),
						g.Text(f),
					)
				})),
			),
			Div(
				Class("card-actions mt-6"),
				A(
					Href(ctaHref+"?package="+p.ID),
					Class(fmt.Sprintf("btn btn-block %s", packageButton(p))),
					g.Text("Choose "+p.Name),
				),
			),
		),
	)
}

func packageButton(p content.ServicePackage) string {
	if p.Popular {
		return "btn-" + p.Color
	}
	return "btn-outline"
}

func PackageGrid(packages []content.ServicePackage, ctaHref string) g.Node {
	return Div(
		Class("gap-6 2xl:gap-8 grid grid-cols-1 md:grid-cols-3 mt-12 items-stretch"),
		g.Group(g.Map(packages, func(p content.ServicePackage) g.Node {
			return PackageCard(p, ctaHref)
		})),
	)
}

// Stars renders a 1-5 rating; out-of-range values are clamped.
func Stars(rating int) g.Node {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	stars := make([]g.Node, 0, 5)
	for i := 1; i <= 5; i++ {
		color := "text-base-300"
		if i <= rating {
			color = "text-warning"
		}
		stars = append(stars, Icon("lucide--star size-4 "+color, ""))
	}
	return Div(
		Class("flex gap-0.5"),
		g.Attr("role", "img"),
		g.Attr("aria-label", fmt.Sprintf("%d out of 5 stars", rating)),
		g.Group(stars),
	)
}

func TestimonialCard(t content.Testimonial) g.Node {
	return Figure(
		Class("card border border-base-300 bg-base-100"),
		Div(
			Class("card-body"),
			Stars(t.Rating),
			P(Class("mt-3 text-base-content/80 leading-relaxed"), g.Text("“"+t.Content+"”")),
			FigCaption(
				Class("mt-4 flex items-center gap-3"),
				Div(
					Class("avatar avatar-placeholder"),
					Div(
						Class("bg-primary/10 text-primary w-10 rounded-full"),
						Span(g.Text(initials(t.Author))),
					),
				),
				Div(
					P(Class("font-medium"), g.Text(t.Author)),
					P(Class("text-sm text-base-content/60"), g.Text(t.Role+", "+t.Company)),
				),
			),
		),
	)
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(part[:1]))
		if b.Len() == 2 {
			break
		}
	}
	return b.String()
}

func TestimonialGrid(testimonials []content.Testimonial) g.Node {
	return Div(
		Class("gap-6 grid grid-cols-1 md:grid-cols-2 mt-12"),
		g.Group(g.Map(testimonials, TestimonialCard)),
	)
}

func TeamCard(m content.TeamMember, photo imageload.State) g.Node {
	return Div(
		Class("card border border-base-300 bg-base-100 overflow-hidden"),
		Figure(FallbackImage(photo, m.Name, "aspect-square w-full object-cover")),
		Div(
			Class("card-body"),
			H3(Class("font-semibold text-lg"), g.Text(m.Name)),
			P(Class("text-sm text-primary"), g.Text(m.Role)),
			P(Class("mt-2 text-sm text-base-content/80"), g.Text(m.Bio)),
		),
	)
}

func ProjectCard(p content.Project, image imageload.State) g.Node {
	return Div(
		Class("card border border-base-300 bg-base-100 overflow-hidden hover:border-primary/50 transition-all"),
		Figure(FallbackImage(image, p.Title, "aspect-[3/2] w-full object-cover")),
		Div(
			Class("card-body"),
			Div(
				Class("flex items-start justify-between gap-2"),
				Div(
					H3(Class("font-semibold text-lg"), g.Text(p.Title)),
					P(Class("text-sm text-base-content/60"), g.Text(p.Client)),
				),
				Span(Class("badge badge-secondary badge-sm"), g.Text(p.Category)),
			),
			P(Class("mt-3 text-sm text-base-content/80"), g.Text(p.Summary)),
			g.If(len(p.Results) > 0, Ul(
				Class("mt-3 space-y-1 text-sm"),
				g.Group(g.Map(p.Results, func(r string) g.Node {
					return Li(
						Class("flex items-start gap-2"),
						Icon("lucide--trending-up size-4 text-success mt-0.5", ""),
						g.Text(r),
					)
				})),
			)),
		),
	)
}

func FeatureCard(f content.Feature) g.Node {
	return Div(
		Class("hover:bg-base-200/40 border border-base-300 hover:border-base-300/60 transition-all duration-300 card"),
		Div(
			Class("card-body"),
			IconBadge(f.Icon, f.Color),
			H3(Class("mt-4 font-semibold text-xl"), g.Text(f.Title)),
			P(Class("mt-2 text-sm text-base-content/80 leading-relaxed"), g.Text(f.Description)),
		),
	)
}

func FeatureGrid(features []content.Feature) g.Node {
	return Div(
		Class("gap-6 2xl:gap-8 grid grid-cols-1 md:grid-cols-3 mt-12 2xl:mt-24 xl:mt-16"),
		g.Group(g.Map(features, FeatureCard)),
	)
}

// ItemGrid renders titled blurbs; items without an icon get a numbered card.
func ItemGrid(items []content.Item) g.Node {
	cols := "md:grid-cols-3"
	if len(items) == 2 || len(items) == 4 {
		cols = "md:grid-cols-2"
	}
	return Div(
		Class("gap-6 grid grid-cols-1 mt-12 "+cols),
		g.Group(g.Map(items, func(it content.Item) g.Node {
			return Div(
				Class("card border border-base-300 bg-base-100"),
				Div(
					Class("card-body"),
					g.If(it.Icon != "", IconBadge(it.Icon, "primary")),
					H3(Class("font-semibold text-lg"), g.Text(it.Title)),
					P(Class("text-sm text-base-content/80 leading-relaxed"), g.Text(it.Body)),
				),
			)
		})),
	)
}
