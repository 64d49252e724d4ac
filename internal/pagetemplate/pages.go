package pagetemplate

import (
	"context"
	"fmt"
	"net/http"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northwind-studio/website/internal/components"
	"github.com/northwind-studio/website/internal/content"
)

// Page renders any non-interactive page by key: the hand-built pages and
// every landing-page record.
func (c *Composer) Page(ctx context.Context, key string) (g.Node, error) {
	switch key {
	case content.KeyHome:
		return c.Home(ctx), nil
	case content.KeyAbout:
		return c.About(ctx), nil
	case content.KeyProjects:
		return c.Projects(ctx), nil
	}

	rec, err := c.reg.Page(key)
	if err != nil {
		return nil, err
	}
	return c.Landing(ctx, rec), nil
}

// StaticKeys lists the keys Page can render, hand-built pages first.
func (c *Composer) StaticKeys() []string {
	keys := []string{content.KeyHome, content.KeyAbout, content.KeyProjects}
	for _, rec := range c.reg.Pages() {
		keys = append(keys, rec.Key)
	}
	return keys
}

func (c *Composer) Home(ctx context.Context) g.Node {
	popular, _ := c.reg.MostPopular()
	projects := c.reg.Projects()
	if len(projects) > 3 {
		projects = projects[:3]
	}

	return c.Scaffold(PageMeta{
		Title:       c.site.Name + " | Web Design & Local SEO for Small Businesses",
		Description: "Custom websites and local SEO for small businesses. Fixed prices, fast launches and real support.",
		Path:        "/",
	}, content.KeyHome,
		components.Hero(components.HeroProps{
			Heading:        "Websites That Work",
			Highlight:      "As Hard As You Do",
			Subheading:     "We design fast, beautiful websites for small businesses and make sure the right local customers find them.",
			Image:          c.image(ctx, "/static/images/hero.svg"),
			ImageAlt:       "Website designs by " + c.site.Name,
			CTALabel:       "Get a free quote",
			CTAHref:        c.contactPath(),
			SecondaryLabel: "See our work",
			SecondaryHref:  c.pathOr(content.KeyProjects, "/projects"),
		}),
		Div(Class("container"), components.StatsRow(c.reg.Stats())),
		components.PageSection("features",
			components.SectionHeader("lucide--sparkles", "Everything your website needs to win customers", "Every project combines design, content and search so your site pays for itself."),
			components.FeatureGrid(c.reg.Features()),
		),
		components.PageSection(string(content.SectionPackages),
			components.SectionHeader("lucide--package", "Simple, fixed-price packages",
				fmt.Sprintf("Most clients choose %s. Every package includes post-launch support.", popular.Name)),
			components.PackageGrid(c.reg.Packages(), c.contactPath()),
		),
		components.PageSection("testimonials",
			components.SectionHeader("lucide--heart-handshake", "What our clients say",
				fmt.Sprintf("Rated %.1f out of 5 by the businesses we work with.", c.reg.AverageRating())),
			components.TestimonialGrid(c.reg.Testimonials()),
		),
		components.PageSection("work",
			components.SectionHeader("lucide--layout-grid", "Recent projects", ""),
			c.projectGrid(ctx, projects),
			Div(Class("mt-8 text-center"),
				A(Href(c.pathOr(content.KeyProjects, "/projects")), Class("btn btn-ghost"), g.Text("View all projects"))),
		),
		components.PageSection(string(content.SectionFAQ),
			components.SectionHeader("lucide--circle-help", "Frequently asked questions", ""),
			components.FAQList(c.reg.FAQs()),
		),
		components.CTA(components.CTAProps{
			Heading: "Let's build something that brings in business",
			Body:    "Tell us about your project and get a fixed-price quote within one business day.",
			Href:    c.contactPath(),
		}),
	)
}

func (c *Composer) About(ctx context.Context) g.Node {
	team := c.reg.Team()

	return c.Scaffold(PageMeta{
		Title:       "About Us",
		Description: "Meet the small, senior team behind " + c.site.Name + ".",
		Path:        c.pathOr(content.KeyAbout, "/about"),
	}, content.KeyAbout,
		Div(
			Class("container pt-32 md:pt-40 pb-8 text-center"),
			H1(Class("font-extrabold text-3xl md:text-5xl"), g.Text("A small studio that sweats the details")),
			P(Class("mx-auto mt-5 max-w-2xl text-base-content/80 xl:text-lg"),
				g.Text("We started "+c.site.Name+" to give small businesses the kind of website agencies usually save for big budgets. Every project is led by a senior designer and developer from kickoff to launch.")),
		),
		components.PageSection("team",
			components.SectionHeader("lucide--users", "Meet the team", ""),
			Div(
				Class("gap-6 grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 mt-12"),
				g.Group(g.Map(team, func(m content.TeamMember) g.Node {
					return components.TeamCard(m, c.image(ctx, m.Photo))
				})),
			),
		),
		components.PageSection("values",
			components.SectionHeader("lucide--compass", "How we work", ""),
			components.FeatureGrid(c.reg.Features()),
		),
		components.CTA(components.CTAProps{
			Heading: "Want to work with us?",
			Href:    c.contactPath(),
		}),
	)
}

func (c *Composer) Projects(ctx context.Context) g.Node {
	return c.Scaffold(PageMeta{
		Title:       "Our Work",
		Description: "Websites and SEO campaigns we have built for small businesses.",
		Path:        c.pathOr(content.KeyProjects, "/projects"),
	}, content.KeyProjects,
		Div(
			Class("container pt-32 md:pt-40 pb-4 text-center"),
			H1(Class("font-extrabold text-3xl md:text-5xl"), g.Text("Our work")),
			P(Class("mx-auto mt-5 max-w-2xl text-base-content/80"),
				g.Text("A few of the businesses we have helped grow online.")),
		),
		components.PageSection("projects", c.projectGrid(ctx, c.reg.Projects())),
		components.CTA(components.CTAProps{
			Heading: "Your business could be next",
			Href:    c.contactPath(),
		}),
	)
}

func (c *Composer) projectGrid(ctx context.Context, projects []content.Project) g.Node {
	return Div(
		Class("gap-6 grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 mt-12"),
		g.Group(g.Map(projects, func(p content.Project) g.Node {
			return components.ProjectCard(p, c.image(ctx, p.Image))
		})),
	)
}

// Contact renders the contact page around the current wizard state.
func (c *Composer) Contact(props components.ContactProps) g.Node {
	return c.Scaffold(PageMeta{
		Title:       "Contact Us",
		Description: "Tell us about your project and get a fixed-price quote within one business day.",
		Path:        c.contactPath(),
	}, content.KeyContact,
		Div(
			Class("container pt-32 md:pt-40 pb-16"),
			Div(
				Class("text-center mb-10"),
				H1(Class("font-extrabold text-3xl md:text-5xl"), g.Text("Let's talk about your project")),
				P(Class("mx-auto mt-4 max-w-xl text-base-content/80"),
					g.Text("Three quick steps. We reply within one business day.")),
			),
			components.ContactWizard(props),
		),
	)
}

// Error renders an error page. It is never indexed.
func (c *Composer) Error(status int, message string) g.Node {
	title := http.StatusText(status)
	if status == http.StatusNotFound {
		title = "We couldn't find that page"
	}
	return c.Scaffold(PageMeta{Title: title, NoIndex: true}, "",
		components.ErrorContent(components.ErrorProps{
			Status:  status,
			Title:   title,
			Message: message,
		}),
	)
}

func (c *Composer) pathOr(key, fallback string) string {
	if p, ok := c.reg.PathFor(key); ok {
		return p
	}
	return fallback
}
