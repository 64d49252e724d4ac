package pagetemplate

import (
	"context"
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northwind-studio/website/internal/components"
	"github.com/northwind-studio/website/internal/content"
)

// sectionID is the fragment id for a section, so "#packages" works on every
// page that lists packages.
func sectionID(kind content.SectionKind) string {
	return string(kind)
}

func (c *Composer) section(ctx context.Context, rec content.PageRecord, kind content.SectionKind, sc content.SectionCopy) g.Node {
	switch kind {
	case content.SectionHero:
		return c.hero(ctx, rec, sc)
	case content.SectionTrust:
		return c.trust(rec, sc)
	case content.SectionValue:
		return c.items(kind, "lucide--sparkles", or(sc.Heading, "Why work with us"), sc, true)
	case content.SectionIndustries:
		return c.items(kind, "lucide--briefcase", or(sc.Heading, "Industries we serve"), sc, false)
	case content.SectionLocalSEO:
		return c.localSEO(rec, sc)
	case content.SectionPackages:
		return c.packages(rec, sc)
	case content.SectionServiceArea:
		return c.serviceArea(rec, sc)
	case content.SectionDifferentiators:
		return c.items(kind, "lucide--award", or(sc.Heading, "What makes us different"), sc, false)
	case content.SectionFAQ:
		return c.faq(sc)
	case content.SectionCTA:
		return c.cta(rec, sc)
	default:
		return nil
	}
}

func (c *Composer) hero(ctx context.Context, rec content.PageRecord, sc content.SectionCopy) g.Node {
	badge := ""
	if rec.Kind == content.PageCity && rec.City != "" {
		badge = "Local to " + rec.City
		if rec.Region != "" {
			badge += ", " + rec.Region
		}
	}

	return components.Hero(components.HeroProps{
		Badge:          badge,
		Heading:        or(sc.Heading, rec.Label),
		Subheading:     sc.Subheading,
		Image:          c.image(ctx, sc.Image),
		ImageAlt:       or(sc.Heading, rec.Label),
		CTALabel:       or(sc.CTALabel, "Get a free quote"),
		CTAHref:        c.link(sc.CTAHref),
		SecondaryLabel: "View packages",
		SecondaryHref:  c.secondaryHref(rec, sc),
	})
}

// secondaryHref points the hero's second button at the page's package
// listing when there is one and the primary button doesn't already.
func (c *Composer) secondaryHref(rec content.PageRecord, sc content.SectionCopy) string {
	if !rec.Has(content.SectionPackages) || sc.CTAHref == "#"+sectionID(content.SectionPackages) {
		return ""
	}
	return "#" + sectionID(content.SectionPackages)
}

func (c *Composer) trust(rec content.PageRecord, sc content.SectionCopy) g.Node {
	stats := sc.Stats
	if len(stats) == 0 {
		stats = c.reg.Stats()
	}
	testimonials := c.reg.Testimonials()

	lead := sc.Subheading
	if lead == "" && len(testimonials) > 0 {
		lead = fmt.Sprintf("Rated %.1f out of 5 by %d clients.", c.reg.AverageRating(), len(testimonials))
	}

	return components.PageSection(sectionID(content.SectionTrust),
		components.SectionHeader("lucide--heart-handshake", or(sc.Heading, "Trusted by local businesses"), lead),
		components.StatsRow(stats),
		components.TestimonialGrid(testimonials),
	)
}

func (c *Composer) items(kind content.SectionKind, icon, heading string, sc content.SectionCopy, featuresFallback bool) g.Node {
	var body g.Node
	switch {
	case len(sc.Items) > 0:
		body = components.ItemGrid(sc.Items)
	case featuresFallback:
		body = components.FeatureGrid(c.reg.Features())
	}

	return components.PageSection(sectionID(kind),
		components.SectionHeader(icon, heading, or(sc.Subheading, sc.Body)),
		body,
	)
}

func (c *Composer) localSEO(rec content.PageRecord, sc content.SectionCopy) g.Node {
	heading := sc.Heading
	if heading == "" {
		heading = "Get found by nearby customers"
		if rec.City != "" {
			heading = "Get found across " + rec.City
		}
	}

	return components.PageSection(sectionID(content.SectionLocalSEO),
		Div(
			Class("card border border-base-300 bg-base-200/40"),
			Div(
				Class("card-body items-center text-center md:px-16"),
				components.IconBadge("lucide--map-pinned", "secondary"),
				H2(Class("mt-2 font-semibold text-2xl sm:text-3xl"), g.Text(heading)),
				g.If(sc.Body != "", P(Class("max-w-3xl text-base-content/80"), g.Text(sc.Body))),
				g.If(len(sc.Items) > 0, components.ItemGrid(sc.Items)),
			),
		),
	)
}

func (c *Composer) packages(rec content.PageRecord, sc content.SectionCopy) g.Node {
	heading := sc.Heading
	if heading == "" {
		heading = "Simple, fixed-price packages"
	}

	return components.PageSection(sectionID(content.SectionPackages),
		components.SectionHeader("lucide--package", heading, or(sc.Subheading, "Every package includes hosting setup, training and post-launch support.")),
		components.PackageGrid(c.reg.PackagesByID(sc.Packages), c.contactPath()),
	)
}

func (c *Composer) serviceArea(rec content.PageRecord, sc content.SectionCopy) g.Node {
	heading := sc.Heading
	if heading == "" {
		heading = "Areas we serve"
		if rec.City != "" {
			heading = "Serving " + rec.City + " and nearby"
		}
	}

	return components.PageSection(sectionID(content.SectionServiceArea),
		components.SectionHeader("lucide--map", heading, sc.Body),
		g.If(len(sc.Areas) > 0, components.AreaList(sc.Areas)),
	)
}

func (c *Composer) faq(sc content.SectionCopy) g.Node {
	faqs := sc.FAQs
	if len(faqs) == 0 {
		faqs = c.reg.FAQs()
	}

	return components.PageSection(sectionID(content.SectionFAQ),
		components.SectionHeader("lucide--circle-help", or(sc.Heading, "Frequently asked questions"), sc.Subheading),
		components.FAQList(faqs),
	)
}

func (c *Composer) cta(rec content.PageRecord, sc content.SectionCopy) g.Node {
	heading := sc.Heading
	if heading == "" {
		heading = "Ready to grow your business?"
	}

	return components.PageSection(sectionID(content.SectionCTA),
		components.CTA(components.CTAProps{
			Heading: heading,
			Body:    sc.Body,
			Label:   sc.CTALabel,
			Href:    c.link(sc.CTAHref),
			Benefits: []string{
				"Fixed-price quote within one business day",
				"No lock-in contracts",
				"You own everything we build",
			},
		}),
	)
}
