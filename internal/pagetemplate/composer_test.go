package pagetemplate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/northwind-studio/website/internal/components"
	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/imageload"
	"github.com/northwind-studio/website/internal/wizard"
	"github.com/northwind-studio/website/pkg/logger"
)

// stubImages fails every source listed in broken.
type stubImages struct {
	broken map[string]bool
}

func (s stubImages) Resolve(ctx context.Context, primary, fallback string) imageload.State {
	st := imageload.New(primary, fallback)
	for !st.Exhausted() && s.broken[st.Src()] {
		st.Fail()
	}
	return st
}

func newComposer(t *testing.T, reg *content.Registry, images ImageResolver) *Composer {
	t.Helper()
	if reg == nil {
		reg = content.MustLoad()
	}
	if images == nil {
		images = stubImages{}
	}
	return New(reg, images, Site{
		Name:        "Northwind Studio",
		BaseURL:     "https://northwind.studio",
		Placeholder: "/static/images/placeholder.svg",
		Year:        2026,
	}, logger.Nop())
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Render(&b, n))
	return b.String()
}

func renderAll(t *testing.T, nodes []g.Node) string {
	return render(t, g.Group(nodes))
}

func TestComposeCanonicalOrder(t *testing.T) {
	c := newComposer(t, nil, nil)
	rec := content.PageRecord{
		Key:  "order",
		Path: "/order",
		Kind: content.PageService,
		Sections: map[content.SectionKind]content.SectionCopy{
			content.SectionCTA:         {Heading: "cta-heading"},
			content.SectionFAQ:         {Heading: "faq-heading"},
			content.SectionPackages:    {Heading: "packages-heading"},
			content.SectionHero:        {Heading: "hero-heading"},
			content.SectionServiceArea: {Heading: "area-heading"},
			content.SectionValue:       {Heading: "value-heading"},
		},
	}

	nodes := c.Compose(context.Background(), rec)
	require.Len(t, nodes, 6)

	html := renderAll(t, nodes)
	order := []string{"hero-heading", "value-heading", "packages-heading", "area-heading", "faq-heading", "cta-heading"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(html, marker)
		require.NotEqual(t, -1, idx, marker)
		assert.Greater(t, idx, last, "%s out of order", marker)
		last = idx
	}
}

func TestComposeOnlySelectedSections(t *testing.T) {
	c := newComposer(t, nil, nil)
	rec := content.PageRecord{
		Key:  "minimal",
		Path: "/minimal",
		Kind: content.PageService,
		Sections: map[content.SectionKind]content.SectionCopy{
			content.SectionHero: {Heading: "Just a hero"},
		},
	}

	html := renderAll(t, c.Compose(context.Background(), rec))
	assert.Contains(t, html, "Just a hero")
	assert.NotContains(t, html, `id="faq"`)
	assert.NotContains(t, html, `id="packages"`)
	assert.NotContains(t, html, "View packages", "no package link without a package section")
}

func TestPackagesComeFromRegistry(t *testing.T) {
	c := newComposer(t, nil, nil)
	rec := content.PageRecord{
		Key:  "subset",
		Path: "/subset",
		Kind: content.PageService,
		Sections: map[content.SectionKind]content.SectionCopy{
			content.SectionHero:     {Heading: "Hero"},
			content.SectionPackages: {Packages: []string{"growth"}},
		},
	}

	html := renderAll(t, c.Compose(context.Background(), rec))
	growth, ok := c.Registry().Package("growth")
	require.True(t, ok)
	assert.Contains(t, html, growth.Price)
	assert.Contains(t, html, "Most popular")
	assert.NotContains(t, html, "$2,499")
	assert.Contains(t, html, `href="/contact?package=growth"`)
}

func TestSharedSectionsFallBackToRegistry(t *testing.T) {
	c := newComposer(t, nil, nil)
	rec := content.PageRecord{
		Key:  "defaults",
		Path: "/defaults",
		Kind: content.PageService,
		Sections: map[content.SectionKind]content.SectionCopy{
			content.SectionHero:  {Heading: "Hero"},
			content.SectionTrust: {},
			content.SectionFAQ:   {},
		},
	}

	html := renderAll(t, c.Compose(context.Background(), rec))
	for _, faq := range c.Registry().FAQs() {
		assert.Contains(t, html, faq.Question)
	}
	for _, tm := range c.Registry().Testimonials() {
		assert.Contains(t, html, tm.Author)
	}
	assert.Contains(t, html, "Trusted by local businesses")
	assert.Contains(t, html, "Frequently asked questions")
}

func TestNewCityNeedsOnlyARecord(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/boise.yaml": {Data: []byte(`key: boise
path: /web-design-boise
kind: city
label: Boise
city: Boise
region: Idaho
title: Boise Web Design
description: Websites for Boise businesses.
sections:
  hero:
    heading: Web Design for Boise Businesses
    image: /static/images/cities/boise.svg
  service-area:
    areas: [Meridian, Nampa, Eagle]
  packages:
    packages: [starter]
`)},
	}
	reg, err := content.LoadFS(fsys, "pages")
	require.NoError(t, err)

	c := newComposer(t, reg, nil)
	rec, err := reg.PageByPath("/web-design-boise")
	require.NoError(t, err)

	html := render(t, c.Landing(context.Background(), rec))
	assert.Contains(t, html, "Web Design for Boise Businesses")
	assert.Contains(t, html, "Local to Boise, Idaho")
	assert.Contains(t, html, "Serving Boise and nearby")
	assert.Contains(t, html, "Meridian")
	assert.Contains(t, html, "<title>Boise Web Design | Northwind Studio</title>")
	assert.Contains(t, html, `href="https://northwind.studio/web-design-boise"`)
	assert.Contains(t, html, `href="/web-design-boise"`, "footer lists the new city")
}

func TestUnknownLinkTargetFallsBackToContact(t *testing.T) {
	c := newComposer(t, nil, nil)
	rec := content.PageRecord{
		Key:  "links",
		Path: "/links",
		Kind: content.PageService,
		Sections: map[content.SectionKind]content.SectionCopy{
			content.SectionHero: {Heading: "Hero", CTALabel: "Go", CTAHref: "/does-not-exist"},
			content.SectionCTA:  {CTALabel: "Packages", CTAHref: "#packages"},
		},
	}

	html := renderAll(t, c.Compose(context.Background(), rec))
	assert.NotContains(t, html, "/does-not-exist")
	assert.Contains(t, html, `href="/contact"`)
	assert.Contains(t, html, `href="#packages"`)
}

func TestLinkKeepsQueryOnKnownTarget(t *testing.T) {
	c := newComposer(t, nil, nil)
	rec := content.PageRecord{
		Key:  "launch",
		Path: "/launch",
		Kind: content.PageService,
		Sections: map[content.SectionKind]content.SectionCopy{
			content.SectionCTA: {CTALabel: "Start", CTAHref: "/contact?package=growth"},
		},
	}

	html := renderAll(t, c.Compose(context.Background(), rec))
	assert.Contains(t, html, `href="/contact?package=growth"`)
}

func TestLandingMarksCurrentNavLink(t *testing.T) {
	c := newComposer(t, nil, nil)
	rec, err := c.Registry().Page(content.KeyWebDesign)
	require.NoError(t, err)

	html := render(t, c.Landing(context.Background(), rec))
	assert.Contains(t, html, `<a href="/web-design" class="menu-active" aria-current="page">`)
	assert.NotContains(t, html, `<a href="/seo" class="menu-active"`)
}

func TestHeroImageFallback(t *testing.T) {
	rec := content.PageRecord{
		Key:  "img",
		Path: "/img",
		Kind: content.PageService,
		Sections: map[content.SectionKind]content.SectionCopy{
			content.SectionHero: {Heading: "Hero", Image: "https://cdn.example.com/broken.jpg"},
		},
	}

	t.Run("primary fails", func(t *testing.T) {
		c := newComposer(t, nil, stubImages{broken: map[string]bool{"https://cdn.example.com/broken.jpg": true}})
		html := renderAll(t, c.Compose(context.Background(), rec))
		assert.Contains(t, html, `src="/static/images/placeholder.svg"`)
		assert.Contains(t, html, `data-image-stage="fallback"`)
		assert.NotContains(t, html, "data-fallback=")
	})

	t.Run("both fail", func(t *testing.T) {
		c := newComposer(t, nil, stubImages{broken: map[string]bool{
			"https://cdn.example.com/broken.jpg": true,
			"/static/images/placeholder.svg":     true,
		}})
		html := renderAll(t, c.Compose(context.Background(), rec))
		assert.Contains(t, html, "Image unavailable")
		assert.NotContains(t, html, "broken.jpg")
	})

	t.Run("primary loads", func(t *testing.T) {
		c := newComposer(t, nil, nil)
		html := renderAll(t, c.Compose(context.Background(), rec))
		assert.Contains(t, html, `src="https://cdn.example.com/broken.jpg"`)
		assert.Contains(t, html, `data-fallback="/static/images/placeholder.svg"`)
	})
}

func TestPage(t *testing.T) {
	c := newComposer(t, nil, nil)

	for _, key := range c.StaticKeys() {
		t.Run(key, func(t *testing.T) {
			n, err := c.Page(context.Background(), key)
			require.NoError(t, err)
			html := render(t, n)
			assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
			assert.Contains(t, html, "Northwind Studio")
		})
	}

	_, err := c.Page(context.Background(), "atlantis")
	assert.True(t, errors.Is(err, content.ErrPageNotFound))
}

func TestHomeAboutProjects(t *testing.T) {
	c := newComposer(t, nil, nil)
	reg := c.Registry()

	home := render(t, c.Home(context.Background()))
	for _, p := range reg.Packages() {
		assert.Contains(t, home, p.Price)
	}
	assert.Contains(t, home, `aria-current="page"`)

	about := render(t, c.About(context.Background()))
	for _, m := range reg.Team() {
		assert.Contains(t, about, m.Name)
	}

	projects := render(t, c.Projects(context.Background()))
	for _, p := range reg.Projects() {
		assert.Contains(t, projects, p.Title)
	}
}

func TestContactPage(t *testing.T) {
	c := newComposer(t, nil, nil)
	form := wizard.ContactForm(c.Registry())
	w := wizard.New(form, nil)

	html := render(t, c.Contact(components.ContactProps{Form: form, State: w.Snapshot()}))
	assert.Contains(t, html, `action="/contact/advance"`)
	assert.Contains(t, html, `name="email"`)
	assert.NotContains(t, html, `name="message"`, "only the current step is rendered")
	assert.Contains(t, html, `<a href="/contact" class="menu-active" aria-current="page">`)
}

func TestErrorPage(t *testing.T) {
	c := newComposer(t, nil, nil)
	html := render(t, c.Error(404, "Nothing here."))
	assert.Contains(t, html, `<meta name="robots" content="noindex">`)
	assert.Contains(t, html, "We couldn&#39;t find that page")
	assert.Contains(t, html, "Nothing here.")
}
