package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SectionKind names a landing-page section.
type SectionKind string

const (
	SectionHero            SectionKind = "hero"
	SectionTrust           SectionKind = "trust"
	SectionValue           SectionKind = "value"
	SectionIndustries      SectionKind = "industries"
	SectionLocalSEO        SectionKind = "local-seo"
	SectionPackages        SectionKind = "packages"
	SectionServiceArea     SectionKind = "service-area"
	SectionDifferentiators SectionKind = "differentiators"
	SectionFAQ             SectionKind = "faq"
	SectionCTA             SectionKind = "cta"
)

// SectionOrder is the canonical top-to-bottom order of landing-page sections.
var SectionOrder = []SectionKind{
	SectionHero,
	SectionTrust,
	SectionValue,
	SectionIndustries,
	SectionLocalSEO,
	SectionPackages,
	SectionServiceArea,
	SectionDifferentiators,
	SectionFAQ,
	SectionCTA,
}

func (k SectionKind) Valid() bool {
	for _, known := range SectionOrder {
		if k == known {
			return true
		}
	}
	return false
}

// PageKind distinguishes city landing pages from service pages.
type PageKind string

const (
	PageCity    PageKind = "city"
	PageService PageKind = "service"
)

// Item is a titled blurb inside a section (value props, industries, differentiators).
type Item struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// SectionCopy is the page-specific copy for one section. Which fields matter
// depends on the section kind.
type SectionCopy struct {
	Heading    string   `yaml:"heading"`
	Subheading string   `yaml:"subheading"`
	Body       string   `yaml:"body"`
	Image      string   `yaml:"image"`
	Items      []Item   `yaml:"items"`
	Stats      []Stat   `yaml:"stats"`
	Packages   []string `yaml:"packages"`
	Areas      []string `yaml:"areas"`
	FAQs       []FAQ    `yaml:"faqs"`
	CTALabel   string   `yaml:"cta_label"`
	CTAHref    string   `yaml:"cta_href"`
}

func (s SectionCopy) clone() SectionCopy {
	s.Items = append([]Item(nil), s.Items...)
	s.Stats = append([]Stat(nil), s.Stats...)
	s.Packages = append([]string(nil), s.Packages...)
	s.Areas = append([]string(nil), s.Areas...)
	s.FAQs = append([]FAQ(nil), s.FAQs...)
	return s
}

// PageRecord defines one data-driven landing page. Adding a city means adding
// a record, nothing else.
type PageRecord struct {
	Key         string                      `yaml:"key"`
	Path        string                      `yaml:"path"`
	Kind        PageKind                    `yaml:"kind"`
	Label       string                      `yaml:"label"`
	Title       string                      `yaml:"title"`
	Description string                      `yaml:"description"`
	City        string                      `yaml:"city"`
	Region      string                      `yaml:"region"`
	Sections    map[SectionKind]SectionCopy `yaml:"sections"`
}

// Has reports whether the page includes a section.
func (p PageRecord) Has(kind SectionKind) bool {
	_, ok := p.Sections[kind]
	return ok
}

// Ordered returns the page's section kinds in canonical order.
func (p PageRecord) Ordered() []SectionKind {
	out := make([]SectionKind, 0, len(p.Sections))
	for _, kind := range SectionOrder {
		if p.Has(kind) {
			out = append(out, kind)
		}
	}
	return out
}

func (p PageRecord) clone() PageRecord {
	sections := make(map[SectionKind]SectionCopy, len(p.Sections))
	for k, v := range p.Sections {
		sections[k] = v.clone()
	}
	p.Sections = sections
	return p
}

// ErrInvalidPage wraps every page-record validation failure.
var ErrInvalidPage = errors.New("invalid page record")

func decodePages(fsys fs.FS, dir string) ([]PageRecord, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list page records: %w", err)
	}
	sort.Strings(names)

	pages := make([]PageRecord, 0, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)

		var rec PageRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		pages = append(pages, rec)
	}
	return pages, nil
}

func validatePages(pages []PageRecord, packageIDs map[string]bool) error {
	keys := make(map[string]bool, len(pages))
	paths := make(map[string]string, len(pages))
	staticPaths := make(map[string]string, len(navLinks))
	for _, link := range navLinks {
		staticPaths[link.Path] = link.Key
	}

	for _, p := range pages {
		if p.Key == "" {
			return fmt.Errorf("%w: missing key", ErrInvalidPage)
		}
		if !strings.HasPrefix(p.Path, "/") {
			return fmt.Errorf("%w: %s: path %q must start with /", ErrInvalidPage, p.Key, p.Path)
		}
		if keys[p.Key] {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidPage, p.Key)
		}
		if other, ok := paths[p.Path]; ok {
			return fmt.Errorf("%w: %s: path %q already used by %s", ErrInvalidPage, p.Key, p.Path, other)
		}
		if owner, ok := staticPaths[p.Path]; ok && owner != p.Key {
			return fmt.Errorf("%w: %s: path %q belongs to page %s", ErrInvalidPage, p.Key, p.Path, owner)
		}
		keys[p.Key] = true
		paths[p.Path] = p.Key

		switch p.Kind {
		case PageCity:
			if p.City == "" {
				return fmt.Errorf("%w: %s: city pages need a city", ErrInvalidPage, p.Key)
			}
		case PageService:
		default:
			return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidPage, p.Key, p.Kind)
		}

		if !p.Has(SectionHero) {
			return fmt.Errorf("%w: %s: hero section is required", ErrInvalidPage, p.Key)
		}
		for kind, sec := range p.Sections {
			if !kind.Valid() {
				return fmt.Errorf("%w: %s: unknown section %q", ErrInvalidPage, p.Key, kind)
			}
			for _, id := range sec.Packages {
				if !packageIDs[id] {
					return fmt.Errorf("%w: %s: unknown package %q", ErrInvalidPage, p.Key, id)
				}
			}
		}
	}
	return nil
}
