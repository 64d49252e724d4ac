// Package content is the site's static content registry: packages,
// testimonials, team, navigation, features and the data-driven landing page
// records. Everything is built once at startup and never mutated; accessors
// hand out copies.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed pages/*.yaml
var pagesFS embed.FS

// ErrPageNotFound is returned for unknown page keys and paths.
var ErrPageNotFound = errors.New("page not found")

type Registry struct {
	packages     []ServicePackage
	testimonials []Testimonial
	team         []TeamMember
	nav          []NavLink
	features     []Feature
	projects     []Project
	stats        []Stat
	faqs         []FAQ
	pages        []PageRecord

	pageByKey  map[string]int
	pageByPath map[string]int
	paths      map[string]string
}

// Load builds the registry from the compiled-in data and page records.
func Load() (*Registry, error) {
	return LoadFS(pagesFS, "pages")
}

// MustLoad is Load for process start; embedded data that fails validation is
// a build defect.
func MustLoad() *Registry {
	reg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("content: %v", err))
	}
	return reg
}

// LoadFS builds the registry with page records read from dir in fsys.
func LoadFS(fsys fs.FS, dir string) (*Registry, error) {
	pages, err := decodePages(fsys, dir)
	if err != nil {
		return nil, err
	}

	packageIDs := make(map[string]bool, len(servicePackages))
	for _, p := range servicePackages {
		packageIDs[p.ID] = true
	}
	if err := validatePages(pages, packageIDs); err != nil {
		return nil, err
	}

	r := &Registry{
		packages:     servicePackages,
		testimonials: testimonials,
		team:         team,
		nav:          navLinks,
		features:     features,
		projects:     projects,
		stats:        stats,
		faqs:         homeFAQs,
		pages:        pages,
		pageByKey:    make(map[string]int, len(pages)),
		pageByPath:   make(map[string]int, len(pages)),
		paths:        make(map[string]string, len(pages)+len(navLinks)),
	}
	for _, link := range navLinks {
		r.paths[link.Key] = link.Path
	}
	for i, p := range pages {
		r.pageByKey[p.Key] = i
		r.pageByPath[p.Path] = i
		r.paths[p.Key] = p.Path
	}
	return r, nil
}

func (r *Registry) Packages() []ServicePackage {
	out := make([]ServicePackage, len(r.packages))
	for i, p := range r.packages {
		out[i] = p.clone()
	}
	return out
}

// Package looks up a package by id.
func (r *Registry) Package(id string) (ServicePackage, bool) {
	for _, p := range r.packages {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return ServicePackage{}, false
}

// PackagesByID returns the listed packages in the given order, or every
// package when ids is empty. Unknown ids are skipped.
func (r *Registry) PackagesByID(ids []string) []ServicePackage {
	if len(ids) == 0 {
		return r.Packages()
	}
	out := make([]ServicePackage, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.Package(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// MostPopular returns the package flagged as most popular.
func (r *Registry) MostPopular() (ServicePackage, bool) {
	for _, p := range r.packages {
		if p.Popular {
			return p.clone(), true
		}
	}
	return ServicePackage{}, false
}

func (r *Registry) Testimonials() []Testimonial {
	return append([]Testimonial(nil), r.testimonials...)
}

// AverageRating is the mean star rating across testimonials.
func (r *Registry) AverageRating() float64 {
	if len(r.testimonials) == 0 {
		return 0
	}
	var sum int
	for _, t := range r.testimonials {
		sum += t.Rating
	}
	return float64(sum) / float64(len(r.testimonials))
}

func (r *Registry) Team() []TeamMember {
	return append([]TeamMember(nil), r.team...)
}

func (r *Registry) Features() []Feature {
	return append([]Feature(nil), r.features...)
}

func (r *Registry) Stats() []Stat {
	return append([]Stat(nil), r.stats...)
}

func (r *Registry) FAQs() []FAQ {
	return append([]FAQ(nil), r.faqs...)
}

func (r *Registry) Projects() []Project {
	out := make([]Project, len(r.projects))
	for i, p := range r.projects {
		out[i] = p.clone()
	}
	return out
}

func (r *Registry) NavLinks() []NavLink {
	return append([]NavLink(nil), r.nav...)
}

func (r *Registry) NavLinksByCategory(c Category) []NavLink {
	var out []NavLink
	for _, link := range r.nav {
		if link.Category == c {
			out = append(out, link)
		}
	}
	return out
}

// PathFor maps a page key to its path.
func (r *Registry) PathFor(key string) (string, bool) {
	p, ok := r.paths[key]
	return p, ok
}

// IsValidTarget reports whether path is a page the site serves. Queries and
// fragments are ignored so "/#packages" and "/contact?package=growth" are
// valid.
func (r *Registry) IsValidTarget(path string) bool {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return true
	}
	for _, p := range r.paths {
		if p == path {
			return true
		}
	}
	return false
}

// Page returns the landing-page record for key.
func (r *Registry) Page(key string) (PageRecord, error) {
	i, ok := r.pageByKey[key]
	if !ok {
		return PageRecord{}, fmt.Errorf("%w: %s", ErrPageNotFound, key)
	}
	return r.pages[i].clone(), nil
}

// PageByPath returns the landing-page record served at path.
func (r *Registry) PageByPath(path string) (PageRecord, error) {
	i, ok := r.pageByPath[path]
	if !ok {
		return PageRecord{}, fmt.Errorf("%w: %s", ErrPageNotFound, path)
	}
	return r.pages[i].clone(), nil
}

// Pages returns every landing-page record in load order.
func (r *Registry) Pages() []PageRecord {
	out := make([]PageRecord, len(r.pages))
	for i, p := range r.pages {
		out[i] = p.clone()
	}
	return out
}

// CityPages returns only the city landing pages.
func (r *Registry) CityPages() []PageRecord {
	var out []PageRecord
	for _, p := range r.pages {
		if p.Kind == PageCity {
			out = append(out, p.clone())
		}
	}
	return out
}
