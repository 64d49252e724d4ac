package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(siteName string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Img(Src("/static/images/favicon.svg"), Alt(""), Class("size-7")),
		Span(
			Class("font-bold text-xl"),
			g.Text(siteName),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. iconClass is "set--name [classes...]".
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	if color == "" {
		color = "primary"
	}
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 select-none size-10 rounded-box bg-%s/10 border border-%s/20 transition-colors", color, color)

	return Span(
		Class(containerClass),
		Span(
			Class(fmt.Sprintf("iconify text-%s size-5", color)),
			g.Attr("data-icon", convertIconName(icon)),
		),
	)
}

func ThemePicker() g.Node {
	themes := []struct {
		Value string
		Label string
	}{
		{ThemeLight, "Light"},
		{ThemeDark, "Dark"},
	}

	return Div(
		Class("dropdown dropdown-end"),
		Div(
			g.Attr("tabindex", "0"),
			g.Attr("role", "button"),
			Class("btn btn-ghost btn-sm gap-1"),
			Icon("lucide--palette", "Theme"),
			Span(Class("max-sm:hidden"), g.Text("Theme")),
		),
		Ul(
			g.Attr("tabindex", "-1"),
			Class("dropdown-content menu bg-base-100 rounded-box z-[1] mt-2 w-40 border border-base-300 p-2 shadow"),
			g.Group(g.Map(themes, func(theme struct {
				Value string
				Label string
			}) g.Node {
				return Li(
					Button(
						Class("theme-option"),
						g.Attr("data-theme", theme.Value),
						g.Text(theme.Label),
					),
				)
			})),
		),
	)
}

// SectionHeader is the centered eyebrow icon, heading and lead used by most
// page sections.
func SectionHeader(icon, heading, lead string) g.Node {
	return Div(
		Class("text-center"),
		g.If(icon != "", IconBadge(icon, "primary")),
		H2(
			Class("mt-4 font-semibold text-2xl sm:text-3xl"),
			g.Text(heading),
		),
		g.If(lead != "", P(
			Class("inline-block mt-3 max-w-2xl max-sm:text-sm text-base-content/70"),
			g.Text(lead),
		)),
	)
}

// PageSection wraps page content in the standard vertical rhythm.
func PageSection(id string, children ...g.Node) g.Node {
	return Section(
		g.If(id != "", ID(id)),
		Class("py-8 md:py-12 2xl:py-24 xl:py-16 container scroll-mt-24"),
		g.Group(children),
	)
}
