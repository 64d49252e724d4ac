package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northwind-studio/website/internal/imageload"
)

// FallbackImage renders an image in its resolved state. While on the primary
// source the fallback is carried in data-fallback so the browser can make the
// single hop itself; a fallback that fails too becomes ImageUnavailable. An
// exhausted state renders the placeholder element and no <img> at all.
func FallbackImage(st imageload.State, alt, class string) g.Node {
	if st.Exhausted() {
		return ImageUnavailable(alt, class)
	}

	return Img(
		Src(st.Src()),
		Alt(alt),
		Class(class),
		g.Attr("loading", "lazy"),
		g.Attr("decoding", "async"),
		g.Attr("data-image-stage", st.Stage().String()),
		g.If(!st.UsingFallback(), g.Attr("data-fallback", st.Fallback)),
		g.Attr("onerror", "window.nwImageFailed && nwImageFailed(this)"),
	)
}

// ImageUnavailable is the static placeholder shown once both sources failed.
func ImageUnavailable(alt, class string) g.Node {
	label := "Image unavailable"
	if alt != "" {
		label = alt + " (image unavailable)"
	}
	return Div(
		Class("image-unavailable flex flex-col items-center justify-center gap-2 bg-base-200 text-base-content/50 "+class),
		g.Attr("role", "img"),
		g.Attr("aria-label", label),
		Icon("lucide--image-off size-8", ""),
		Span(Class("text-sm"), g.Text("Image unavailable")),
	)
}
