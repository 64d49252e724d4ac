package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type ErrorProps struct {
	Status  int
	Title   string
	Message string
}

// ErrorContent is the body of the error page; the caller wraps it in the
// page scaffold.
func ErrorContent(p ErrorProps) g.Node {
	return Div(
		Class("container flex flex-col items-center py-32 md:py-44 text-center"),
		P(Class("font-black text-7xl md:text-9xl text-base-content/10"), g.Text(strconv.Itoa(p.Status))),
		H1(Class("mt-4 font-bold text-2xl md:text-3xl"), g.Text(p.Title)),
		P(Class("mt-3 max-w-lg text-base-content/70"), g.Text(p.Message)),
		Div(
			Class("mt-8 flex gap-3"),
			A(Href("/"), Class("btn btn-primary"), Icon("lucide--home size-4", ""), g.Text("Back to home")),
			A(Href("/contact"), Class("btn btn-ghost"), g.Text("Contact us")),
		),
	)
}
