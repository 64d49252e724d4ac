package components

import (
	"errors"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northwind-studio/website/internal/wizard"
)

// Contact form endpoints.
const (
	ContactAdvancePath = "/contact/advance"
	ContactRetreatPath = "/contact/retreat"
	ContactSubmitPath  = "/contact/submit"
	ContactResetPath   = "/contact/reset"
)

type ContactProps struct {
	Form  wizard.Form
	State wizard.Snapshot
	// Notice is shown above the form, e.g. when a request was rejected.
	Notice string
	// Carry renders values of fields on other steps as hidden inputs, for a
	// wizard that has no session yet.
	Carry bool
}

func ContactWizard(p ContactProps) g.Node {
	return Div(
		ID("contact-wizard"),
		Class("mx-auto max-w-2xl"),
		StepIndicator(p.Form, p.State),
		Div(
			Class("card mt-8 border border-base-300 bg-base-100 shadow-sm"),
			Div(
				Class("card-body"),
				g.If(p.Notice != "", contactNotice(p.Notice)),
				contactBody(p),
			),
		),
	)
}

func StepIndicator(form wizard.Form, st wizard.Snapshot) g.Node {
	done := st.Phase == wizard.PhaseSubmitted
	items := make([]g.Node, len(form.Steps))
	for i, step := range form.Steps {
		class := "step"
		if done || i <= st.Step {
			class = "step step-primary"
		}
		items[i] = Li(
			Class(class),
			g.If(i == st.Step && !done, g.Attr("aria-current", "step")),
			g.Text(step.Title),
		)
	}
	return Ul(Class("steps w-full"), g.Group(items))
}

// carriedValues keeps values entered for other steps in the post.
func carriedValues(p ContactProps) g.Node {
	var nodes []g.Node
	for _, r := range p.Form.Rules {
		v := p.State.Values[r.Name]
		if r.Step == p.State.Step || v == "" {
			continue
		}
		nodes = append(nodes, Input(Type("hidden"), Name(r.Name), Value(v)))
	}
	return g.Group(nodes)
}

func contactNotice(notice string) g.Node {
	return Div(
		Class("alert alert-warning"),
		g.Attr("role", "status"),
		Icon("lucide--info size-5", ""),
		Span(g.Text(notice)),
	)
}

func contactBody(p ContactProps) g.Node {
	switch p.State.Phase {
	case wizard.PhaseSubmitted:
		return contactSuccess(p.State)
	case wizard.PhaseSubmitting:
		return contactSubmitting()
	}

	step := p.Form.Steps[p.State.Step]
	last := p.State.IsLastStep()
	failed := p.State.Phase == wizard.PhaseFailed

	return FormEl(
		g.Attr("method", "post"),
		g.Attr("action", ContactAdvancePath),
		g.Attr("novalidate", ""),
		Class("space-y-5"),

		H2(Class("card-title text-xl"), g.Text(step.Title)),
		g.If(step.Description != "", P(Class("text-sm text-base-content/70"), g.Text(step.Description))),

		g.If(failed, submissionAlert(p.State.LastError)),

		g.Group(g.Map(p.Form.RulesFor(p.State.Step), func(r wizard.FieldRule) g.Node {
			return Field(r, p.State.Values[r.Name], p.State.Errors[r.Name])
		})),
		g.If(p.Carry, carriedValues(p)),

		Div(
			Class("card-actions justify-between pt-2"),
			g.If(p.State.Step > 0, Button(
				Type("submit"),
				g.Attr("formaction", ContactRetreatPath),
				g.Attr("formnovalidate", ""),
				Class("btn btn-ghost"),
				Icon("lucide--arrow-left size-4", ""),
				g.Text("Back"),
			)),
			g.If(p.State.Step == 0, Span()),
			g.If(!last, Button(
				Type("submit"),
				Class("btn btn-primary"),
				g.Text("Next"),
				Icon("lucide--arrow-right size-4", ""),
			)),
			g.If(last, Button(
				Type("submit"),
				g.Attr("formaction", ContactSubmitPath),
				Class("btn btn-primary"),
				Icon("lucide--send size-4", ""),
				g.If(failed, g.Text("Try again")),
				g.If(!failed, g.Text("Send enquiry")),
			)),
		),
	)
}

func submissionAlert(err error) g.Node {
	msg := "We couldn't send your enquiry. Please try again."
	var serr *wizard.SubmissionError
	if errors.As(err, &serr) {
		msg = serr.Message()
	}
	return Div(
		Class("alert alert-error"),
		g.Attr("role", "alert"),
		Icon("lucide--circle-alert size-5", ""),
		Div(
			P(Class("font-medium"), g.Text(msg)),
			P(Class("text-sm"), g.Text("Your details are saved, so you won't need to type them again.")),
		),
	)
}

func contactSubmitting() g.Node {
	return Div(
		Class("flex flex-col items-center gap-4 py-10 text-center"),
		g.Attr("role", "status"),
		Span(Class("loading loading-spinner loading-lg text-primary")),
		P(Class("font-medium"), g.Text("Sending your enquiry…")),
		P(Class("text-sm text-base-content/70"), g.Text("This only takes a moment.")),
		A(Href("/contact"), Class("btn btn-ghost btn-sm"), g.Text("Refresh")),
	)
}

func contactSuccess(st wizard.Snapshot) g.Node {
	return Div(
		Class("flex flex-col items-center gap-3 py-8 text-center"),
		g.Attr("role", "status"),
		IconBadge("lucide--check", "success"),
		H2(Class("font-semibold text-2xl"), g.Text("Thanks, we've got it!")),
		P(Class("max-w-md text-base-content/70"),
			g.Text("We reply to every enquiry within one business day."),
		),
		g.If(st.SubmissionID != "", P(
			Class("text-xs text-base-content/50"),
			g.Text("Reference "+st.SubmissionID),
		)),
		FormEl(
			g.Attr("method", "post"),
			g.Attr("action", ContactResetPath),
			Class("mt-4"),
			Button(Type("submit"), Class("btn btn-ghost btn-sm"), g.Text("Send another enquiry")),
		),
	)
}

// Field renders one wizard field with its current value and error.
func Field(r wizard.FieldRule, value, errMsg string) g.Node {
	id := "field-" + r.Name
	errID := id + "-error"
	inputClass := map[wizard.FieldKind]string{
		wizard.KindTextarea: "textarea w-full",
		wizard.KindSelect:   "select w-full",
	}[r.Kind]
	if inputClass == "" {
		inputClass = "input w-full"
	}
	if errMsg != "" {
		switch r.Kind {
		case wizard.KindTextarea:
			inputClass += " textarea-error"
		case wizard.KindSelect:
			inputClass += " select-error"
		default:
			inputClass += " input-error"
		}
	}

	common := []g.Node{
		ID(id),
		Name(r.Name),
		Class(inputClass),
		g.If(r.Required, g.Attr("required", "")),
		g.If(errMsg != "", g.Attr("aria-invalid", "true")),
		g.If(errMsg != "", g.Attr("aria-describedby", errID)),
	}

	var control g.Node
	switch r.Kind {
	case wizard.KindTextarea:
		control = Textarea(
			g.Group(common),
			g.Attr("rows", "5"),
			g.If(r.Placeholder != "", Placeholder(r.Placeholder)),
			g.Text(value),
		)
	case wizard.KindSelect:
		control = Select(
			g.Group(common),
			Option(Value(""), g.Text("Select…")),
			g.Group(g.Map(r.Options, func(o wizard.Choice) g.Node {
				return Option(
					Value(o.Value),
					g.If(o.Value == value, g.Attr("selected", "")),
					g.Text(o.Label),
				)
			})),
		)
	default:
		kind := string(r.Kind)
		if kind == "" {
			kind = string(wizard.KindText)
		}
		control = Input(
			g.Group(common),
			Type(kind),
			Value(value),
			g.If(r.Placeholder != "", Placeholder(r.Placeholder)),
		)
	}

	label := r.Label
	if label == "" {
		label = r.Name
	}

	return Div(
		Class("flex flex-col gap-1"),
		Label(
			g.Attr("for", id),
			Class("label font-medium text-sm"),
			g.Text(label),
			g.If(!r.Required, Span(Class("text-base-content/50 font-normal"), g.Text(" (optional)"))),
		),
		control,
		g.If(errMsg != "", P(
			ID(errID),
			Class("text-error text-sm"),
			g.Text(errMsg),
		)),
	)
}
