package wizard

import (
	"fmt"
	"regexp"

	"github.com/northwind-studio/website/internal/content"
)

// FieldKind selects the input control used for a field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindTel      FieldKind = "tel"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
)

// DefaultRequiredMessage is reported for an empty required field.
const DefaultRequiredMessage = "required"

// Choice is one choice of a select field.
type Choice struct {
	Value string
	Label string
}

// FieldRule binds a field to a step and describes how it is validated.
type FieldRule struct {
	Name        string
	Label       string
	Step        int
	Kind        FieldKind
	Placeholder string

	Required bool
	Pattern  *regexp.Regexp
	// Options restricts a non-empty value to one of the listed values.
	Options []Choice

	ErrorMessage    string
	RequiredMessage string
}

// Check validates value and returns the error message, or "" when valid.
// Values are expected to be trimmed already.
func (r FieldRule) Check(value string) string {
	if value == "" {
		if !r.Required {
			return ""
		}
		if r.RequiredMessage != "" {
			return r.RequiredMessage
		}
		return DefaultRequiredMessage
	}

	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		return r.invalidMessage()
	}
	if len(r.Options) > 0 && !r.hasOption(value) {
		return r.invalidMessage()
	}
	return ""
}

func (r FieldRule) hasOption(value string) bool {
	for _, o := range r.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func (r FieldRule) invalidMessage() string {
	if r.ErrorMessage != "" {
		return r.ErrorMessage
	}
	return "invalid"
}

// StepDef describes one page of the wizard.
type StepDef struct {
	Title       string
	Description string
}

// Form is the static configuration of a wizard: its steps and field rules.
type Form struct {
	Steps []StepDef
	Rules []FieldRule
}

// Validate checks that every rule is bound to an existing step and that
// field names are unique.
func (f Form) Validate() error {
	if len(f.Steps) == 0 {
		return fmt.Errorf("form has no steps")
	}
	seen := make(map[string]bool, len(f.Rules))
	for _, r := range f.Rules {
		if r.Name == "" {
			return fmt.Errorf("field rule without name")
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate field %q", r.Name)
		}
		seen[r.Name] = true
		if r.Step < 0 || r.Step >= len(f.Steps) {
			return fmt.Errorf("field %q bound to step %d, form has %d steps", r.Name, r.Step, len(f.Steps))
		}
	}
	return nil
}

// RulesFor returns the rules bound to step in declaration order.
func (f Form) RulesFor(step int) []FieldRule {
	var out []FieldRule
	for _, r := range f.Rules {
		if r.Step == step {
			out = append(out, r)
		}
	}
	return out
}

func (f Form) Rule(name string) (FieldRule, bool) {
	for _, r := range f.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return FieldRule{}, false
}

// CustomPackage is the package option for work outside the listed packages.
const CustomPackage = "custom"

var (
	emailPattern   = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	phonePattern   = regexp.MustCompile(`^[+()0-9 .-]{7,20}$`)
	messagePattern = regexp.MustCompile(`(?s)^.{20,}$`)
)

// ContactForm is the agency's three-step enquiry form. Package options come
// from the registry.
func ContactForm(reg *content.Registry) Form {
	packages := []Choice{}
	for _, p := range reg.Packages() {
		packages = append(packages, Choice{Value: p.ID, Label: fmt.Sprintf("%s (%s)", p.Name, p.Price)})
	}
	packages = append(packages, Choice{Value: CustomPackage, Label: "Something custom"})

	return Form{
		Steps: []StepDef{
			{Title: "About you", Description: "Tell us who we'll be talking to."},
			{Title: "Your project", Description: "Pick a starting point. We'll tailor it together."},
			{Title: "Message", Description: "What are you hoping to achieve?"},
		},
		Rules: []FieldRule{
			{Name: "name", Label: "Full name", Step: 0, Kind: KindText, Required: true, Placeholder: "Jane Smith"},
			{Name: "email", Label: "Email", Step: 0, Kind: KindEmail, Required: true, Pattern: emailPattern,
				ErrorMessage: "enter a valid email address", Placeholder: "jane@company.com"},
			{Name: "phone", Label: "Phone", Step: 0, Kind: KindTel, Pattern: phonePattern,
				ErrorMessage: "enter a valid phone number", Placeholder: "(555) 123-4567"},
			{Name: "company", Label: "Company", Step: 0, Kind: KindText, Placeholder: "Acme Inc."},

			{Name: "package", Label: "Package", Step: 1, Kind: KindSelect, Required: true, Options: packages,
				RequiredMessage: "choose a package", ErrorMessage: "choose one of the listed packages"},
			{Name: "budget", Label: "Budget", Step: 1, Kind: KindSelect, ErrorMessage: "choose one of the listed budgets",
				Options: []Choice{
					{Value: "under-5k", Label: "Under $5,000"},
					{Value: "5k-10k", Label: "$5,000 to $10,000"},
					{Value: "10k-25k", Label: "$10,000 to $25,000"},
					{Value: "25k-plus", Label: "$25,000+"},
				}},
			{Name: "timeline", Label: "Timeline", Step: 1, Kind: KindSelect, ErrorMessage: "choose one of the listed timelines",
				Options: []Choice{
					{Value: "asap", Label: "As soon as possible"},
					{Value: "1-3-months", Label: "1 to 3 months"},
					{Value: "3-6-months", Label: "3 to 6 months"},
					{Value: "flexible", Label: "Flexible"},
				}},

			{Name: "message", Label: "Project details", Step: 2, Kind: KindTextarea, Required: true, Pattern: messagePattern,
				ErrorMessage: "tell us a little more (at least 20 characters)",
				Placeholder:  "Goals, current website, anything we should know"},
		},
	}
}
