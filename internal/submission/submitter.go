package submission

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Fields are the accumulated contact-form values keyed by field name.
type Fields map[string]string

// Ack confirms that an enquiry was accepted by the transport.
type Ack struct {
	ID        string
	Transport string
	Reference string
}

// Submitter delivers a completed enquiry somewhere a human will read it.
type Submitter interface {
	Submit(ctx context.Context, fields Fields) (Ack, error)
	Transport() string
}

var ErrNotConfigured = errors.New("submission transport not configured")

// StatusError is returned when a remote endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("endpoint returned status %d: %s", e.StatusCode, e.Body)
}

// Enquiry is a submission as handed to transports and templates.
type Enquiry struct {
	ID          string
	SubmittedAt time.Time
	Fields      Fields
}

func newEnquiry(fields Fields) Enquiry {
	copied := make(Fields, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return Enquiry{
		ID:          uuid.NewString(),
		SubmittedAt: time.Now().UTC(),
		Fields:      copied,
	}
}

// Row is one labelled field for display.
type Row struct {
	Name  string
	Label string
	Value string
}

var fieldOrder = []string{"name", "email", "phone", "company", "package", "budget", "timeline", "message"}

var fieldLabels = map[string]string{
	"name":     "Name",
	"email":    "Email",
	"phone":    "Phone",
	"company":  "Company",
	"package":  "Package",
	"budget":   "Budget",
	"timeline": "Timeline",
	"message":  "Message",
}

// Rows lists non-empty fields, known fields first in form order and the
// rest alphabetically.
func (e Enquiry) Rows() []Row {
	seen := make(map[string]bool, len(e.Fields))
	rows := make([]Row, 0, len(e.Fields))
	for _, name := range fieldOrder {
		if v := e.Fields[name]; v != "" {
			rows = append(rows, Row{Name: name, Label: fieldLabels[name], Value: v})
		}
		seen[name] = true
	}

	var rest []string
	for name, v := range e.Fields {
		if !seen[name] && v != "" {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		rows = append(rows, Row{Name: name, Label: name, Value: e.Fields[name]})
	}
	return rows
}
