// Package wizard implements the multi-step contact form: per-step validation,
// navigation between steps and a single in-flight submission to the
// configured submission transport.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/northwind-studio/website/internal/metrics"
	"github.com/northwind-studio/website/internal/submission"
	"github.com/northwind-studio/website/pkg/logger"
)

// DefaultSubmitTimeout bounds a submission when no timeout is configured.
const DefaultSubmitTimeout = 15 * time.Second

// Phase is the submission phase of a wizard.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSubmitted
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrNotFinalStep       = errors.New("submit is only allowed from the final step")
	ErrAlreadySubmitted   = errors.New("enquiry already submitted")
	ErrNoPreviousStep     = errors.New("already on the first step")
)

// ValidationErrors maps field names to their error messages.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + v[name]
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// SubmissionError wraps a failure reported by the submission transport.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string { return "submission failed: " + e.Err.Error() }

func (e *SubmissionError) Unwrap() error { return e.Err }

// Message is a short, user-facing description of the failure.
func (e *SubmissionError) Message() string {
	switch {
	case errors.Is(e.Err, context.DeadlineExceeded):
		return "Sending your enquiry took too long. Please try again."
	case errors.Is(e.Err, submission.ErrNotConfigured):
		return "Our contact form is temporarily unavailable. Please email us directly."
	default:
		return "We couldn't send your enquiry. Please try again."
	}
}

// Snapshot is a consistent copy of a wizard's state for rendering.
type Snapshot struct {
	Step         int
	TotalSteps   int
	Phase        Phase
	Values       map[string]string
	Errors       map[string]string
	LastError    error
	SubmissionID string
}

// IsLastStep reports whether the snapshot is on the final step.
func (s Snapshot) IsLastStep() bool { return s.Step == s.TotalSteps-1 }

// Option configures a Wizard.
type Option func(*Wizard)

func WithTimeout(d time.Duration) Option {
	return func(w *Wizard) {
		if d > 0 {
			w.timeout = d
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(w *Wizard) { w.log = log.With(logger.Scope("wizard")) }
}

func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

// Wizard is the state of one contact-form session. It is safe for
// concurrent use; the submission call runs without holding the lock so the
// state can be read while a submit is in flight.
type Wizard struct {
	form      Form
	submitter submission.Submitter
	timeout   time.Duration
	log       *slog.Logger
	now       func() time.Time

	mu         sync.Mutex
	step       int
	values     map[string]string
	errors     map[string]string
	phase      Phase
	lastErr    error
	ack        submission.Ack
	lastActive time.Time
}

// New creates a wizard on step 0 with every field empty.
func New(form Form, submitter submission.Submitter, opts ...Option) *Wizard {
	w := &Wizard{
		form:      form,
		submitter: submitter,
		timeout:   DefaultSubmitTimeout,
		log:       logger.Nop(),
		now:       time.Now,
		values:    make(map[string]string, len(form.Rules)),
		errors:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(w)
	}
	for _, r := range form.Rules {
		w.values[r.Name] = ""
	}
	w.lastActive = w.now()
	return w
}

func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) TotalSteps() int { return len(w.form.Steps) }

func (w *Wizard) Form() Form { return w.form }

func (w *Wizard) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Values returns a copy of the field values.
func (w *Wizard) Values() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return copyMap(w.values)
}

// Errors returns a copy of the current field errors.
func (w *Wizard) Errors() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return copyMap(w.errors)
}

// LastError is the most recent submission failure, nil unless failed.
func (w *Wizard) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// SubmissionID is the transport's id for a successful submission.
func (w *Wizard) SubmissionID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ack.ID
}

func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		Step:         w.step,
		TotalSteps:   len(w.form.Steps),
		Phase:        w.phase,
		Values:       copyMap(w.values),
		Errors:       copyMap(w.errors),
		LastError:    w.lastErr,
		SubmissionID: w.ack.ID,
	}
}

// Set stores a trimmed field value and clears that field's error. Unknown
// fields are ignored.
func (w *Wizard) Set(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editableLocked(); err != nil {
		return err
	}
	w.setLocked(field, value)
	return nil
}

// SetAll applies Set to every entry of values.
func (w *Wizard) SetAll(values map[string]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editableLocked(); err != nil {
		return err
	}
	for field, value := range values {
		w.setLocked(field, value)
	}
	return nil
}

func (w *Wizard) setLocked(field, value string) {
	if _, ok := w.values[field]; !ok {
		return
	}
	w.values[field] = strings.TrimSpace(value)
	delete(w.errors, field)
	w.lastActive = w.now()
}

func (w *Wizard) editableLocked() error {
	switch w.phase {
	case PhaseSubmitting:
		return ErrSubmissionInFlight
	case PhaseSubmitted:
		return ErrAlreadySubmitted
	}
	return nil
}

// Advance validates the current step. On success it moves to the next step,
// or submits when already on the final step. On failure the step is
// unchanged and ValidationErrors is returned.
func (w *Wizard) Advance(ctx context.Context) error {
	w.mu.Lock()
	if err := w.editableLocked(); err != nil {
		w.mu.Unlock()
		record("advance", err)
		return err
	}
	w.lastActive = w.now()

	if errs := w.validateStepLocked(w.step); len(errs) > 0 {
		w.errors = errs
		w.mu.Unlock()
		record("advance", errs)
		return errs
	}

	if w.step < len(w.form.Steps)-1 {
		w.step++
		w.errors = make(map[string]string)
		w.mu.Unlock()
		record("advance", nil)
		return nil
	}
	w.mu.Unlock()

	return w.Submit(ctx)
}

// Retreat moves one step back keeping every value. Errors are cleared and a
// failed submission returns to editing.
func (w *Wizard) Retreat() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editableLocked(); err != nil {
		record("retreat", err)
		return err
	}
	if w.step == 0 {
		record("retreat", ErrNoPreviousStep)
		return ErrNoPreviousStep
	}

	w.step--
	w.errors = make(map[string]string)
	w.phase = PhaseEditing
	w.lastErr = nil
	w.lastActive = w.now()
	record("retreat", nil)
	return nil
}

// Submit sends the accumulated values from the final step. Every step is
// re-validated first; on failure the wizard jumps to the first invalid step.
// Only one submission can be in flight. The call is bounded by the wizard
// timeout and is not cancelled when ctx is.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if err := w.editableLocked(); err != nil {
		w.mu.Unlock()
		record("submit", err)
		return err
	}
	if w.step != len(w.form.Steps)-1 {
		w.mu.Unlock()
		record("submit", ErrNotFinalStep)
		return ErrNotFinalStep
	}
	for step := range w.form.Steps {
		if errs := w.validateStepLocked(step); len(errs) > 0 {
			w.step = step
			w.errors = errs
			w.phase = PhaseEditing
			w.mu.Unlock()
			record("submit", errs)
			return errs
		}
	}

	w.phase = PhaseSubmitting
	w.errors = make(map[string]string)
	w.lastErr = nil
	w.lastActive = w.now()
	fields := submission.Fields(copyMap(w.values))
	w.mu.Unlock()

	ack, err := w.send(ctx, fields)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastActive = w.now()
	if err != nil {
		serr := &SubmissionError{Err: err}
		w.phase = PhaseFailed
		w.lastErr = serr
		w.log.Warn("enquiry submission failed", logger.Error(err))
		record("submit", serr)
		return serr
	}

	w.phase = PhaseSubmitted
	w.ack = ack
	w.log.Info("enquiry submitted",
		slog.String("submission_id", ack.ID),
		slog.String("transport", ack.Transport))
	record("submit", nil)
	return nil
}

func (w *Wizard) send(ctx context.Context, fields submission.Fields) (submission.Ack, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.timeout)
	defer cancel()

	transport := w.submitter.Transport()
	start := time.Now()
	ack, err := w.submitter.Submit(ctx, fields)
	metrics.ContactSubmissionSeconds.Observe(time.Since(start).Seconds())

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.ContactSubmissions.WithLabelValues(transport, result).Inc()
	if err != nil {
		return submission.Ack{}, fmt.Errorf("%s: %w", transport, err)
	}
	return ack, nil
}

func (w *Wizard) validateStepLocked(step int) ValidationErrors {
	errs := ValidationErrors{}
	for _, r := range w.form.RulesFor(step) {
		if msg := r.Check(w.values[r.Name]); msg != "" {
			errs[r.Name] = msg
		}
	}
	return errs
}

// idleSince reports whether the wizard was last touched before t and may be
// discarded. In-flight wizards are never idle.
func (w *Wizard) idleSince(t time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase != PhaseSubmitting && w.lastActive.Before(t)
}

func (w *Wizard) touch() {
	w.mu.Lock()
	w.lastActive = w.now()
	w.mu.Unlock()
}

func record(action string, err error) {
	result := "ok"
	var verrs ValidationErrors
	var serr *SubmissionError
	switch {
	case err == nil:
	case errors.As(err, &verrs):
		result = "invalid"
	case errors.As(err, &serr):
		result = "failed"
	default:
		result = "rejected"
	}
	metrics.ContactTransitions.WithLabelValues(action, result).Inc()
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
