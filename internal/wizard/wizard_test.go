package wizard

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/submission"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeSubmitter records calls and returns the configured result. When block
// is set each call waits for it, or for ctx, before returning.
type fakeSubmitter struct {
	mu      sync.Mutex
	calls   []submission.Fields
	err     error
	block   chan struct{}
	started chan struct{}
	count   atomic.Int32
}

func (f *fakeSubmitter) Transport() string { return "fake" }

func (f *fakeSubmitter) Submit(ctx context.Context, fields submission.Fields) (submission.Ack, error) {
	f.count.Add(1)
	f.mu.Lock()
	f.calls = append(f.calls, fields)
	err := f.err
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return submission.Ack{}, ctx.Err()
		}
	}
	if err != nil {
		return submission.Ack{}, err
	}
	return submission.Ack{ID: "ack-1", Transport: "fake"}, nil
}

func (f *fakeSubmitter) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

var testEmailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// twoStepForm is a minimal form: step 0 requires an email, step 1 a message.
func twoStepForm() Form {
	return Form{
		Steps: []StepDef{{Title: "Contact"}, {Title: "Message"}},
		Rules: []FieldRule{
			{Name: "email", Step: 0, Required: true, Pattern: testEmailPattern, ErrorMessage: "invalid email"},
			{Name: "note", Step: 0},
			{Name: "message", Step: 1, Required: true},
		},
	}
}

func TestAdvanceEmailScenario(t *testing.T) {
	w := New(twoStepForm(), &fakeSubmitter{})

	err := w.Advance(context.Background())
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "required", verrs["email"])
	assert.Equal(t, 0, w.Step())
	assert.Equal(t, "required", w.Errors()["email"])

	require.NoError(t, w.Set("email", "a@b.com"))
	require.NoError(t, w.Advance(context.Background()))
	assert.Equal(t, 1, w.Step())
	assert.Empty(t, w.Errors())
}

func TestAdvanceNeverMovesOnInvalidStep(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]string
		wantStep int
	}{
		{name: "all empty", values: map[string]string{}, wantStep: 0},
		{name: "whitespace only", values: map[string]string{"email": "   "}, wantStep: 0},
		{name: "bad pattern", values: map[string]string{"email": "not-an-email"}, wantStep: 0},
		{name: "missing tld", values: map[string]string{"email": "a@b"}, wantStep: 0},
		{name: "optional field only", values: map[string]string{"note": "hello"}, wantStep: 0},
		{name: "valid", values: map[string]string{"email": " a@b.co "}, wantStep: 1},
		{name: "valid with optional", values: map[string]string{"email": "x@y.io", "note": "n"}, wantStep: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(twoStepForm(), &fakeSubmitter{})
			require.NoError(t, w.SetAll(tt.values))
			_ = w.Advance(context.Background())
			assert.Equal(t, tt.wantStep, w.Step())
		})
	}
}

func TestPatternErrorMessage(t *testing.T) {
	w := New(twoStepForm(), &fakeSubmitter{})
	require.NoError(t, w.Set("email", "nope"))
	err := w.Advance(context.Background())

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, ValidationErrors{"email": "invalid email"}, verrs)
}

func TestSetClearsFieldErrorAndIgnoresUnknown(t *testing.T) {
	w := New(twoStepForm(), &fakeSubmitter{})
	_ = w.Advance(context.Background())
	require.Contains(t, w.Errors(), "email")

	require.NoError(t, w.Set("email", "a@b"))
	assert.NotContains(t, w.Errors(), "email")

	require.NoError(t, w.Set("unknown", "x"))
	assert.NotContains(t, w.Values(), "unknown")
	assert.Equal(t, "a@b", w.Values()["email"])
}

func TestRetreat(t *testing.T) {
	w := New(twoStepForm(), &fakeSubmitter{})

	assert.ErrorIs(t, w.Retreat(), ErrNoPreviousStep)
	assert.Equal(t, 0, w.Step())

	require.NoError(t, w.SetAll(map[string]string{"email": "a@b.com", "note": "keep me"}))
	require.NoError(t, w.Advance(context.Background()))
	require.NoError(t, w.Set("message", "half typed"))
	before := w.Values()

	require.NoError(t, w.Retreat())
	assert.Equal(t, 0, w.Step())
	assert.Equal(t, before, w.Values())
}

func TestRetreatDoesNotValidate(t *testing.T) {
	w := New(twoStepForm(), &fakeSubmitter{})
	require.NoError(t, w.Set("email", "a@b.com"))
	require.NoError(t, w.Advance(context.Background()))

	// invalidate step 0 behind the wizard's back; retreat must not care
	require.NoError(t, w.Set("email", ""))
	require.NoError(t, w.Retreat())
	assert.Equal(t, 0, w.Step())
	assert.Empty(t, w.Errors())
}

func completeWizard(t *testing.T, sub submission.Submitter, opts ...Option) *Wizard {
	t.Helper()
	w := New(twoStepForm(), sub, opts...)
	require.NoError(t, w.Set("email", "a@b.com"))
	require.NoError(t, w.Advance(context.Background()))
	require.NoError(t, w.Set("message", "Build us a site"))
	return w
}

func TestAdvanceOnFinalStepSubmits(t *testing.T) {
	sub := &fakeSubmitter{}
	w := completeWizard(t, sub)

	require.NoError(t, w.Advance(context.Background()))
	assert.Equal(t, PhaseSubmitted, w.Phase())
	assert.Equal(t, "ack-1", w.SubmissionID())
	require.Len(t, sub.calls, 1)
	assert.Equal(t, submission.Fields{"email": "a@b.com", "note": "", "message": "Build us a site"}, sub.calls[0])
}

func TestSubmitOnlyFromFinalStep(t *testing.T) {
	sub := &fakeSubmitter{}
	w := New(twoStepForm(), sub)
	require.NoError(t, w.Set("email", "a@b.com"))

	assert.ErrorIs(t, w.Submit(context.Background()), ErrNotFinalStep)
	assert.Zero(t, sub.count.Load())
	assert.Equal(t, PhaseEditing, w.Phase())
}

func TestSubmitRevalidatesEveryStep(t *testing.T) {
	sub := &fakeSubmitter{}
	w := completeWizard(t, sub)
	require.NoError(t, w.Set("email", "broken"))

	err := w.Submit(context.Background())
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "email")
	assert.Equal(t, 0, w.Step())
	assert.Zero(t, sub.count.Load())
}

func TestSubmittedIsTerminal(t *testing.T) {
	sub := &fakeSubmitter{}
	w := completeWizard(t, sub)
	require.NoError(t, w.Submit(context.Background()))

	assert.ErrorIs(t, w.Submit(context.Background()), ErrAlreadySubmitted)
	assert.ErrorIs(t, w.Advance(context.Background()), ErrAlreadySubmitted)
	assert.ErrorIs(t, w.Retreat(), ErrAlreadySubmitted)
	assert.ErrorIs(t, w.Set("email", "c@d.com"), ErrAlreadySubmitted)
	assert.EqualValues(t, 1, sub.count.Load())
}

func TestSubmissionFailureKeepsValuesAndRetries(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("endpoint down")}
	w := completeWizard(t, sub)
	before := w.Values()

	err := w.Submit(context.Background())
	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Error(), "endpoint down")

	snap := w.Snapshot()
	assert.Equal(t, PhaseFailed, snap.Phase)
	assert.Equal(t, 1, snap.Step)
	assert.True(t, snap.IsLastStep())
	assert.Equal(t, before, snap.Values)
	assert.Equal(t, serr, snap.LastError)

	sub.setErr(nil)
	require.NoError(t, w.Submit(context.Background()))
	assert.Equal(t, PhaseSubmitted, w.Phase())
	require.Len(t, sub.calls, 2)
	assert.Equal(t, sub.calls[0], sub.calls[1])
}

func TestRetreatFromFailedReturnsToEditing(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("boom")}
	w := completeWizard(t, sub)
	require.Error(t, w.Submit(context.Background()))

	require.NoError(t, w.Retreat())
	assert.Equal(t, PhaseEditing, w.Phase())
	assert.Nil(t, w.LastError())
	assert.Equal(t, 0, w.Step())
}

func TestAtMostOneSubmissionInFlight(t *testing.T) {
	sub := &fakeSubmitter{block: make(chan struct{}), started: make(chan struct{}, 1)}
	w := completeWizard(t, sub)

	done := make(chan error, 1)
	go func() { done <- w.Submit(context.Background()) }()
	<-sub.started

	assert.Equal(t, PhaseSubmitting, w.Phase())
	assert.ErrorIs(t, w.Submit(context.Background()), ErrSubmissionInFlight)
	assert.ErrorIs(t, w.Advance(context.Background()), ErrSubmissionInFlight)
	assert.ErrorIs(t, w.Retreat(), ErrSubmissionInFlight)
	assert.ErrorIs(t, w.Set("message", "changed"), ErrSubmissionInFlight)

	close(sub.block)
	require.NoError(t, <-done)
	assert.EqualValues(t, 1, sub.count.Load())
	assert.Equal(t, "Build us a site", w.Values()["message"])
}

func TestConcurrentSubmitsCallOnce(t *testing.T) {
	sub := &fakeSubmitter{block: make(chan struct{}), started: make(chan struct{}, 1)}
	w := completeWizard(t, sub)

	const n = 8
	results := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- w.Submit(context.Background())
		}()
	}
	<-sub.started
	close(sub.block)
	wg.Wait()
	close(results)

	var ok, inFlight, done int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrSubmissionInFlight):
			inFlight++
		case errors.Is(err, ErrAlreadySubmitted):
			done++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, inFlight+done)
	assert.EqualValues(t, 1, sub.count.Load())
}

func TestSubmitTimeout(t *testing.T) {
	sub := &fakeSubmitter{block: make(chan struct{})}
	defer close(sub.block)
	w := completeWizard(t, sub, WithTimeout(20*time.Millisecond))

	err := w.Submit(context.Background())
	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, PhaseFailed, w.Phase())
	assert.Contains(t, serr.Message(), "too long")
}

func TestSubmitIgnoresCallerCancellation(t *testing.T) {
	sub := &fakeSubmitter{}
	w := completeWizard(t, sub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, w.Submit(ctx))
	assert.Equal(t, PhaseSubmitted, w.Phase())
}

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    Form
		wantErr string
	}{
		{name: "valid", form: twoStepForm()},
		{name: "no steps", form: Form{}, wantErr: "no steps"},
		{name: "step out of range", form: Form{Steps: []StepDef{{}}, Rules: []FieldRule{{Name: "a", Step: 1}}}, wantErr: "bound to step 1"},
		{name: "duplicate", form: Form{Steps: []StepDef{{}}, Rules: []FieldRule{{Name: "a"}, {Name: "a"}}}, wantErr: "duplicate"},
		{name: "unnamed", form: Form{Steps: []StepDef{{}}, Rules: []FieldRule{{}}}, wantErr: "without name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestContactForm(t *testing.T) {
	reg := content.MustLoad()
	form := ContactForm(reg)
	require.NoError(t, form.Validate())
	assert.Len(t, form.Steps, 3)

	pkg, ok := form.Rule("package")
	require.True(t, ok)
	assert.Equal(t, "", pkg.Check("growth"))
	assert.Equal(t, "", pkg.Check(CustomPackage))
	assert.Equal(t, "choose one of the listed packages", pkg.Check("platinum"))
	assert.Equal(t, "choose a package", pkg.Check(""))

	tests := []struct {
		field string
		value string
		valid bool
	}{
		{"name", "Ada", true},
		{"name", "", false},
		{"email", "ada@example.com", true},
		{"email", "ada@example", false},
		{"phone", "", true},
		{"phone", "+1 (555) 123-4567", true},
		{"phone", "call me", false},
		{"company", "", true},
		{"budget", "", true},
		{"budget", "5k-10k", true},
		{"budget", "a million", false},
		{"timeline", "asap", true},
		{"message", "too short", false},
		{"message", "We need a new website for our bakery.", true},
	}
	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			rule, ok := form.Rule(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.valid, rule.Check(tt.value) == "")
		})
	}
}
