package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/northwind-studio/website/internal/components"
	"github.com/northwind-studio/website/internal/config"
	"github.com/northwind-studio/website/internal/content"
	"github.com/northwind-studio/website/internal/pagetemplate"
	"github.com/northwind-studio/website/internal/wizard"
	"github.com/northwind-studio/website/pkg/apperror"
	"github.com/northwind-studio/website/pkg/logger"
)

const maxFormBytes = 64 << 10

const (
	noticeExpired    = "Your session expired, so we started a fresh enquiry. Please fill in your details again."
	noticeInFlight   = "Your enquiry is already being sent. Please wait a moment."
	noticeSubmitted  = "Your enquiry has already been sent."
	noticeIncomplete = "Please complete every step before sending."
)

// Contact serves the contact wizard. Each browser session owns one wizard,
// found through the session cookie.
type Contact struct {
	composer *pagetemplate.Composer
	store    *wizard.Store
	form     wizard.Form
	cookie   cookieSettings
	log      *slog.Logger
}

type cookieSettings struct {
	secure bool
	maxAge time.Duration
}

func NewContact(composer *pagetemplate.Composer, store *wizard.Store, form wizard.Form, cfg *config.Config, log *slog.Logger) *Contact {
	return &Contact{
		composer: composer,
		store:    store,
		form:     form,
		cookie: cookieSettings{
			secure: cfg.Contact.CookieSecure,
			maxAge: cfg.Contact.SessionTTL,
		},
		log: log.With(logger.Scope("handlers.contact")),
	}
}

// Show renders the wizard for the caller's session. Visitors without a
// session get an unstored draft; the session is created by their first post.
// A ?package= query preselects a package on an untouched wizard.
func (h *Contact) Show(w http.ResponseWriter, r *http.Request) error {
	wz, ok := h.existing(r)
	if !ok {
		if _, err := r.Cookie(wizard.SessionCookie); err == nil {
			h.clearCookie(w)
		}
		wz = h.store.Draft()
	}

	if pkg := r.URL.Query().Get("package"); pkg != "" && wz.Phase() == wizard.PhaseEditing && wz.Values()["package"] == "" {
		if err := wz.Set("package", pkg); err != nil {
			h.log.Debug("skipped package preselect", slog.String("package", pkg), logger.Error(err))
		}
	}
	return h.render(w, http.StatusOK, wz.Snapshot(), "", !ok)
}

// Advance applies the posted step values and moves forward. On the last step
// this submits the enquiry.
func (h *Contact) Advance(w http.ResponseWriter, r *http.Request) error {
	return h.act(w, r, func(ctx context.Context, wz *wizard.Wizard) error {
		return wz.Advance(ctx)
	})
}

// Retreat keeps the posted values and moves back one step.
func (h *Contact) Retreat(w http.ResponseWriter, r *http.Request) error {
	return h.act(w, r, func(_ context.Context, wz *wizard.Wizard) error {
		return wz.Retreat()
	})
}

// Submit sends the enquiry. Only valid from the last step.
func (h *Contact) Submit(w http.ResponseWriter, r *http.Request) error {
	return h.act(w, r, func(ctx context.Context, wz *wizard.Wizard) error {
		return wz.Submit(ctx)
	})
}

// Reset discards the session and starts a new enquiry.
func (h *Contact) Reset(w http.ResponseWriter, r *http.Request) error {
	if c, err := r.Cookie(wizard.SessionCookie); err == nil {
		h.store.Delete(c.Value)
		h.clearCookie(w)
	}
	http.Redirect(w, r, h.path(), http.StatusSeeOther)
	return nil
}

func (h *Contact) act(w http.ResponseWriter, r *http.Request, action func(context.Context, *wizard.Wizard) error) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return apperror.NewBadRequest("could not read the submitted form")
	}

	var (
		id     string
		wz     *wizard.Wizard
		values map[string]string
	)
	c, err := r.Cookie(wizard.SessionCookie)
	switch {
	case err != nil || c.Value == "":
		// First post from a draft: it carries every value entered so far.
		id, wz = h.store.Create()
		h.setCookie(w, id)
		values = h.posted(r, -1)
	default:
		var ok bool
		if wz, ok = h.store.Get(c.Value); !ok {
			id, wz = h.store.Create()
			h.setCookie(w, id)
			return h.render(w, http.StatusOK, wz.Snapshot(), noticeExpired, false)
		}
		id = c.Value
		values = h.posted(r, wz.Step())
	}

	if err := wz.SetAll(values); err != nil && !isStateError(err) {
		return apperror.NewInternal("failed to update contact form", err)
	}

	err = action(r.Context(), wz)
	status, notice := h.outcome(err)
	if status == 0 {
		return apperror.NewInternal("contact action failed", err)
	}
	if status >= http.StatusInternalServerError {
		h.log.Warn("contact submission failed",
			slog.String("session", id),
			logger.Error(err))
	}
	return h.render(w, status, wz.Snapshot(), notice, false)
}

// outcome maps a wizard error to a status and notice. A zero status means the
// error is unexpected.
func (h *Contact) outcome(err error) (int, string) {
	var (
		verr wizard.ValidationErrors
		serr *wizard.SubmissionError
	)
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.As(err, &verr):
		return http.StatusOK, ""
	case errors.As(err, &serr):
		return http.StatusBadGateway, ""
	case errors.Is(err, wizard.ErrSubmissionInFlight):
		return http.StatusConflict, noticeInFlight
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		return http.StatusConflict, noticeSubmitted
	case errors.Is(err, wizard.ErrNotFinalStep):
		return http.StatusBadRequest, noticeIncomplete
	case errors.Is(err, wizard.ErrNoPreviousStep):
		return http.StatusOK, ""
	default:
		return 0, ""
	}
}

func isStateError(err error) bool {
	return errors.Is(err, wizard.ErrSubmissionInFlight) || errors.Is(err, wizard.ErrAlreadySubmitted)
}

// posted collects the submitted values for the fields of step, or for every
// field when step is negative.
func (h *Contact) posted(r *http.Request, step int) map[string]string {
	rules := h.form.Rules
	if step >= 0 {
		rules = h.form.RulesFor(step)
	}
	values := make(map[string]string)
	for _, rule := range rules {
		if _, ok := r.PostForm[rule.Name]; ok {
			values[rule.Name] = r.PostForm.Get(rule.Name)
		}
	}
	return values
}

// existing returns the stored wizard for the request's session cookie.
func (h *Contact) existing(r *http.Request) (*wizard.Wizard, bool) {
	c, err := r.Cookie(wizard.SessionCookie)
	if err != nil || c.Value == "" {
		return nil, false
	}
	return h.store.Get(c.Value)
}

func (h *Contact) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     wizard.SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.cookie.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Contact) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     wizard.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Contact) render(w http.ResponseWriter, status int, state wizard.Snapshot, notice string, draft bool) error {
	w.Header().Set("Cache-Control", "no-store")
	countRender(content.KeyContact)
	return writePage(w, status, h.composer.Contact(components.ContactProps{
		Form:   h.form,
		State:  state,
		Notice: notice,
		Carry:  draft,
	}))
}

func (h *Contact) path() string {
	if p, ok := h.composer.Registry().PathFor(content.KeyContact); ok {
		return p
	}
	return "/contact"
}
