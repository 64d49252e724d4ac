package wizard

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/northwind-studio/website/internal/metrics"
	"github.com/northwind-studio/website/pkg/logger"
)

// SessionCookie names the cookie that carries the wizard session id.
const SessionCookie = "contact_session"

// Factory creates a fresh wizard for a new session.
type Factory func() *Wizard

// Store keeps wizard sessions in memory keyed by a random id.
type Store struct {
	factory Factory
	ttl     time.Duration
	log     *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Wizard
}

func NewStore(factory Factory, ttl time.Duration, log *slog.Logger) *Store {
	return &Store{
		factory:  factory,
		ttl:      ttl,
		log:      log.With(logger.Scope("wizard.store")),
		sessions: make(map[string]*Wizard),
	}
}

// Get returns the session's wizard and marks it active.
func (s *Store) Get(id string) (*Wizard, bool) {
	s.mu.Lock()
	w, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		w.touch()
	}
	return w, ok
}

// Create starts a new session.
func (s *Store) Create() (string, *Wizard) {
	id := uuid.NewString()
	w := s.factory()

	s.mu.Lock()
	s.sessions[id] = w
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ContactSessions.Set(float64(n))
	s.log.Debug("contact session started", slog.Int("sessions", n))
	return id, w
}

// Draft returns a fresh wizard that is not stored. It backs pages shown to
// visitors who have not posted anything yet.
func (s *Store) Draft() *Wizard {
	return s.factory()
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ContactSessions.Set(float64(n))
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed. Sessions with a submission in flight are kept.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	removed := 0
	for id, w := range s.sessions {
		if w.idleSince(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ContactSessions.Set(float64(n))
	return removed
}
