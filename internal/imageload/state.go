package imageload

// DefaultPlaceholder is shown when an image has no explicit fallback.
const DefaultPlaceholder = "data:image/svg+xml;utf8,<svg xmlns='http://www.w3.org/2000/svg' width='400' height='300' viewBox='0 0 400 300'><rect width='400' height='300' fill='%23e5e7eb'/><path d='M150 190l40-50 30 35 20-20 40 35z' fill='%239ca3af'/><circle cx='240' cy='120' r='14' fill='%239ca3af'/></svg>"

// Stage is where an image sits in its fallback chain.
type Stage int

const (
	StagePrimary Stage = iota
	StageFallback
	StageExhausted
)

func (s Stage) String() string {
	switch s {
	case StagePrimary:
		return "primary"
	case StageFallback:
		return "fallback"
	case StageExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// State tracks which source an image is showing. It allows exactly one
// fallback hop; once exhausted it never becomes loadable again.
type State struct {
	Primary  string
	Fallback string
	stage    Stage
}

// New starts an image on its primary source. An empty fallback means
// DefaultPlaceholder; an empty primary starts on the fallback.
func New(primary, fallback string) State {
	if fallback == "" {
		fallback = DefaultPlaceholder
	}
	s := State{Primary: primary, Fallback: fallback}
	if primary == "" {
		s.stage = StageFallback
	}
	return s
}

func (s State) Stage() Stage { return s.stage }

func (s State) Exhausted() bool { return s.stage == StageExhausted }

func (s State) UsingFallback() bool { return s.stage == StageFallback }

// Src is the source currently in use, or "" once exhausted.
func (s State) Src() string {
	switch s.stage {
	case StagePrimary:
		return s.Primary
	case StageFallback:
		return s.Fallback
	default:
		return ""
	}
}

// Fail records a load failure of the current source and reports whether the
// state changed.
func (s *State) Fail() bool {
	switch s.stage {
	case StagePrimary:
		if s.Primary == s.Fallback {
			s.stage = StageExhausted
		} else {
			s.stage = StageFallback
		}
		return true
	case StageFallback:
		s.stage = StageExhausted
		return true
	default:
		return false
	}
}
