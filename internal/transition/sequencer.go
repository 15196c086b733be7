// Package transition models the visual effect bracketing a list refresh as
// an explicit finite-state sequence: Idle -> AnimatingOut -> AnimatingIn ->
// Idle. The content swap runs exactly once, between the two phases. Both
// front ends drive the same state machine from their own clocks.
package transition

import (
	"time"
)

// Kind selects the visual effect.
type Kind int

const (
	None Kind = iota
	Fade
	Slide
)

// ParseKind maps a persisted animation type to a Kind. Unknown values fall
// back to Fade, matching the settings default.
func ParseKind(s string) Kind {
	switch s {
	case "None":
		return None
	case "Slide":
		return Slide
	default:
		return Fade
	}
}

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Slide:
		return "Slide"
	default:
		return "Fade"
	}
}

// Phase is the sequencer's current state.
type Phase int

const (
	Idle Phase = iota
	AnimatingOut
	AnimatingIn
)

// Sequencer coordinates one transition at a time for a list instance. A
// refresh requested while a transition is in flight is queued, replacing any
// previously queued request, and starts when the sequencer returns to Idle.
type Sequencer struct {
	kind     Kind
	duration time.Duration

	phase   Phase
	started time.Time
	swap    func()
	queued  func()

	now func() time.Time
}

// New creates an idle sequencer.
func New(kind Kind, duration time.Duration) *Sequencer {
	return &Sequencer{
		kind:     kind,
		duration: duration,
		now:      time.Now,
	}
}

// Configure updates the effect kind and per-phase duration. It applies to
// the next transition; one already in flight keeps its timing.
func (s *Sequencer) Configure(kind Kind, duration time.Duration) {
	s.kind = kind
	s.duration = duration
}

// Kind returns the configured effect kind.
func (s *Sequencer) Kind() Kind {
	return s.kind
}

// Duration returns the configured per-phase duration.
func (s *Sequencer) Duration() time.Duration {
	return s.duration
}

// Phase returns the current state.
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Idle reports whether no transition is in flight.
func (s *Sequencer) Idle() bool {
	return s.phase == Idle
}

// Request asks for a bracketed content swap. With kind None (or a zero
// duration) the swap runs immediately. When a transition is already active
// the swap is queued for when the sequencer is idle again; only the latest
// queued request survives.
func (s *Sequencer) Request(swap func()) {
	if s.kind == None || s.duration <= 0 {
		if s.phase == Idle {
			swap()
		} else {
			s.queued = swap
		}
		return
	}

	if s.phase != Idle {
		s.queued = swap
		return
	}

	s.swap = swap
	s.phase = AnimatingOut
	s.started = s.now()
}

// Tick advances the state machine against the clock. It returns true while
// a transition is still in flight, so drivers know to keep ticking.
func (s *Sequencer) Tick() bool {
	switch s.phase {
	case Idle:
		return false
	case AnimatingOut:
		if s.now().Sub(s.started) >= s.duration {
			if s.swap != nil {
				s.swap()
				s.swap = nil
			}
			s.phase = AnimatingIn
			s.started = s.now()
		}
		return true
	case AnimatingIn:
		if s.now().Sub(s.started) >= s.duration {
			s.phase = Idle
			if q := s.queued; q != nil {
				s.queued = nil
				s.Request(q)
				return !s.Idle()
			}
			return false
		}
		return true
	}
	return false
}

// Progress returns how far the current phase has advanced, in [0,1]. Idle
// reports 1 so renderers treat a finished sequencer as fully visible.
func (s *Sequencer) Progress() float64 {
	if s.phase == Idle || s.duration <= 0 {
		return 1
	}
	p := float64(s.now().Sub(s.started)) / float64(s.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Visibility returns the list's current visibility in [0,1]: falling during
// AnimatingOut, rising during AnimatingIn, 1 when idle.
func (s *Sequencer) Visibility() float64 {
	switch s.phase {
	case AnimatingOut:
		return 1 - s.Progress()
	case AnimatingIn:
		return s.Progress()
	}
	return 1
}

// Reset cancels any transition in flight, applying the pending swap and any
// queued request immediately so no refresh is lost.
func (s *Sequencer) Reset() {
	if s.swap != nil {
		s.swap()
		s.swap = nil
	}
	if s.queued != nil {
		s.queued()
		s.queued = nil
	}
	s.phase = Idle
}
