package draw

import (
	"math/rand"
	"time"
)

// Session owns all widget state: the pool, the in-flight reveal, and the
// last settled pick. It is the single mutator of the pool; the presentation
// layer drives it once per frame and renders snapshots.
type Session struct {
	pool     *Pool
	reveal   *Reveal
	rng      *rand.Rand
	selected string
	started  bool
}

// Snapshot is a point-in-time view for the presentation layer. Repeated
// snapshots with unchanged state are value-equal, so renderers can skip
// redundant redraws cheaply.
type Snapshot struct {
	Categories     []Category
	TotalRemaining int
	Selected       string
	Displayed      string
	Started        bool
	Animating      bool
}

// NewSession builds a session over the given categories. A nil rng gets a
// time-seeded source; tests inject a fixed seed.
func NewSession(cats []Category, spin time.Duration, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		pool:   NewPool(cats),
		reveal: NewReveal(spin),
		rng:    rng,
	}
}

func (s *Session) Snapshot() Snapshot {
	displayed := s.selected
	animating := s.reveal.Phase() == RevealCycling
	if animating {
		if id, ok := s.reveal.Displayed(); ok {
			displayed = id
		}
	}
	return Snapshot{
		Categories:     s.pool.Categories(),
		TotalRemaining: s.pool.TotalRemaining(),
		Selected:       s.selected,
		Displayed:      displayed,
		Started:        s.started,
		Animating:      animating,
	}
}

// StartFirstDraw begins the opening draw of a session. No-op once started.
func (s *Session) StartFirstDraw(now time.Time) bool {
	if s.started {
		return false
	}
	return s.beginReveal(now)
}

// DrawAgain begins a follow-up draw. No-op before the first draw.
func (s *Session) DrawAgain(now time.Time) bool {
	if !s.started {
		return false
	}
	return s.beginReveal(now)
}

// beginReveal validates and starts one reveal cycle. With exactly one
// category left there is nothing to animate, so the draw settles
// synchronously.
func (s *Session) beginReveal(now time.Time) bool {
	if s.reveal.Phase() == RevealCycling {
		return false
	}
	if s.pool.TotalRemaining() == 0 {
		return false
	}
	if _, ok := s.pool.SingleRemaining(); ok {
		picked, drew := s.pool.Draw(s.rng)
		if !drew {
			return false
		}
		s.selected = picked.ID
		s.started = true
		s.reveal.SettleNow()
		return true
	}
	if !s.reveal.Start(s.pool.AvailableIDs(), now) {
		return false
	}
	s.started = true
	return true
}

// Advance ticks an in-flight reveal. The single pool mutation for the draw
// happens here, on the completing frame, never during the cycling ticks.
func (s *Session) Advance(now time.Time) {
	if s.reveal.Phase() != RevealCycling {
		return
	}
	if !s.reveal.Tick(now) {
		return
	}
	if picked, ok := s.pool.Draw(s.rng); ok {
		s.selected = picked.ID
	}
}

// CancelReveal withdraws an in-flight cycle on teardown. A cancelled cycle
// performs zero draws.
func (s *Session) CancelReveal() {
	s.reveal.Cancel()
}

// ResetSession restores every count to its baseline and clears the pick
// history. Disallowed while a reveal is in flight.
func (s *Session) ResetSession(baseline map[string]int) bool {
	if s.reveal.Phase() == RevealCycling {
		return false
	}
	s.pool.Reset(baseline)
	s.selected = ""
	s.started = false
	return true
}

// EditStartingCount sets a category's baseline and refills its live count.
// Negative values coerce to zero. Permitted mid-session and mid-animation;
// only drawing and resetting are gated on the animating flag.
func (s *Session) EditStartingCount(id string, n int) bool {
	return s.pool.SetStartingCount(id, n)
}
