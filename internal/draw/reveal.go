package draw

import (
	"math"
	"time"
)

// RevealPhase is the animator state: idle, cycling, or settled on a pick.
type RevealPhase int

const (
	RevealIdle RevealPhase = iota
	RevealCycling
	RevealSettled
)

// DefaultSpinDuration is the full length of one reveal cycle.
const DefaultSpinDuration = 2 * time.Second

// scanPortion is the share of the cycle spent flickering at constant speed
// before the decelerating settle sweep begins.
const scanPortion = 0.7

// Reveal runs the cycling-then-settling animation for a single draw. It is
// purely cosmetic: it never touches the pool. The caller performs the
// authoritative draw on the one tick where Tick reports completion.
type Reveal struct {
	phase     RevealPhase
	duration  time.Duration
	startedAt time.Time
	ticks     int
	available []string
	displayed int
}

func NewReveal(duration time.Duration) *Reveal {
	if duration <= 0 {
		duration = DefaultSpinDuration
	}
	return &Reveal{duration: duration}
}

func (rv *Reveal) Phase() RevealPhase { return rv.phase }

// Displayed returns the cosmetic candidate id currently shown, valid only
// while cycling.
func (rv *Reveal) Displayed() (string, bool) {
	if rv.phase != RevealCycling || len(rv.available) == 0 {
		return "", false
	}
	return rv.available[rv.displayed], true
}

// Start begins a cycle over the given available ids (pool order). It refuses
// to start while a cycle is already in flight or with nothing to cycle over.
func (rv *Reveal) Start(available []string, now time.Time) bool {
	if rv.phase == RevealCycling || len(available) == 0 {
		return false
	}
	rv.available = append([]string(nil), available...)
	rv.startedAt = now
	rv.ticks = 0
	rv.displayed = 0
	rv.phase = RevealCycling
	return true
}

// SettleNow marks the cycle settled without any cycling, for the
// single-candidate fast path where animating a foregone conclusion is
// pointless.
func (rv *Reveal) SettleNow() {
	rv.phase = RevealSettled
	rv.available = nil
}

// Tick advances the animation by one display frame. Progress is derived from
// elapsed wall-clock time so variable frame rates do not stretch the cycle.
// It returns true exactly once, on the frame that completes the cycle.
func (rv *Reveal) Tick(now time.Time) bool {
	if rv.phase != RevealCycling {
		return false
	}
	progress := float64(now.Sub(rv.startedAt)) / float64(rv.duration)
	if progress >= 1 {
		rv.phase = RevealSettled
		rv.available = nil
		return true
	}
	rv.ticks++
	n := len(rv.available)
	if progress < scanPortion {
		// Scan phase: constant-rate flicker through the live candidates.
		rv.displayed = rv.ticks % n
		return false
	}
	// Settle phase: remap the tail of the cycle to [0,1] and ease out
	// quadratically, sweeping to the last live candidate in display order.
	t := (progress - scanPortion) / (1 - scanPortion)
	eased := 1 - (1-t)*(1-t)
	idx := int(math.Floor(eased * float64(n-1)))
	if idx > n-1 {
		idx = n - 1
	}
	rv.displayed = idx
	return false
}

// Cancel withdraws an in-flight cycle. No draw occurs for a cancelled cycle.
func (rv *Reveal) Cancel() {
	rv.phase = RevealIdle
	rv.available = nil
}
