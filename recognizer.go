package driftwood

import (
	"math"
	"time"
)

// --- Threshold configuration ---

// Default thresholds, used when neither the target nor the System overrides
// them.
const (
	defaultDragMinDistance      = 4.0 // pixels, same dead zone as a click/drag split
	defaultTapMaxDistance       = 10.0
	defaultTapMaxDuration       = 300 * time.Millisecond
	defaultLongPressMaxDistance = 10.0
	defaultLongPressMinDuration = 500 * time.Millisecond
)

// DragConfig holds drag recognizer thresholds.
type DragConfig struct {
	// MinDistance is the displacement from the press point, in pixels,
	// beyond which the drag declares itself.
	MinDistance float64
}

// TapConfig holds tap recognizer thresholds.
type TapConfig struct {
	// MaxDistance is the furthest the pointer may stray from the press
	// point before the tap is eliminated.
	MaxDistance float64
	// MaxDuration is the longest press-to-release time that still counts
	// as a tap.
	MaxDuration time.Duration
}

// LongPressConfig holds long-press recognizer thresholds.
type LongPressConfig struct {
	// MinDuration is how long the pointer must stay down before the
	// long-press begins.
	MinDuration time.Duration
	// MaxDistance is the furthest the pointer may stray from the press
	// point before the long-press is eliminated.
	MaxDistance float64
}

// DefaultDragConfig returns the built-in drag thresholds.
func DefaultDragConfig() DragConfig {
	return DragConfig{MinDistance: defaultDragMinDistance}
}

// DefaultTapConfig returns the built-in tap thresholds.
func DefaultTapConfig() TapConfig {
	return TapConfig{MaxDistance: defaultTapMaxDistance, MaxDuration: defaultTapMaxDuration}
}

// DefaultLongPressConfig returns the built-in long-press thresholds.
func DefaultLongPressConfig() LongPressConfig {
	return LongPressConfig{MinDuration: defaultLongPressMinDuration, MaxDistance: defaultLongPressMaxDistance}
}

// --- Recognizer state machine ---

// RecognizerState is one recognizer's position in its lifecycle:
// possible → began → changed* → ended, or cancelled from any non-terminal
// state. Ended and cancelled are terminal.
type RecognizerState uint8

const (
	StatePossible RecognizerState = iota
	StateBegan
	StateChanged
	StateEnded
	StateCancelled
)

// String returns the state name.
func (s RecognizerState) String() string {
	switch s {
	case StatePossible:
		return "possible"
	case StateBegan:
		return "began"
	case StateChanged:
		return "changed"
	case StateEnded:
		return "ended"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// recognizer is one gesture interpretation competing in the arena. It is
// created per (target, pointer-down) pair and lives for a single pointer
// session. The target descriptor is snapshotted at creation time.
type recognizer struct {
	kind   GestureKind
	target Target

	startPos   Vec2
	currentPos Vec2
	startTime  time.Time

	state      RecognizerState
	canWin     bool // false once eliminated or cancelled
	wantsToWin bool // true once the recognizer has declared victory
	began      bool // drag/long-press crossed its threshold at some point

	drag      DragConfig
	tap       TapConfig
	longPress LongPressConfig
}

func newRecognizer(kind GestureKind, target Target, pos Vec2, now time.Time,
	drag DragConfig, tap TapConfig, longPress LongPressConfig) *recognizer {
	if target.Drag != nil {
		drag = *target.Drag
	}
	if target.Tap != nil {
		tap = *target.Tap
	}
	if target.LongPress != nil {
		longPress = *target.LongPress
	}
	return &recognizer{
		kind:       kind,
		target:     target,
		startPos:   pos,
		currentPos: pos,
		startTime:  now,
		state:      StatePossible,
		canWin:     true,
		drag:       drag,
		tap:        tap,
		longPress:  longPress,
	}
}

// displacement returns the straight-line distance from the press point.
func (r *recognizer) displacement() float64 {
	dx := r.currentPos.X - r.startPos.X
	dy := r.currentPos.Y - r.startPos.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// elapsed returns the time since the pointer session began.
func (r *recognizer) elapsed(now time.Time) time.Duration {
	return now.Sub(r.startTime)
}

// terminal reports whether the recognizer can transition no further.
func (r *recognizer) terminal() bool {
	return r.state == StateEnded || r.state == StateCancelled
}

// eliminate marks the recognizer as unable to win without cancelling it.
// The arena cancels losers explicitly once a winner is chosen.
func (r *recognizer) eliminate() {
	r.canWin = false
	r.wantsToWin = false
}

// cancel forces the recognizer into the cancelled terminal state. Used on
// arena losers; a cancelled recognizer emits no further effects.
func (r *recognizer) cancel() {
	if r.terminal() {
		r.canWin = false
		return
	}
	r.state = StateCancelled
	r.canWin = false
	r.wantsToWin = false
}

// handleMove feeds a pointer-move into the state machine.
func (r *recognizer) handleMove(pos Vec2, now time.Time) {
	if r.terminal() || !r.canWin {
		r.currentPos = pos
		return
	}
	r.currentPos = pos

	switch r.kind {
	case GestureDrag:
		if r.state == StatePossible && r.displacement() > r.drag.MinDistance {
			r.state = StateBegan
			r.began = true
			r.wantsToWin = true
		} else if r.state == StateBegan || r.state == StateChanged {
			r.state = StateChanged
		}

	case GestureTap:
		if r.displacement() > r.tap.MaxDistance {
			r.eliminate()
		} else if r.elapsed(now) > r.tap.MaxDuration {
			r.eliminate()
		}

	case GestureLongPress:
		// Movement only disqualifies a long-press that has not begun;
		// once armed it tracks the pointer until release.
		if r.state == StatePossible && r.displacement() > r.longPress.MaxDistance {
			r.eliminate()
		}
	}
}

// handleUp feeds the final pointer-up into the state machine.
func (r *recognizer) handleUp(pos Vec2, now time.Time) {
	if r.terminal() || !r.canWin {
		r.currentPos = pos
		return
	}
	r.currentPos = pos

	switch r.kind {
	case GestureDrag:
		if r.began {
			r.state = StateEnded
		} else {
			r.eliminate()
		}

	case GestureTap:
		if r.displacement() <= r.tap.MaxDistance && r.elapsed(now) <= r.tap.MaxDuration {
			r.state = StateEnded
			r.wantsToWin = true
		} else {
			r.eliminate()
		}

	case GestureLongPress:
		if r.began {
			r.state = StateEnded
		} else {
			r.eliminate()
		}
	}
}

// handleTick evaluates time-based thresholds against the caller-supplied
// clock. There is no background timer; the host calls this once per frame.
func (r *recognizer) handleTick(now time.Time) {
	if r.terminal() || !r.canWin {
		return
	}

	switch r.kind {
	case GestureTap:
		if r.elapsed(now) > r.tap.MaxDuration {
			r.eliminate()
		}

	case GestureLongPress:
		if r.state == StatePossible && r.elapsed(now) >= r.longPress.MinDuration {
			r.state = StateBegan
			r.began = true
			r.wantsToWin = true
		}
	}
}
