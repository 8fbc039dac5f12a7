package driftwood

import "time"

// --- Effects ---

// Effect describes one gesture delivery for the shell to execute. Effects
// are plain values: the arena never invokes callbacks itself, it returns an
// ordered effect list and the caller dispatches after the arena state has
// been committed. A handler can therefore re-enter the registry (register
// or remove targets) without corrupting the transition that produced it.
type Effect struct {
	Kind     GestureKind
	Event    EventType
	TargetID string
	Target   Target

	Pos     Vec2
	Start   Vec2
	Elapsed time.Duration
}

// deliverEffect builds the Effect for a recognizer reaching the given
// lifecycle event.
func deliverEffect(r *recognizer, event EventType, now time.Time) Effect {
	return Effect{
		Kind:     r.kind,
		Event:    event,
		TargetID: r.target.ID,
		Target:   r.target,
		Pos:      r.currentPos,
		Start:    r.startPos,
		Elapsed:  r.elapsed(now),
	}
}

// --- Arena ---

// ArenaState tracks whether the arena is between pointer sessions or inside
// one.
type ArenaState uint8

const (
	ArenaIdle     ArenaState = iota // no pointer session in progress
	ArenaTracking                   // pointer is down, recognizers live
)

// Arena adjudicates among competing recognizers for a single pointer
// session and emits delivery effects. It tracks one logical pointer at a
// time; all transitions are synchronous and total — the only "failure" is
// no resolution, which delivers nothing.
//
// Every transition fully commits the arena's next state before returning
// its effects, so callers must dispatch effects only after the transition
// returns.
type Arena struct {
	state       ArenaState
	pointerID   int
	recognizers []*recognizer
	winner      *recognizer

	// blocked is the modal blocking set. It lives on the arena so that it
	// survives session resets.
	blocked LayerSet
}

// NewArena creates an idle arena.
func NewArena() *Arena {
	return &Arena{pointerID: -1}
}

// State returns the arena's current session state.
func (a *Arena) State() ArenaState {
	return a.state
}

// Blocked returns the current modal blocking set.
func (a *Arena) Blocked() LayerSet {
	return a.blocked
}

// PushModal blocks every layer strictly below the given layer. Pushing
// twice recomputes from the fixed order and unions; there is no nested
// modal stack.
func (a *Arena) PushModal(layer Layer) {
	a.blocked = a.blocked.Union(LayersBelow(layer))
}

// PopModal clears the blocking set entirely.
func (a *Arena) PopModal() {
	a.blocked = 0
}

// reset returns the arena to idle, dropping the session's recognizers and
// winner. The blocking set is preserved across sessions.
func (a *Arena) reset() {
	a.state = ArenaIdle
	a.pointerID = -1
	a.recognizers = nil
	a.winner = nil
}

// resolve picks a winner among live recognizers: the single declared one,
// or the highest-priority declared one when several declared on the same
// event (drag beats long-press beats tap). Returns nil while undecided.
func resolve(recognizers []*recognizer) *recognizer {
	var winner *recognizer
	for _, r := range recognizers {
		if !r.canWin || !r.wantsToWin {
			continue
		}
		if winner == nil || r.kind.priority() > winner.kind.priority() {
			winner = r
		}
	}
	return winner
}

// sweep forces a decision on pointer-up when nothing declared: the
// highest-priority still-eligible recognizer wins, or nothing does.
func sweep(recognizers []*recognizer) *recognizer {
	var winner *recognizer
	for _, r := range recognizers {
		if !r.canWin {
			continue
		}
		if winner == nil || r.kind.priority() > winner.kind.priority() {
			winner = r
		}
	}
	return winner
}

// crown commits r as the session winner and cancels all siblings.
func (a *Arena) crown(r *recognizer) {
	a.winner = r
	for _, other := range a.recognizers {
		if other != r {
			other.cancel()
		}
	}
}

// deliveryEvent maps a recognizer state to the lifecycle event it delivers,
// or returns false for states with no delivery (possible, cancelled).
func deliveryEvent(state RecognizerState) (EventType, bool) {
	switch state {
	case StateBegan:
		return EventBegan, true
	case StateChanged:
		return EventChanged, true
	case StateEnded:
		return EventEnded, true
	default:
		return 0, false
	}
}

// PointerDown starts a pointer session on the given target, spawning one
// recognizer per configured kind. The caller has already hit-tested;
// calling with no target (a miss) is the caller's no-op, not the arena's.
func (a *Arena) PointerDown(pointerID int, target Target, pos Vec2, now time.Time,
	drag DragConfig, tap TapConfig, longPress LongPressConfig) []Effect {
	if a.state == ArenaTracking {
		// A session is already in flight; a second down is host noise.
		return nil
	}

	a.state = ArenaTracking
	a.pointerID = pointerID
	a.winner = nil
	a.recognizers = a.recognizers[:0]
	for _, kind := range target.Kinds {
		a.recognizers = append(a.recognizers, newRecognizer(kind, target, pos, now, drag, tap, longPress))
	}

	if w := resolve(a.recognizers); w != nil {
		a.crown(w)
		if event, ok := deliveryEvent(w.state); ok {
			return []Effect{deliverEffect(w, event, now)}
		}
	}
	return nil
}

// PointerMove advances the session with a new pointer position. A no-op
// while idle, so duplicate or out-of-order platform events are harmless.
func (a *Arena) PointerMove(pointerID int, pos Vec2, now time.Time) []Effect {
	if a.state != ArenaTracking || pointerID != a.pointerID {
		return nil
	}

	if a.winner != nil {
		prev := a.winner.state
		a.winner.handleMove(pos, now)
		return a.winnerProgress(prev, now)
	}

	for _, r := range a.recognizers {
		r.handleMove(pos, now)
	}
	return a.tryResolve(now)
}

// PointerUp ends the session. If no winner was chosen yet, resolution and
// then the sweep run before the arena resets to idle.
func (a *Arena) PointerUp(pointerID int, pos Vec2, now time.Time) []Effect {
	if a.state != ArenaTracking || pointerID != a.pointerID {
		return nil
	}

	var effects []Effect
	if a.winner != nil {
		a.winner.handleUp(pos, now)
		if a.winner.state == StateEnded {
			effects = []Effect{deliverEffect(a.winner, EventEnded, now)}
		}
	} else {
		for _, r := range a.recognizers {
			r.handleUp(pos, now)
		}
		w := resolve(a.recognizers)
		if w == nil {
			w = sweep(a.recognizers)
			if w != nil && !w.terminal() {
				// Swept without reaching a terminal state on its own;
				// force completion so something is delivered.
				w.state = StateEnded
			}
		}
		if w != nil {
			a.crown(w)
			if event, ok := deliveryEvent(w.state); ok {
				effects = []Effect{deliverEffect(w, event, now)}
			}
		}
	}

	a.reset()
	return effects
}

// Tick evaluates time-based thresholds (long-press arming, tap expiry)
// against the supplied clock. Only meaningful while tracking without a
// winner; the host calls it once per frame.
func (a *Arena) Tick(now time.Time) []Effect {
	if a.state != ArenaTracking || a.winner != nil {
		return nil
	}
	for _, r := range a.recognizers {
		r.handleTick(now)
	}
	return a.tryResolve(now)
}

// tryResolve runs resolution after a no-winner update and emits the
// winner's freshly reached state if one emerges.
func (a *Arena) tryResolve(now time.Time) []Effect {
	w := resolve(a.recognizers)
	if w == nil {
		return nil
	}
	a.crown(w)
	if event, ok := deliveryEvent(w.state); ok {
		return []Effect{deliverEffect(w, event, now)}
	}
	return nil
}

// winnerProgress emits the effect for a winner-only update: began exactly
// once on the possible→began transition, changed on every move thereafter.
func (a *Arena) winnerProgress(prev RecognizerState, now time.Time) []Effect {
	w := a.winner
	switch {
	case prev == StatePossible && w.state == StateBegan:
		return []Effect{deliverEffect(w, EventBegan, now)}
	case w.state == StateChanged:
		return []Effect{deliverEffect(w, EventChanged, now)}
	}
	return nil
}
