package driftwood

import (
	"testing"
	"time"
)

func testConfigs() (DragConfig, TapConfig, LongPressConfig) {
	return DragConfig{MinDistance: 5},
		TapConfig{MaxDistance: 10, MaxDuration: 300 * time.Millisecond},
		LongPressConfig{MinDuration: 500 * time.Millisecond, MaxDistance: 10}
}

func arenaDown(a *Arena, target Target, pos Vec2, now time.Time) []Effect {
	drag, tap, longPress := testConfigs()
	return a.PointerDown(0, target, pos, now, drag, tap, longPress)
}

func allKinds() []GestureKind {
	return []GestureKind{GestureDrag, GestureTap, GestureLongPress}
}

// --- Idle behavior ---

func TestArena_IdleEventsAreNoOps(t *testing.T) {
	a := NewArena()

	if effects := a.PointerMove(0, Vec2{X: 10, Y: 10}, t0); len(effects) != 0 {
		t.Error("move while idle must produce no effects")
	}
	if effects := a.PointerUp(0, Vec2{X: 10, Y: 10}, t0); len(effects) != 0 {
		t.Error("up while idle must produce no effects")
	}
	if effects := a.Tick(t0); len(effects) != 0 {
		t.Error("tick while idle must produce no effects")
	}
	if a.State() != ArenaIdle {
		t.Error("arena must stay idle")
	}
}

func TestArena_SecondDownIgnoredWhileTracking(t *testing.T) {
	a := NewArena()
	target := Target{ID: "a", Kinds: allKinds()}

	arenaDown(a, target, Vec2{X: 10, Y: 10}, t0)
	before := len(a.recognizers)
	arenaDown(a, target, Vec2{X: 90, Y: 90}, t0.Add(10*time.Millisecond))
	if len(a.recognizers) != before {
		t.Error("a second down during a session must not respawn recognizers")
	}
}

// --- Drag session ---

func TestArena_DragSession(t *testing.T) {
	a := NewArena()
	target := Target{ID: "a", Kinds: []GestureKind{GestureDrag}}

	if effects := arenaDown(a, target, Vec2{X: 10, Y: 10}, t0); len(effects) != 0 {
		t.Fatalf("down should deliver nothing yet, got %v", effects)
	}

	effects := a.PointerMove(0, Vec2{X: 20, Y: 10}, t0.Add(16*time.Millisecond))
	if len(effects) != 1 || effects[0].Event != EventBegan || effects[0].Kind != GestureDrag {
		t.Fatalf("expected drag began, got %v", effects)
	}

	effects = a.PointerMove(0, Vec2{X: 30, Y: 10}, t0.Add(32*time.Millisecond))
	if len(effects) != 1 || effects[0].Event != EventChanged {
		t.Fatalf("expected drag changed, got %v", effects)
	}

	// Every further move keeps emitting changed.
	effects = a.PointerMove(0, Vec2{X: 40, Y: 10}, t0.Add(48*time.Millisecond))
	if len(effects) != 1 || effects[0].Event != EventChanged {
		t.Fatalf("expected drag changed again, got %v", effects)
	}

	effects = a.PointerUp(0, Vec2{X: 40, Y: 10}, t0.Add(64*time.Millisecond))
	if len(effects) != 1 || effects[0].Event != EventEnded {
		t.Fatalf("expected drag ended, got %v", effects)
	}

	if a.State() != ArenaIdle || len(a.recognizers) != 0 || a.winner != nil {
		t.Error("arena must reset to idle after up")
	}
}

func TestArena_EffectCarriesSessionData(t *testing.T) {
	a := NewArena()
	target := Target{ID: "a", Kinds: []GestureKind{GestureDrag}}
	arenaDown(a, target, Vec2{X: 10, Y: 10}, t0)

	effects := a.PointerMove(0, Vec2{X: 25, Y: 18}, t0.Add(100*time.Millisecond))
	if len(effects) != 1 {
		t.Fatal("expected one effect")
	}
	e := effects[0]
	if e.TargetID != "a" {
		t.Errorf("TargetID = %s, want a", e.TargetID)
	}
	if e.Start != (Vec2{X: 10, Y: 10}) || e.Pos != (Vec2{X: 25, Y: 18}) {
		t.Errorf("Start = %v Pos = %v", e.Start, e.Pos)
	}
	if e.Elapsed != 100*time.Millisecond {
		t.Errorf("Elapsed = %v, want 100ms", e.Elapsed)
	}
}

// --- Single winner & cancellation ---

func TestArena_SingleWinnerCancelsSiblings(t *testing.T) {
	a := NewArena()
	target := Target{ID: "a", Kinds: allKinds()}
	arenaDown(a, target, Vec2{X: 10, Y: 10}, t0)

	recognizers := a.recognizers
	a.PointerMove(0, Vec2{X: 30, Y: 10}, t0.Add(10*time.Millisecond))

	var winners, cancelled int
	for _, r := range recognizers {
		switch {
		case r.state == StateCancelled:
			cancelled++
		case r.canWin:
			winners++
		}
	}
	if winners != 1 || cancelled != 2 {
		t.Errorf("winners = %d cancelled = %d, want 1 and 2", winners, cancelled)
	}
}

func TestArena_LosersEmitNothingAfterResolution(t *testing.T) {
	a := NewArena()
	target := Target{ID: "a", Kinds: allKinds()}
	arenaDown(a, target, Vec2{X: 10, Y: 10}, t0)

	a.PointerMove(0, Vec2{X: 30, Y: 10}, t0.Add(10*time.Millisecond)) // drag wins

	// A tick past the long-press duration must not revive the loser.
	if effects := a.Tick(t0.Add(time.Second)); len(effects) != 0 {
		t.Errorf("cancelled long-press produced effects: %v", effects)
	}
}

// --- Resolution rules ---

func TestResolve_SingleDeclared(t *testing.T) {
	drag, tap, longPress := testConfigs()
	lp := newRecognizer(GestureLongPress, Target{}, Vec2{}, t0, drag, tap, longPress)
	tp := newRecognizer(GestureTap, Target{}, Vec2{}, t0, drag, tap, longPress)
	tp.wantsToWin = true

	// The declared tap wins even though long-press has higher priority.
	if w := resolve([]*recognizer{lp, tp}); w != tp {
		t.Errorf("resolve = %v, want the declared tap", w)
	}
}

func TestResolve_PriorityTieBreak(t *testing.T) {
	drag, tap, longPress := testConfigs()
	d := newRecognizer(GestureDrag, Target{}, Vec2{}, t0, drag, tap, longPress)
	lp := newRecognizer(GestureLongPress, Target{}, Vec2{}, t0, drag, tap, longPress)
	d.wantsToWin = true
	lp.wantsToWin = true

	// Order in the slice must not matter, only the kind priority table.
	if w := resolve([]*recognizer{lp, d}); w != d {
		t.Error("drag must beat long-press on simultaneous declaration")
	}
	if w := resolve([]*recognizer{d, lp}); w != d {
		t.Error("drag must beat long-press regardless of creation order")
	}
}

func TestResolve_NoneDeclared(t *testing.T) {
	drag, tap, longPress := testConfigs()
	d := newRecognizer(GestureDrag, Target{}, Vec2{}, t0, drag, tap, longPress)
	if w := resolve([]*recognizer{d}); w != nil {
		t.Errorf("resolve = %v, want nil with nothing declared", w)
	}
}

func TestResolve_IgnoresEliminated(t *testing.T) {
	drag, tap, longPress := testConfigs()
	d := newRecognizer(GestureDrag, Target{}, Vec2{}, t0, drag, tap, longPress)
	d.wantsToWin = true
	d.canWin = false
	if w := resolve([]*recognizer{d}); w != nil {
		t.Error("eliminated recognizers must never win")
	}
}

// --- Drag vs long-press racing ---

func TestArena_DragBeatsPendingLongPress(t *testing.T) {
	// The long-press hold time has elapsed but no tick has armed it yet
	// when a move crosses the drag threshold. The drag wins and the
	// long-press must stay dead on the next tick.
	a := NewArena()
	target := Target{
		ID:        "a",
		Kinds:     []GestureKind{GestureDrag, GestureLongPress},
		Drag:      &DragConfig{MinDistance: 5},
		LongPress: &LongPressConfig{MinDuration: 500 * time.Millisecond, MaxDistance: 100},
	}
	arenaDown(a, target, Vec2{X: 10, Y: 10}, t0)

	effects := a.PointerMove(0, Vec2{X: 30, Y: 10}, t0.Add(600*time.Millisecond))
	if len(effects) != 1 || effects[0].Kind != GestureDrag {
		t.Fatalf("expected drag to win, got %v", effects)
	}
	if effects := a.Tick(t0.Add(601 * time.Millisecond)); len(effects) != 0 {
		t.Errorf("cancelled long-press must not fire, got %v", effects)
	}
}

// --- Sweep ---

func TestSweep_PrefersHighestPriority(t *testing.T) {
	drag, tap, longPress := testConfigs()
	d := newRecognizer(GestureDrag, Target{}, Vec2{}, t0, drag, tap, longPress)
	tp := newRecognizer(GestureTap, Target{}, Vec2{}, t0, drag, tap, longPress)

	if w := sweep([]*recognizer{tp, d}); w != d {
		t.Error("sweep must pick the highest-priority eligible recognizer")
	}

	d.canWin = false
	if w := sweep([]*recognizer{tp, d}); w != tp {
		t.Error("sweep must skip eliminated recognizers")
	}

	tp.canWin = false
	if w := sweep([]*recognizer{tp, d}); w != nil {
		t.Error("sweep with nothing eligible must pick nothing")
	}
}

func TestArena_TapDeliveredOnUp(t *testing.T) {
	a := NewArena()
	target := Target{ID: "a", Kinds: []GestureKind{GestureTap}}
	arenaDown(a, target, Vec2{X: 10, Y: 10}, t0)

	effects := a.PointerUp(0, Vec2{X: 10, Y: 10}, t0.Add(100*time.Millisecond))
	if len(effects) != 1 || effects[0].Kind != GestureTap || effects[0].Event != EventEnded {
		t.Fatalf("expected tap ended, got %v", effects)
	}
	if a.State() != ArenaIdle {
		t.Error("arena must be idle after up")
	}
}

func TestArena_SlowTapDeliversNothing(t *testing.T) {
	a := NewArena()
	target := Target{ID: "a", Kinds: []GestureKind{GestureTap}}
	arenaDown(a, target, Vec2{X: 10, Y: 10}, t0)

	effects := a.PointerUp(0, Vec2{X: 10, Y: 10}, t0.Add(400*time.Millisecond))
	if len(effects) != 0 {
		t.Fatalf("tap past max duration must deliver nothing, got %v", effects)
	}
	if a.State() != ArenaIdle {
		t.Error("arena must still reset to idle")
	}
}

// --- Long-press via ticks ---

func TestArena_LongPressViaTick(t *testing.T) {
	a := NewArena()
	target := Target{ID: "a", Kinds: []GestureKind{GestureLongPress}}
	arenaDown(a, target, Vec2{X: 10, Y: 10}, t0)

	if effects := a.Tick(t0.Add(300 * time.Millisecond)); len(effects) != 0 {
		t.Fatal("long-press must not fire before min duration")
	}

	effects := a.Tick(t0.Add(600 * time.Millisecond))
	if len(effects) != 1 || effects[0].Kind != GestureLongPress || effects[0].Event != EventBegan {
		t.Fatalf("expected long-press began, got %v", effects)
	}

	// Ticks with a winner are no-ops.
	if effects := a.Tick(t0.Add(700 * time.Millisecond)); len(effects) != 0 {
		t.Error("tick with a winner must do nothing")
	}

	effects = a.PointerUp(0, Vec2{X: 10, Y: 10}, t0.Add(800*time.Millisecond))
	if len(effects) != 1 || effects[0].Event != EventEnded {
		t.Fatalf("expected long-press ended, got %v", effects)
	}
}

// --- Pointer identity & blocked-set persistence ---

func TestArena_IgnoresOtherPointers(t *testing.T) {
	a := NewArena()
	target := Target{ID: "a", Kinds: []GestureKind{GestureDrag}}
	arenaDown(a, target, Vec2{X: 10, Y: 10}, t0) // pointer 0

	if effects := a.PointerMove(1, Vec2{X: 50, Y: 10}, t0); len(effects) != 0 {
		t.Error("moves from a different pointer must be ignored")
	}
	if effects := a.PointerUp(1, Vec2{X: 50, Y: 10}, t0); len(effects) != 0 {
		t.Error("ups from a different pointer must be ignored")
	}
	if a.State() != ArenaTracking {
		t.Error("the tracked session must survive foreign pointer events")
	}
}

func TestArena_BlockedSetSurvivesReset(t *testing.T) {
	a := NewArena()
	a.PushModal(LayerOverlay)
	target := Target{ID: "a", Kinds: []GestureKind{GestureTap}}

	arenaDown(a, target, Vec2{X: 10, Y: 10}, t0)
	a.PointerUp(0, Vec2{X: 10, Y: 10}, t0.Add(50*time.Millisecond))

	if !a.Blocked().Has(LayerContent) {
		t.Error("blocked set must survive the session reset")
	}
}
