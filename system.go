package driftwood

import "time"

// Pointer IDs used by the inbound event API: 0 is the mouse, 1 is the
// primary touch. Both are routed through the same arena transitions.
const (
	pointerMouse  = 0
	pointerFinger = 1
)

// System is one complete gesture pipeline: a target registry, a gesture
// arena, and a scroll state, plus the effect executor that turns arena
// output into callback invocations. Create one per independent input
// surface (typically one per window); there are no package-level globals,
// so Systems never interfere with each other.
//
// A System is driven from a single goroutine — the host's event loop. If
// multiple input sources feed the same System, the host must serialize
// them first.
type System struct {
	registry *Registry
	arena    *Arena
	scroll   *ScrollState

	drag      DragConfig
	tap       TapConfig
	longPress LongPressConfig

	// now supplies the current time for threshold evaluation. Tests
	// replace it with a fake clock.
	now func() time.Time
}

// NewSystem creates a System with an empty registry, an idle arena, and
// default gesture thresholds.
func NewSystem() *System {
	return &System{
		registry:  NewRegistry(),
		arena:     NewArena(),
		scroll:    NewScrollState(),
		drag:      DefaultDragConfig(),
		tap:       DefaultTapConfig(),
		longPress: DefaultLongPressConfig(),
		now:       time.Now,
	}
}

// --- Registry & modal surface ---

// RegisterTarget adds or replaces an interactive region. Recognizers
// created before a replacement keep the old descriptor snapshot for the
// rest of their session.
func (s *System) RegisterTarget(t Target) {
	s.registry.Register(t)
}

// UnregisterTarget removes a target by ID.
func (s *System) UnregisterTarget(id string) {
	s.registry.Unregister(id)
}

// ClearTargets removes every target, typically on a scene switch.
func (s *System) ClearTargets() {
	s.registry.Clear()
}

// Registry exposes the target registry for inspection.
func (s *System) Registry() *Registry {
	return s.registry
}

// PushModal blocks hit testing for all layers strictly below the given
// layer until PopModal is called.
func (s *System) PushModal(layer Layer) {
	s.arena.PushModal(layer)
}

// PopModal unblocks all layers.
func (s *System) PopModal() {
	s.arena.PopModal()
}

// Scroll returns the scroll state owned by this System.
func (s *System) Scroll() *ScrollState {
	return s.scroll
}

// --- Threshold configuration ---

// SetDragConfig sets the default drag thresholds for targets without an
// override.
func (s *System) SetDragConfig(cfg DragConfig) {
	s.drag = cfg
}

// SetTapConfig sets the default tap thresholds for targets without an
// override.
func (s *System) SetTapConfig(cfg TapConfig) {
	s.tap = cfg
}

// SetLongPressConfig sets the default long-press thresholds for targets
// without an override.
func (s *System) SetLongPressConfig(cfg LongPressConfig) {
	s.longPress = cfg
}

// SetClock replaces the time source used for threshold evaluation.
func (s *System) SetClock(now func() time.Time) {
	s.now = now
}

// --- Inbound pointer events ---

// HitAt returns the depth-ordered hit list under (x, y) with the current
// modal blocking applied.
func (s *System) HitAt(x, y float64, ctx HitContext) []Hit {
	return HitTest(s.registry, x, y, ctx, s.arena.Blocked())
}

// PointerDown starts a mouse pointer session. If nothing interactive is
// under the point, nothing happens.
func (s *System) PointerDown(x, y float64, ctx HitContext) {
	s.down(pointerMouse, x, y, ctx)
}

// PointerMove advances the mouse pointer session. A no-op while idle.
func (s *System) PointerMove(x, y float64, ctx HitContext) {
	s.dispatch(s.arena.PointerMove(pointerMouse, Vec2{X: x, Y: y}, s.now()))
}

// PointerUp ends the mouse pointer session.
func (s *System) PointerUp(x, y float64, ctx HitContext) {
	s.dispatch(s.arena.PointerUp(pointerMouse, Vec2{X: x, Y: y}, s.now()))
}

// FingerDown starts a touch pointer session. Touch events run through the
// identical arena transitions as mouse events.
func (s *System) FingerDown(x, y float64, ctx HitContext) {
	s.down(pointerFinger, x, y, ctx)
}

// FingerMove advances the touch pointer session.
func (s *System) FingerMove(x, y float64, ctx HitContext) {
	s.dispatch(s.arena.PointerMove(pointerFinger, Vec2{X: x, Y: y}, s.now()))
}

// FingerUp ends the touch pointer session.
func (s *System) FingerUp(x, y float64, ctx HitContext) {
	s.dispatch(s.arena.PointerUp(pointerFinger, Vec2{X: x, Y: y}, s.now()))
}

// Tick evaluates long-press and tap timers against the clock. The host
// calls it once per frame; without it, time-based gestures are only
// detected on the next pointer event.
func (s *System) Tick() {
	s.dispatch(s.arena.Tick(s.now()))
}

func (s *System) down(pointerID int, x, y float64, ctx HitContext) {
	hits := s.HitAt(x, y, ctx)
	if len(hits) == 0 {
		return
	}
	now := s.now()
	effects := s.arena.PointerDown(pointerID, hits[0].Target, Vec2{X: x, Y: y},
		now, s.drag, s.tap, s.longPress)
	s.dispatch(effects)
}

// --- Wheel scrolling ---

// MouseWheel routes a wheel event to the innermost scrollable container
// under (x, y) in the supplied layout tree. Holding shift swaps the axes
// so a plain vertical wheel scrolls horizontally.
func (s *System) MouseWheel(x, y, dx, dy float64, mods KeyModifiers, root *LayoutNode) {
	node := FindScrollableContainer(root, x, y, s.scroll)
	if node == nil {
		return
	}
	if mods&ModShift != 0 {
		dx, dy = dy, dx
	}
	if node.Overflow.X != OverflowScroll {
		dx = 0
	}
	if node.Overflow.Y != OverflowScroll {
		dy = 0
	}
	s.scroll.ScrollBy(node.ID, dx, dy)
}

// --- Effect execution ---

// dispatch invokes target callbacks for each effect in order. The arena
// has already committed its post-transition state by the time this runs,
// so handlers may freely re-enter the System (register targets, push
// modals) without corrupting the session.
func (s *System) dispatch(effects []Effect) {
	for _, e := range effects {
		fn := e.Target.handler(e.Kind, e.Event)
		if fn == nil {
			continue
		}
		fn(GestureContext{
			Type:     e.Event,
			Kind:     e.Kind,
			TargetID: e.TargetID,
			X:        e.Pos.X,
			Y:        e.Pos.Y,
			StartX:   e.Start.X,
			StartY:   e.Start.Y,
			DeltaX:   e.Pos.X - e.Start.X,
			DeltaY:   e.Pos.Y - e.Start.Y,
			Elapsed:  e.Elapsed,
			Target:   e.Target,
		})
	}
}
