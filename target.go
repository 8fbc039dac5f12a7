package driftwood

// Target describes one registered interactive region. Targets are owned by
// a Registry and live until unregistered or the registry is cleared
// (typically on a scene switch).
//
// The zero value of every optional field is meaningful: an empty Window
// means the primary window, a nil Bounds function means the target is never
// hit, nil config pointers fall back to the System defaults, and nil
// callbacks are simply not invoked.
type Target struct {
	// ID must be unique within a Registry. Registering a target with an
	// ID already present replaces the previous descriptor atomically.
	ID string

	Layer  Layer
	ZIndex int // higher is on top within the same layer

	// Window identifies the OS window the target lives in. Empty means
	// the primary window.
	Window string

	// Bounds resolves the target's current rectangle for a given event
	// context. A nil function, a false second return, or a panic inside
	// the function all count as a permanent miss, never an error.
	Bounds func(HitContext) (Rect, bool)

	// Kinds lists the recognizers spawned for this target on pointer
	// down. A target with no kinds can still be hit but never receives
	// gesture callbacks.
	Kinds []GestureKind

	// Per-target threshold overrides. Nil uses the System defaults.
	Drag      *DragConfig
	Tap       *TapConfig
	LongPress *LongPressConfig

	// Gesture callbacks. Captured by value when the recognizer is
	// created, so re-registering the target mid-session does not change
	// which functions an in-flight gesture calls.
	OnTap          func(GestureContext)
	OnDragStart    func(GestureContext)
	OnDrag         func(GestureContext)
	OnDragEnd      func(GestureContext)
	OnLongPress    func(GestureContext)
	OnLongPressEnd func(GestureContext)
}

// handler returns the callback for a (kind, event type) pair, or nil when
// the pair has no delivery semantics (e.g. tap/began).
func (t Target) handler(kind GestureKind, event EventType) func(GestureContext) {
	switch kind {
	case GestureDrag:
		switch event {
		case EventBegan:
			return t.OnDragStart
		case EventChanged:
			return t.OnDrag
		case EventEnded:
			return t.OnDragEnd
		}
	case GestureTap:
		if event == EventEnded {
			return t.OnTap
		}
	case GestureLongPress:
		switch event {
		case EventBegan:
			return t.OnLongPress
		case EventEnded:
			return t.OnLongPressEnd
		}
	}
	return nil
}

// Registry holds the live set of hit targets. It is a plain map plus a
// stable registration order so that hit results are deterministic when two
// targets share a layer and z-index.
//
// Registry is not safe for concurrent use; like the rest of the package it
// is driven from the host's single event loop.
type Registry struct {
	targets map[string]Target
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{targets: make(map[string]Target)}
}

// Register adds or replaces a target by ID.
func (r *Registry) Register(t Target) {
	if _, exists := r.targets[t.ID]; !exists {
		r.order = append(r.order, t.ID)
	}
	r.targets[t.ID] = t
}

// Unregister removes the target with the given ID. Removing an unknown ID
// is a no-op.
func (r *Registry) Unregister(id string) {
	if _, exists := r.targets[id]; !exists {
		return
	}
	delete(r.targets, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// Clear removes all targets.
func (r *Registry) Clear() {
	r.targets = make(map[string]Target)
	r.order = r.order[:0]
}

// Get returns the target with the given ID.
func (r *Registry) Get(id string) (Target, bool) {
	t, ok := r.targets[id]
	return t, ok
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.targets)
}

// each calls fn for every target in registration order.
func (r *Registry) each(fn func(Target)) {
	for _, id := range r.order {
		fn(r.targets[id])
	}
}
