package driftwood

import "time"

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The minimum edges are inclusive and the maximum edges are exclusive, so
// two rectangles sharing an edge never both claim a point on it.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Layer is a coarse z-ordering bucket consulted before per-target ZIndex.
// Lower values are hit-tested first: a modal target always out-ranks an
// overlay target, which out-ranks content, which out-ranks background.
type Layer uint8

const (
	LayerModal      Layer = iota // dialogs and other input-capturing surfaces
	LayerOverlay                 // tooltips, popovers, drag previews
	LayerContent                 // the regular interactive surface (default)
	LayerBackground              // canvas-level catch-all regions
)

const layerCount = 4

// String returns the layer name as used in layout and debug output.
func (l Layer) String() string {
	switch l {
	case LayerModal:
		return "modal"
	case LayerOverlay:
		return "overlay"
	case LayerContent:
		return "content"
	case LayerBackground:
		return "background"
	default:
		return "unknown"
	}
}

// LayerSet is a bitmask of layers, used for modal blocking.
type LayerSet uint8

// Has reports whether the set contains l.
func (s LayerSet) Has(l Layer) bool {
	return s&(1<<l) != 0
}

// Add returns the set with l included.
func (s LayerSet) Add(l Layer) LayerSet {
	return s | 1<<l
}

// Union returns the union of both sets.
func (s LayerSet) Union(other LayerSet) LayerSet {
	return s | other
}

// LayersBelow returns the set of layers strictly below l in the fixed
// modal > overlay > content > background order. Pushing a modal surface
// blocks exactly this set.
func LayersBelow(l Layer) LayerSet {
	var set LayerSet
	for b := l + 1; b < layerCount; b++ {
		set = set.Add(b)
	}
	return set
}

// GestureKind identifies one of the built-in gesture recognizers.
type GestureKind uint8

const (
	GestureDrag      GestureKind = iota // sustained movement past a distance threshold
	GestureLongPress                    // press held past a duration threshold
	GestureTap                          // quick press and release without movement
)

// String returns the kind name.
func (k GestureKind) String() string {
	switch k {
	case GestureDrag:
		return "drag"
	case GestureLongPress:
		return "long-press"
	case GestureTap:
		return "tap"
	default:
		return "unknown"
	}
}

// priority returns the fixed per-kind rank used to break ties when more
// than one recognizer declares victory on the same event. Higher wins:
// drag beats long-press beats tap.
func (k GestureKind) priority() int {
	switch k {
	case GestureDrag:
		return 50
	case GestureLongPress:
		return 40
	case GestureTap:
		return 30
	default:
		return 0
	}
}

// EventType identifies a phase in a recognized gesture's lifecycle.
type EventType uint8

const (
	EventBegan   EventType = iota // gesture crossed its threshold and started
	EventChanged                  // gesture updated (drag movement)
	EventEnded                    // gesture completed normally
)

// String returns the event phase name.
func (e EventType) String() string {
	switch e {
	case EventBegan:
		return "began"
	case EventChanged:
		return "changed"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// HitContext carries the per-event inputs that target bounds functions may
// need: the window the event arrived in and arbitrary host data (current
// window width, theme metrics, and so on).
type HitContext struct {
	// Window identifies the OS window the event belongs to. Empty means
	// the primary window.
	Window string

	// Data is opaque host data passed through to bounds functions.
	Data any
}

// GestureContext is passed to target gesture callbacks.
type GestureContext struct {
	Type     EventType
	Kind     GestureKind
	TargetID string

	// X, Y is the current pointer position; StartX, StartY is where the
	// pointer session began; DeltaX, DeltaY is current minus start.
	X, Y           float64
	StartX, StartY float64
	DeltaX, DeltaY float64

	// Elapsed is the time since the pointer session began.
	Elapsed time.Duration

	// Target is the descriptor snapshotted when the recognizer was
	// created. Later registry mutations do not affect it.
	Target Target
}
