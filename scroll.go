package driftwood

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for one container's X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// ScrollState owns the scroll offsets of scrollable layout containers,
// keyed by node ID. The hit tester reads it through the ScrollOffsets
// interface; wheel handling and smooth scroll-to animations write it.
//
// Offsets are measured in content pixels: an offset of (0, 40) means the
// content is scrolled down by 40 pixels, so children appear 40 pixels
// higher on screen.
type ScrollState struct {
	offsets map[string]Vec2
	extents map[string]Vec2
	anims   map[string]*scrollAnim
}

// NewScrollState creates an empty scroll state.
func NewScrollState() *ScrollState {
	return &ScrollState{
		offsets: make(map[string]Vec2),
		extents: make(map[string]Vec2),
		anims:   make(map[string]*scrollAnim),
	}
}

// Offset returns the current scroll offset for a container ID. Unknown IDs
// report a zero offset.
func (s *ScrollState) Offset(id string) Vec2 {
	return s.offsets[id]
}

// SetExtent sets the maximum scroll offset for a container (content size
// minus viewport size). Offsets are clamped into [0, extent] per axis.
// Containers without an extent clamp only at zero.
func (s *ScrollState) SetExtent(id string, extent Vec2) {
	s.extents[id] = extent
	s.offsets[id] = s.clamp(id, s.offsets[id])
}

// SetOffset sets a container's offset directly, clamped, and cancels any
// running scroll animation for it.
func (s *ScrollState) SetOffset(id string, off Vec2) {
	delete(s.anims, id)
	s.offsets[id] = s.clamp(id, off)
}

// ScrollBy adjusts a container's offset by a delta, clamped. Interactive
// scrolling cancels any running animation for the container.
func (s *ScrollState) ScrollBy(id string, dx, dy float64) {
	off := s.offsets[id]
	s.SetOffset(id, Vec2{X: off.X + dx, Y: off.Y + dy})
}

// ScrollTo animates a container's offset to the given position over
// duration seconds using the easing function.
func (s *ScrollState) ScrollTo(id string, x, y float64, duration float32, fn ease.TweenFunc) {
	target := s.clamp(id, Vec2{X: x, Y: y})
	off := s.offsets[id]
	s.anims[id] = &scrollAnim{
		tweenX: gween.New(float32(off.X), float32(target.X), duration, fn),
		tweenY: gween.New(float32(off.Y), float32(target.Y), duration, fn),
	}
}

// Update advances all scroll animations by dt seconds. Called once per
// frame by the host loop.
func (s *ScrollState) Update(dt float32) {
	for id, anim := range s.anims {
		off := s.offsets[id]
		if !anim.doneX {
			val, done := anim.tweenX.Update(dt)
			off.X = float64(val)
			anim.doneX = done
		}
		if !anim.doneY {
			val, done := anim.tweenY.Update(dt)
			off.Y = float64(val)
			anim.doneY = done
		}
		s.offsets[id] = s.clamp(id, off)
		if anim.doneX && anim.doneY {
			delete(s.anims, id)
		}
	}
}

// Animating reports whether a scroll-to animation is running for id.
func (s *ScrollState) Animating(id string) bool {
	_, ok := s.anims[id]
	return ok
}

// clamp bounds an offset to [0, extent] per axis. Axes without a known
// extent clamp only at zero.
func (s *ScrollState) clamp(id string, off Vec2) Vec2 {
	if off.X < 0 {
		off.X = 0
	}
	if off.Y < 0 {
		off.Y = 0
	}
	if extent, ok := s.extents[id]; ok {
		if off.X > extent.X {
			off.X = extent.X
		}
		if off.Y > extent.Y {
			off.Y = extent.Y
		}
	}
	return off
}
