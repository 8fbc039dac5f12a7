package driftwood

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Driver polls Ebitengine input once per frame and feeds it to a System as
// serialized pointer transitions: the mouse is pointer 0, the first active
// touch is the finger pointer. Call Update from your game's Update method.
//
// The Driver exists so games do not have to hand-write the ebiten polling
// loop; hosts with their own event plumbing can call the System's inbound
// methods directly instead.
type Driver struct {
	system *System

	// Window is the window name put into each HitContext. Leave empty
	// for the primary window.
	Window string

	// ContextData is passed through to target bounds functions in
	// HitContext.Data.
	ContextData any

	// Layout supplies the current layout tree for wheel scrolling. May
	// be nil if nothing scrolls.
	Layout func() *LayoutNode

	mouseDown    bool
	mouseX       float64
	mouseY       float64
	touchDown    bool
	touchID      ebiten.TouchID
	touchX       float64
	touchY       float64
	prevTouchIDs []ebiten.TouchID
}

// NewDriver creates a driver feeding the given System.
func NewDriver(system *System) *Driver {
	return &Driver{system: system}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// Update polls input and advances the System by one frame. It processes
// the mouse, then touch, then the wheel, then the frame tick, keeping all
// sources serialized as the arena requires.
func (d *Driver) Update() {
	ctx := HitContext{Window: d.Window, Data: d.ContextData}

	d.processMouse(ctx)
	d.processTouch(ctx)
	d.processWheel(ctx)

	d.system.Tick()
	d.system.Scroll().Update(float32(1.0 / float64(ebiten.TPS())))
}

// processMouse maps the left mouse button to the mouse pointer session.
func (d *Driver) processMouse(ctx HitContext) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !d.mouseDown:
		d.mouseDown = true
		d.system.PointerDown(x, y, ctx)
	case !pressed && d.mouseDown:
		d.mouseDown = false
		d.system.PointerUp(x, y, ctx)
	case pressed && (x != d.mouseX || y != d.mouseY):
		d.system.PointerMove(x, y, ctx)
	}
	d.mouseX, d.mouseY = x, y
}

// processTouch maps the first active touch to the finger pointer session.
// Additional concurrent touches are ignored; the arena tracks one logical
// pointer at a time.
func (d *Driver) processTouch(ctx HitContext) {
	touchIDs := ebiten.AppendTouchIDs(d.prevTouchIDs[:0])
	d.prevTouchIDs = touchIDs

	if !d.touchDown {
		if len(touchIDs) == 0 {
			return
		}
		d.touchDown = true
		d.touchID = touchIDs[0]
		tx, ty := ebiten.TouchPosition(d.touchID)
		d.touchX, d.touchY = float64(tx), float64(ty)
		d.system.FingerDown(d.touchX, d.touchY, ctx)
		return
	}

	for _, tid := range touchIDs {
		if tid != d.touchID {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		x, y := float64(tx), float64(ty)
		if x != d.touchX || y != d.touchY {
			d.touchX, d.touchY = x, y
			d.system.FingerMove(x, y, ctx)
		}
		return
	}

	// The tracked touch lifted this frame.
	d.touchDown = false
	d.system.FingerUp(d.touchX, d.touchY, ctx)
}

// processWheel forwards wheel motion to the scrollable container under the
// cursor.
func (d *Driver) processWheel(ctx HitContext) {
	if d.Layout == nil {
		return
	}
	dx, dy := ebiten.Wheel()
	if dx == 0 && dy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	d.system.MouseWheel(float64(mx), float64(my), dx, dy, readModifiers(), d.Layout())
}
