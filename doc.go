// Package driftwood disambiguates pointer gestures for [Ebitengine] games
// and tools.
//
// A single active pointer (mouse or finger) is matched against registered
// interactive regions, and the competing interpretations of its motion
// (drag, tap, long-press) are adjudicated by a gesture arena so that
// exactly one coherent gesture stream reaches exactly one handler per
// pointer session.
//
// # Quick start
//
// Create a [System], register targets, and drive it from your game loop
// with a [Driver]:
//
//	sys := driftwood.NewSystem()
//	sys.RegisterTarget(driftwood.Target{
//		ID:    "card",
//		Layer: driftwood.LayerContent,
//		Bounds: func(driftwood.HitContext) (driftwood.Rect, bool) {
//			return driftwood.Rect{X: 40, Y: 40, Width: 120, Height: 80}, true
//		},
//		Kinds:  []driftwood.GestureKind{driftwood.GestureTap, driftwood.GestureDrag},
//		OnTap:  func(ctx driftwood.GestureContext) { /* flip the card */ },
//		OnDrag: func(ctx driftwood.GestureContext) { /* move it */ },
//	})
//
//	driver := driftwood.NewDriver(sys)
//	// in your ebiten.Game Update: driver.Update()
//
// Hosts with their own event plumbing can skip the Driver and call
// [System.PointerDown], [System.PointerMove], [System.PointerUp], and
// [System.Tick] directly. All calls must come from one goroutine.
//
// # Layers and modal blocking
//
// Targets live on four fixed layers (modal, overlay, content, background).
// Hit testing prefers lower layers first, then higher ZIndex within a
// layer. [System.PushModal] blocks every layer below the pushed one until
// [System.PopModal], which is how dialogs swallow input.
//
// # The arena
//
// On pointer down the topmost hit target spawns one recognizer per
// configured [GestureKind]. Recognizers compete: the first to declare wins
// (drag beats long-press beats tap on simultaneous declaration), the
// losers are cancelled, and only the winner's callbacks fire. Arena
// transitions are pure functions returning effect values; callbacks run
// only after the arena has committed its next state, so handlers can
// safely re-enter the System.
//
// # Scrolling
//
// Wheel events resolve a scrollable container via [HitTestTree] over a
// host-supplied [LayoutNode] tree and adjust a [ScrollState], which also
// supports smooth scroll-to animation (via [gween]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package driftwood
