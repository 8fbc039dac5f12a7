package driftwood

import "sort"

// --- Point mode ---

// Hit is one entry in a depth-ordered hit list. Rank 0 is the topmost
// target under the pointer.
type Hit struct {
	Target Target
	Rank   int
}

// targetBounds resolves a target's rectangle for the given context. A nil
// bounds function, a false return, or a panic inside the function all
// report a miss.
func targetBounds(t Target, ctx HitContext) (rect Rect, ok bool) {
	if t.Bounds == nil {
		return Rect{}, false
	}
	defer func() {
		if recover() != nil {
			rect, ok = Rect{}, false
		}
	}()
	return t.Bounds(ctx)
}

// sameWindow reports whether a target belongs to the context's window.
// Empty window names on either side mean the primary window.
func sameWindow(t Target, ctx HitContext) bool {
	return t.Window == ctx.Window
}

// HitTest returns all targets under (x, y) ordered topmost first: lower
// layer index wins, then higher z-index within a layer, then registration
// order. Targets on blocked layers, in other windows, or without resolvable
// bounds are skipped.
func HitTest(reg *Registry, x, y float64, ctx HitContext, blocked LayerSet) []Hit {
	var hits []Hit
	reg.each(func(t Target) {
		if blocked.Has(t.Layer) {
			return
		}
		if !sameWindow(t, ctx) {
			return
		}
		rect, ok := targetBounds(t, ctx)
		if !ok || !rect.Contains(x, y) {
			return
		}
		hits = append(hits, Hit{Target: t})
	})

	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i].Target, hits[j].Target
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return a.ZIndex > b.ZIndex
	})
	for i := range hits {
		hits[i].Rank = i
	}
	return hits
}

// --- Tree mode ---

// Overflow controls how a layout node treats content outside its bounds on
// one axis.
type Overflow uint8

const (
	OverflowVisible Overflow = iota // content spills out, node does not scroll
	OverflowScroll                  // content is clipped and scrollable
)

// OverflowSpec is the per-axis overflow behavior of a layout node.
type OverflowSpec struct {
	X, Y Overflow
}

// scrollable reports whether either axis scrolls.
func (o OverflowSpec) scrollable() bool {
	return o.X == OverflowScroll || o.Y == OverflowScroll
}

// LayoutNode is one node of a laid-out tree as supplied by the external
// layout engine. Bounds are absolute in the parent's coordinate space; a
// node's own scroll offset shifts its children, never itself.
type LayoutNode struct {
	// ID names the node for scroll-offset lookups. Nodes without an ID
	// can be hit but are never returned as scroll containers.
	ID       string
	Bounds   Rect
	Overflow OverflowSpec
	Children []*LayoutNode
}

// ScrollOffsets supplies the current scroll offset for a node ID.
// Implemented by ScrollState; any map-backed lookup works for tests.
type ScrollOffsets interface {
	Offset(id string) Vec2
}

// HitTestTree walks the tree depth-first and returns every node containing
// (x, y), deepest node first. Before a node is tested the pointer is
// translated by the accumulated scroll offsets of its scrollable ancestors,
// so a child scrolled out from under the pointer is not hit.
func HitTestTree(root *LayoutNode, x, y float64, offsets ScrollOffsets) []*LayoutNode {
	if root == nil {
		return nil
	}
	return hitTestNode(root, x, y, Vec2{}, offsets)
}

func hitTestNode(n *LayoutNode, x, y float64, acc Vec2, offsets ScrollOffsets) []*LayoutNode {
	// Translate the screen point into this node's content space.
	tx, ty := x+acc.X, y+acc.Y
	if !n.Bounds.Contains(tx, ty) {
		return nil
	}

	childAcc := acc
	if n.Overflow.scrollable() && n.ID != "" && offsets != nil {
		off := offsets.Offset(n.ID)
		childAcc.X += off.X
		childAcc.Y += off.Y
	}

	var hits []*LayoutNode
	for _, child := range n.Children {
		hits = append(hits, hitTestNode(child, x, y, childAcc, offsets)...)
	}
	return append(hits, n)
}

// FindScrollableContainer returns the innermost scrollable node with an ID
// under (x, y), or nil. This is what wheel events resolve against.
func FindScrollableContainer(root *LayoutNode, x, y float64, offsets ScrollOffsets) *LayoutNode {
	for _, n := range HitTestTree(root, x, y, offsets) {
		if n.Overflow.scrollable() && n.ID != "" {
			return n
		}
	}
	return nil
}
