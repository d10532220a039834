// Package placement computes where an open menu lands: an anchor-relative
// candidate position clamped to the viewport.
package placement

import "github.com/ctxmenu/ctxmenu/internal/surface"

// Anchor selects which edge of the trigger target the menu attaches to.
type Anchor string

// Anchor modes. Anything unrecognized falls back to AnchorPointer.
const (
	AnchorBottom  Anchor = "bottom"
	AnchorTop     Anchor = "top"
	AnchorLeft    Anchor = "left"
	AnchorRight   Anchor = "right"
	AnchorPointer Anchor = "pointer"
)

// ParseAnchor maps a configured string to an anchor mode. Unknown values
// resolve to AnchorPointer rather than an error.
func ParseAnchor(s string) Anchor {
	switch Anchor(s) {
	case AnchorBottom, AnchorTop, AnchorLeft, AnchorRight, AnchorPointer:
		return Anchor(s)
	default:
		return AnchorPointer
	}
}

// Inputs carries everything placement needs: the anchor mode, the pointer
// position from the trigger event, the trigger element's bounding box, the
// measured menu size, the configured offsets, and the viewport.
type Inputs struct {
	Anchor   Anchor
	PointerX int
	PointerY int
	Target   surface.Rect
	MenuW    int
	MenuH    int
	OffsetX  int
	OffsetY  int
	ViewW    int
	ViewH    int
}

// Place returns the clamped top-left position for the menu.
//
// The candidate position is computed per anchor mode, then each axis is
// clamped leading edge first, trailing edge second. A positive offset is
// honored as a minimum inset even after clamping; a negative offset never
// pulls the menu off-screen on the opposite side. For a menu larger than
// the viewport the trailing clamp runs last and pushes the leading edge
// negative again.
func Place(in Inputs) (x, y int) {
	x, y = candidate(in)
	x = clampAxis(x, in.MenuW, in.ViewW, in.OffsetX)
	y = clampAxis(y, in.MenuH, in.ViewH, in.OffsetY)
	return x, y
}

// candidate computes the unclamped anchor-relative position.
func candidate(in Inputs) (x, y int) {
	t := in.Target
	switch in.Anchor {
	case AnchorBottom:
		return t.Left() + in.OffsetX, t.Bottom() + in.OffsetY
	case AnchorTop:
		return t.Left() + in.OffsetX, t.Top() - in.MenuH + in.OffsetY
	case AnchorRight:
		return t.Left() + t.Width + in.OffsetX, t.Top() + in.OffsetY
	case AnchorLeft:
		return t.Left() - in.MenuW + in.OffsetX, t.Top() + in.OffsetY
	default:
		return in.PointerX + in.OffsetX, in.PointerY + in.OffsetY
	}
}

// clampAxis applies the leading-then-trailing clamp for one axis.
func clampAxis(pos, size, view, offset int) int {
	inset := 0
	if offset > 0 {
		inset = offset
	}
	if pos < 0 {
		pos = inset
	}
	if pos+size > view {
		pos = view - size - inset
	}
	return pos
}
