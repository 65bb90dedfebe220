package geometry

// Side names an edge of the containing block.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Offset is a sparse positioning record: at most one vertical key (top or
// bottom) and one horizontal key (left or right). An absent key leaves that
// axis unconstrained.
type Offset map[Side]int

func newOffset(vertical Side, verticalValue int, horizontal Side, horizontalValue int) Offset {
	return Offset{vertical: verticalValue, horizontal: horizontalValue}
}

// Get returns the value stored for side.
func (o Offset) Get(side Side) (int, bool) {
	v, ok := o[side]
	return v, ok
}

// Horizontal returns the horizontal key and its value.
func (o Offset) Horizontal() (Side, int, bool) {
	if v, ok := o[SideLeft]; ok {
		return SideLeft, v, true
	}
	if v, ok := o[SideRight]; ok {
		return SideRight, v, true
	}
	return "", 0, false
}

// Vertical returns the vertical key and its value.
func (o Offset) Vertical() (Side, int, bool) {
	if v, ok := o[SideTop]; ok {
		return SideTop, v, true
	}
	if v, ok := o[SideBottom]; ok {
		return SideBottom, v, true
	}
	return "", 0, false
}

// leadingSide is the edge text starts from.
func leadingSide(dir Direction) Side {
	if dir == RTL {
		return SideRight
	}
	return SideLeft
}

// SubMenuOffset anchors a nested panel flush with the top of its triggering
// item and pushed out by the item's width, so panels cascade away from the
// leading edge.
func SubMenuOffset(item Rect, dir Direction) Offset {
	return newOffset(SideTop, 0, leadingSide(dir), item.Width)
}

// RootOffset anchors the root panel to the toggle button. Horizontal values
// measured against the right edge are distances from the viewport's right
// side, vertical values against the bottom edge are distances from the
// viewport's bottom.
func RootOffset(button Rect, viewport Size, placement Placement, dir Direction) Offset {
	fromRight := func(x int) int { return viewport.Width - x }
	if dir == RTL {
		switch placement {
		case PlacementBottom:
			return newOffset(SideTop, button.Bottom(), SideRight, fromRight(button.Right()))
		case PlacementTop:
			return newOffset(SideBottom, viewport.Height-button.Top(), SideRight, fromRight(button.Right()))
		case PlacementStart:
			return newOffset(SideTop, button.Top(), SideLeft, button.Right())
		case PlacementEnd:
			return newOffset(SideTop, button.Top(), SideRight, fromRight(button.Left()))
		default:
			return newOffset(SideTop, button.Top(), SideRight, fromRight(button.Right()))
		}
	}
	switch placement {
	case PlacementBottom:
		return newOffset(SideTop, button.Bottom(), SideLeft, button.Left())
	case PlacementTop:
		return newOffset(SideBottom, viewport.Height-button.Top(), SideLeft, button.Left())
	case PlacementStart:
		return newOffset(SideTop, button.Top(), SideRight, fromRight(button.Left()))
	case PlacementEnd:
		return newOffset(SideTop, button.Top(), SideLeft, button.Right())
	default:
		return newOffset(SideTop, button.Top(), SideLeft, button.Left())
	}
}

// Resolve converts o into an absolute rectangle for a panel of the given size
// laid out inside container. Left/top values are measured from the
// container's left/top edge; right/bottom values from its right/bottom edge.
func (o Offset) Resolve(container Rect, panel Size) Rect {
	r := Rect{X: container.X, Y: container.Y, Width: panel.Width, Height: panel.Height}
	if side, v, ok := o.Horizontal(); ok {
		if side == SideLeft {
			r.X = container.Left() + v
		} else {
			r.X = container.Right() - v - panel.Width
		}
	}
	if side, v, ok := o.Vertical(); ok {
		if side == SideTop {
			r.Y = container.Top() + v
		} else {
			r.Y = container.Bottom() - v - panel.Height
		}
	}
	return r
}
