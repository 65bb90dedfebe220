// Package geometry places menu panels relative to their anchors. Coordinates
// are terminal cells with the origin at the top-left corner of the viewport.
package geometry

// Rect is a bounding box. The zero value stands in for anything that has not
// been measured yet.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

func (r Rect) Top() int    { return r.Y }
func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Area returns Width*Height, treating negative sizes as empty.
func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Clamp shifts r so it stays inside the viewport where possible. A rectangle
// larger than the viewport is pinned to the origin.
func Clamp(r Rect, viewport Size) Rect {
	if viewport.Width > 0 {
		if r.Right() > viewport.Width {
			r.X = viewport.Width - r.Width
		}
		if r.X < 0 {
			r.X = 0
		}
	}
	if viewport.Height > 0 {
		if r.Bottom() > viewport.Height {
			r.Y = viewport.Height - r.Height
		}
		if r.Y < 0 {
			r.Y = 0
		}
	}
	return r
}
