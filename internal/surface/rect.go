package surface

// Rect is an axis-aligned rectangle in document cell coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Left returns the leading horizontal edge.
func (r Rect) Left() int { return r.X }

// Top returns the leading vertical edge.
func (r Rect) Top() int { return r.Y }

// Right returns the trailing horizontal edge (exclusive).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the trailing vertical edge (exclusive).
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
