// Package geom holds the integer screen geometry shared by the simulation.
package geom

// Vector2i is an integer (x, y) pair used for positions and sizes.
type Vector2i struct {
	X, Y int
}

// Rect is an axis-aligned box with a top-left origin. Y grows downward.
type Rect struct {
	Pos  Vector2i
	Size Vector2i
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{Pos: Vector2i{X: x, Y: y}, Size: Vector2i{X: w, Y: h}}
}

func (r Rect) Left() int   { return r.Pos.X }
func (r Rect) Top() int    { return r.Pos.Y }
func (r Rect) Right() int  { return r.Pos.X + r.Size.X }
func (r Rect) Bottom() int { return r.Pos.Y + r.Size.Y }

// Overlaps reports whether two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.Left() < other.Right() &&
		r.Right() > other.Left() &&
		r.Top() < other.Bottom() &&
		r.Bottom() > other.Top()
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
