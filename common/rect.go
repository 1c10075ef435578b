package common

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether r and other overlap. Rectangles that only share
// an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
