// Package physics provides axis-aligned bounding box math for the game world.
package physics

// Rect is an axis-aligned rectangle in world units. (X, Y) is the bottom-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o intersect with positive area.
// Rectangles that only share an edge or a corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Clamp returns v limited to the range [lo, hi].
// If hi < lo, lo wins so the result is always a valid left edge.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
