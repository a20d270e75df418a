package geometry

import "math"

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min Point
	Max Point
}

// BoundsOf returns the smallest Bounds containing every point. All points
// must share a dimension.
func BoundsOf(pts ...Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: Pt(pts[0]...), Max: Pt(pts[0]...)}
	for _, p := range pts[1:] {
		b.Extend(p)
	}
	return b
}

// Extend expands the bounds to include a point.
func (b *Bounds) Extend(p Point) {
	for i, c := range p {
		b.Min[i] = math.Min(b.Min[i], c)
		b.Max[i] = math.Max(b.Max[i], c)
	}
}

// Contains returns true if p lies within the bounds, edges included.
func (b Bounds) Contains(p Point) bool {
	if len(p) != len(b.Min) {
		return false
	}
	for i, c := range p {
		if c < b.Min[i] || c > b.Max[i] {
			return false
		}
	}
	return true
}
