package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/floats/scalar"
)

// Rectangle is defined by three corners A, B, C in 2-space. The fourth
// corner is implied and never stored.
type Rectangle struct {
	pts []Point
}

// NewRectangle returns a Rectangle over copies of a, b and c, which must all
// be 2D.
func NewRectangle(a, b, c Point) (*Rectangle, error) {
	if err := CheckDims(dim2, a, b, c); err != nil {
		return nil, err
	}
	return &Rectangle{pts: copyPoints(a, b, c)}, nil
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Dim() int { return dim2 }

// Points returns copies of the defining points A, B, C.
func (r *Rectangle) Points() []Point { return copyPoints(r.pts...) }

// Validate reports whether A, B, C are three corners of a rectangle.
func (r *Rectangle) Validate() bool {
	return IsRectangle(r.pts[0], r.pts[1], r.pts[2])
}

// Corners returns the four corners in boundary order, starting at the right
// angle. ok is false if A, B, C are not a rectangle corner.
func (r *Rectangle) Corners() (corners [4]Point, ok bool) {
	corner, u, v, ok := RightAngleCorner(r.pts[0], r.pts[1], r.pts[2])
	if !ok {
		return corners, false
	}
	return [4]Point{corner, corner.Add(u), corner.Add(u).Add(v), corner.Add(v)}, true
}

// Area returns the rectangle's area, or 0 if the points are not a rectangle.
func (r *Rectangle) Area() float64 {
	_, u, v, ok := RightAngleCorner(r.pts[0], r.pts[1], r.pts[2])
	if !ok {
		return 0
	}
	return u.Norm() * v.Norm()
}

// IsInside reports whether p lies in the rectangle, boundary included. It
// compares the areas of the four triangles p forms with the edges against
// the rectangle's area, so rotated rectangles are handled exactly.
func (r *Rectangle) IsInside(p Point) (bool, error) {
	if err := CheckDims(dim2, p); err != nil {
		return false, err
	}
	corners, ok := r.Corners()
	if !ok {
		return r.bounds().Contains(p), nil
	}
	area := r.Area()
	var sum float64
	for i := range corners {
		sum += triangleArea(corners[i], corners[(i+1)%len(corners)], p)
	}
	return scalar.EqualWithinRel(sum, area, AreaEpsilon), nil
}

// IsInsideBounds is the bounding-box test over A, B, C. It is exact only for
// axis-aligned rectangles.
func (r *Rectangle) IsInsideBounds(p Point) (bool, error) {
	if err := CheckDims(dim2, p); err != nil {
		return false, err
	}
	return r.bounds().Contains(p), nil
}

// DiagonalLength returns the length of the rectangle's diagonal, computed
// from the two edges meeting at the right angle.
func (r *Rectangle) DiagonalLength() float64 {
	a, b, c := r.pts[0], r.pts[1], r.pts[2]
	if _, u, v, ok := RightAngleCorner(a, b, c); ok {
		return math.Sqrt(u.Dot(u) + v.Dot(v))
	}
	ab, ac := b.Sub(a), c.Sub(a)
	return math.Sqrt(ab.Dot(ab) + ac.Dot(ac))
}

func (r *Rectangle) bounds() Bounds {
	return BoundsOf(r.pts...)
}

func triangleArea(a, b, c Point) float64 {
	ring := orb.Ring{
		{a[0], a[1]},
		{b[0], b[1]},
		{c[0], c[1]},
		{a[0], a[1]},
	}
	return math.Abs(planar.Area(ring))
}

// IsRectangle reports whether a, b, c form a right triangle, and so three
// corners of a rectangle. Lengths are compared within Epsilon. Repeated
// points never form a rectangle.
func IsRectangle(a, b, c Point) bool {
	return rightAngleAt(a, b, c) >= 0
}

// rightAngleAt returns the index (0, 1 or 2) of the vertex holding the right
// angle, or -1.
func rightAngleAt(a, b, c Point) int {
	if len(a) != len(b) || len(a) != len(c) {
		return -1
	}
	ab, bc, ac := dist(a, b), dist(b, c), dist(a, c)
	if ab == 0 || bc == 0 || ac == 0 {
		return -1
	}
	switch {
	case ApproxEqual(math.Hypot(ab, ac), bc):
		return 0
	case ApproxEqual(math.Hypot(ab, bc), ac):
		return 1
	case ApproxEqual(math.Hypot(ac, bc), ab):
		return 2
	}
	return -1
}

// RightAngleCorner reorders a right triangle so that corner holds the right
// angle and u, v are the edge vectors leaving it.
func RightAngleCorner(a, b, c Point) (corner, u, v Point, ok bool) {
	switch rightAngleAt(a, b, c) {
	case 0:
		return a, b.Sub(a), c.Sub(a), true
	case 1:
		return b, a.Sub(b), c.Sub(b), true
	case 2:
		return c, a.Sub(c), b.Sub(c), true
	}
	return nil, nil, nil, false
}

// FourthVertex completes the rectangle with its right angle at a. It returns
// false if b-a and c-a are not perpendicular.
func FourthVertex(a, b, c Point) (Point, bool) {
	if len(a) != len(b) || len(a) != len(c) {
		return nil, false
	}
	v1, v2 := b.Sub(a), c.Sub(a)
	if !Orthogonal(v1, v2) {
		return nil, false
	}
	return a.Add(v1).Add(v2), true
}
