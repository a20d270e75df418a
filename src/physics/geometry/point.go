package geometry

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Point is an ordered tuple of coordinates. Shapes use 2 or 3 of them.
type Point []float64

// Pt is a convenience constructor for Point. The coordinates are copied.
func Pt(coords ...float64) Point {
	return append(Point(nil), coords...)
}

// Dim returns the number of coordinates.
func (p Point) Dim() int {
	return len(p)
}

func (p Point) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both points have the same dimension and every
// coordinate agrees within Epsilon.
func (p Point) Equal(q Point) bool {
	return floats.EqualApprox(p, q, Epsilon)
}

// Add returns p+q. Both points must share a dimension.
func (p Point) Add(q Point) Point {
	return floats.AddTo(make(Point, len(p)), p, q)
}

// Sub returns p-q. Both points must share a dimension.
func (p Point) Sub(q Point) Point {
	return floats.SubTo(make(Point, len(p)), p, q)
}

func (p Point) Dot(q Point) float64 {
	return floats.Dot(p, q)
}

// Norm returns the Euclidean length of p taken as a vector.
func (p Point) Norm() float64 {
	return floats.Norm(p, 2)
}

// Planar returns a copy of the first two coordinates.
func (p Point) Planar() Point {
	return Pt(p[:dim2]...)
}

// WithElevation returns a copy of the planar coordinates of p with z
// appended as the third coordinate.
func (p Point) WithElevation(z float64) Point {
	return append(p.Planar(), z)
}

func (p Point) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) (float64, error) {
	if len(p) != len(q) {
		return 0, dimensionError(len(p), len(q))
	}
	return floats.Distance(p, q, 2), nil
}

// dist is Distance for callers that already checked dimensions.
func dist(p, q Point) float64 {
	return floats.Distance(p, q, 2)
}

// ApproxEqual reports whether a and b agree within Epsilon, scaled by their
// magnitude once it exceeds one.
func ApproxEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, Epsilon, Epsilon)
}

// Orthogonal reports whether u and v are perpendicular. A zero vector is
// never orthogonal to anything.
func Orthogonal(u, v Point) bool {
	nu, nv := u.Norm(), v.Norm()
	if nu == 0 || nv == 0 {
		return false
	}
	return math.Abs(u.Dot(v)) <= Epsilon*nu*nv
}
