package geometry

import (
	"math"
	"sort"
)

// Cuboid is defined by four corners in 3-space: A, B, C on one face and D
// giving the height.
type Cuboid struct {
	pts []Point
}

// NewCuboid returns a Cuboid over copies of a, b, c and d, which must all be
// 3D.
func NewCuboid(a, b, c, d Point) (*Cuboid, error) {
	if err := CheckDims(dim3, a, b, c, d); err != nil {
		return nil, err
	}
	return &Cuboid{pts: copyPoints(a, b, c, d)}, nil
}

func (c *Cuboid) Kind() Kind { return KindCuboid }

func (c *Cuboid) Dim() int { return dim3 }

// Points returns copies of the defining points A, B, C, D.
func (c *Cuboid) Points() []Point { return copyPoints(c.pts...) }

// Validate reports whether the edges from A to B, C and D are mutually
// perpendicular.
func (c *Cuboid) Validate() bool {
	return IsCuboid(c.pts[0], c.pts[1], c.pts[2], c.pts[3])
}

// ValidateFaceHeight is Validate using the face+height form: A, B, C must be
// a corner of a base face parallel to the xy plane and D must sit directly
// above or below one of its four corners.
func (c *Cuboid) ValidateFaceHeight() bool {
	return IsCuboidFaceHeight(c.pts[0], c.pts[1], c.pts[2], c.pts[3])
}

// IsInside is the bounding-box test over the four defining points, edges
// included.
func (c *Cuboid) IsInside(p Point) (bool, error) {
	if err := CheckDims(dim3, p); err != nil {
		return false, err
	}
	return BoundsOf(c.pts...).Contains(p), nil
}

// IsInsideOriented tests p against the six face planes of the box, so it is
// exact for cuboids that are not axis-aligned. It falls back to IsInside when
// the points do not describe a box.
func (c *Cuboid) IsInsideOriented(p Point) (bool, error) {
	if err := CheckDims(dim3, p); err != nil {
		return false, err
	}
	origin, e0, e1, e2, ok := c.frame()
	if !ok {
		return BoundsOf(c.pts...).Contains(p), nil
	}
	faces := boxFaces(glVec3(origin), glVec3(e0), glVec3(e1), glVec3(e2))
	if faces == nil {
		return BoundsOf(c.pts...).Contains(p), nil
	}
	margin := Epsilon * math.Max(1, c.DiagonalLength())
	return IsPointInsidePlanes(planesOf(faces), glVec3(p), margin), nil
}

// DiagonalLength returns sqrt(length² + width² + height²). Height is the
// distance of D from the base face, which is not |AD| when D sits above a
// corner other than A.
func (c *Cuboid) DiagonalLength() float64 {
	if _, e0, e1, e2, ok := c.frame(); ok {
		return math.Sqrt(e0.Dot(e0) + e1.Dot(e1) + e2.Dot(e2))
	}
	a, b, cc, d := c.pts[0], c.pts[1], c.pts[2], c.pts[3]
	length, width := dist(a, b), dist(a, cc)
	height := dist(a, a.WithElevation(d[2]))
	return math.Sqrt(length*length + width*width + height*height)
}

// frame returns a corner of the box and its three edge vectors. It accepts
// both the orthogonal-edges form and a base rectangle with D above it.
func (c *Cuboid) frame() (origin, e0, e1, e2 Point, ok bool) {
	a, b, cc, d := c.pts[0], c.pts[1], c.pts[2], c.pts[3]
	if IsCuboid(a, b, cc, d) {
		return a, b.Sub(a), cc.Sub(a), d.Sub(a), true
	}
	corner, u, v, ok := RightAngleCorner(a, b, cc)
	if !ok {
		return nil, nil, nil, nil, false
	}
	h, ok := normalComponent(corner, u, v, d)
	if !ok || h.Norm() <= Epsilon*math.Max(1, math.Max(u.Norm(), v.Norm())) {
		return nil, nil, nil, nil, false
	}
	return corner, u, v, h, true
}

// IsCuboid reports whether the edges from a to b, c and d are non-zero and
// mutually perpendicular.
func IsCuboid(a, b, c, d Point) bool {
	if CheckDims(dim3, a, b, c, d) != nil {
		return false
	}
	return EdgesOrthogonal(a, b, c, d)
}

// EdgesOrthogonal reports whether the edge vectors from origin to each of
// others are pairwise perpendicular. Any zero edge fails.
func EdgesOrthogonal(origin Point, others ...Point) bool {
	if len(others) == 0 {
		return false
	}
	edges := make([]Point, len(others))
	for i, p := range others {
		if len(p) != len(origin) {
			return false
		}
		edges[i] = p.Sub(origin)
		if edges[i].IsZero() {
			return false
		}
	}
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if !Orthogonal(edges[i], edges[j]) {
				return false
			}
		}
	}
	return true
}

// IsCuboidFaceHeight checks a cuboid given as a horizontal base corner a, b,
// c and a point d straight above one of the four base corners. Exactly two
// distinct heights may appear among the base corners and d.
func IsCuboidFaceHeight(a, b, c, d Point) bool {
	if CheckDims(dim3, a, b, c, d) != nil {
		return false
	}
	corner, u, v, ok := RightAngleCorner(a.Planar(), b.Planar(), c.Planar())
	if !ok {
		return false
	}
	p := corner.Add(u).Add(v).WithElevation(a[2])
	if distinctHeights(a, b, c, p, d) != 2 {
		return false
	}
	for _, base := range []Point{a, b, c, p} {
		if d.Equal(base.WithElevation(d[2])) {
			return true
		}
	}
	return false
}

func distinctHeights(pts ...Point) int {
	zs := make([]float64, len(pts))
	for i, p := range pts {
		zs[i] = p[2]
	}
	sort.Float64s(zs)
	n := 1
	for i := 1; i < len(zs); i++ {
		if !ApproxEqual(zs[i-1], zs[i]) {
			n++
		}
	}
	return n
}
