package geometry

import "fmt"

// Kind tags the variant behind a Shape.
type Kind int

const (
	KindRectangle Kind = iota + 1
	KindCuboid
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCuboid:
		return "cuboid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is a rectangle or cuboid built from its defining points. A Shape
// never changes after construction, so every method may be called any number
// of times, from any goroutine, with the same result.
//
// IsInside and DiagonalLength are only meaningful once Validate has returned
// true; on an invalid shape they still answer, using the bounding box and the
// edges from the first point respectively.
type Shape interface {
	Kind() Kind
	Dim() int
	Points() []Point
	Validate() bool
	IsInside(p Point) (bool, error)
	DiagonalLength() float64
}

var (
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Cuboid)(nil)
)

// NewShape picks the variant from the number and dimension of points: three
// 2D points make a Rectangle, four 3D points make a Cuboid.
func NewShape(points []Point) (Shape, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrArity)
	}
	switch {
	case len(points) == rectanglePoints && CheckDims(dim2, points...) == nil:
		return NewRectangle(points[0], points[1], points[2])
	case len(points) == cuboidPoints && CheckDims(dim3, points...) == nil:
		return NewCuboid(points[0], points[1], points[2], points[3])
	}
	return nil, fmt.Errorf("%w: %d points of dimension %d", ErrUnknownShape, len(points), len(points[0]))
}

func copyPoints(pts ...Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Pt(p...)
	}
	return out
}
