package geometry_test

import (
	"fmt"

	"shapecheck/src/physics/geometry"
)

func ExampleRectangle() {
	r, err := geometry.NewRectangle(geometry.Pt(0, 0), geometry.Pt(0, 3), geometry.Pt(4, 0))
	if err != nil {
		panic(err)
	}
	inside, _ := r.IsInside(geometry.Pt(2, 1.5))
	edge, _ := r.IsInside(geometry.Pt(0, 1.5))
	outside, _ := r.IsInside(geometry.Pt(5, 5))

	fmt.Println(r.Validate(), r.DiagonalLength())
	fmt.Println(inside, edge, outside)
	// Output:
	// true 5
	// true true false
}

func ExampleFourthVertex() {
	p, ok := geometry.FourthVertex(geometry.Pt(0, 0), geometry.Pt(0, 3), geometry.Pt(4, 0))
	fmt.Println(p, ok)
	// Output:
	// (4, 3) true
}

func ExampleCuboid_DiagonalLength() {
	c, err := geometry.NewCuboid(
		geometry.Pt(0, 0, 0),
		geometry.Pt(0, 2, 0),
		geometry.Pt(3, 0, 0),
		geometry.Pt(0, 0, 4),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Validate())
	fmt.Printf("%.4f\n", c.DiagonalLength())
	// Output:
	// true
	// 5.3852
}
