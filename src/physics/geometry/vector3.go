package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// vec3 converts a 3D point to a gonum vector.
func vec3(p Point) r3.Vec {
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}

// glVec3 converts a 3D point to a mathgl vector.
func glVec3(p Point) mgl64.Vec3 {
	return mgl64.Vec3{p[0], p[1], p[2]}
}

// normalComponent returns the part of p-origin perpendicular to the plane
// spanned by u and v. ok is false when u and v do not span a plane.
func normalComponent(origin, u, v, p Point) (h Point, ok bool) {
	n := r3.Cross(vec3(u), vec3(v))
	if r3.Norm(n) == 0 {
		return nil, false
	}
	n = r3.Unit(n)
	w := r3.Scale(r3.Dot(r3.Sub(vec3(p), vec3(origin)), n), n)
	return Pt(w.X, w.Y, w.Z), true
}
