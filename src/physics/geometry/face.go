package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is a planar face of a box, spanned by two edge directions from an
// origin corner. Normal always points away from the box interior.
type Face struct {
	Origin mgl64.Vec3
	Dir0   mgl64.Vec3
	Dir1   mgl64.Vec3
	Normal mgl64.Vec3
}

// NewFace builds a face and orients its normal away from inner, a point
// inside the solid. It returns nil if the directions are parallel.
func NewFace(origin, dir0, dir1, inner mgl64.Vec3) *Face {
	f := &Face{Origin: origin, Dir0: dir0, Dir1: dir1}
	n := dir0.Cross(dir1)
	if n.Len() == 0 {
		return nil
	}
	n = n.Normalize()
	if n.Dot(inner.Sub(origin)) > 0 {
		n = n.Mul(-1)
	}
	f.Normal = n
	return f
}

// Plane returns the face's plane equation (nx, ny, nz, w); points p with
// n·p + w <= 0 lie on the inner side.
func (f *Face) Plane() mgl64.Vec4 {
	return f.Normal.Vec4(-f.Normal.Dot(f.Origin))
}

// boxFaces returns the six faces of the box with corner origin and mutually
// perpendicular edges e0, e1, e2. It returns nil when two edges are parallel
// or a face leaves a box corner on its outer side.
func boxFaces(origin, e0, e1, e2 mgl64.Vec3) []*Face {
	center := origin.Add(e0.Add(e1).Add(e2).Mul(0.5))
	pairs := [][3]mgl64.Vec3{
		{e0, e1, e2},
		{e1, e2, e0},
		{e2, e0, e1},
	}
	faces := make([]*Face, 0, 6)
	for _, pr := range pairs {
		near := NewFace(origin, pr[0], pr[1], center)
		far := NewFace(origin.Add(pr[2]), pr[0], pr[1], center)
		if near == nil || far == nil {
			return nil
		}
		faces = append(faces, near, far)
	}

	corners := boxCorners(origin, e0, e1, e2)
	margin := Epsilon * math.Max(1, e0.Add(e1).Add(e2).Len())
	for _, f := range faces {
		if !AreVerticesBehindPlane(f.Plane(), corners, margin) {
			return nil
		}
	}
	return faces
}

// boxCorners returns the eight corners of the box spanned by e0, e1, e2.
func boxCorners(origin, e0, e1, e2 mgl64.Vec3) []mgl64.Vec3 {
	corners := make([]mgl64.Vec3, 0, 8)
	for _, i := range []float64{0, 1} {
		for _, j := range []float64{0, 1} {
			for _, k := range []float64{0, 1} {
				corners = append(corners, origin.Add(e0.Mul(i)).Add(e1.Mul(j)).Add(e2.Mul(k)))
			}
		}
	}
	return corners
}
