package geometry

import "github.com/go-gl/mathgl/mgl64"

// IsPointInsidePlanes reports whether point is on the inner side of every
// plane, allowing it to sit up to margin outside.
func IsPointInsidePlanes(planes []mgl64.Vec4, point mgl64.Vec3, margin float64) bool {
	for i := 0; i < len(planes); i++ {
		n1 := planes[i]
		dist := (n1.Vec3().Dot(point) + n1.W()) - margin
		if dist > 0 {
			return false
		}
	}
	return true
}

// AreVerticesBehindPlane reports whether every vertex is on the inner side
// of plane, within margin.
func AreVerticesBehindPlane(plane mgl64.Vec4, vertices []mgl64.Vec3, margin float64) bool {
	for i := 0; i < len(vertices); i++ {
		dist := (plane.Vec3().Dot(vertices[i]) + plane.W()) - margin
		if dist > 0 {
			return false
		}
	}
	return true
}

// planesOf collects the plane equations of faces.
func planesOf(faces []*Face) []mgl64.Vec4 {
	planes := make([]mgl64.Vec4, len(faces))
	for i, f := range faces {
		planes[i] = f.Plane()
	}
	return planes
}
