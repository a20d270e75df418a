package geometry

const (
	// Epsilon is the relative tolerance for length and orthogonality checks.
	Epsilon = 1e-9

	// AreaEpsilon is the relative tolerance when comparing summed triangle
	// areas against a rectangle's area.
	AreaEpsilon = 1e-6
)

const (
	dim2 = 2
	dim3 = 3

	rectanglePoints = 3
	cuboidPoints    = 4
)
