package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCuboid(t *testing.T, a, b, c, d Point) *Cuboid {
	t.Helper()
	cu, err := NewCuboid(a, b, c, d)
	require.NoError(t, err)
	return cu
}

func TestIsCuboid(t *testing.T) {
	for idx, tc := range []struct {
		name       string
		a, b, c, d Point
		orthogonal bool
		faceHeight bool
	}{
		{"axis aligned", Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(0, 0, 4), true, true},
		{"offset", Pt(1, 1, 1), Pt(1, 3, 1), Pt(4, 1, 1), Pt(1, 1, 5), true, true},
		{"rotated", Pt(0, 0, 0), Pt(1, 1, 0), Pt(-1, 1, 0), Pt(0, 0, 2), true, true},
		{"noise", Pt(noise, 0, 0), Pt(0, 2, noise), Pt(3, -noise, 0), Pt(0, 0, 4+noise), true, true},
		{"D above B", Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(0, 2, 4), false, true},
		{"D above implied corner", Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(3, 2, 4), false, true},
		{"D below base", Pt(0, 0, 5), Pt(0, 2, 5), Pt(3, 0, 5), Pt(3, 0, 1), false, true},
		{"D not above a corner", Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(1, 1, 4), false, false},
		{"D in base plane", Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(3, 2, 0), false, false},
		{"three heights", Pt(0, 0, 0), Pt(0, 2, 1), Pt(3, 0, 0), Pt(0, 0, 4), false, false},
		{"base not a rectangle", Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 1, 0), Pt(0, 0, 4), false, false},
		{"duplicate A=B", Pt(0, 0, 0), Pt(0, 0, 0), Pt(3, 0, 0), Pt(0, 0, 4), false, false},
		{"all equal", Pt(1, 1, 1), Pt(1, 1, 1), Pt(1, 1, 1), Pt(1, 1, 1), false, false},
		{"2D points", Pt(0, 0), Pt(0, 2), Pt(3, 0), Pt(0, 0), false, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(t *testing.T) {
			require.Equal(t, tc.orthogonal, IsCuboid(tc.a, tc.b, tc.c, tc.d), "orthogonal form")
			require.Equal(t, tc.faceHeight, IsCuboidFaceHeight(tc.a, tc.b, tc.c, tc.d), "face+height form")
		})
	}
}

func TestCuboidValidateFaceHeight(t *testing.T) {
	cu := mustCuboid(t, Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(0, 2, 4))
	require.False(t, cu.Validate())
	require.True(t, cu.ValidateFaceHeight())
	require.InDelta(t, math.Sqrt(29), cu.DiagonalLength(), 1e-12)

	inside, err := cu.IsInsideOriented(Pt(1, 1, 1))
	require.NoError(t, err)
	require.True(t, inside)

	inside, err = cu.IsInsideOriented(Pt(1, 1, 4.5))
	require.NoError(t, err)
	require.False(t, inside)

	skewed := mustCuboid(t, Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(1, 1, 4))
	require.False(t, skewed.Validate())
	require.False(t, skewed.ValidateFaceHeight())
}

func TestEdgesOrthogonal(t *testing.T) {
	origin := Pt(0, 0, 0, 0)
	require.True(t, EdgesOrthogonal(origin, Pt(1, 0, 0, 0), Pt(0, 2, 0, 0), Pt(0, 0, 3, 0), Pt(0, 0, 0, 4)))
	require.False(t, EdgesOrthogonal(origin, Pt(1, 0, 0, 0), Pt(1, 2, 0, 0)))
	require.False(t, EdgesOrthogonal(origin))
	require.False(t, EdgesOrthogonal(origin, Pt(1, 0, 0)))
	require.True(t, EdgesOrthogonal(Pt(0, 0), Pt(0, 3), Pt(4, 0)))
}

func TestCuboidDiagonalLength(t *testing.T) {
	for idx, tc := range []struct {
		name       string
		a, b, c, d Point
		want       float64
	}{
		{"axis aligned", Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(0, 0, 4), math.Sqrt(29)},
		{"D above B", Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(0, 2, 4), math.Sqrt(29)},
		{"D above implied corner", Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(3, 2, 4), math.Sqrt(29)},
		{"right angle at B", Pt(0, 2, 0), Pt(0, 0, 0), Pt(3, 0, 0), Pt(3, 0, 4), math.Sqrt(29)},
		{"rotated", Pt(0, 0, 0), Pt(1, 1, 0), Pt(-1, 1, 0), Pt(0, 0, 2), math.Sqrt(8)},
		{"unit cube", Pt(5, 5, 5), Pt(6, 5, 5), Pt(5, 6, 5), Pt(5, 5, 6), math.Sqrt(3)},
		// degenerate base: length, width and vertical height from A
		{"duplicate A=B", Pt(0, 0, 0), Pt(0, 0, 0), Pt(3, 0, 0), Pt(0, 0, 4), 5},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(t *testing.T) {
			cu := mustCuboid(t, tc.a, tc.b, tc.c, tc.d)
			require.InDelta(t, tc.want, cu.DiagonalLength(), 1e-12)
		})
	}
}

func TestCuboidIsInside(t *testing.T) {
	axis := mustCuboid(t, Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(0, 0, 4))
	rotated := mustCuboid(t, Pt(0, 0, 0), Pt(1, 1, 0), Pt(-1, 1, 0), Pt(0, 0, 2))
	aboveB := mustCuboid(t, Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(0, 2, 4))

	for idx, tc := range []struct {
		name     string
		cu       *Cuboid
		p        Point
		bounds   bool
		oriented bool
	}{
		{"center", axis, Pt(1.5, 1, 2), true, true},
		{"origin corner", axis, Pt(0, 0, 0), true, true},
		{"far corner", axis, Pt(3, 2, 4), true, true},
		{"face", axis, Pt(3, 1, 1), true, true},
		{"outside x", axis, Pt(4, 1, 1), false, false},
		{"outside z", axis, Pt(1, 1, -0.1), false, false},
		{"rotated center", rotated, Pt(0, 1, 1), true, true},
		{"rotated far corner", rotated, Pt(0, 2, 2), false, true},
		{"rotated box corner", rotated, Pt(0.9, 0.1, 1), true, false},
		{"rotated above", rotated, Pt(0, 1, 2.5), false, false},
		{"above B interior", aboveB, Pt(1, 1, 1), true, true},
		{"above B outside", aboveB, Pt(1, 3, 1), false, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(t *testing.T) {
			inside, err := tc.cu.IsInside(tc.p)
			require.NoError(t, err)
			require.Equal(t, tc.bounds, inside, "bounds")

			inside, err = tc.cu.IsInsideOriented(tc.p)
			require.NoError(t, err)
			require.Equal(t, tc.oriented, inside, "oriented")
		})
	}
}

func TestCuboidIsInsideDimensionMismatch(t *testing.T) {
	cu := mustCuboid(t, Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(0, 0, 4))
	for _, p := range []Point{Pt(1, 1), Pt(1, 1, 1, 1)} {
		_, err := cu.IsInside(p)
		require.ErrorIs(t, err, ErrDimensionMismatch)
		_, err = cu.IsInsideOriented(p)
		require.ErrorIs(t, err, ErrDimensionMismatch)
	}
}

func TestCuboidInvalidOrientedFallsBackToBounds(t *testing.T) {
	cu := mustCuboid(t, Pt(0, 0, 0), Pt(0, 0, 0), Pt(3, 0, 0), Pt(0, 0, 4))
	require.False(t, cu.Validate())
	inside, err := cu.IsInsideOriented(Pt(1, 0, 1))
	require.NoError(t, err)
	require.True(t, inside)
}

func TestNewCuboid(t *testing.T) {
	_, err := NewCuboid(Pt(0, 0, 0), Pt(0, 2), Pt(3, 0, 0), Pt(0, 0, 4))
	require.ErrorIs(t, err, ErrDimensionMismatch)

	cu := mustCuboid(t, Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(0, 0, 4))
	require.Equal(t, KindCuboid, cu.Kind())
	require.Equal(t, 3, cu.Dim())
	require.Len(t, cu.Points(), 4)
}

func TestCuboidIdempotent(t *testing.T) {
	cu := mustCuboid(t, Pt(0, 0, 0), Pt(0, 2, 0), Pt(3, 0, 0), Pt(0, 0, 4))
	before := cu.Points()
	for i := 0; i < 5; i++ {
		require.True(t, cu.Validate())
		inside, err := cu.IsInside(Pt(1, 1, 1))
		require.NoError(t, err)
		require.True(t, inside)
		inside, err = cu.IsInsideOriented(Pt(1, 1, 1))
		require.NoError(t, err)
		require.True(t, inside)
		require.InDelta(t, math.Sqrt(29), cu.DiagonalLength(), 1e-12)
	}
	require.Equal(t, before, cu.Points())
}
