package geometry

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
)

const testEpsilon = 1e-5

func unitSquareZ0(tag any) Polygon {
	return NewPolygon([]Vector3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}, tag)
}

func TestPlaneFromPolygon(t *testing.T) {
	t.Run("PlaneFromPolygon: unit square", func(t *testing.T) {
		plane, err := PlaneFromPolygon(unitSquareZ0(nil), testEpsilon)
		require.NoError(t, err)
		require.True(t, plane.Normal.EqualWithEpsilon(Vector3{0, 0, 1}, testEpsilon))
		require.True(t, EqualWithEpsilon(plane.Dist, 0, testEpsilon))
	})

	t.Run("PlaneFromPolygon: offset plane", func(t *testing.T) {
		p := NewPolygon([]Vector3{
			{0, 0, 3},
			{1, 0, 3},
			{0, 1, 3},
		}, nil)
		plane, err := PlaneFromPolygon(p, testEpsilon)
		require.NoError(t, err)
		require.True(t, EqualWithEpsilon(plane.Dist, 3, testEpsilon))
	})

	t.Run("PlaneFromPolygon: collinear vertices", func(t *testing.T) {
		p := NewPolygon([]Vector3{
			{0, 0, 0},
			{1, 0, 0},
			{2, 0, 0},
		}, "bad")
		_, err := PlaneFromPolygon(p, testEpsilon)
		require.Error(t, err)
		require.Equal(t, ErrTypeDegenerateGeometry, errors.Type(err))
	})

	t.Run("PlaneFromPolygon: duplicate vertices", func(t *testing.T) {
		p := NewPolygon([]Vector3{
			{0, 0, 0},
			{0, 0, 0},
			{1, 1, 1},
		}, nil)
		_, err := PlaneFromPolygon(p, testEpsilon)
		require.Error(t, err)
		require.True(t, errors.IsType(err, ErrTypeDegenerateGeometry))
	})
}

func TestClassifyPoint(t *testing.T) {
	plane := NewPlane(Vector3{0, 0, 0}, Vector3{0, 0, 1})

	require.Equal(t, SideFront, plane.ClassifyPoint(Vector3{0, 0, 1}, testEpsilon))
	require.Equal(t, SideBack, plane.ClassifyPoint(Vector3{0, 0, -1}, testEpsilon))
	require.Equal(t, SideOn, plane.ClassifyPoint(Vector3{5, -3, 0}, testEpsilon))

	// classification is stable within epsilon of the plane:
	require.Equal(t, SideOn, plane.ClassifyPoint(Vector3{0, 0, testEpsilon / 2}, testEpsilon))
	require.Equal(t, SideOn, plane.ClassifyPoint(Vector3{0, 0, -testEpsilon / 2}, testEpsilon))
}

func TestClassifyPolygon(t *testing.T) {
	plane := NewPlane(Vector3{0.5, 0, 0}, Vector3{1, 0, 0})

	t.Run("ClassifyPolygon: spanning", func(t *testing.T) {
		require.Equal(t, PolygonSpanning, plane.ClassifyPolygon(unitSquareZ0(nil), testEpsilon))
	})

	t.Run("ClassifyPolygon: front", func(t *testing.T) {
		p := NewPolygon([]Vector3{
			{2, 0, 0},
			{3, 0, 0},
			{3, 1, 0},
		}, nil)
		require.Equal(t, PolygonFront, plane.ClassifyPolygon(p, testEpsilon))
	})

	t.Run("ClassifyPolygon: back", func(t *testing.T) {
		p := NewPolygon([]Vector3{
			{-2, 0, 0},
			{-1, 0, 0},
			{-1, 1, 0},
		}, nil)
		require.Equal(t, PolygonBack, plane.ClassifyPolygon(p, testEpsilon))
	})

	t.Run("ClassifyPolygon: coplanar", func(t *testing.T) {
		p := NewPolygon([]Vector3{
			{0.5, 0, 0},
			{0.5, 1, 0},
			{0.5, 1, 1},
		}, nil)
		require.Equal(t, PolygonCoplanar, plane.ClassifyPolygon(p, testEpsilon))
	})
}

func TestPlaneEquality(t *testing.T) {
	a := NewPlane(Vector3{0, 0, 1}, Vector3{0, 0, 1})
	b := NewPlane(Vector3{7, -2, 1}, Vector3{0, 0, 1})
	c := NewPlane(Vector3{0, 0, 2}, Vector3{0, 0, 1})

	require.True(t, a.EqualWithEpsilon(b, testEpsilon))
	require.False(t, a.EqualWithEpsilon(c, testEpsilon))
	require.False(t, a.EqualWithEpsilon(a.Flipped(), testEpsilon))
	require.True(t, a.Flipped().Flipped().EqualWithEpsilon(a, testEpsilon))
}
