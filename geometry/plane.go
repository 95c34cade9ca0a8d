package geometry

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// ErrTypeDegenerateGeometry tags errors for polygons that cannot yield
// a valid plane (collinear or fewer than 3 distinct vertices).
const ErrTypeDegenerateGeometry = "degenerate_geometry"

// Side is the classification of a point against a plane.
type Side int

const (
	SideOn Side = iota
	SideFront
	SideBack
)

func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	default:
		return "on"
	}
}

// PolygonSide is the classification of a whole polygon against a plane.
type PolygonSide int

const (
	PolygonCoplanar PolygonSide = iota
	PolygonFront
	PolygonBack
	PolygonSpanning
)

// Plane is the set of points p where Dot(Normal, p) == Dist. Normal is
// unit length. Front is the half-space the normal points into.
type Plane struct {
	Normal Vector3
	Dist   float64
}

func NewPlane(point Vector3, normal Vector3) Plane {
	n := Normalized(normal)
	return Plane{Normal: n, Dist: n.Dot(point)}
}

// PlaneFromPolygon derives the supporting plane of a polygon. It fails
// with a degenerate_geometry error when the vertices are collinear
// within epsilon or fewer than 3 remain after deduplication.
func PlaneFromPolygon(p Polygon, epsilon float64) (Plane, error) {
	distinct := dedupVertices(append([]Vector3(nil), p.Vertices...), epsilon)
	if len(distinct) < 3 {
		return Plane{}, errors.New("polygon has fewer than 3 distinct vertices").
			WithType(ErrTypeDegenerateGeometry).
			WithTag("vertex_count", len(p.Vertices)).
			WithTag("polygon_tag", p.Tag)
	}

	raw := newellNormal(distinct)
	if raw.Length() <= epsilon {
		return Plane{}, errors.New("polygon vertices are collinear").
			WithType(ErrTypeDegenerateGeometry).
			WithTag("vertex_count", len(p.Vertices)).
			WithTag("polygon_tag", p.Tag)
	}

	normal := Normalized(raw)
	return Plane{Normal: normal, Dist: normal.Dot(distinct[0])}, nil
}

// SignedDistance is positive in front of the plane, negative behind.
func (pl Plane) SignedDistance(point Vector3) float64 {
	return pl.Normal.Dot(point) - pl.Dist
}

// ClassifyPoint places a point on the front, the back, or on the plane.
// The same epsilon must be used for every classification within one
// build so a vertex always lands on the same side.
func (pl Plane) ClassifyPoint(point Vector3, epsilon float64) Side {
	d := pl.SignedDistance(point)
	switch {
	case d > epsilon:
		return SideFront
	case d < -epsilon:
		return SideBack
	default:
		return SideOn
	}
}

// ClassifyPolygon places a polygon relative to the plane by classifying
// every vertex.
func (pl Plane) ClassifyPolygon(p Polygon, epsilon float64) PolygonSide {
	var front, back bool
	for _, v := range p.Vertices {
		switch pl.ClassifyPoint(v, epsilon) {
		case SideFront:
			front = true
		case SideBack:
			back = true
		}
	}
	switch {
	case front && back:
		return PolygonSpanning
	case front:
		return PolygonFront
	case back:
		return PolygonBack
	default:
		return PolygonCoplanar
	}
}

// EqualWithEpsilon reports whether two planes describe the same
// oriented half-space partition, for deduplication only.
func (pl Plane) EqualWithEpsilon(other Plane, epsilon float64) bool {
	return pl.Normal.EqualWithEpsilon(other.Normal, epsilon) &&
		EqualWithEpsilon(pl.Dist, other.Dist, epsilon)
}

// Flipped is the same plane with front and back swapped.
func (pl Plane) Flipped() Plane {
	return Plane{Normal: Mul(pl.Normal, -1), Dist: -pl.Dist}
}
