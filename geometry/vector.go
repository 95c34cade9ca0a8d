package geometry

import "math"

func EqualWithEpsilon(a float64, b float64, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

func (v1 Vector3) EqualWithEpsilon(v2 Vector3, epsilon float64) bool {
	return math.Abs(v1.X-v2.X) <= epsilon &&
		math.Abs(v1.Y-v2.Y) <= epsilon &&
		math.Abs(v1.Z-v2.Z) <= epsilon
}

func (v1 Vector3) Equal(v2 Vector3) bool {
	return v1.X == v2.X && v1.Y == v2.Y && v1.Z == v2.Z
}

func Add(a Vector3, b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a Vector3, b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func Mul(a Vector3, s float64) Vector3 {
	return Vector3{a.X * s, a.Y * s, a.Z * s}
}

// Lerp interpolates between a and b, t in [0, 1].
func Lerp(a Vector3, b Vector3, t float64) Vector3 {
	return Add(a, Mul(Sub(b, a), t))
}

func (a Vector3) Length() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

func (a *Vector3) NormalizeInPlace() {
	length := a.Length()
	if length != 0 {
		a.X /= length
		a.Y /= length
		a.Z /= length
	}
}

func Normalized(a Vector3) Vector3 {
	result := a
	result.NormalizeInPlace()
	return result
}

func (a Vector3) Dot(b Vector3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func Cross(a Vector3, b Vector3) Vector3 {
	return Vector3{a.Y*b.Z - a.Z*b.Y, a.Z*b.X - a.X*b.Z, a.X*b.Y - a.Y*b.X}
}

// Segment is a parametric line segment, t=0 at From and t=1 at To.
type Segment struct {
	From Vector3
	To   Vector3
}

func (s Segment) PointAt(t float64) Vector3 {
	return Lerp(s.From, s.To, t)
}
