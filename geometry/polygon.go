package geometry

// Polygon is an ordered loop of at least 3 vertices, assumed planar and
// non-self-intersecting. Tag is an opaque payload (for example a source
// face id) that is carried onto every piece the polygon is split into.
type Polygon struct {
	Vertices []Vector3
	Tag      any
}

func NewPolygon(vertices []Vector3, tag any) Polygon {
	return Polygon{Vertices: vertices, Tag: tag}
}

// Normal computes the polygon normal with Newell's method, which stays
// stable when individual vertex triples are nearly collinear. The result
// is normalized; it is the zero vector for degenerate input.
func (p Polygon) Normal() Vector3 {
	n := newellNormal(p.Vertices)
	n.NormalizeInPlace()
	return n
}

// newellNormal is the unnormalized Newell normal. Its magnitude is
// twice the polygon area, which makes it the right quantity to test
// for collinearity before normalization blows tiny normals up to unit
// length.
func newellNormal(vertices []Vector3) Vector3 {
	var n Vector3
	for i, current := range vertices {
		next := vertices[(i+1)%len(vertices)]
		n.X += (current.Y - next.Y) * (current.Z + next.Z)
		n.Y += (current.Z - next.Z) * (current.X + next.X)
		n.Z += (current.X - next.X) * (current.Y + next.Y)
	}
	return n
}

// Area is the polygon area computed as half the magnitude of the summed
// edge cross products. Exact for planar convex polygons.
func (p Polygon) Area() float64 {
	if len(p.Vertices) < 3 {
		return 0
	}
	var sum Vector3
	origin := p.Vertices[0]
	for i := 1; i < len(p.Vertices)-1; i++ {
		a := Sub(p.Vertices[i], origin)
		b := Sub(p.Vertices[i+1], origin)
		sum = Add(sum, Cross(a, b))
	}
	return sum.Length() / 2
}

// Centroid is the vertex average, sufficient for picking interior
// reference points of convex polygons.
func (p Polygon) Centroid() Vector3 {
	var c Vector3
	for _, v := range p.Vertices {
		c = Add(c, v)
	}
	if len(p.Vertices) > 0 {
		c = Mul(c, 1/float64(len(p.Vertices)))
	}
	return c
}

// dedupVertices removes consecutive vertices closer than epsilon,
// including the wrap-around pair. Splitting can emit such duplicates
// when a cut passes through an existing vertex.
func dedupVertices(vertices []Vector3, epsilon float64) []Vector3 {
	out := vertices[:0]
	for _, v := range vertices {
		if len(out) > 0 && v.EqualWithEpsilon(out[len(out)-1], epsilon) {
			continue
		}
		out = append(out, v)
	}
	if len(out) > 1 && out[0].EqualWithEpsilon(out[len(out)-1], epsilon) {
		out = out[:len(out)-1]
	}
	return out
}

// ContainsPoint reports whether a point on the polygon's plane lies
// inside the polygon. Valid for convex polygons: the point must be on
// the inner side of every edge, within epsilon.
func (p Polygon) ContainsPoint(point Vector3, epsilon float64) bool {
	normal := p.Normal()
	for i, current := range p.Vertices {
		next := p.Vertices[(i+1)%len(p.Vertices)]
		edge := Sub(next, current)
		toPoint := Sub(point, current)
		if Cross(edge, toPoint).Dot(normal) < -epsilon {
			return false
		}
	}
	return true
}
