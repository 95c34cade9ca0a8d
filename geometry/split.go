package geometry

// SplitPolygon cuts a polygon by a plane. It returns the piece in front
// of the plane and the piece behind it; either may be nil. coplanar is
// true when the polygon lies on the plane within epsilon, in which case
// both pieces are nil and the caller decides where the polygon goes.
//
// Winding order and the payload tag are preserved on both pieces. A
// piece that would end up with fewer than 3 distinct vertices is
// dropped rather than emitted degenerate.
func SplitPolygon(p Polygon, pl Plane, epsilon float64) (front, back *Polygon, coplanar bool) {
	switch pl.ClassifyPolygon(p, epsilon) {
	case PolygonCoplanar:
		return nil, nil, true
	case PolygonFront:
		piece := p
		return &piece, nil, false
	case PolygonBack:
		piece := p
		return nil, &piece, false
	}

	frontVerts := make([]Vector3, 0, len(p.Vertices)+1)
	backVerts := make([]Vector3, 0, len(p.Vertices)+1)

	for i, current := range p.Vertices {
		next := p.Vertices[(i+1)%len(p.Vertices)]

		currentSide := pl.ClassifyPoint(current, epsilon)
		nextSide := pl.ClassifyPoint(next, epsilon)

		switch currentSide {
		case SideFront:
			frontVerts = append(frontVerts, current)
		case SideBack:
			backVerts = append(backVerts, current)
		case SideOn:
			// Boundary vertices belong to both pieces.
			frontVerts = append(frontVerts, current)
			backVerts = append(backVerts, current)
		}

		// The edge crosses the plane only when its endpoints sit on
		// strictly opposite sides; edges touching the plane were
		// already handled through the SideOn case above.
		if (currentSide == SideFront && nextSide == SideBack) ||
			(currentSide == SideBack && nextSide == SideFront) {
			da := pl.SignedDistance(current)
			db := pl.SignedDistance(next)
			t := da / (da - db)
			crossing := Lerp(current, next, t)
			frontVerts = append(frontVerts, crossing)
			backVerts = append(backVerts, crossing)
		}
	}

	frontVerts = dedupVertices(frontVerts, epsilon)
	backVerts = dedupVertices(backVerts, epsilon)

	if len(frontVerts) >= 3 {
		front = &Polygon{Vertices: frontVerts, Tag: p.Tag}
	}
	if len(backVerts) >= 3 {
		back = &Polygon{Vertices: backVerts, Tag: p.Tag}
	}
	return front, back, false
}
