package bsp

import (
	"sort"

	"github.com/aukilabs/bsp/geometry"
)

// Hit is one polygon crossed by a segment, with the crossing point and
// its parameter along the segment.
type Hit struct {
	Polygon geometry.Polygon
	Point   geometry.Vector3
	T       float64
}

// ClassifyPoint descends to the leaf containing the point and returns
// its region tag. On-plane ties descend front first, so repeated calls
// always return the same result.
func (t *Tree) ClassifyPoint(point geometry.Vector3) Classification {
	node := t.root
	for !node.Leaf {
		if node.Plane.ClassifyPoint(point, t.epsilon) == geometry.SideBack {
			node = node.Back
		} else {
			node = node.Front
		}
	}
	if node.Solid {
		return ClassSolid
	}
	return ClassEmpty
}

// Traverse visits every polygon stored in the tree exactly once, in
// painter's-algorithm order relative to the viewpoint: at each internal
// node the near subtree, then the node's coplanar polygons (front
// facing before back facing), then the far subtree; BackToFront swaps
// near and far. visit returning false stops the walk early.
func (t *Tree) Traverse(viewpoint geometry.Vector3, order TraversalOrder, visit func(geometry.Polygon) bool) {
	t.traverse(t.root, viewpoint, order, visit)
}

func (t *Tree) traverse(node *Node, viewpoint geometry.Vector3, order TraversalOrder, visit func(geometry.Polygon) bool) bool {
	if node.Leaf {
		for _, p := range node.Polygons {
			if !visit(p) {
				return false
			}
		}
		return true
	}

	near, far := node.Front, node.Back
	if node.Plane.ClassifyPoint(viewpoint, t.epsilon) == geometry.SideBack {
		near, far = node.Back, node.Front
	}
	if order == BackToFront {
		near, far = far, near
	}

	if !t.traverse(near, viewpoint, order, visit) {
		return false
	}
	for _, p := range node.CoplanarFront {
		if !visit(p) {
			return false
		}
	}
	for _, p := range node.CoplanarBack {
		if !visit(p) {
			return false
		}
	}
	return t.traverse(far, viewpoint, order, visit)
}

// IntersectSegment returns every polygon the segment crosses, ordered
// by travel along the segment. Both sides of a splitting plane are
// descended only where the segment actually straddles it.
//
// Only true crossings count: a segment whose endpoint merely lands on
// a polygon's plane, within epsilon, grazes the surface and is not
// reported. Callers probing contact with a surface should extend the
// segment past it.
func (t *Tree) IntersectSegment(segment geometry.Segment) []Hit {
	return t.intersect(t.root, segment, 0, 1, nil)
}

func (t *Tree) intersect(node *Node, seg geometry.Segment, t0, t1 float64, hits []Hit) []Hit {
	if node.Leaf {
		return t.intersectLeaf(node, seg, t0, t1, hits)
	}

	a := seg.PointAt(t0)
	b := seg.PointAt(t1)
	sideA := node.Plane.ClassifyPoint(a, t.epsilon)
	sideB := node.Plane.ClassifyPoint(b, t.epsilon)

	// A sub-segment touching the plane (or lying in it) is not a
	// straddle; it stays on one side, front first on full ties.
	if sideA != geometry.SideBack && sideB != geometry.SideBack {
		return t.intersect(node.Front, seg, t0, t1, hits)
	}
	if sideA != geometry.SideFront && sideB != geometry.SideFront {
		return t.intersect(node.Back, seg, t0, t1, hits)
	}

	da := node.Plane.SignedDistance(a)
	db := node.Plane.SignedDistance(b)
	tMid := t0 + (t1-t0)*(da/(da-db))
	crossing := seg.PointAt(tMid)

	near, far := node.Front, node.Back
	if sideA == geometry.SideBack {
		near, far = node.Back, node.Front
	}

	hits = t.intersect(near, seg, t0, tMid, hits)
	for _, p := range node.CoplanarFront {
		if p.ContainsPoint(crossing, t.epsilon) {
			hits = append(hits, Hit{Polygon: p, Point: crossing, T: tMid})
		}
	}
	for _, p := range node.CoplanarBack {
		if p.ContainsPoint(crossing, t.epsilon) {
			hits = append(hits, Hit{Polygon: p, Point: crossing, T: tMid})
		}
	}
	return t.intersect(far, seg, tMid, t1, hits)
}

func (t *Tree) intersectLeaf(node *Node, seg geometry.Segment, t0, t1 float64, hits []Hit) []Hit {
	start := len(hits)
	a := seg.PointAt(t0)
	b := seg.PointAt(t1)

	for _, p := range node.Polygons {
		normal := p.Normal()
		if normal.Equal(geometry.Vector3{}) {
			continue
		}
		plane := geometry.NewPlane(p.Vertices[0], normal)

		sideA := plane.ClassifyPoint(a, t.epsilon)
		sideB := plane.ClassifyPoint(b, t.epsilon)
		if sideA == sideB || sideA == geometry.SideOn || sideB == geometry.SideOn {
			continue
		}

		da := plane.SignedDistance(a)
		db := plane.SignedDistance(b)
		tc := t0 + (t1-t0)*(da/(da-db))
		point := seg.PointAt(tc)
		if p.ContainsPoint(point, t.epsilon) {
			hits = append(hits, Hit{Polygon: p, Point: point, T: tc})
		}
	}

	// Leaf polygons carry no mutual ordering, the crossing parameter
	// supplies it.
	sort.Slice(hits[start:], func(i, j int) bool {
		return hits[start+i].T < hits[start+j].T
	})
	return hits
}
