package bsp

import (
	"github.com/aukilabs/bsp/geometry"
	"github.com/segmentio/encoding/json"
)

// Classification is the verdict of a point query: the point sits in
// solid matter or in open space.
type Classification int

const (
	ClassEmpty Classification = iota
	ClassSolid
)

func (c Classification) String() string {
	if c == ClassSolid {
		return "solid"
	}
	return "empty"
}

// TraversalOrder selects the visit order of Traverse relative to the
// viewpoint.
type TraversalOrder int

const (
	FrontToBack TraversalOrder = iota
	BackToFront
)

// Partition is the query surface of a built tree. Implementations must
// be safe for unlimited concurrent callers.
type Partition interface {
	ClassifyPoint(point geometry.Vector3) Classification
	Traverse(viewpoint geometry.Vector3, order TraversalOrder, visit func(geometry.Polygon) bool)
	IntersectSegment(segment geometry.Segment) []Hit

	// debug stuff:
	DebugInfo() DebugInfo
}

// Stats describes the shape of a finished build.
type Stats struct {
	InternalNodes int
	Leaves        int

	// PolygonsStored counts every polygon held anywhere in the tree:
	// leaf polygons plus the coplanar polygons attached to internal
	// nodes.
	PolygonsStored int

	Splits          int
	DroppedPolygons int
	Depth           int
}

// DebugInfo is the JSON-ready view of a tree's Stats plus its build id.
type DebugInfo struct {
	BuildID         string `json:"build_id"`
	InternalNodes   int    `json:"internal_nodes"`
	Leaves          int    `json:"leaves"`
	PolygonsStored  int    `json:"polygons_stored"`
	Splits          int    `json:"splits"`
	DroppedPolygons int    `json:"dropped_polygons"`
	Depth           int    `json:"depth"`
}

func (d DebugInfo) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// Tree is an immutable binary space partition. It is never mutated
// after Build returns; rebuild to change it.
type Tree struct {
	id      string
	epsilon float64
	root    *Node
	stats   Stats
}

var _ Partition = (*Tree)(nil)

func newTree(b *builder, root *Node) *Tree {
	t := &Tree{
		id:      b.id,
		epsilon: b.cfg.Epsilon,
		root:    root,
	}
	t.stats.Splits = int(b.splits.Load())
	t.stats.DroppedPolygons = int(b.dropped)
	collectStats(root, 0, &t.stats)
	nodesProduced.Add(float64(t.stats.InternalNodes + t.stats.Leaves))
	return t
}

func collectStats(node *Node, depth int, stats *Stats) {
	if depth > stats.Depth {
		stats.Depth = depth
	}
	if node.Leaf {
		stats.Leaves++
		stats.PolygonsStored += len(node.Polygons)
		return
	}
	stats.InternalNodes++
	stats.PolygonsStored += len(node.CoplanarFront) + len(node.CoplanarBack)
	collectStats(node.Front, depth+1, stats)
	collectStats(node.Back, depth+1, stats)
}

// ID is the build id, also found on build diagnostics.
func (t *Tree) ID() string {
	return t.id
}

// Root exposes the root node for inspection. Callers must not mutate
// the returned structure.
func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Stats() Stats {
	return t.stats
}

func (t *Tree) DebugInfo() DebugInfo {
	return DebugInfo{
		BuildID:         t.id,
		InternalNodes:   t.stats.InternalNodes,
		Leaves:          t.stats.Leaves,
		PolygonsStored:  t.stats.PolygonsStored,
		Splits:          t.stats.Splits,
		DroppedPolygons: t.stats.DroppedPolygons,
		Depth:           t.stats.Depth,
	}
}
