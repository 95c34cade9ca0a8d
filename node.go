package bsp

import "github.com/aukilabs/bsp/geometry"

// Node is either an internal splitting node or a leaf. Leaf
// discriminates the two shapes; the remaining fields are only valid
// for the shape they belong to.
type Node struct {
	// Internal node fields.
	Plane geometry.Plane
	Front *Node
	Back  *Node

	// CoplanarFront holds polygons on the splitting plane whose
	// normals agree with the plane normal. CoplanarBack holds the ones
	// whose normals oppose it.
	CoplanarFront []geometry.Polygon
	CoplanarBack  []geometry.Polygon

	// Leaf fields.
	Leaf     bool
	Solid    bool
	Polygons []geometry.Polygon
}

func newLeaf(polygons []geometry.Polygon, solid bool) *Node {
	return &Node{Leaf: true, Solid: solid, Polygons: polygons}
}
