package bsp

import (
	"sync/atomic"

	"github.com/aukilabs/bsp/geometry"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Parallel subtree builds only fork near the root and only when both
// sides carry enough work to pay for the goroutine.
const (
	parallelDepthLimit  = 3
	parallelMinPolygons = 128
)

// buildPolygon pairs an input polygon with its supporting plane. The
// plane is derived once; split pieces inherit it, so a vertex is never
// reclassified against a slightly different plane later in the build.
type buildPolygon struct {
	poly  geometry.Polygon
	plane geometry.Plane
}

type builder struct {
	cfg     Config
	id      string
	splits  atomic.Int64
	dropped int64
}

// Build partitions a polygon soup into an immutable tree. Polygons
// that cannot yield a valid plane are dropped with a diagnostic;
// configuration and depth-ceiling failures abort the build with no
// partial tree.
func Build(polygons []geometry.Polygon, cfg Config) (*Tree, error) {
	buildsStarted.Inc()

	if err := cfg.validate(); err != nil {
		buildErrors.With(prometheus.Labels{errTypeLabel: errors.Type(err)}).Inc()
		return nil, err
	}

	b := &builder{cfg: cfg, id: uuid.NewString()}

	polys := make([]buildPolygon, 0, len(polygons))
	for _, p := range polygons {
		plane, err := geometry.PlaneFromPolygon(p, cfg.Epsilon)
		if err != nil {
			b.dropped++
			polygonsDropped.Inc()
			logs.WithTag("build_id", b.id).Warn(err)
			continue
		}
		polys = append(polys, buildPolygon{poly: p, plane: plane})
	}

	root, err := b.build(polys, 0, false)
	if err != nil {
		buildErrors.With(prometheus.Labels{errTypeLabel: errors.Type(err)}).Inc()
		return nil, err
	}

	buildsCompleted.Inc()
	return newTree(b, root), nil
}

// build is the recursive fold. solid is the region tag an empty leaf
// gets: reaching an empty set behind a wall means solid matter, in
// front of one means open space.
func (b *builder) build(polys []buildPolygon, depth int, solid bool) (*Node, error) {
	if depth > maxSafeDepth {
		return nil, errors.New("recursion passed the depth safety ceiling").
			WithType(ErrTypeTreeTooDeep).
			WithTag("build_id", b.id).
			WithTag("depth", depth)
	}

	if len(polys) == 0 {
		return newLeaf(nil, solid), nil
	}
	if len(polys) <= b.cfg.LeafSizeFloor {
		return newLeaf(polygonsOf(polys), false), nil
	}
	if b.cfg.MaxDepth > 0 && depth >= b.cfg.MaxDepth {
		return newLeaf(polygonsOf(polys), false), nil
	}

	plane, ok := selectSplitter(polys, b.cfg)
	if !ok {
		// Everything left is coplanar.
		return newLeaf(polygonsOf(polys), false), nil
	}

	node := &Node{Plane: plane}

	// The selected plane supports at least one polygon of the set,
	// which lands in the coplanar lists below. Both recursions
	// therefore see strictly fewer polygons and the build terminates.
	var front, back []buildPolygon
	for _, p := range polys {
		frontPiece, backPiece, coplanar := geometry.SplitPolygon(p.poly, plane, b.cfg.Epsilon)
		if coplanar {
			if p.plane.Normal.Dot(plane.Normal) >= 0 {
				node.CoplanarFront = append(node.CoplanarFront, p.poly)
			} else {
				node.CoplanarBack = append(node.CoplanarBack, p.poly)
			}
			continue
		}

		if frontPiece != nil && backPiece != nil {
			b.splits.Add(1)
			polygonsSplit.Inc()
		}
		if frontPiece != nil {
			front = append(front, buildPolygon{poly: *frontPiece, plane: p.plane})
		}
		if backPiece != nil {
			back = append(back, buildPolygon{poly: *backPiece, plane: p.plane})
		}
	}

	if b.cfg.Parallel && depth < parallelDepthLimit &&
		len(front) >= parallelMinPolygons && len(back) >= parallelMinPolygons {
		type result struct {
			node *Node
			err  error
		}
		frontDone := make(chan result, 1)
		go func() {
			n, err := b.build(front, depth+1, false)
			frontDone <- result{n, err}
		}()

		backNode, backErr := b.build(back, depth+1, true)
		frontRes := <-frontDone
		if frontRes.err != nil {
			return nil, frontRes.err
		}
		if backErr != nil {
			return nil, backErr
		}
		node.Front = frontRes.node
		node.Back = backNode
		return node, nil
	}

	var err error
	if node.Front, err = b.build(front, depth+1, false); err != nil {
		return nil, err
	}
	if node.Back, err = b.build(back, depth+1, true); err != nil {
		return nil, err
	}
	return node, nil
}

func polygonsOf(polys []buildPolygon) []geometry.Polygon {
	out := make([]geometry.Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.poly
	}
	return out
}
