package bsp

import (
	"math"

	"github.com/aukilabs/bsp/geometry"
)

// candidateSampleLimit bounds how many candidate planes a single
// selectSplitter call evaluates. Small sets are evaluated in full;
// larger ones are sampled evenly across the input order.
const candidateSampleLimit = 64

// selectSplitter scores one candidate plane per sampled polygon and
// picks the cheapest:
//
//	cost = SplitPenalty*straddling + BalancePenalty*|front-back|
//
// Ties keep the earliest candidate in input order, so identical input
// produces an identical tree. ok is false when no candidate partitions
// the set, which happens exactly when all remaining polygons are
// coplanar; the caller makes a leaf.
func selectSplitter(polys []buildPolygon, cfg Config) (best geometry.Plane, ok bool) {
	step := 1
	if len(polys) > candidateSampleLimit {
		step = len(polys) / candidateSampleLimit
	}

	bestCost := math.MaxFloat64
	var tried []geometry.Plane

candidates:
	for i := 0; i < len(polys); i += step {
		plane := polys[i].plane

		// Planes already scored are skipped, either orientation.
		for _, t := range tried {
			if plane.EqualWithEpsilon(t, cfg.Epsilon) ||
				plane.Flipped().EqualWithEpsilon(t, cfg.Epsilon) {
				continue candidates
			}
		}
		tried = append(tried, plane)

		var front, back, straddling int
		for _, p := range polys {
			switch plane.ClassifyPolygon(p.poly, cfg.Epsilon) {
			case geometry.PolygonFront:
				front++
			case geometry.PolygonBack:
				back++
			case geometry.PolygonSpanning:
				straddling++
				// Too many splits already, no balance term can
				// save this candidate.
				if cfg.SplitPenalty*float64(straddling) > bestCost {
					continue candidates
				}
			}
		}

		if front == 0 && back == 0 && straddling == 0 {
			// The candidate does not partition anything.
			continue
		}

		cost := cfg.SplitPenalty*float64(straddling) +
			cfg.BalancePenalty*math.Abs(float64(front-back))
		if cost < bestCost {
			bestCost = cost
			best = plane
			ok = true
		}
	}

	return best, ok
}
