package bsp

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// maxSafeDepth is the absolute recursion ceiling, independent of the
// configured MaxDepth. Passing it aborts the build with a
// tree_too_deep error.
const maxSafeDepth = 128

// Config holds the constants of a single build. A build takes its own
// copy, so mutating a Config after Build returns has no effect on the
// tree that was produced.
type Config struct {
	// Epsilon is the distance within which a point counts as lying on
	// a plane. The same value is used for every classification of a
	// build.
	Epsilon float64

	// SplitPenalty is the cost of one polygon straddling a candidate
	// splitting plane.
	SplitPenalty float64

	// BalancePenalty is the cost per unit of front/back count
	// imbalance of a candidate splitting plane.
	BalancePenalty float64

	// LeafSizeFloor stops recursion once a polygon set is this small.
	LeafSizeFloor int

	// MaxDepth stops recursion at the given depth and stores the
	// remaining polygons in a leaf. 0 means uncapped; the absolute
	// safety ceiling still applies.
	MaxDepth int

	// Parallel builds independent front and back subtrees on separate
	// goroutines near the top of the tree.
	Parallel bool
}

// DefaultConfig favors fewer straddling splits over strict balance,
// trading tree depth for fewer duplicated faces.
func DefaultConfig() Config {
	return Config{
		Epsilon:        1e-5,
		SplitPenalty:   8,
		BalancePenalty: 1,
		LeafSizeFloor:  1,
	}
}

func (c Config) validate() error {
	if c.Epsilon <= 0 {
		return errors.New("epsilon must be positive").
			WithType(ErrTypeInvalidConfiguration).
			WithTag("epsilon", c.Epsilon)
	}
	if c.SplitPenalty < 0 {
		return errors.New("split penalty must not be negative").
			WithType(ErrTypeInvalidConfiguration).
			WithTag("split_penalty", c.SplitPenalty)
	}
	if c.BalancePenalty < 0 {
		return errors.New("balance penalty must not be negative").
			WithType(ErrTypeInvalidConfiguration).
			WithTag("balance_penalty", c.BalancePenalty)
	}
	if c.LeafSizeFloor < 1 {
		return errors.New("leaf size floor must be at least 1").
			WithType(ErrTypeInvalidConfiguration).
			WithTag("leaf_size_floor", c.LeafSizeFloor)
	}
	if c.MaxDepth < 0 {
		return errors.New("max depth must not be negative").
			WithType(ErrTypeInvalidConfiguration).
			WithTag("max_depth", c.MaxDepth)
	}
	return nil
}
