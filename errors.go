package bsp

import "github.com/aukilabs/bsp/geometry"

// Error types attached with errors.WithType and matched with
// errors.IsType.
const (
	// ErrTypeInvalidConfiguration tags configuration errors reported
	// before any build work starts.
	ErrTypeInvalidConfiguration = "invalid_configuration"

	// ErrTypeTreeTooDeep tags builds aborted because recursion passed
	// the absolute safety ceiling. No partial tree is returned.
	ErrTypeTreeTooDeep = "tree_too_deep"

	// ErrTypeDegenerateGeometry tags per-polygon diagnostics for input
	// dropped during plane derivation. It never aborts a build.
	ErrTypeDegenerateGeometry = geometry.ErrTypeDegenerateGeometry
)
