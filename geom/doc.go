// Package geom provides the 2D vector value type used across Glint.
//
// Vec2 is a plain float64 pair with value semantics: every operation returns
// a fresh vector and never modifies an operand, so values are safe to share
// freely, including across goroutines.
//
// Numeric behavior is IEEE-754 throughout. Components may hold infinities or
// NaN; arithmetic propagates them instead of rejecting them. Division by a
// zero component yields Inf/NaN, and normalizing the zero vector yields
// (NaN, NaN) — none of these are errors.
//
// Positional access is 0-based: index 0 is x, index 1 is y. Traversal
// (Map, Fold, iteration) always visits x before y.
package geom
