package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadIndex reports a positional index outside {0, 1}.
	ErrBadIndex = errors.New("geom: component index out of range")
	// ErrShortSource reports a construction source with fewer than two components.
	ErrShortSource = errors.New("geom: source has fewer than two components")
)

// Vec2 is a 2D vector of float64 components.
type Vec2 struct {
	X, Y float64
}

// V returns the vector (x, y).
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Polar returns the unit vector at angle theta: (cos theta, sin theta).
func Polar(theta float64) Vec2 { return Vec2{X: math.Cos(theta), Y: math.Sin(theta)} }

// Zero returns (0, 0).
func Zero() Vec2 { return Vec2{} }

// UnitX returns (1, 0).
func UnitX() Vec2 { return Vec2{X: 1} }

// UnitY returns (0, 1).
func UnitY() Vec2 { return Vec2{Y: 1} }

// Inf returns (+Inf, +Inf).
func Inf() Vec2 { return Vec2{X: math.Inf(1), Y: math.Inf(1)} }

// NegInf returns (-Inf, -Inf).
func NegInf() Vec2 { return Vec2{X: math.Inf(-1), Y: math.Inf(-1)} }

// Components is the positional view a vector-like value exposes.
//
// Vec2 satisfies it, as can wider vector types. FromComponents only reads
// indices 0 and 1.
type Components interface {
	Len() int
	At(i int) (float64, error)
}

// FromComponents returns a Vec2 holding the first two components of src.
// It fails with ErrShortSource if src exposes fewer than two.
func FromComponents(src Components) (Vec2, error) {
	if src == nil || src.Len() < 2 {
		return Vec2{}, ErrShortSource
	}
	x, err := src.At(0)
	if err != nil {
		return Vec2{}, err
	}
	y, err := src.At(1)
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{X: x, Y: y}, nil
}

// Len reports the number of components. It is always 2.
func (Vec2) Len() int { return 2 }

// At returns the component at index i: 0 for x, 1 for y.
func (v Vec2) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrBadIndex, i)
}

// XY returns both components in order.
func (v Vec2) XY() (x, y float64) { return v.X, v.Y }

// String formats the vector as "(x y)" with %g components.
func (v Vec2) String() string { return fmt.Sprintf("(%g %g)", v.X, v.Y) }

// Neg returns (-x, -y).
func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Add returns the component-wise sum of v and w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns the component-wise difference of v and w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{X: v.X - w.X, Y: v.Y - w.Y} }

// Mul returns the component-wise (Hadamard) product of v and w.
func (v Vec2) Mul(w Vec2) Vec2 { return Vec2{X: v.X * w.X, Y: v.Y * w.Y} }

// Div returns the component-wise quotient of v and w. Zero divisors yield
// Inf/NaN components per IEEE, never an error.
func (v Vec2) Div(w Vec2) Vec2 { return Vec2{X: v.X / w.X, Y: v.Y / w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: s * v.X, Y: s * v.Y} }

// Half returns v scaled by 0.5.
func (v Vec2) Half() Vec2 { return v.Scale(0.5) }

// Ortho returns v rotated by +90 degrees: (-y, x).
func (v Vec2) Ortho() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Mix linearly interpolates from v to w: v + t*(w-v). The parameter is not
// clamped; values outside [0, 1] extrapolate.
func (v Vec2) Mix(w Vec2, t float64) Vec2 { return v.Add(w.Sub(v).Scale(t)) }

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// NormSq returns the squared Euclidean length of v.
func NormSq(v Vec2) float64 { return Dot(v, v) }

// Norm returns the Euclidean length of v.
func Norm(v Vec2) float64 { return math.Sqrt(Dot(v, v)) }

// Unit returns v scaled to length 1. For the zero vector the result is
// (NaN, NaN): the scale factor 1/0 is +Inf and 0*Inf is NaN.
func Unit(v Vec2) Vec2 { return v.Scale(1 / Norm(v)) }
