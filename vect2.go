// Package vect provides small fixed-dimension 2D and 3D float64
// vectors for graphics, physics and geometry code. Degenerate inputs
// (zero divisors, zero-length normalizations) follow IEEE semantics
// and produce Inf/NaN components; building with the vect_debug tag
// turns those conditions into panics instead.
package vect

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Epsilon is the tolerance used by the approximate predicates
// (IsNormalized, IsParallel) on both vector types. IsZero and Eq
// compare exactly.
const Epsilon = 1e-10

// Vect2 is a 2-dimensional float64 vector
type Vect2 struct {
	X, Y float64
}

/* Constructors */

// NewVect2 creates a new Vect2 from provided values
func NewVect2(x, y float64) Vect2 {
	return Vect2{x, y}
}

// Vect2Zero returns the zero vector
func Vect2Zero() Vect2 {
	return Vect2{}
}

// Vect2FromSlice creates a Vect2 from a slice of exactly 2 values
func Vect2FromSlice(vs []float64) (Vect2, error) {
	if len(vs) != 2 {
		return Vect2{}, errors.New("vect: expected slice of length 2 for Vect2")
	}
	return Vect2{vs[0], vs[1]}, nil
}

/* Methods */

// Add o to v
func (v Vect2) Add(o Vect2) Vect2 {
	res := Vect2{v.X + o.X, v.Y + o.Y}
	checkFinite("Vect2 overflow in add", res.X, res.Y)
	return res
}

// Sub o from v
func (v Vect2) Sub(o Vect2) Vect2 {
	res := Vect2{v.X - o.X, v.Y - o.Y}
	checkFinite("Vect2 overflow in sub", res.X, res.Y)
	return res
}

// Mul scales v by s
func (v Vect2) Mul(s float64) Vect2 {
	res := Vect2{v.X * s, v.Y * s}
	checkFinite("Vect2 overflow in mul", res.X, res.Y)
	return res
}

// Div divides v by the scalar s. Division by a zero scalar yields
// Inf/NaN components.
func (v Vect2) Div(s float64) Vect2 {
	checkNonZero("Vect2 division by zero", s)
	res := Vect2{v.X / s, v.Y / s}
	checkFinite("Vect2 overflow in div", res.X, res.Y)
	return res
}

// Neg returns the negative vector of v (-v)
func (v Vect2) Neg() Vect2 {
	return Vect2{-v.X, -v.Y}
}

// Dot returns the dot product of v and o (v⋅o)
func (v Vect2) Dot(o Vect2) float64 {
	d := v.X*o.X + v.Y*o.Y
	checkFinite("Vect2.Dot produced a non-finite result", d)
	return d
}

// Cross returns the 2D cross product of v and o: the z component of
// the equivalent 3D cross product. The sign indicates orientation,
// counter-clockwise positive.
func (v Vect2) Cross(o Vect2) float64 {
	c := v.X*o.Y - v.Y*o.X
	checkFinite("Vect2.Cross produced a non-finite result", c)
	return c
}

// LengthSq returns the squared length of v, avoiding the sqrt
func (v Vect2) LengthSq() float64 {
	l := v.X*v.X + v.Y*v.Y
	checkFinite("Vect2.LengthSq produced a non-finite result", l)
	return l
}

// Length returns the L2 norm of v
func (v Vect2) Length() float64 {
	l := math.Sqrt(v.X*v.X + v.Y*v.Y)
	checkFinite("Vect2.Length produced a non-finite result", l)
	return l
}

// Normalize returns the unit vector of v. Normalizing a zero-length
// vector yields NaN components.
func (v Vect2) Normalize() Vect2 {
	l := v.Length()
	checkNonZero("Vect2.Normalize of a zero-length vector", l)
	if l == 1.0 {
		return v
	}
	res := v.Div(l)
	checkFinite("Vect2.Normalize produced a non-finite result", res.X, res.Y)
	return res
}

// Distance returns the length of v - o
func (v Vect2) Distance(o Vect2) float64 {
	d := v.Sub(o).Length()
	checkFinite("Vect2.Distance produced a non-finite result", d)
	return d
}

// DistanceSq returns the squared length of v - o
func (v Vect2) DistanceSq(o Vect2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	d := dx*dx + dy*dy
	checkFinite("Vect2.DistanceSq produced a non-finite result", d)
	return d
}

// Angle returns the angle of v relative to the positive x axis,
// via atan2(y, x)
func (v Vect2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the signed angle from v to o,
// counter-clockwise positive
func (v Vect2) AngleTo(o Vect2) float64 {
	a := math.Atan2(v.Cross(o), v.Dot(o))
	checkFinite("Vect2.AngleTo produced a non-finite result", a)
	return a
}

// AngleBetween returns the unsigned angle between v and o in [0, π].
// Returns 0 if either vector has zero length, or if the cosine lands
// within Epsilon of 1. The cosine is clamped to [-1, 1] to guard
// rounding overshoot before acos.
func (v Vect2) AngleBetween(o Vect2) float64 {
	if v == o {
		return 0
	}
	denom := v.Length() * o.Length()
	if denom == 0 {
		return 0
	}
	cos := v.Dot(o) / denom
	if cos > 1.0 {
		cos = 1.0
	} else if cos < -1.0 {
		cos = -1.0
	}
	// rounding drift near 1 reads as exactly parallel
	if math.Abs(cos-1.0) < Epsilon {
		return 0
	}
	a := math.Acos(cos)
	checkFinite("Vect2.AngleBetween produced a non-finite result", a)
	return a
}

// Rotate returns v rotated counter-clockwise by angle radians
func (v Vect2) Rotate(angle float64) Vect2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	res := Vect2{
		v.X*cos - v.Y*sin,
		v.X*sin + v.Y*cos,
	}
	checkFinite("Vect2.Rotate produced a non-finite result", res.X, res.Y)
	return res
}

// Lerp returns the linear interpolation between v and o at t.
// t is not clamped; out-of-range values extrapolate.
func (v Vect2) Lerp(o Vect2, t float64) Vect2 {
	res := Vect2{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
	}
	checkFinite("Vect2.Lerp produced a non-finite result", res.X, res.Y)
	return res
}

// Reflect returns v reflected about the given normal.
// The normal does not need to be unit length.
func (v Vect2) Reflect(normal Vect2) Vect2 {
	n := normal.Normalize()
	res := v.Sub(n.Mul(2.0 * v.Dot(n)))
	checkFinite("Vect2.Reflect produced a non-finite result", res.X, res.Y)
	return res
}

// Project returns the projection of v onto o.
// Returns the zero vector if o has zero length.
func (v Vect2) Project(o Vect2) Vect2 {
	lsq := o.LengthSq()
	if lsq == 0 {
		return Vect2{}
	}
	res := o.Mul(v.Dot(o) / lsq)
	checkFinite("Vect2.Project produced a non-finite result", res.X, res.Y)
	return res
}

/* In-place forms */

// AddInPlace adds o to v in place
func (v *Vect2) AddInPlace(o Vect2) {
	v.X += o.X
	v.Y += o.Y
	checkFinite("Vect2 overflow in add", v.X, v.Y)
}

// SubInPlace subtracts o from v in place
func (v *Vect2) SubInPlace(o Vect2) {
	v.X -= o.X
	v.Y -= o.Y
	checkFinite("Vect2 overflow in sub", v.X, v.Y)
}

// MulInPlace scales v by s in place
func (v *Vect2) MulInPlace(s float64) {
	v.X *= s
	v.Y *= s
	checkFinite("Vect2 overflow in mul", v.X, v.Y)
}

// DivInPlace divides v by the scalar s in place
func (v *Vect2) DivInPlace(s float64) {
	checkNonZero("Vect2 division by zero", s)
	v.X /= s
	v.Y /= s
	checkFinite("Vect2 overflow in div", v.X, v.Y)
}

/* Predicates */

// IsZero returns true if both components are exactly zero
func (v Vect2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsNormalized returns true if the squared length of v is within
// Epsilon of 1
func (v Vect2) IsNormalized() bool {
	return math.Abs(v.LengthSq()-1.0) < Epsilon
}

// IsParallel returns true if v and o are parallel within Epsilon,
// including anti-parallel and zero vectors
func (v Vect2) IsParallel(o Vect2) bool {
	return math.Abs(v.Cross(o)) < Epsilon
}

// Eq returns true if v and o are equal
func (v Vect2) Eq(o Vect2) bool {
	return v == o
}

/* Getters */

// At returns the component at index i (0 = x, 1 = y)
func (v Vect2) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("vect: index out of bounds for Vect2")
}

// Array returns the components of v as an array
func (v Vect2) Array() [2]float64 {
	return [2]float64{v.X, v.Y}
}

/* Marshalling */

func (v Vect2) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Array())
}

func (v *Vect2) UnmarshalJSON(b []byte) error {
	var a [2]float64
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	v.X, v.Y = a[0], a[1]
	return nil
}

func (v Vect2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Hash returns a hash of the exact component bit patterns,
// folded with the FNV-1a constants
func (v Vect2) Hash() uint64 {
	h := uint64(14695981039346656037)
	for _, f := range v.Array() {
		h ^= math.Float64bits(f)
		h *= 1099511628211
	}
	return h
}
