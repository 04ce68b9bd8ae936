package vect

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Vect3 is a 3-dimensional float64 vector
type Vect3 struct {
	X, Y, Z float64
}

/* Constructors */

// NewVect3 creates a new Vect3 from provided values
func NewVect3(x, y, z float64) Vect3 {
	return Vect3{x, y, z}
}

// Vect3Zero returns the zero vector
func Vect3Zero() Vect3 {
	return Vect3{}
}

// Vect3FromSlice creates a Vect3 from a slice of exactly 3 values
func Vect3FromSlice(vs []float64) (Vect3, error) {
	if len(vs) != 3 {
		return Vect3{}, errors.New("vect: expected slice of length 3 for Vect3")
	}
	return Vect3{vs[0], vs[1], vs[2]}, nil
}

/* Methods */

// Add o to v
func (v Vect3) Add(o Vect3) Vect3 {
	res := Vect3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
	checkFinite("Vect3 overflow in add", res.X, res.Y, res.Z)
	return res
}

// Sub o from v
func (v Vect3) Sub(o Vect3) Vect3 {
	res := Vect3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
	checkFinite("Vect3 overflow in sub", res.X, res.Y, res.Z)
	return res
}

// Mul scales v by s
func (v Vect3) Mul(s float64) Vect3 {
	res := Vect3{v.X * s, v.Y * s, v.Z * s}
	checkFinite("Vect3 overflow in mul", res.X, res.Y, res.Z)
	return res
}

// Div divides v by the scalar s. Division by a zero scalar yields
// Inf/NaN components.
func (v Vect3) Div(s float64) Vect3 {
	checkNonZero("Vect3 division by zero", s)
	res := Vect3{v.X / s, v.Y / s, v.Z / s}
	checkFinite("Vect3 overflow in div", res.X, res.Y, res.Z)
	return res
}

// Neg returns the negative vector of v (-v)
func (v Vect3) Neg() Vect3 {
	return Vect3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o (v⋅o)
func (v Vect3) Dot(o Vect3) float64 {
	d := v.X*o.X + v.Y*o.Y + v.Z*o.Z
	checkFinite("Vect3.Dot produced a non-finite result", d)
	return d
}

// Cross returns the cross product of v and o (v×o): a vector
// perpendicular to both. The result has zero length when the inputs
// are parallel or either is the zero vector.
func (v Vect3) Cross(o Vect3) Vect3 {
	res := Vect3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
	checkFinite("Vect3.Cross produced a non-finite result", res.X, res.Y, res.Z)
	return res
}

// LengthSq returns the squared length of v, avoiding the sqrt
func (v Vect3) LengthSq() float64 {
	l := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	checkFinite("Vect3.LengthSq produced a non-finite result", l)
	return l
}

// Length returns the L2 norm of v
func (v Vect3) Length() float64 {
	l := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	checkFinite("Vect3.Length produced a non-finite result", l)
	return l
}

// Normalize returns the unit vector of v. Normalizing a zero-length
// vector yields NaN components.
func (v Vect3) Normalize() Vect3 {
	l := v.Length()
	checkNonZero("Vect3.Normalize of a zero-length vector", l)
	if l == 1.0 {
		return v
	}
	res := v.Div(l)
	checkFinite("Vect3.Normalize produced a non-finite result", res.X, res.Y, res.Z)
	return res
}

// Distance returns the length of v - o
func (v Vect3) Distance(o Vect3) float64 {
	d := v.Sub(o).Length()
	checkFinite("Vect3.Distance produced a non-finite result", d)
	return d
}

// DistanceSq returns the squared length of v - o
func (v Vect3) DistanceSq(o Vect3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	d := dx*dx + dy*dy + dz*dz
	checkFinite("Vect3.DistanceSq produced a non-finite result", d)
	return d
}

// AngleBetween returns the unsigned angle between v and o in [0, π].
// Returns 0 if either vector has zero length, or if the cosine lands
// within Epsilon of 1. The cosine is clamped to [-1, 1] to guard
// rounding overshoot before acos.
func (v Vect3) AngleBetween(o Vect3) float64 {
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
	checkFinite("Vect3.AngleBetween produced a non-finite result", a)
	return a
}

// Lerp returns the linear interpolation between v and o at t.
// t is not clamped; out-of-range values extrapolate.
func (v Vect3) Lerp(o Vect3, t float64) Vect3 {
	res := Vect3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
	checkFinite("Vect3.Lerp produced a non-finite result", res.X, res.Y, res.Z)
	return res
}

// Reflect returns v reflected about the given normal.
// The normal does not need to be unit length.
func (v Vect3) Reflect(normal Vect3) Vect3 {
	n := normal.Normalize()
	res := v.Sub(n.Mul(2.0 * v.Dot(n)))
	checkFinite("Vect3.Reflect produced a non-finite result", res.X, res.Y, res.Z)
	return res
}

// Project returns the projection of v onto o.
// Returns the zero vector if o has zero length.
func (v Vect3) Project(o Vect3) Vect3 {
	lsq := o.LengthSq()
	if lsq == 0 {
		return Vect3{}
	}
	res := o.Mul(v.Dot(o) / lsq)
	checkFinite("Vect3.Project produced a non-finite result", res.X, res.Y, res.Z)
	return res
}

/* In-place forms */

// AddInPlace adds o to v in place
func (v *Vect3) AddInPlace(o Vect3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	checkFinite("Vect3 overflow in add", v.X, v.Y, v.Z)
}

// SubInPlace subtracts o from v in place
func (v *Vect3) SubInPlace(o Vect3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	checkFinite("Vect3 overflow in sub", v.X, v.Y, v.Z)
}

// MulInPlace scales v by s in place
func (v *Vect3) MulInPlace(s float64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
	checkFinite("Vect3 overflow in mul", v.X, v.Y, v.Z)
}

// DivInPlace divides v by the scalar s in place
func (v *Vect3) DivInPlace(s float64) {
	checkNonZero("Vect3 division by zero", s)
	v.X /= s
	v.Y /= s
	v.Z /= s
	checkFinite("Vect3 overflow in div", v.X, v.Y, v.Z)
}

/* Predicates */

// IsZero returns true if all components are exactly zero
func (v Vect3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsNormalized returns true if the squared length of v is within
// Epsilon of 1
func (v Vect3) IsNormalized() bool {
	return math.Abs(v.LengthSq()-1.0) < Epsilon
}

// IsParallel returns true if v and o are parallel within Epsilon,
// including anti-parallel and zero vectors. Uses the squared length
// of the cross product; there is no scalar cross in 3D.
func (v Vect3) IsParallel(o Vect3) bool {
	return v.Cross(o).LengthSq() < Epsilon
}

// Eq returns true if v and o are equal
func (v Vect3) Eq(o Vect3) bool {
	return v == o
}

/* Getters */

// At returns the component at index i (0 = x, 1 = y, 2 = z)
func (v Vect3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("vect: index out of bounds for Vect3")
}

// Array returns the components of v as an array
func (v Vect3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

/* Marshalling */

func (v Vect3) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Array())
}

func (v *Vect3) UnmarshalJSON(b []byte) error {
	var a [3]float64
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	v.X, v.Y, v.Z = a[0], a[1], a[2]
	return nil
}

func (v Vect3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Hash returns a hash of the exact component bit patterns,
// folded with the FNV-1a constants
func (v Vect3) Hash() uint64 {
	h := uint64(14695981039346656037)
	for _, f := range v.Array() {
		h ^= math.Float64bits(f)
		h *= 1099511628211
	}
	return h
}
