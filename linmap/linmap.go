// Package linmap: the Map value type, construction, composition and inversion.
package linmap

import (
	"errors"
	"math/big"
)

// ErrNonInvertibleMap is returned by Invert when the map's scale is zero.
var ErrNonInvertibleMap = errors.New("linmap: map with zero scale is not invertible")

// Map is an immutable affine transform v ↦ scale·v + offset.
//
// The zero Map value behaves as the constant-zero map (scale 0, offset 0) and
// is not invertible; construct through Linear, Affine or Identity.
type Map struct {
	scale  *big.Rat
	offset *big.Rat
}

// Linear returns the purely linear map v ↦ scale·v.
// A nil scale is treated as zero; the result is then not invertible.
func Linear(scale *big.Rat) Map {
	return Affine(scale, nil)
}

// Affine returns the map v ↦ scale·v + offset.
// Nil coefficients are treated as zero. Coefficients are deep-copied.
func Affine(scale, offset *big.Rat) Map {
	m := Map{scale: new(big.Rat), offset: new(big.Rat)}
	if scale != nil {
		m.scale.Set(scale)
	}
	if offset != nil {
		m.offset.Set(offset)
	}

	return m
}

// LinearInt returns the linear map with an integer ratio num/den.
// Panics if den is zero (programmer error, mirrors big.NewRat).
func LinearInt(num, den int64) Map {
	return Linear(big.NewRat(num, den))
}

// Identity returns the map v ↦ v.
func Identity() Map {
	return Linear(big.NewRat(1, 1))
}

// Scale returns a copy of the scale coefficient.
func (m Map) Scale() *big.Rat {
	return new(big.Rat).Set(m.coeffScale())
}

// Offset returns a copy of the offset coefficient.
func (m Map) Offset() *big.Rat {
	return new(big.Rat).Set(m.coeffOffset())
}

// IsLinear reports whether the offset is exactly zero.
func (m Map) IsLinear() bool {
	return m.coeffOffset().Sign() == 0
}

// IsIdentity reports whether the map is exactly v ↦ v.
func (m Map) IsIdentity() bool {
	return m.coeffScale().Cmp(ratOne) == 0 && m.coeffOffset().Sign() == 0
}

// Equal reports exact coefficient equality.
func (m Map) Equal(n Map) bool {
	return m.coeffScale().Cmp(n.coeffScale()) == 0 && m.coeffOffset().Cmp(n.coeffOffset()) == 0
}

// Apply evaluates the map on a float64 value.
// Precision loss, if any, happens here and only here.
func (m Map) Apply(v float64) float64 {
	s, _ := m.coeffScale().Float64()
	o, _ := m.coeffOffset().Float64()

	return s*v + o
}

// ApplyRat evaluates the map exactly on a rational value.
func (m Map) ApplyRat(v *big.Rat) *big.Rat {
	out := new(big.Rat).Mul(m.coeffScale(), v)

	return out.Add(out, m.coeffOffset())
}

// Compose returns m∘n: the map that applies n first, then m.
// Coefficients: scale = m.scale·n.scale, offset = m.scale·n.offset + m.offset.
func Compose(m, n Map) Map {
	scale := new(big.Rat).Mul(m.coeffScale(), n.coeffScale())
	offset := new(big.Rat).Mul(m.coeffScale(), n.coeffOffset())
	offset.Add(offset, m.coeffOffset())

	return Affine(scale, offset)
}

// Invert returns the inverse map (1/scale, -offset/scale).
// Returns ErrNonInvertibleMap when scale is zero.
func (m Map) Invert() (Map, error) {
	s := m.coeffScale()
	if s.Sign() == 0 {
		return Map{}, ErrNonInvertibleMap
	}
	inv := new(big.Rat).Inv(s)
	offset := new(big.Rat).Mul(inv, m.coeffOffset())
	offset.Neg(offset)

	return Affine(inv, offset), nil
}

// Pow returns m composed with itself n times for n ≥ 0, or the inverse
// composed -n times for n < 0. Only defined for linear maps; the caller must
// check IsLinear first (an affine map raised to a power is not a single
// affine conversion between units). Returns ErrNonInvertibleMap when a
// negative power of a zero-scale map is requested.
func (m Map) Pow(n int64) (Map, error) {
	base := m
	if n < 0 {
		inv, err := m.Invert()
		if err != nil {
			return Map{}, err
		}
		base = inv
		n = -n
	}
	out := Identity()
	for ; n > 0; n-- {
		out = Compose(out, base)
	}

	return out, nil
}

// String renders the map as "scale·v + offset" with exact rationals.
func (m Map) String() string {
	if m.IsLinear() {
		return m.coeffScale().RatString() + "·v"
	}

	return m.coeffScale().RatString() + "·v + " + m.coeffOffset().RatString()
}

// ratOne is the shared rational constant 1 (read-only).
var ratOne = big.NewRat(1, 1)

// coeffScale returns the internal scale, tolerating the zero Map value.
func (m Map) coeffScale() *big.Rat {
	if m.scale == nil {
		return new(big.Rat)
	}

	return m.scale
}

// coeffOffset returns the internal offset, tolerating the zero Map value.
func (m Map) coeffOffset() *big.Rat {
	if m.offset == nil {
		return new(big.Rat)
	}

	return m.offset
}
