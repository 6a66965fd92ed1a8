// Package dim: the Vector value type and its exact rational operations.
package dim

import (
	"fmt"
	"math/big"
	"strings"
)

// Vector is an immutable tuple of rational exponents over a Basis.
//
// The zero Vector value is invalid; construct through New, FromInts, Zero or
// Axis. All operations return fresh vectors and never alias caller-supplied
// big.Rat values.
type Vector struct {
	basis *Basis
	exp   []*big.Rat // one exponent per basis dimension, never nil entries
}

// New builds a Vector from explicit rational exponents, one per basis
// dimension in basis order. Exponents are deep-copied.
// Returns ErrNilBasis or ErrShapeMismatch on malformed input.
func New(b *Basis, exps []*big.Rat) (Vector, error) {
	if b == nil {
		return Vector{}, ErrNilBasis
	}
	if len(exps) != b.Arity() {
		return Vector{}, fmt.Errorf("want %d exponents, got %d: %w", b.Arity(), len(exps), ErrShapeMismatch)
	}
	v := Vector{basis: b, exp: make([]*big.Rat, len(exps))}
	for i, e := range exps {
		if e == nil {
			v.exp[i] = new(big.Rat) // absent exponent means zero
			continue
		}
		v.exp[i] = new(big.Rat).Set(e)
	}

	return v, nil
}

// FromInts builds a Vector from integer exponents, one per basis dimension.
// Convenience for the common whole-exponent case (velocity, energy, …).
func FromInts(b *Basis, exps ...int64) (Vector, error) {
	if b == nil {
		return Vector{}, ErrNilBasis
	}
	if len(exps) != b.Arity() {
		return Vector{}, fmt.Errorf("want %d exponents, got %d: %w", b.Arity(), len(exps), ErrShapeMismatch)
	}
	rats := make([]*big.Rat, len(exps))
	for i, e := range exps {
		rats[i] = big.NewRat(e, 1)
	}

	return New(b, rats)
}

// Zero returns the all-zero (dimensionless) vector over b.
func Zero(b *Basis) (Vector, error) {
	if b == nil {
		return Vector{}, ErrNilBasis
	}

	return New(b, make([]*big.Rat, b.Arity()))
}

// Axis returns the pure vector for one base dimension: exponent 1 on name,
// 0 elsewhere. Returns ErrUnknownDimension if name is not in the basis.
func Axis(b *Basis, name string) (Vector, error) {
	pos, err := b.Position(name)
	if err != nil {
		return Vector{}, err
	}
	rats := make([]*big.Rat, b.Arity())
	rats[pos] = big.NewRat(1, 1)

	return New(b, rats)
}

// Basis returns the basis this vector is defined over.
func (v Vector) Basis() *Basis { return v.basis }

// Exponent returns a copy of the exponent for the named base dimension.
func (v Vector) Exponent(name string) (*big.Rat, error) {
	pos, err := v.basis.Position(name)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(v.exp[pos]), nil
}

// Exponents returns a deep copy of all exponents in basis order.
func (v Vector) Exponents() []*big.Rat {
	out := make([]*big.Rat, len(v.exp))
	for i, e := range v.exp {
		out[i] = new(big.Rat).Set(e)
	}

	return out
}

// Combine returns the exponent-wise sum of v and w — the dimension of the
// product of two quantities (length¹ + time⁻¹ = velocity).
// Returns ErrShapeMismatch when v and w live over different bases.
// Complexity: O(arity).
func (v Vector) Combine(w Vector) (Vector, error) {
	if v.basis == nil || w.basis == nil {
		return Vector{}, ErrNilBasis
	}
	if v.basis != w.basis {
		return Vector{}, fmt.Errorf("vectors over different bases: %w", ErrShapeMismatch)
	}
	sum := make([]*big.Rat, len(v.exp))
	for i := range v.exp {
		sum[i] = new(big.Rat).Add(v.exp[i], w.exp[i])
	}

	return New(v.basis, sum)
}

// Power returns v with every exponent multiplied by the rational n — the
// dimension of a quantity raised to the n-th power. Negate with n = -1.
// Complexity: O(arity).
func (v Vector) Power(n *big.Rat) (Vector, error) {
	if v.basis == nil {
		return Vector{}, ErrNilBasis
	}
	if n == nil {
		n = new(big.Rat)
	}
	scaled := make([]*big.Rat, len(v.exp))
	for i := range v.exp {
		scaled[i] = new(big.Rat).Mul(v.exp[i], n)
	}

	return New(v.basis, scaled)
}

// PowerInt is Power with an integer exponent.
func (v Vector) PowerInt(n int64) (Vector, error) {
	return v.Power(big.NewRat(n, 1))
}

// Equal reports exact rational equality of every exponent.
// Vectors over different bases are never equal.
func (v Vector) Equal(w Vector) bool {
	if v.basis != w.basis || len(v.exp) != len(w.exp) {
		return false
	}
	for i := range v.exp {
		if v.exp[i].Cmp(w.exp[i]) != 0 {
			return false
		}
	}

	return true
}

// IsZero reports whether every exponent is exactly zero (dimensionless).
func (v Vector) IsZero() bool {
	for _, e := range v.exp {
		if e.Sign() != 0 {
			return false
		}
	}

	return true
}

// IntExponents returns the exponents as int64 values when every exponent is a
// whole number; ok is false otherwise. Used by derivations that must raise
// exact scales to exponent powers (only integer powers stay rational).
func (v Vector) IntExponents() ([]int64, bool) {
	out := make([]int64, len(v.exp))
	for i, e := range v.exp {
		if !e.IsInt() {
			return nil, false
		}
		n := e.Num()
		if !n.IsInt64() {
			return nil, false
		}
		out[i] = n.Int64()
	}

	return out, true
}

// String renders the vector as name^exp terms, skipping zero exponents;
// the dimensionless vector renders as "1".
func (v Vector) String() string {
	if v.basis == nil {
		return "<invalid>"
	}
	var sb strings.Builder
	for i, name := range v.basis.names {
		if v.exp[i].Sign() == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteRune('·')
		}
		sb.WriteString(name)
		if v.exp[i].Cmp(big.NewRat(1, 1)) != 0 {
			sb.WriteByte('^')
			sb.WriteString(v.exp[i].RatString())
		}
	}
	if sb.Len() == 0 {
		return "1"
	}

	return sb.String()
}
