// SPDX-License-Identifier: MIT
// Package basis: the Transform type relating two dimension bases.

package basis

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/unitgraph/dim"
)

// Transform expresses how one basis's dimensions decompose into another's:
// for a quantity with exponent vector v over the source basis, the same
// quantity has exponent vector M·v over the destination basis.
//
// The matrix must have Rows == destination arity and Cols == source arity.
// Invertibility is decided once at construction from the exact determinant
// and cached; round-trip derivation of conversions requires it.
type Transform struct {
	src, dst *dim.Basis
	m        *Matrix
	det      *big.Rat // nil when the matrix is not square
}

// NewTransform builds a Transform from src to dst over matrix m.
// Returns ErrNilMatrix or dim.ErrNilBasis on nil input and ErrShapeMismatch
// when the matrix shape does not match the basis arities.
// Complexity: O(n!) for the cached determinant of an n×n matrix.
func NewTransform(src, dst *dim.Basis, m *Matrix) (*Transform, error) {
	if src == nil || dst == nil {
		return nil, dim.ErrNilBasis
	}
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.Rows() != dst.Arity() || m.Cols() != src.Arity() {
		return nil, fmt.Errorf("matrix %dx%d over bases %d→%d: %w",
			m.Rows(), m.Cols(), src.Arity(), dst.Arity(), ErrShapeMismatch)
	}
	t := &Transform{src: src, dst: dst, m: m}
	if m.IsSquare() {
		t.det = m.det()
	}

	return t, nil
}

// IdentityTransform builds the transform between two bases of equal arity
// whose dimensions correspond position-for-position (e.g. SI↔CGS over the
// shared mass/length/time axes).
func IdentityTransform(src, dst *dim.Basis) (*Transform, error) {
	if src == nil || dst == nil {
		return nil, dim.ErrNilBasis
	}
	if src.Arity() != dst.Arity() {
		return nil, fmt.Errorf("arity %d vs %d: %w", src.Arity(), dst.Arity(), ErrShapeMismatch)
	}
	id, err := Identity(src.Arity())
	if err != nil {
		return nil, err
	}

	return NewTransform(src, dst, id)
}

// Source returns the source basis.
func (t *Transform) Source() *dim.Basis { return t.src }

// Destination returns the destination basis.
func (t *Transform) Destination() *dim.Basis { return t.dst }

// Matrix returns the underlying matrix (immutable; safe to share).
func (t *Transform) Matrix() *Matrix { return t.m }

// IsInvertible reports whether the matrix is square with nonzero exact
// determinant. O(1): the determinant is cached at construction.
func (t *Transform) IsInvertible() bool {
	return t != nil && t.det != nil && t.det.Sign() != 0
}

// Det returns a copy of the cached determinant, or ErrNonSquare.
func (t *Transform) Det() (*big.Rat, error) {
	if t.det == nil {
		return nil, ErrNonSquare
	}

	return new(big.Rat).Set(t.det), nil
}

// Invert returns the reverse transform: bases swapped, matrix replaced by
// its exact adjugate inverse. Returns ErrNonInvertibleTransform when the
// matrix is non-square or the determinant is zero.
func (t *Transform) Invert() (*Transform, error) {
	if !t.IsInvertible() {
		return nil, ErrNonInvertibleTransform
	}
	inv, err := t.m.Inverse()
	if err != nil {
		// IsInvertible above rules out ErrNonSquare and ErrSingularMatrix.
		return nil, err
	}

	return NewTransform(t.dst, t.src, inv)
}

// ApplyToVector maps an exponent vector over the source basis to the
// corresponding exponent vector over the destination basis.
// Returns ErrBasisMismatch when v is dimensioned over another basis.
func (t *Transform) ApplyToVector(v dim.Vector) (dim.Vector, error) {
	if t == nil {
		return dim.Vector{}, ErrNilMatrix
	}
	if v.Basis() != t.src {
		return dim.Vector{}, ErrBasisMismatch
	}
	mapped, err := t.m.MulVec(v.Exponents())
	if err != nil {
		return dim.Vector{}, err
	}

	return dim.New(t.dst, mapped)
}
