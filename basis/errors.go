// SPDX-License-Identifier: MIT
// Package basis: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the basis
// package. All operations return these sentinels and tests check them via
// errors.Is. Nothing here panics on user-triggered conditions.

package basis

import "errors"

var (
	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("basis: matrix is nil")

	// ErrBadShape is returned when a requested shape is invalid (rows or
	// columns non-positive, or ragged row data at construction).
	ErrBadShape = errors.New("basis: invalid shape")

	// ErrOutOfRange indicates a row or column index outside matrix bounds.
	ErrOutOfRange = errors.New("basis: index out of range")

	// ErrNonSquare signals a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("basis: matrix is not square")

	// ErrShapeMismatch indicates incompatible operand dimensions
	// (e.g. MulVec with a vector of the wrong length).
	ErrShapeMismatch = errors.New("basis: shape mismatch")

	// ErrSingularMatrix is returned by Inverse when the determinant is zero.
	ErrSingularMatrix = errors.New("basis: singular matrix")

	// ErrNonInvertibleTransform is returned when a Transform with zero
	// determinant (or a non-square matrix) is asked to invert.
	ErrNonInvertibleTransform = errors.New("basis: transform is not invertible")

	// ErrBasisMismatch indicates a dim.Vector over a basis other than the
	// transform's source (or destination, for the inverse direction).
	ErrBasisMismatch = errors.New("basis: vector over wrong basis")
)
