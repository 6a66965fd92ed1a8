// SPDX-License-Identifier: MIT

// Package basis provides exact rational matrices and the basis Transform
// relating one system's base dimensions to another's.
//
// Overview:
//
//   - Matrix is a dense, immutable matrix of big.Rat entries with exact
//     determinant (cofactor expansion) and exact inversion (adjugate over
//     determinant). No floating elimination is ever performed, so inverses
//     round-trip bit-exactly.
//   - Transform wraps a square Matrix M together with a source and a
//     destination dim.Basis: a destination exponent vector is M · (source
//     exponent vector). Invertibility is decided once at construction from
//     the exact determinant and cached.
//
// When to use:
//
//   - Connecting two unit systems whose base dimensions are not one-to-one
//     (a fantasy system whose "spark" decomposes into mass·length²·time⁻²).
//   - Any exact linear-algebra step where float drift is unacceptable.
//
// Error handling (sentinel errors, matched with errors.Is):
//
//   - ErrNilMatrix, ErrBadShape, ErrOutOfRange, ErrNonSquare,
//     ErrShapeMismatch, ErrSingularMatrix, ErrNonInvertibleTransform,
//     ErrBasisMismatch.
//
// Complexity: Det and Inverse use cofactor expansion, O(n!) in the matrix
// order. Base-dimension sets are tiny (n ≤ 8 in practice), where exactness
// is worth far more than asymptotics.
package basis
