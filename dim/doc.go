// Package dim models physical dimensions as vectors of exact rational
// exponents over a fixed, ordered set of base dimensions (a Basis).
//
// Overview:
//
//   - A Basis fixes the ordered base-dimension names once ("mass", "length",
//     "time", …); every Vector built on it has exactly one exponent per name.
//   - Vectors are immutable value objects: Combine, Power and friends always
//     return fresh vectors, never mutate their receivers.
//   - All arithmetic is performed on big.Rat exponents, so equality is exact
//     rational comparison — never floating approximation.
//
// Algebraic laws (verified in tests):
//
//   - Combine is associative: Combine(Combine(a,b),c) == Combine(a,Combine(b,c)).
//   - Zero is the identity: Combine(a, Zero(basis)) == a.
//   - Power distributes over Combine: Power(Combine(a,b),n) == Combine(Power(a,n),Power(b,n)).
//
// Error handling (sentinel errors):
//
//   - ErrNilBasis:          a nil *Basis was supplied.
//   - ErrEmptyDimension:    a basis dimension name is the empty string.
//   - ErrDuplicateDimension: the same name appears twice in one basis.
//   - ErrShapeMismatch:     exponent count differs from basis arity, or two
//     vectors from different bases were combined/compared.
//   - ErrUnknownDimension:  a referenced dimension name is not in the basis.
package dim
