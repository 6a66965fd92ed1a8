// Package linmap provides exact linear and affine maps between the numeric
// values of two units: applying a Map to v yields scale·v + offset.
//
// Overview:
//
//   - Coefficients are big.Rat, so composing and inverting maps any number of
//     times never accumulates floating error; precision is only surrendered
//     at Apply when the input itself is a float64.
//   - Maps are immutable: Compose and Invert return fresh instances.
//   - A purely linear map has offset 0 (e.g. kilometre→metre, ×1000); affine
//     maps carry an offset for temperature-like scales (celsius→kelvin).
//
// Laws (verified in tests):
//
//   - m.Invert().ApplyRat(m.ApplyRat(x)) == x for every invertible m.
//   - Compose(m, Identity()) == m == Compose(Identity(), m).
//   - Compose is associative.
//
// Error handling:
//
//   - ErrNonInvertibleMap: Invert was called on a map with scale 0.
package linmap
