// Package unit defines the Unit and System value objects of the conversion
// engine.
//
// Overview:
//
//   - A Unit is a named, optionally aliased, scale-anchored quantity tagged
//     with a dim.Vector. The anchor scale ties the unit to its system's base
//     units: 1 unit = scale × ∏ baseᵢ^expᵢ (a gram in SI is scale 1/1000 on
//     the mass axis; a joule is scale 1 on mass·length²·time⁻²).
//   - A System assigns exactly one base Unit per base dimension it supports.
//     Base units must be pure: exponent 1 on their own axis, 0 elsewhere,
//     anchor scale 1.
//   - Units are immutable value objects; identity for graph purposes is
//     system+name, so same-named units from different systems are distinct.
//   - Name and alias lookup is resolved through an explicit index built at
//     registration time — no string dispatch happens at query time.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyName:       unit or system name is empty.
//   - ErrDuplicateName:   name already taken within the system.
//   - ErrAliasCollision:  alias clashes with an existing name or alias.
//   - ErrInvalidBaseUnit: base unit is not pure or not scale-1.
//   - ErrDuplicateBase:   the dimension already has a base unit.
//   - ErrUnknownBase:     no base unit registered for the dimension.
//   - ErrUnitNotFound:    lookup by name/alias missed.
//   - ErrBadScale:        anchor scale is zero or negative.
//   - ErrForeignBasis:    unit vector built over a different basis than the system's.
package unit
