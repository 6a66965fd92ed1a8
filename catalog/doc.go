// Package catalog ships ready-made SI and CGS unit systems wired into one
// conversion graph.
//
// Overview:
//
//   - New builds the seven-dimension base set (mass, length, time, charge,
//     temperature, amount, luminous intensity), both systems with their base
//     and derived units, the in-system conversion edges implied by the
//     units' anchor scales, the affine celsius↔kelvin edge, and the SI↔CGS
//     connection (identity basis transform, gram/centimetre/second
//     calibrations).
//   - The returned Catalog is fully set up: query Graph directly with
//     unit.Unit values, or use Lookup/Convert for name-based access. Name
//     resolution is one index hit per call — built once, no string dispatch
//     beyond it.
//
// Celsius is deliberately kept out of the anchor-edge chaining: an anchor
// scale is multiplicative, and celsius relates to kelvin by an affine map,
// so its only conversion edge is the explicit one registered here.
package catalog
