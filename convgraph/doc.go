// Package convgraph implements the conversion graph: units are nodes, exact
// affine maps are edges, and any two connected units resolve to one composed
// map by breadth-first search.
//
// Overview:
//
//   - Registration phase: AddUnit/AddEdge record direct conversions;
//     ConnectSystems derives the cross-system edges implied by a
//     basis.Transform plus one calibration edge per source base dimension.
//   - Query phase: Convert(src, dst) returns the single linmap.Map that
//     carries a numeric value from src to dst, or a precise sentinel error.
//   - Storage is arena-style: units live once in a slice, edges reference
//     node indexes, and adjacency keeps edge indexes in insertion order, so
//     resolution is a pure function of registration order.
//
// Determinism:
//
//   - Convert picks the shortest path by edge count; among equal-length
//     paths the BFS expansion order (edge insertion order) breaks the tie.
//     Re-running the same registrations always yields the same composed map.
//
// Concurrency:
//
//   - A sync.RWMutex guards the graph: mutate during setup from one or many
//     goroutines, then query concurrently without further coordination.
//
// Atomicity:
//
//   - ConnectSystems validates and stages everything first and commits in
//     one step; on any error the graph is untouched, so a half-connected
//     graph can never be queried.
//
// Error handling (sentinel errors):
//
//   - ErrIncompatibleDimensions: AddEdge between units of unequal dimension.
//   - ErrDuplicateEdge:  conflicting re-registration of an ordered unit pair.
//   - ErrNoConversionPath: units are dimensionally related but unconnected.
//   - ErrDimensionMismatch: no equality or registered transform relates the
//     two dimensions at all.
//   - ErrMissingCalibration: ConnectSystems lacks a calibration edge for a
//     source base dimension.
//   - ErrBadCalibration: a calibration edge is affine, non-invertible, or
//     not anchored on a base unit of the source system.
//   - linmap.ErrNonInvertibleMap, basis.ErrNonInvertibleTransform and the
//     unit/dim sentinels pass through where they originate.
package convgraph
