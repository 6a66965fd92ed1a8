// Package unitgraph is your in-memory engine for dimensional analysis
// and exact unit conversion — from rational exponent vectors to fully
// derived cross-system conversion maps.
//
// 🚀 What is unitgraph?
//
//	A modern, thread-safe, zero-dependency library that brings together:
//		• Dimension vectors: rational exponents over a fixed base-dimension set
//		• Affine maps: exact scale/offset transforms, composable & invertible
//		• Units & systems: immutable value objects, validated at construction
//		• Basis transforms: rational matrices with exact adjugate inversion
//		• Conversion graph: register edges & systems, resolve any pair by BFS
//		• Catalog: ready-made SI and CGS systems wired into one graph
//
// ✨ Why choose unitgraph?
//
//   - Exact by construction – every coefficient is a big.Rat; no float drift
//     survives composition, inversion or matrix algebra
//   - Rock-solid guarantees – dimensional compatibility checked at every
//     registration, deterministic path resolution, atomic system connection
//   - Pure Go – no cgo, no hidden deps
//   - Beginner-friendly – minimal API, clear, intuitive naming
//
// Under the hood, everything is organized under six subpackages:
//
//	dim/       — base-dimension bases and rational exponent vectors
//	linmap/    — linear/affine numeric maps (scale, offset)
//	unit/      — Unit and System value objects
//	basis/     — rational matrices and basis transforms
//	convgraph/ — the conversion graph and path resolution
//	catalog/   — built-in SI and CGS systems
//
// Quick ASCII example:
//
//	    kilogram───gram───────┐
//	        │                 │
//	      joule────erg     carat
//
//	a conversion graph: query any connected pair, get one composed map.
//
// Dive into the package docs for full examples and the laws every
// operation is tested against.
//
//	go get github.com/katalvlaran/unitgraph
package unitgraph
