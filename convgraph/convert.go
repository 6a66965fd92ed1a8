// Package convgraph: path resolution — BFS over the edge arena, map
// composition along the found path.
package convgraph

import (
	"fmt"

	"github.com/katalvlaran/unitgraph/dim"
	"github.com/katalvlaran/unitgraph/linmap"
	"github.com/katalvlaran/unitgraph/unit"
)

// Convert resolves the single composed map carrying a numeric value from
// src units to dst units.
//
// Resolution is breadth-first by edge count; among equal-length paths the
// one whose edges were registered first wins (adjacency preserves insertion
// order), so the result is a pure function of graph state. Convert(u, u)
// returns the identity map for any registered u.
//
// Failure is split by cause: ErrDimensionMismatch when the two dimensions
// are neither equal nor related through any transform registered via
// ConnectSystems, ErrNoConversionPath when they are related but no chain of
// edges connects the units.
// Complexity: O(V + E) per query.
func (g *Graph) Convert(src, dst unit.Unit) (linmap.Map, error) {
	if g == nil {
		return linmap.Map{}, ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	isrc, okSrc := g.nodeIndex[src.Key()]
	idst, okDst := g.nodeIndex[dst.Key()]
	if okSrc && okDst {
		if isrc == idst {
			return linmap.Identity(), nil
		}
		if m, found := g.search(isrc, idst); found {
			return m, nil
		}
	}

	if g.related(src.Vector(), dst.Vector()) {
		return linmap.Map{}, fmt.Errorf("%s to %s: %w", src.Key(), dst.Key(), ErrNoConversionPath)
	}

	return linmap.Map{}, fmt.Errorf("%s (%s) to %s (%s): %w",
		src.Key(), src.Vector(), dst.Key(), dst.Vector(), ErrDimensionMismatch)
}

// search runs BFS from isrc to idst and composes the maps along the first
// shortest path found. Caller holds the read lock.
func (g *Graph) search(isrc, idst int) (linmap.Map, bool) {
	visited := make(map[int]bool, len(g.nodes))
	parentEdge := make(map[int]int, len(g.nodes))
	queue := make([]int, 0, len(g.nodes))

	visited[isrc] = true
	queue = append(queue, isrc)
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, ei := range g.adjacency[curr] { // insertion order: deterministic tie-break
			next := g.edges[ei].to
			if visited[next] {
				continue
			}
			visited[next] = true
			parentEdge[next] = ei
			if next == idst {
				return g.composePath(isrc, idst, parentEdge), true
			}
			queue = append(queue, next)
		}
	}

	return linmap.Map{}, false
}

// composePath walks parent links back from idst and composes the edge maps
// in src→dst application order.
func (g *Graph) composePath(isrc, idst int, parentEdge map[int]int) linmap.Map {
	// Collect edge indexes dst-first, then apply them src-first.
	chain := make([]int, 0, 8)
	for at := idst; at != isrc; at = g.edges[parentEdge[at]].from {
		chain = append(chain, parentEdge[at])
	}
	total := linmap.Identity()
	for i := len(chain) - 1; i >= 0; i-- {
		total = linmap.Compose(g.edges[chain[i]].m, total)
	}

	return total
}

// related reports whether two dimension vectors are convertible in
// principle: exactly equal, or corresponding under a registered transform
// in either direction. Caller holds the read lock.
func (g *Graph) related(a, b dim.Vector) bool {
	if a.Equal(b) {
		return true
	}
	for _, t := range g.transforms {
		if t.Source() == a.Basis() && t.Destination() == b.Basis() {
			if mapped, err := t.ApplyToVector(a); err == nil && mapped.Equal(b) {
				return true
			}
		}
	}

	return false
}
