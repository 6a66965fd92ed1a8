// Package convgraph: registration — units as arena nodes, direct edges with
// duplicate auditing, deterministic adjacency.
package convgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/unitgraph/linmap"
	"github.com/katalvlaran/unitgraph/unit"
)

// AddUnit registers u as a graph node without any edges. Registering the
// same unit again is a no-op. Convert(u, u) returns the identity map for
// every registered unit.
func (g *Graph) AddUnit(u unit.Unit) error {
	if g == nil {
		return ErrNilGraph
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(u)

	return nil
}

// AddEdge registers the direct bidirectional conversion a→b through m
// (and b→a through its inverse).
//
// Validation, in order:
//   - m must be invertible (linmap.ErrNonInvertibleMap);
//   - a and b must have exactly equal dimension vectors over one basis
//     (ErrIncompatibleDimensions) — cross-basis linking is the exclusive
//     business of ConnectSystems;
//   - re-registering the identical map for the same ordered pair is a
//     no-op; a different map fails with ErrDuplicateEdge and the graph is
//     left untouched.
//
// A self-edge (a and b the same node) is accepted only when m is the
// identity, and registers nothing.
func (g *Graph) AddEdge(a, b unit.Unit, m linmap.Map) error {
	if g == nil {
		return ErrNilGraph
	}
	inv, err := m.Invert()
	if err != nil {
		return err
	}
	if !a.Vector().Equal(b.Vector()) {
		return fmt.Errorf("%s (%s) vs %s (%s): %w",
			a.Key(), a.Vector(), b.Key(), b.Vector(), ErrIncompatibleDimensions)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if a.Key() == b.Key() {
		if !m.IsIdentity() {
			return fmt.Errorf("self-edge on %s conflicts with identity: %w", a.Key(), ErrDuplicateEdge)
		}
		g.ensureNode(a)

		return nil
	}

	// Audit both directions before touching state.
	if err = g.checkDuplicate(a, b, m); err != nil {
		return err
	}
	if err = g.checkDuplicate(b, a, inv); err != nil {
		return err
	}

	ia, ib := g.ensureNode(a), g.ensureNode(b)
	g.insertEdge(ia, ib, m)
	g.insertEdge(ib, ia, inv)

	return nil
}

// HasUnit reports whether u is a registered node.
func (g *Graph) HasUnit(u unit.Unit) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodeIndex[u.Key()]

	return ok
}

// Units returns all registered units sorted by key.
func (g *Graph) Units() []unit.Unit {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]unit.Unit, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.u
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}

// NodeCount returns the number of registered units.
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of directed edges (each bidirectional
// registration contributes two).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// ensureNode returns the arena index for u, appending a new slot on first
// sight. Caller holds the write lock.
func (g *Graph) ensureNode(u unit.Unit) int {
	if i, ok := g.nodeIndex[u.Key()]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, node{u: u})
	g.nodeIndex[u.Key()] = i

	return i
}

// checkDuplicate enforces the auditable-registration policy for the ordered
// pair (from, to): identical map → nil with exists semantics handled by
// insertEdge's no-op, different map → ErrDuplicateEdge.
// Caller holds the write lock.
func (g *Graph) checkDuplicate(from, to unit.Unit, m linmap.Map) error {
	ia, okA := g.nodeIndex[from.Key()]
	ib, okB := g.nodeIndex[to.Key()]
	if !okA || !okB {
		return nil
	}
	ei, ok := g.edgeIndex[pairKey{from: ia, to: ib}]
	if !ok {
		return nil
	}
	if !g.edges[ei].m.Equal(m) {
		return fmt.Errorf("%s→%s already maps by %s, refusing %s: %w",
			from.Key(), to.Key(), g.edges[ei].m, m, ErrDuplicateEdge)
	}

	return nil
}

// insertEdge records the directed edge ia→ib unless an identical one exists.
// Caller holds the write lock and has already run checkDuplicate.
func (g *Graph) insertEdge(ia, ib int, m linmap.Map) {
	key := pairKey{from: ia, to: ib}
	if _, ok := g.edgeIndex[key]; ok {
		return // identical re-registration, audited by checkDuplicate
	}
	ei := len(g.edges)
	g.edges = append(g.edges, edge{from: ia, to: ib, m: m})
	g.edgeIndex[key] = ei
	g.adjacency[ia] = append(g.adjacency[ia], ei)
}
