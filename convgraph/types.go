// Package convgraph: sentinel errors, the Calibration type, and the
// arena-backed graph storage types.
package convgraph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/unitgraph/basis"
	"github.com/katalvlaran/unitgraph/linmap"
	"github.com/katalvlaran/unitgraph/unit"
)

// Sentinel errors for graph registration and resolution.
var (
	// ErrNilGraph is returned if a nil *Graph pointer is used.
	ErrNilGraph = errors.New("convgraph: graph is nil")

	// ErrNilTransform is returned when ConnectSystems receives a nil transform.
	ErrNilTransform = errors.New("convgraph: transform is nil")

	// ErrIncompatibleDimensions indicates an edge between units whose
	// dimension vectors are not equal (direct edges connect same-dimension
	// units; cross-dimension linking goes through a basis transform only).
	ErrIncompatibleDimensions = errors.New("convgraph: incompatible dimensions")

	// ErrDuplicateEdge indicates a conflicting re-registration of the same
	// ordered unit pair with a different map. Identical re-registration is a
	// no-op; conflicting maps fail so graph state stays auditable.
	ErrDuplicateEdge = errors.New("convgraph: duplicate edge with different map")

	// ErrNoConversionPath indicates the two units are dimensionally related
	// but no chain of registered edges connects them.
	ErrNoConversionPath = errors.New("convgraph: no conversion path")

	// ErrDimensionMismatch indicates the two dimensions are not related at
	// all — neither equal nor corresponding under any registered transform.
	ErrDimensionMismatch = errors.New("convgraph: dimension mismatch")

	// ErrMissingCalibration indicates ConnectSystems found no calibration
	// edge for a source base dimension that has a base unit.
	ErrMissingCalibration = errors.New("convgraph: missing calibration edge")

	// ErrBadCalibration indicates a calibration edge that is affine,
	// non-invertible, not anchored on a source base unit, or aimed at a
	// destination unit of the wrong dimension.
	ErrBadCalibration = errors.New("convgraph: bad calibration edge")

	// ErrSystemMismatch indicates a transform whose bases do not match the
	// systems passed to ConnectSystems.
	ErrSystemMismatch = errors.New("convgraph: transform does not match systems")
)

// Calibration anchors one source base unit to a destination unit: one
// Calibration per source base dimension lets ConnectSystems derive every
// integer-exponent composite conversion between the two systems.
//
// Map carries a value in From units to a value in To units and must be
// purely linear (offset 0) and invertible — an affine calibration cannot be
// raised to exponent powers.
type Calibration struct {
	// From is the source system's base unit being calibrated.
	From unit.Unit

	// To is the destination-system unit From is expressed in. Its dimension
	// vector must equal the transform image of From's axis.
	To unit.Unit

	// Map converts a numeric value in From units into To units.
	Map linmap.Map
}

// node is one arena slot: a registered unit.
type node struct {
	u unit.Unit
}

// edge is a directed conversion between two arena slots.
type edge struct {
	from, to int
	m        linmap.Map
}

// pairKey identifies an ordered (from, to) node pair in the edge index.
type pairKey struct {
	from, to int
}

// Graph is the conversion registry: an arena of units, a table of directed
// Map-labeled edges, and the transforms known to relate different bases.
//
// Mutating calls (AddUnit, AddEdge, ConnectSystems) take the write lock;
// Convert and the inspection helpers take the read lock, so a frozen graph
// serves any number of concurrent readers.
type Graph struct {
	mu sync.RWMutex

	nodes     []node
	nodeIndex map[string]int // unit.Key() → arena index

	edges     []edge
	edgeIndex map[pairKey]int // ordered pair → index into edges

	// adjacency[nodeIdx] lists edge indexes in insertion order; BFS follows
	// this order, which is what makes path resolution deterministic.
	adjacency map[int][]int

	// transforms registered via ConnectSystems, kept (with their inverses)
	// to distinguish ErrNoConversionPath from ErrDimensionMismatch.
	transforms []*basis.Transform
}

// NewGraph creates an empty conversion graph.
func NewGraph() *Graph {
	return &Graph{
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[pairKey]int),
		adjacency: make(map[int][]int),
	}
}
