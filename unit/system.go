// Package unit: the System type — one base unit per dimension, indexed lookup.
package unit

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/unitgraph/dim"
)

// System is a coherent assignment of one base Unit per base dimension,
// plus any number of derived units, with name/alias lookup resolved through
// an index built at registration time.
//
// A System is mutable during setup (SetBase/Register) and treated as
// read-only afterwards; it performs no internal locking. A system need not
// cover every dimension of its basis.
type System struct {
	name  string
	basis *dim.Basis

	baseByDim map[string]Unit   // dimension name → base unit
	units     map[string]Unit   // canonical name → unit
	index     map[string]string // name or alias → canonical name
}

// NewSystem creates an empty System over the given basis.
// Returns ErrEmptyName or dim.ErrNilBasis on malformed input.
func NewSystem(name string, basis *dim.Basis) (*System, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if basis == nil {
		return nil, dim.ErrNilBasis
	}

	return &System{
		name:      name,
		basis:     basis,
		baseByDim: make(map[string]Unit),
		units:     make(map[string]Unit),
		index:     make(map[string]string),
	}, nil
}

// Name returns the system name.
func (s *System) Name() string { return s.name }

// Basis returns the basis the system's units are dimensioned over.
func (s *System) Basis() *dim.Basis { return s.basis }

// SetBase installs u as the system's base unit for dimName and returns the
// registered (system-stamped, base-flagged) unit.
//
// Validation, in order:
//   - dimName must be in the system basis (dim.ErrUnknownDimension);
//   - the dimension must not already have a base unit (ErrDuplicateBase);
//   - u's vector must be the pure axis of dimName and u's anchor scale must
//     be exactly 1 (ErrInvalidBaseUnit);
//   - usual name/alias uniqueness rules (ErrDuplicateName, ErrAliasCollision).
func (s *System) SetBase(dimName string, u Unit) (Unit, error) {
	if s == nil {
		return Unit{}, ErrNilSystem
	}
	if _, err := s.basis.Position(dimName); err != nil {
		return Unit{}, err
	}
	if prev, taken := s.baseByDim[dimName]; taken {
		return Unit{}, fmt.Errorf("%q already served by %q: %w", dimName, prev.Name(), ErrDuplicateBase)
	}
	axis, err := dim.Axis(s.basis, dimName)
	if err != nil {
		return Unit{}, err
	}
	if u.Vector().Basis() != s.basis {
		return Unit{}, fmt.Errorf("%q: %w", u.Name(), ErrForeignBasis)
	}
	if !u.Vector().Equal(axis) || u.Scale().Cmp(big.NewRat(1, 1)) != 0 {
		return Unit{}, fmt.Errorf("%q is not a pure scale-1 %s unit: %w", u.Name(), dimName, ErrInvalidBaseUnit)
	}
	stamped, err := s.adopt(u, true)
	if err != nil {
		return Unit{}, err
	}
	s.baseByDim[dimName] = stamped

	return stamped, nil
}

// DefineBase constructs and installs the base unit for dimName in one step.
// The unit's vector is the pure axis and its anchor scale is 1; only aliases
// may be supplied as options.
func (s *System) DefineBase(dimName, name string, opts ...Option) (Unit, error) {
	if s == nil {
		return Unit{}, ErrNilSystem
	}
	axis, err := dim.Axis(s.basis, dimName)
	if err != nil {
		return Unit{}, err
	}
	u, err := New(name, axis, opts...)
	if err != nil {
		return Unit{}, err
	}

	return s.SetBase(dimName, u)
}

// Register adds a derived (non-base) unit to the system and returns the
// system-stamped copy. The unit's vector must be over the system's basis.
func (s *System) Register(u Unit) (Unit, error) {
	if s == nil {
		return Unit{}, ErrNilSystem
	}
	if u.Vector().Basis() != s.basis {
		return Unit{}, fmt.Errorf("%q: %w", u.Name(), ErrForeignBasis)
	}

	return s.adopt(u, false)
}

// Define constructs and registers a derived unit in one step.
func (s *System) Define(name string, v dim.Vector, opts ...Option) (Unit, error) {
	u, err := New(name, v, opts...)
	if err != nil {
		return Unit{}, err
	}

	return s.Register(u)
}

// Base returns the base unit for dimName, or ErrUnknownBase.
func (s *System) Base(dimName string) (Unit, error) {
	if s == nil {
		return Unit{}, ErrNilSystem
	}
	u, ok := s.baseByDim[dimName]
	if !ok {
		return Unit{}, fmt.Errorf("%q: %w", dimName, ErrUnknownBase)
	}

	return u, nil
}

// Lookup resolves a canonical name or alias to its Unit, or ErrUnitNotFound.
// Resolution is a single map hit against the index built at registration.
func (s *System) Lookup(nameOrAlias string) (Unit, error) {
	if s == nil {
		return Unit{}, ErrNilSystem
	}
	canonical, ok := s.index[nameOrAlias]
	if !ok {
		return Unit{}, fmt.Errorf("%q: %w", nameOrAlias, ErrUnitNotFound)
	}

	return s.units[canonical], nil
}

// Units returns all registered units sorted by canonical name.
// Sorted output keeps iteration deterministic for callers that derive edges.
func (s *System) Units() []Unit {
	if s == nil {
		return nil
	}
	out := make([]Unit, 0, len(s.units))
	for _, u := range s.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}

// Len returns the number of registered units (base and derived).
func (s *System) Len() int {
	if s == nil {
		return 0
	}

	return len(s.units)
}

// adopt stamps u with the system name and base flag, enforces name/alias
// uniqueness against the index, and records the unit.
func (s *System) adopt(u Unit, base bool) (Unit, error) {
	if _, taken := s.index[u.name]; taken {
		return Unit{}, fmt.Errorf("%q: %w", u.name, ErrDuplicateName)
	}
	seen := map[string]struct{}{u.name: {}}
	for _, a := range u.aliases {
		if _, dup := seen[a]; dup {
			return Unit{}, fmt.Errorf("%q: %w", a, ErrAliasCollision)
		}
		if _, taken := s.index[a]; taken {
			return Unit{}, fmt.Errorf("%q: %w", a, ErrAliasCollision)
		}
		seen[a] = struct{}{}
	}
	stamped := u
	stamped.system = s.name
	stamped.base = base
	s.units[u.name] = stamped
	s.index[u.name] = u.name
	for _, a := range u.aliases {
		s.index[a] = u.name
	}

	return stamped, nil
}
