// Package dim: Basis type, sentinel errors, and basis construction.
package dim

import (
	"errors"
	"fmt"
)

// Sentinel errors for basis and vector construction.
var (
	// ErrNilBasis is returned when a nil *Basis pointer is passed.
	ErrNilBasis = errors.New("dim: basis is nil")

	// ErrEmptyDimension is returned when a base-dimension name is empty.
	ErrEmptyDimension = errors.New("dim: empty dimension name")

	// ErrDuplicateDimension is returned when a basis lists the same name twice.
	ErrDuplicateDimension = errors.New("dim: duplicate dimension name")

	// ErrShapeMismatch is returned when an exponent tuple has the wrong arity
	// or when vectors over different bases are mixed in one operation.
	ErrShapeMismatch = errors.New("dim: shape mismatch")

	// ErrUnknownDimension is returned when a dimension name is absent from the basis.
	ErrUnknownDimension = errors.New("dim: unknown dimension")
)

// Basis is a fixed, ordered set of base-dimension names.
//
// A Basis is created once and shared read-only by every Vector built on it;
// vector arity and exponent order are defined by the basis order.
// Two vectors are comparable only when they share the same Basis instance.
type Basis struct {
	// names holds the base-dimension names in declaration order.
	names []string

	// index maps each name to its position in names.
	index map[string]int
}

// NewBasis creates a Basis from the given ordered dimension names.
// Returns ErrEmptyDimension if no names are given or a name is empty,
// ErrDuplicateDimension if a name repeats.
// Complexity: O(n) over the number of names.
func NewBasis(names ...string) (*Basis, error) {
	if len(names) == 0 {
		return nil, ErrEmptyDimension
	}
	b := &Basis{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("position %d: %w", i, ErrEmptyDimension)
		}
		if _, dup := b.index[name]; dup {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateDimension)
		}
		b.names[i] = name
		b.index[name] = i
	}

	return b, nil
}

// Arity returns the number of base dimensions in the basis.
func (b *Basis) Arity() int {
	if b == nil {
		return 0
	}

	return len(b.names)
}

// Names returns a copy of the base-dimension names in declaration order.
func (b *Basis) Names() []string {
	if b == nil {
		return nil
	}
	out := make([]string, len(b.names))
	copy(out, b.names)

	return out
}

// Position returns the index of name within the basis, or ErrUnknownDimension.
func (b *Basis) Position(name string) (int, error) {
	if b == nil {
		return 0, ErrNilBasis
	}
	i, ok := b.index[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownDimension)
	}

	return i, nil
}

// Contains reports whether name is one of the basis dimensions.
func (b *Basis) Contains(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.index[name]

	return ok
}
