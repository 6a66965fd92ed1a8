// Package unit: the Unit value type, construction options, sentinel errors.
package unit

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/unitgraph/dim"
)

// Sentinel errors for unit and system construction.
var (
	// ErrEmptyName indicates an empty unit or system name.
	ErrEmptyName = errors.New("unit: empty name")

	// ErrDuplicateName indicates the name is already registered in the system.
	ErrDuplicateName = errors.New("unit: duplicate name")

	// ErrAliasCollision indicates an alias clashes with an existing name or alias.
	ErrAliasCollision = errors.New("unit: alias collision")

	// ErrInvalidBaseUnit indicates a base unit whose vector is not the pure
	// axis of its dimension, or whose anchor scale is not exactly 1.
	ErrInvalidBaseUnit = errors.New("unit: invalid base unit")

	// ErrDuplicateBase indicates a second base unit for the same dimension.
	ErrDuplicateBase = errors.New("unit: dimension already has a base unit")

	// ErrUnknownBase indicates no base unit is registered for the dimension.
	ErrUnknownBase = errors.New("unit: no base unit for dimension")

	// ErrUnitNotFound indicates a name/alias lookup missed.
	ErrUnitNotFound = errors.New("unit: unit not found")

	// ErrBadScale indicates a zero or negative anchor scale.
	ErrBadScale = errors.New("unit: anchor scale must be positive")

	// ErrForeignBasis indicates a vector over a basis other than the system's.
	ErrForeignBasis = errors.New("unit: vector over foreign basis")

	// ErrNilSystem indicates a nil *System pointer was passed.
	ErrNilSystem = errors.New("unit: system is nil")
)

// Unit is an immutable, named, scale-anchored quantity of a fixed dimension.
//
// The anchor scale relates one unit to the product of its system's base
// units raised to the unit's exponents. Free-standing units (registered into
// no system) carry an empty system name and anchor scale 1.
type Unit struct {
	name    string
	system  string // owning system name, "" when free-standing
	aliases []string
	vec     dim.Vector
	scale   *big.Rat // anchor relative to system base units, > 0
	base    bool
}

// Option configures optional Unit attributes at construction.
type Option func(*unitConfig)

// unitConfig collects optional attributes before validation.
type unitConfig struct {
	aliases []string
	scale   *big.Rat
}

// WithAliases attaches alternative lookup names to the unit.
func WithAliases(aliases ...string) Option {
	return func(c *unitConfig) { c.aliases = append(c.aliases, aliases...) }
}

// WithScale sets the anchor scale (1 unit = scale × base-unit product).
// Defaults to 1 when omitted.
func WithScale(scale *big.Rat) Option {
	return func(c *unitConfig) {
		if scale != nil {
			c.scale = new(big.Rat).Set(scale)
		}
	}
}

// WithScaleInt is WithScale with an integer ratio num/den.
func WithScaleInt(num, den int64) Option {
	return func(c *unitConfig) { c.scale = big.NewRat(num, den) }
}

// New creates a free-standing Unit with the given name and dimension vector.
// Returns ErrEmptyName for an empty or all-empty-alias name set, ErrBadScale
// for a non-positive anchor scale, ErrNilBasis (from dim) for an invalid
// vector. The unit belongs to no system until a System registers it.
func New(name string, v dim.Vector, opts ...Option) (Unit, error) {
	if name == "" {
		return Unit{}, ErrEmptyName
	}
	if v.Basis() == nil {
		return Unit{}, dim.ErrNilBasis
	}
	cfg := unitConfig{scale: big.NewRat(1, 1)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scale.Sign() <= 0 {
		return Unit{}, ErrBadScale
	}
	for _, a := range cfg.aliases {
		if a == "" {
			return Unit{}, ErrEmptyName
		}
	}
	aliases := make([]string, len(cfg.aliases))
	copy(aliases, cfg.aliases)

	return Unit{name: name, aliases: aliases, vec: v, scale: cfg.scale}, nil
}

// Name returns the canonical unit name.
func (u Unit) Name() string { return u.name }

// System returns the owning system name, or "" for a free-standing unit.
func (u Unit) System() string { return u.system }

// Aliases returns a copy of the alias list.
func (u Unit) Aliases() []string {
	out := make([]string, len(u.aliases))
	copy(out, u.aliases)

	return out
}

// Vector returns the unit's dimension vector.
func (u Unit) Vector() dim.Vector { return u.vec }

// Scale returns a copy of the anchor scale.
func (u Unit) Scale() *big.Rat {
	if u.scale == nil {
		return big.NewRat(1, 1)
	}

	return new(big.Rat).Set(u.scale)
}

// IsBase reports whether the unit is its system's base unit for a dimension.
func (u Unit) IsBase() bool { return u.base }

// Key returns the graph identity of the unit: "system/name".
// Two units are the same graph node iff their keys are equal.
func (u Unit) Key() string { return u.system + "/" + u.name }

// SameUnit reports whether u and w denote the same graph node (equal keys).
func (u Unit) SameUnit(w Unit) bool { return u.Key() == w.Key() }

// String renders the unit as its key.
func (u Unit) String() string { return u.Key() }
