// Package catalog: construction of the built-in systems and their graph.
package catalog

import (
	"math/big"

	"github.com/katalvlaran/unitgraph/basis"
	"github.com/katalvlaran/unitgraph/convgraph"
	"github.com/katalvlaran/unitgraph/dim"
	"github.com/katalvlaran/unitgraph/linmap"
	"github.com/katalvlaran/unitgraph/unit"
)

// Canonical base-dimension names shared by the built-in systems.
const (
	Mass              = "mass"
	Length            = "length"
	Time              = "time"
	Charge            = "charge"
	Temperature       = "temperature"
	Amount            = "amount"
	LuminousIntensity = "luminous-intensity"
)

// Catalog bundles the built-in basis, systems, and their connected graph.
// Build it once with New and treat it as read-only afterwards.
type Catalog struct {
	Basis *dim.Basis
	SI    *unit.System
	CGS   *unit.System
	Graph *convgraph.Graph
}

// New builds the complete catalog: both systems, all in-system edges, the
// celsius↔kelvin affine edge, and the SI↔CGS connection.
func New() (*Catalog, error) {
	b, err := dim.NewBasis(Mass, Length, Time, Charge, Temperature, Amount, LuminousIntensity)
	if err != nil {
		return nil, err
	}

	si, err := buildSI(b)
	if err != nil {
		return nil, err
	}
	cgs, err := buildCGS(b)
	if err != nil {
		return nil, err
	}

	g := convgraph.NewGraph()
	// celsius is chained by hand below; its anchor carries no offset.
	if err = chainAnchorEdges(g, si, "celsius"); err != nil {
		return nil, err
	}
	if err = chainAnchorEdges(g, cgs); err != nil {
		return nil, err
	}

	celsius, err := si.Lookup("celsius")
	if err != nil {
		return nil, err
	}
	kelvin, err := si.Lookup("kelvin")
	if err != nil {
		return nil, err
	}
	if err = g.AddEdge(celsius, kelvin, linmap.Affine(big.NewRat(1, 1), big.NewRat(27315, 100))); err != nil {
		return nil, err
	}

	if err = connectSystems(g, cgs, si); err != nil {
		return nil, err
	}

	return &Catalog{Basis: b, SI: si, CGS: cgs, Graph: g}, nil
}

// Lookup resolves a unit by name or alias, searching SI first, then CGS.
func (c *Catalog) Lookup(nameOrAlias string) (unit.Unit, error) {
	if u, err := c.SI.Lookup(nameOrAlias); err == nil {
		return u, nil
	}

	return c.CGS.Lookup(nameOrAlias)
}

// Convert resolves both names, composes the conversion map, and applies it.
func (c *Catalog) Convert(from, to string, v float64) (float64, error) {
	src, err := c.Lookup(from)
	if err != nil {
		return 0, err
	}
	dst, err := c.Lookup(to)
	if err != nil {
		return 0, err
	}
	m, err := c.Graph.Convert(src, dst)
	if err != nil {
		return 0, err
	}

	return m.Apply(v), nil
}

// sysBuilder accumulates registrations with a sticky error, so system
// construction reads as a flat declaration list.
type sysBuilder struct {
	s   *unit.System
	err error
}

func (sb *sysBuilder) base(dimName, name string, aliases ...string) {
	if sb.err != nil {
		return
	}
	_, sb.err = sb.s.DefineBase(dimName, name, unit.WithAliases(aliases...))
}

// derived registers a unit with the given exponents over
// (mass, length, time, charge, temperature, amount, luminous-intensity)
// and anchor scale num/den.
func (sb *sysBuilder) derived(name string, exps []int64, num, den int64, aliases ...string) {
	if sb.err != nil {
		return
	}
	v, err := dim.FromInts(sb.s.Basis(), exps...)
	if err != nil {
		sb.err = err

		return
	}
	_, sb.err = sb.s.Define(name, v, unit.WithScaleInt(num, den), unit.WithAliases(aliases...))
}

// buildSI declares the SI system: one base unit per dimension plus the
// everyday derived units.
func buildSI(b *dim.Basis) (*unit.System, error) {
	s, err := unit.NewSystem("SI", b)
	if err != nil {
		return nil, err
	}
	sb := &sysBuilder{s: s}

	sb.base(Mass, "kilogram", "kg")
	sb.base(Length, "metre", "m", "meter")
	sb.base(Time, "second", "s", "sec")
	sb.base(Charge, "coulomb", "C")
	sb.base(Temperature, "kelvin", "K")
	sb.base(Amount, "mole", "mol")
	sb.base(LuminousIntensity, "candela", "cd")

	//                       m   l   t   q   T   n   I
	sb.derived("gram", []int64{1, 0, 0, 0, 0, 0, 0}, 1, 1000, "g")
	sb.derived("tonne", []int64{1, 0, 0, 0, 0, 0, 0}, 1000, 1, "t")
	sb.derived("kilometre", []int64{0, 1, 0, 0, 0, 0, 0}, 1000, 1, "km")
	sb.derived("litre", []int64{0, 3, 0, 0, 0, 0, 0}, 1, 1000, "L")
	sb.derived("minute", []int64{0, 0, 1, 0, 0, 0, 0}, 60, 1, "min")
	sb.derived("hour", []int64{0, 0, 1, 0, 0, 0, 0}, 3600, 1, "h")
	sb.derived("hertz", []int64{0, 0, -1, 0, 0, 0, 0}, 1, 1, "Hz")
	sb.derived("newton", []int64{1, 1, -2, 0, 0, 0, 0}, 1, 1, "N")
	sb.derived("pascal", []int64{1, -1, -2, 0, 0, 0, 0}, 1, 1, "Pa")
	sb.derived("joule", []int64{1, 2, -2, 0, 0, 0, 0}, 1, 1, "J")
	sb.derived("watt", []int64{1, 2, -3, 0, 0, 0, 0}, 1, 1, "W")
	sb.derived("ampere", []int64{0, 0, -1, 1, 0, 0, 0}, 1, 1, "A")
	sb.derived("volt", []int64{1, 2, -2, -1, 0, 0, 0}, 1, 1, "V")
	// Affine relative to kelvin; anchor scale 1 is a placeholder and the
	// real relation is the explicit celsius↔kelvin edge.
	sb.derived("celsius", []int64{0, 0, 0, 0, 1, 0, 0}, 1, 1, "°C")

	return s, sb.err
}

// buildCGS declares the CGS system over the same basis; it covers only the
// mass, length and time dimensions.
func buildCGS(b *dim.Basis) (*unit.System, error) {
	s, err := unit.NewSystem("CGS", b)
	if err != nil {
		return nil, err
	}
	sb := &sysBuilder{s: s}

	sb.base(Mass, "gram")
	sb.base(Length, "centimetre", "cm", "centimeter")
	sb.base(Time, "second")

	sb.derived("dyne", []int64{1, 1, -2, 0, 0, 0, 0}, 1, 1, "dyn")
	sb.derived("erg", []int64{1, 2, -2, 0, 0, 0, 0}, 1, 1)
	sb.derived("barye", []int64{1, -1, -2, 0, 0, 0, 0}, 1, 1, "Ba")
	sb.derived("gal", []int64{0, 1, -2, 0, 0, 0, 0}, 1, 1, "Gal")
	sb.derived("poise", []int64{1, -1, -1, 0, 0, 0, 0}, 1, 1, "P")

	return s, sb.err
}

// chainAnchorEdges registers the in-system conversions implied by anchor
// scales: units of one dimension form a chain in name order, each edge
// carrying the exact anchor ratio. Units named in except are left out.
func chainAnchorEdges(g *convgraph.Graph, s *unit.System, except ...string) error {
	skip := make(map[string]bool, len(except))
	for _, name := range except {
		skip[name] = true
	}
	groups := make(map[string][]unit.Unit)
	order := make([]string, 0)
	for _, u := range s.Units() { // sorted by name: deterministic chains
		if skip[u.Name()] {
			if err := g.AddUnit(u); err != nil {
				return err
			}
			continue
		}
		key := u.Vector().String()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], u)
	}
	for _, key := range order {
		group := groups[key]
		if len(group) == 1 {
			if err := g.AddUnit(group[0]); err != nil {
				return err
			}
			continue
		}
		for i := 1; i < len(group); i++ {
			prev, curr := group[i-1], group[i]
			scale := prev.Scale()
			scale.Quo(scale, curr.Scale())
			if err := g.AddEdge(prev, curr, linmap.Linear(scale)); err != nil {
				return err
			}
		}
	}

	return nil
}

// connectSystems links CGS to SI: identity transform over the shared basis,
// calibrated through the CGS base units.
func connectSystems(g *convgraph.Graph, cgs, si *unit.System) error {
	t, err := basis.IdentityTransform(cgs.Basis(), si.Basis())
	if err != nil {
		return err
	}

	gram, err := cgs.Lookup("gram")
	if err != nil {
		return err
	}
	cm, err := cgs.Lookup("centimetre")
	if err != nil {
		return err
	}
	sec, err := cgs.Lookup("second")
	if err != nil {
		return err
	}
	kg, err := si.Lookup("kilogram")
	if err != nil {
		return err
	}
	metre, err := si.Lookup("metre")
	if err != nil {
		return err
	}
	siSecond, err := si.Lookup("second")
	if err != nil {
		return err
	}

	return g.ConnectSystems(cgs, si, t, []convgraph.Calibration{
		{From: gram, To: kg, Map: linmap.LinearInt(1, 1000)},
		{From: cm, To: metre, Map: linmap.LinearInt(1, 100)},
		{From: sec, To: siSecond, Map: linmap.LinearInt(1, 1)},
	})
}
