// Package convgraph: ConnectSystems — deriving the cross-system edges
// implied by a basis transform and a calibration edge per base dimension.
package convgraph

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/unitgraph/basis"
	"github.com/katalvlaran/unitgraph/dim"
	"github.com/katalvlaran/unitgraph/linmap"
	"github.com/katalvlaran/unitgraph/unit"
)

// stagedEdge is a derived conversion awaiting atomic commit.
type stagedEdge struct {
	from, to unit.Unit
	m        linmap.Map
}

// ConnectSystems registers everything needed to convert between two unit
// systems related by t: all units of both systems become nodes, the
// calibration edges become direct edges, and a derived edge is added for
// every source/destination unit pair whose dimension vectors correspond
// under t.
//
// t must run from src's basis to dst's basis and be invertible — derived
// edges are bidirectional, so round-trip conversion always needs the
// inverse (basis.ErrNonInvertibleTransform otherwise, registering nothing).
//
// One Calibration is required per source base dimension that has a base
// unit (ErrMissingCalibration). Each must be purely linear and invertible,
// anchored on a base unit of src, and aimed at a dst unit whose vector
// equals the transform image of the base axis (ErrBadCalibration,
// ErrIncompatibleDimensions).
//
// Derivation covers source units with integer exponents; a rational power
// of a rational scale is not rational in general, so fractional-exponent
// units keep converting through explicitly registered edges only.
//
// The call is atomic: every validation and every derived edge is staged
// first, and the graph is mutated only when the whole set is known good.
func (g *Graph) ConnectSystems(src, dst *unit.System, t *basis.Transform, cals []Calibration) error {
	if g == nil {
		return ErrNilGraph
	}
	if src == nil || dst == nil {
		return unit.ErrNilSystem
	}
	if t == nil {
		return ErrNilTransform
	}
	if t.Source() != src.Basis() || t.Destination() != dst.Basis() {
		return ErrSystemMismatch
	}
	if !t.IsInvertible() {
		return basis.ErrNonInvertibleTransform
	}
	tInv, err := t.Invert()
	if err != nil {
		return err
	}

	scales, staged, err := stageCalibrations(src, dst, t, cals)
	if err != nil {
		return err
	}
	derived, err := deriveEdges(src, dst, t, scales)
	if err != nil {
		return err
	}
	staged = append(staged, derived...)

	g.mu.Lock()
	defer g.mu.Unlock()

	// Audit the whole staged set against existing state before committing.
	for _, se := range staged {
		if err = g.checkDuplicate(se.from, se.to, se.m); err != nil {
			return err
		}
		inv, invErr := se.m.Invert()
		if invErr != nil {
			return invErr
		}
		if err = g.checkDuplicate(se.to, se.from, inv); err != nil {
			return err
		}
	}

	// Commit: all system units become nodes, then the staged edges land.
	for _, u := range src.Units() {
		g.ensureNode(u)
	}
	for _, u := range dst.Units() {
		g.ensureNode(u)
	}
	for _, se := range staged {
		inv, _ := se.m.Invert() // audited above
		ia, ib := g.ensureNode(se.from), g.ensureNode(se.to)
		g.insertEdge(ia, ib, se.m)
		g.insertEdge(ib, ia, inv)
	}
	g.transforms = append(g.transforms, t, tInv)

	return nil
}

// stageCalibrations validates the calibration set and returns the exact
// scale of each source base unit expressed in destination base units,
// keyed by source dimension name, plus the calibration edges themselves.
func stageCalibrations(src, dst *unit.System, t *basis.Transform, cals []Calibration) (map[string]*big.Rat, []stagedEdge, error) {
	scales := make(map[string]*big.Rat, len(cals))
	staged := make([]stagedEdge, 0, len(cals))
	for _, cal := range cals {
		if !cal.Map.IsLinear() {
			return nil, nil, fmt.Errorf("%s→%s is affine: %w", cal.From.Key(), cal.To.Key(), ErrBadCalibration)
		}
		if cal.Map.Scale().Sign() == 0 {
			return nil, nil, fmt.Errorf("%s→%s has zero scale: %w", cal.From.Key(), cal.To.Key(), ErrBadCalibration)
		}
		if cal.From.System() != src.Name() || !cal.From.IsBase() {
			return nil, nil, fmt.Errorf("%s is not a base unit of %s: %w", cal.From.Key(), src.Name(), ErrBadCalibration)
		}
		if cal.To.System() != dst.Name() {
			return nil, nil, fmt.Errorf("%s is not a unit of %s: %w", cal.To.Key(), dst.Name(), ErrBadCalibration)
		}
		dimName, err := axisName(cal.From.Vector())
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", cal.From.Key(), ErrBadCalibration)
		}
		axis, err := dim.Axis(src.Basis(), dimName)
		if err != nil {
			return nil, nil, err
		}
		want, err := t.ApplyToVector(axis)
		if err != nil {
			return nil, nil, err
		}
		if !cal.To.Vector().Equal(want) {
			return nil, nil, fmt.Errorf("calibration for %q targets %s (%s), want %s: %w",
				dimName, cal.To.Key(), cal.To.Vector(), want, ErrIncompatibleDimensions)
		}
		if _, dup := scales[dimName]; dup {
			return nil, nil, fmt.Errorf("second calibration for %q: %w", dimName, ErrBadCalibration)
		}
		// 1 base unit = (cal scale)·To = (cal scale)·(To anchor) in dst base units.
		scales[dimName] = new(big.Rat).Mul(cal.Map.Scale(), cal.To.Scale())
		staged = append(staged, stagedEdge{from: cal.From, to: cal.To, m: cal.Map})
	}
	for _, name := range src.Basis().Names() {
		if _, baseErr := src.Base(name); baseErr != nil {
			continue // dimension has no base unit, nothing to calibrate
		}
		if _, ok := scales[name]; !ok {
			return nil, nil, fmt.Errorf("dimension %q: %w", name, ErrMissingCalibration)
		}
	}

	return scales, staged, nil
}

// deriveEdges computes the cross-system edge for every unit pair whose
// dimension vectors correspond under t. Iteration follows System.Units()
// name order, keeping derived-edge insertion deterministic.
func deriveEdges(src, dst *unit.System, t *basis.Transform, scales map[string]*big.Rat) ([]stagedEdge, error) {
	names := src.Basis().Names()
	dstUnits := dst.Units()
	staged := make([]stagedEdge, 0, src.Len())
	for _, u := range src.Units() {
		exps, whole := u.Vector().IntExponents()
		if !whole {
			continue // fractional exponent: no exact derived scale exists
		}
		factor, ok := baseFactor(names, exps, scales)
		if !ok {
			continue // touches a dimension with no calibration
		}
		mapped, err := t.ApplyToVector(u.Vector())
		if err != nil {
			return nil, err
		}
		for _, v := range dstUnits {
			if !v.Vector().Equal(mapped) {
				continue
			}
			if u.IsBase() && sameCalTarget(staged, u, v) {
				continue // the calibration edge already covers this pair
			}
			// scale = u.anchor · ∏ baseᵢ^expᵢ / v.anchor, all exact.
			scale := new(big.Rat).Mul(u.Scale(), factor)
			scale.Quo(scale, v.Scale())
			staged = append(staged, stagedEdge{from: u, to: v, m: linmap.Linear(scale)})
		}
	}

	return staged, nil
}

// baseFactor returns ∏ scales[dim]^exp over the nonzero exponents, or
// ok=false when a needed dimension has no calibration scale.
func baseFactor(names []string, exps []int64, scales map[string]*big.Rat) (*big.Rat, bool) {
	factor := big.NewRat(1, 1)
	for i, name := range names {
		if exps[i] == 0 {
			continue
		}
		k, ok := scales[name]
		if !ok {
			return nil, false
		}
		factor.Mul(factor, ratPow(k, exps[i]))
	}

	return factor, true
}

// sameCalTarget reports whether a staged calibration edge already connects
// base unit u to v.
func sameCalTarget(staged []stagedEdge, u, v unit.Unit) bool {
	for _, se := range staged {
		if se.from.SameUnit(u) && se.to.SameUnit(v) {
			return true
		}
	}

	return false
}

// axisName returns the single dimension name a pure axis vector points at.
func axisName(v dim.Vector) (string, error) {
	one := big.NewRat(1, 1)
	found := ""
	for _, name := range v.Basis().Names() {
		e, err := v.Exponent(name)
		if err != nil {
			return "", err
		}
		switch {
		case e.Sign() == 0:
		case e.Cmp(one) == 0 && found == "":
			found = name
		default:
			return "", dim.ErrShapeMismatch
		}
	}
	if found == "" {
		return "", dim.ErrShapeMismatch
	}

	return found, nil
}

// ratPow raises a nonzero rational to an integer power, exactly.
func ratPow(r *big.Rat, n int64) *big.Rat {
	if n == 0 {
		return big.NewRat(1, 1)
	}
	base := new(big.Rat).Set(r)
	if n < 0 {
		base.Inv(base)
		n = -n
	}
	exp := big.NewInt(n)
	num := new(big.Int).Exp(base.Num(), exp, nil)
	den := new(big.Int).Exp(base.Denom(), exp, nil)

	return new(big.Rat).SetFrac(num, den)
}
