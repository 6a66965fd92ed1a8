// Package convgraph_test verifies ConnectSystems: calibration validation,
// atomic failure, and derived cross-system composite conversions matching
// manual computation.
package convgraph_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitgraph/basis"
	"github.com/katalvlaran/unitgraph/convgraph"
	"github.com/katalvlaran/unitgraph/dim"
	"github.com/katalvlaran/unitgraph/linmap"
	"github.com/katalvlaran/unitgraph/unit"
)

// fixture wires an SI-like source system to a fantasy "arcana" destination
// system through the 3×3 transform [[2,0,0],[1,0,1],[-2,-1,0]]: each SI base
// axis decomposes into a composite arcana dimension.
type fixture struct {
	si, arcana *unit.System
	t          *basis.Transform

	kilogram, metre, second, joule unit.Unit
	mote, glim, pace, zorch        unit.Unit

	cals []convgraph.Calibration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{}

	mlt, err := dim.NewBasis("mass", "length", "time")
	require.NoError(t, err)
	arc, err := dim.NewBasis("spark", "stretch", "beat")
	require.NoError(t, err)

	f.si, err = unit.NewSystem("SI", mlt)
	require.NoError(t, err)
	f.kilogram, err = f.si.DefineBase("mass", "kilogram", unit.WithAliases("kg"))
	require.NoError(t, err)
	f.metre, err = f.si.DefineBase("length", "metre", unit.WithAliases("m"))
	require.NoError(t, err)
	f.second, err = f.si.DefineBase("time", "second", unit.WithAliases("s"))
	require.NoError(t, err)
	energy, err := dim.FromInts(mlt, 1, 2, -2)
	require.NoError(t, err)
	f.joule, err = f.si.Define("joule", energy, unit.WithAliases("J"))
	require.NoError(t, err)

	f.arcana, err = unit.NewSystem("arcana", arc)
	require.NoError(t, err)
	// The transform image of each SI base axis, as arcana composites.
	moteDim, err := dim.FromInts(arc, 2, 1, -2) // image of mass
	require.NoError(t, err)
	glimDim, err := dim.FromInts(arc, 0, 0, -1) // image of length
	require.NoError(t, err)
	paceDim, err := dim.FromInts(arc, 0, 1, 0) // image of time
	require.NoError(t, err)
	zorchDim, err := dim.FromInts(arc, 2, -1, -4) // image of energy
	require.NoError(t, err)
	f.mote, err = f.arcana.Define("mote", moteDim)
	require.NoError(t, err)
	f.glim, err = f.arcana.Define("glim", glimDim)
	require.NoError(t, err)
	f.pace, err = f.arcana.Define("pace", paceDim)
	require.NoError(t, err)
	f.zorch, err = f.arcana.Define("zorch", zorchDim)
	require.NoError(t, err)

	m, err := basis.FromInts([][]int64{
		{2, 0, 0},
		{1, 0, 1},
		{-2, -1, 0},
	})
	require.NoError(t, err)
	f.t, err = basis.NewTransform(mlt, arc, m)
	require.NoError(t, err)
	require.True(t, f.t.IsInvertible())

	f.cals = []convgraph.Calibration{
		{From: f.kilogram, To: f.mote, Map: linmap.LinearInt(5, 1)}, // 1 kg = 5 mote
		{From: f.metre, To: f.glim, Map: linmap.LinearInt(2, 1)},    // 1 m = 2 glim
		{From: f.second, To: f.pace, Map: linmap.LinearInt(3, 1)},   // 1 s = 3 pace
	}

	return f
}

func TestConnectSystems_DerivedCompositeMatchesManualComputation(t *testing.T) {
	f := newFixture(t)
	g := convgraph.NewGraph()
	require.NoError(t, g.ConnectSystems(f.si, f.arcana, f.t, f.cals))

	// J = kg·m²·s⁻², so 1 J = 5·2²·3⁻² zorch = 20/9 zorch.
	m, err := g.Convert(f.joule, f.zorch)
	require.NoError(t, err)
	require.Zero(t, m.Scale().Cmp(big.NewRat(20, 9)), "derived scale %s, want 20/9", m.Scale())
	require.Zero(t, m.ApplyRat(big.NewRat(9, 1)).Cmp(big.NewRat(20, 1)))

	// The derived edge is bidirectional and exactly inverse.
	back, err := g.Convert(f.zorch, f.joule)
	require.NoError(t, err)
	require.True(t, linmap.Compose(back, m).IsIdentity())
}

func TestConnectSystems_CalibrationEdgesAreQueryable(t *testing.T) {
	f := newFixture(t)
	g := convgraph.NewGraph()
	require.NoError(t, g.ConnectSystems(f.si, f.arcana, f.t, f.cals))

	kgToMote, err := g.Convert(f.kilogram, f.mote)
	require.NoError(t, err)
	require.EqualValues(t, 10, kgToMote.Apply(2))

	// Every unit of both systems became a node.
	for _, u := range []unit.Unit{f.kilogram, f.metre, f.second, f.joule, f.mote, f.glim, f.pace, f.zorch} {
		require.True(t, g.HasUnit(u), "missing node %s", u)
		id, convErr := g.Convert(u, u)
		require.NoError(t, convErr)
		require.True(t, id.IsIdentity())
	}
}

func TestConnectSystems_SingularTransformIsAtomic(t *testing.T) {
	f := newFixture(t)
	sing, err := basis.FromInts([][]int64{
		{1, 2, 3},
		{2, 4, 6},
		{0, 1, 1},
	})
	require.NoError(t, err)
	degenerate, err := basis.NewTransform(f.si.Basis(), f.arcana.Basis(), sing)
	require.NoError(t, err)

	g := convgraph.NewGraph()
	err = g.ConnectSystems(f.si, f.arcana, degenerate, f.cals)
	require.ErrorIs(t, err, basis.ErrNonInvertibleTransform)
	require.Zero(t, g.EdgeCount(), "singular transform must register nothing")
	require.Zero(t, g.NodeCount())
}

func TestConnectSystems_MissingCalibrationIsAtomic(t *testing.T) {
	f := newFixture(t)
	g := convgraph.NewGraph()
	err := g.ConnectSystems(f.si, f.arcana, f.t, f.cals[:2]) // no time calibration
	require.ErrorIs(t, err, convgraph.ErrMissingCalibration)
	require.Zero(t, g.EdgeCount())
	require.Zero(t, g.NodeCount())
}

func TestConnectSystems_RejectsBadCalibrations(t *testing.T) {
	f := newFixture(t)
	g := convgraph.NewGraph()

	// Affine calibration cannot be raised to exponent powers.
	affine := f.cals
	affine = append([]convgraph.Calibration{}, affine...)
	affine[0].Map = linmap.Affine(big.NewRat(5, 1), big.NewRat(1, 1))
	err := g.ConnectSystems(f.si, f.arcana, f.t, affine)
	require.ErrorIs(t, err, convgraph.ErrBadCalibration)

	// Calibration anchored on a non-base unit.
	nonBase := append([]convgraph.Calibration{}, f.cals...)
	nonBase[0].From = f.joule
	err = g.ConnectSystems(f.si, f.arcana, f.t, nonBase)
	require.ErrorIs(t, err, convgraph.ErrBadCalibration)

	// Calibration aimed at a destination unit of the wrong dimension.
	wrongDim := append([]convgraph.Calibration{}, f.cals...)
	wrongDim[0].To = f.pace
	err = g.ConnectSystems(f.si, f.arcana, f.t, wrongDim)
	require.ErrorIs(t, err, convgraph.ErrIncompatibleDimensions)

	require.Zero(t, g.EdgeCount())
}

func TestConnectSystems_TransformMustMatchSystems(t *testing.T) {
	f := newFixture(t)
	g := convgraph.NewGraph()
	err := g.ConnectSystems(f.arcana, f.si, f.t, f.cals) // systems swapped
	require.ErrorIs(t, err, convgraph.ErrSystemMismatch)
	require.ErrorIs(t, g.ConnectSystems(f.si, f.arcana, nil, f.cals), convgraph.ErrNilTransform)
	require.ErrorIs(t, g.ConnectSystems(nil, f.arcana, f.t, f.cals), unit.ErrNilSystem)
}

func TestConnectSystems_RelatedDimensionsClassifyFailures(t *testing.T) {
	f := newFixture(t)
	g := convgraph.NewGraph()
	require.NoError(t, g.ConnectSystems(f.si, f.arcana, f.t, f.cals))

	// joule and pace are unrelated even under the transform.
	_, err := g.Convert(f.joule, f.pace)
	require.ErrorIs(t, err, convgraph.ErrDimensionMismatch)
}

func TestConnectSystems_SharedBasisIdentityTransform(t *testing.T) {
	// SI↔CGS over the same physical axes: identity transform, scale-only
	// calibrations, derived composite (joule↔erg) with no explicit edge.
	mlt, err := dim.NewBasis("mass", "length", "time")
	require.NoError(t, err)
	cgsBasis, err := dim.NewBasis("mass", "length", "time")
	require.NoError(t, err)

	si, err := unit.NewSystem("SI", mlt)
	require.NoError(t, err)
	kg, err := si.DefineBase("mass", "kilogram")
	require.NoError(t, err)
	m, err := si.DefineBase("length", "metre")
	require.NoError(t, err)
	s, err := si.DefineBase("time", "second")
	require.NoError(t, err)
	siEnergy, err := dim.FromInts(mlt, 1, 2, -2)
	require.NoError(t, err)
	joule, err := si.Define("joule", siEnergy)
	require.NoError(t, err)

	cgs, err := unit.NewSystem("CGS", cgsBasis)
	require.NoError(t, err)
	gram, err := cgs.DefineBase("mass", "gram")
	require.NoError(t, err)
	cm, err := cgs.DefineBase("length", "centimetre")
	require.NoError(t, err)
	sec, err := cgs.DefineBase("time", "second")
	require.NoError(t, err)
	cgsEnergy, err := dim.FromInts(cgsBasis, 1, 2, -2)
	require.NoError(t, err)
	erg, err := cgs.Define("erg", cgsEnergy)
	require.NoError(t, err)

	tr, err := basis.IdentityTransform(mlt, cgsBasis)
	require.NoError(t, err)

	g := convgraph.NewGraph()
	require.NoError(t, g.ConnectSystems(si, cgs, tr, []convgraph.Calibration{
		{From: kg, To: gram, Map: linmap.LinearInt(1000, 1)},
		{From: m, To: cm, Map: linmap.LinearInt(100, 1)},
		{From: s, To: sec, Map: linmap.LinearInt(1, 1)},
	}))

	// 1 J = 10⁷ erg: 1000·100²·1⁻².
	jToErg, err := g.Convert(joule, erg)
	require.NoError(t, err)
	require.Zero(t, jToErg.Scale().Cmp(big.NewRat(10_000_000, 1)))
}

func TestConnectSystems_FractionalExponentUnitsAreSkipped(t *testing.T) {
	f := newFixture(t)
	// A unit with a fractional exponent cannot get a derived edge: rational
	// powers of rational scales are not rational in general.
	half, err := dim.New(f.si.Basis(), []*big.Rat{big.NewRat(1, 2), nil, nil})
	require.NoError(t, err)
	rootMass, err := f.si.Define("root-mass", half)
	require.NoError(t, err)
	halfArc, err := f.t.ApplyToVector(half)
	require.NoError(t, err)
	arcTwin, err := f.arcana.Define("root-twin", halfArc)
	require.NoError(t, err)

	g := convgraph.NewGraph()
	require.NoError(t, g.ConnectSystems(f.si, f.arcana, f.t, f.cals))

	// Both units are nodes, their dimensions correspond under the transform,
	// but no edge was derived: the failure is a path problem.
	_, err = g.Convert(rootMass, arcTwin)
	require.ErrorIs(t, err, convgraph.ErrNoConversionPath)
}
