// Package catalog_test verifies the built-in systems end to end: in-system
// chains, cross-system derived conversions, affine temperature handling,
// and name/alias resolution.
package catalog_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/katalvlaran/unitgraph/catalog"
	"github.com/katalvlaran/unitgraph/convgraph"
	"github.com/katalvlaran/unitgraph/linmap"
	"github.com/katalvlaran/unitgraph/unit"
)

// mustCatalog builds the catalog once per test.
func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	return c
}

func TestConvert_InSystemChains(t *testing.T) {
	c := mustCatalog(t)
	for _, tc := range []struct {
		from, to string
		in, want float64
	}{
		{"tonne", "gram", 1, 1_000_000},
		{"kilometre", "metre", 2.5, 2500},
		{"hour", "second", 2, 7200},
		{"minute", "hour", 90, 1.5},
	} {
		got, err := c.Convert(tc.from, tc.to, tc.in)
		if err != nil {
			t.Fatalf("Convert(%s→%s): %v", tc.from, tc.to, err)
		}
		if got != tc.want {
			t.Fatalf("Convert(%s→%s, %v) = %v, want %v", tc.from, tc.to, tc.in, got, tc.want)
		}
	}
}

func TestConvert_CrossSystemDerived(t *testing.T) {
	c := mustCatalog(t)

	// 1 J = 10⁷ erg, derived from the gram/centimetre/second calibrations.
	joule, err := c.Lookup("J")
	if err != nil {
		t.Fatalf("Lookup(J): %v", err)
	}
	erg, err := c.CGS.Lookup("erg")
	if err != nil {
		t.Fatalf("Lookup(erg): %v", err)
	}
	m, err := c.Graph.Convert(joule, erg)
	if err != nil {
		t.Fatalf("Convert(J→erg): %v", err)
	}
	if m.Scale().Cmp(big.NewRat(10_000_000, 1)) != 0 {
		t.Fatalf("J→erg scale = %v, want 10^7", m.Scale())
	}

	// 1 dyn = 10⁻⁵ N, in the other direction.
	got, err := c.Convert("dyn", "newton", 100_000)
	if err != nil {
		t.Fatalf("Convert(dyn→N): %v", err)
	}
	if got != 1 {
		t.Fatalf("10⁵ dyn = %v N, want 1", got)
	}
}

func TestConvert_CelsiusIsAffine(t *testing.T) {
	c := mustCatalog(t)
	got, err := c.Convert("celsius", "kelvin", 0)
	if err != nil {
		t.Fatalf("Convert(°C→K): %v", err)
	}
	if got != 273.15 {
		t.Fatalf("0 °C = %v K, want 273.15", got)
	}
	back, err := c.Convert("K", "°C", 373.15)
	if err != nil {
		t.Fatalf("Convert(K→°C): %v", err)
	}
	if diff := back - 100; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("373.15 K = %v °C, want 100", back)
	}
}

func TestConvert_GramBridgesBothSystems(t *testing.T) {
	c := mustCatalog(t)
	// SI gram and CGS gram are distinct nodes of identical magnitude.
	siGram, err := c.SI.Lookup("gram")
	if err != nil {
		t.Fatalf("SI gram: %v", err)
	}
	cgsGram, err := c.CGS.Lookup("gram")
	if err != nil {
		t.Fatalf("CGS gram: %v", err)
	}
	if siGram.SameUnit(cgsGram) {
		t.Fatal("SI and CGS gram must be distinct graph nodes")
	}
	m, err := c.Graph.Convert(siGram, cgsGram)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !m.IsIdentity() {
		t.Fatalf("SI gram → CGS gram = %s, want identity", m)
	}
}

func TestConvert_FailureKinds(t *testing.T) {
	c := mustCatalog(t)

	// Acceleration and dynamic viscosity share no dimension vector.
	if _, err := c.Convert("Gal", "poise", 1); !errors.Is(err, convgraph.ErrDimensionMismatch) {
		t.Fatalf("Expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := c.Convert("mole", "candela", 1); !errors.Is(err, convgraph.ErrDimensionMismatch) {
		t.Fatalf("Expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := c.Convert("furlong", "metre", 1); !errors.Is(err, unit.ErrUnitNotFound) {
		t.Fatalf("Expected ErrUnitNotFound, got %v", err)
	}
}

func TestLookup_AliasesResolve(t *testing.T) {
	c := mustCatalog(t)
	for alias, canonical := range map[string]string{
		"kg":  "kilogram",
		"m":   "metre",
		"J":   "joule",
		"cm":  "centimetre",
		"dyn": "dyne",
	} {
		u, err := c.Lookup(alias)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", alias, err)
		}
		if u.Name() != canonical {
			t.Fatalf("Lookup(%s) = %s, want %s", alias, u.Name(), canonical)
		}
	}
}

func TestGraph_RoundTripsAreExact(t *testing.T) {
	c := mustCatalog(t)
	pairs := [][2]string{
		{"tonne", "gram"},
		{"joule", "erg"},
		{"celsius", "kelvin"},
		{"hour", "second"},
	}
	for _, p := range pairs {
		a, err := c.Lookup(p[0])
		if err != nil {
			t.Fatalf("Lookup(%s): %v", p[0], err)
		}
		b, err := c.Lookup(p[1])
		if err != nil {
			t.Fatalf("Lookup(%s): %v", p[1], err)
		}
		fwd, err := c.Graph.Convert(a, b)
		if err != nil {
			t.Fatalf("Convert(%s→%s): %v", p[0], p[1], err)
		}
		back, err := c.Graph.Convert(b, a)
		if err != nil {
			t.Fatalf("Convert(%s→%s): %v", p[1], p[0], err)
		}
		if !linmap.Compose(back, fwd).IsIdentity() || !linmap.Compose(fwd, back).IsIdentity() {
			t.Fatalf("%s↔%s round trip is not exact", p[0], p[1])
		}
	}
}
