package planets

import (
	"errors"
	"strings"
	"testing"

	"github.com/oxygene76/orbitas-fourier/internal/types"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 3 {
		t.Fatalf("got %d planets", c.Len())
	}
	want := []string{"Marte", "Vênus", "Mercúrio"}
	if got := c.Names(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("names %v, want %v", got, want)
	}
	mars, err := c.Lookup("Marte")
	if err != nil {
		t.Fatal(err)
	}
	if mars.SemiMajorAxis != 1.524 || mars.Eccentricity != 0.0934 || mars.PeriodDays != 686.98 || mars.Color != "red" {
		t.Fatalf("unexpected Mars entry %+v", mars)
	}
}

func TestLookupFolded(t *testing.T) {
	c := Default()
	for in, want := range map[string]string{
		"venus":    "Vênus",
		"VÊNUS":    "Vênus",
		"mercurio": "Mercúrio",
		" marte ":  "Marte",
		"Mercúrio": "Mercúrio",
	} {
		p, err := c.Lookup(in)
		if err != nil {
			t.Fatalf("Lookup(%q): %s", in, err)
		}
		if p.Name != want {
			t.Fatalf("Lookup(%q) = %s, want %s", in, p.Name, want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("Plutão")
	if !errors.Is(err, types.ErrUnknownPlanet) {
		t.Fatalf("got %v, want ErrUnknownPlanet", err)
	}
	var upe *types.UnknownPlanetError
	if !errors.As(err, &upe) || upe.Name != "Plutão" {
		t.Fatalf("expected UnknownPlanetError for Plutão, got %#v", err)
	}
	if !strings.Contains(err.Error(), "Marte") {
		t.Fatalf("error should list the known planets: %s", err)
	}
}

func TestNewCatalogValidation(t *testing.T) {
	cases := map[string][]Planet{
		"empty name":       {{Name: " ", SemiMajorAxis: 1, Eccentricity: 0.1}},
		"bad ecc":          {{Name: "X", SemiMajorAxis: 1, Eccentricity: 1}},
		"bad axis":         {{Name: "X", SemiMajorAxis: 0, Eccentricity: 0.1}},
		"duplicate":        {{Name: "Terra", SemiMajorAxis: 1}, {Name: "Terra", SemiMajorAxis: 1}},
		"folded duplicate": {{Name: "Vênus", SemiMajorAxis: 0.7}, {Name: "venus", SemiMajorAxis: 0.7}},
	}
	for name, entries := range cases {
		if _, err := NewCatalog(entries...); !errors.Is(err, types.ErrInvalidParameter) {
			t.Fatalf("%s: got %v, want ErrInvalidParameter", name, err)
		}
	}
}

func TestCatalogIsReadOnly(t *testing.T) {
	c := Default()
	ps := c.Planets()
	ps[0].SemiMajorAxis = 99
	if p, _ := c.At(0); p.SemiMajorAxis != 1.524 {
		t.Fatal("Planets() must return a copy")
	}
	if _, ok := c.At(3); ok {
		t.Fatal("At(3) should be out of range")
	}
	if _, ok := c.At(-1); ok {
		t.Fatal("At(-1) should be out of range")
	}
}
