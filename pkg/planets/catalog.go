// Package planets holds the immutable table of bodies the simulator can look up.
package planets

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/oxygene76/orbitas-fourier/internal/types"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/orbital"
)

// Planet is one catalog entry
type Planet struct {
	Name          string
	SemiMajorAxis float64 // AU
	Eccentricity  float64
	PeriodDays    float64 // informational only
	Color         string  // SVG colour name, display only
}

// Elements returns the orbit parameters of the planet
func (p Planet) Elements() orbital.Elements {
	return orbital.Elements{SemiMajorAxis: p.SemiMajorAxis, Eccentricity: p.Eccentricity}
}

// defaultPlanets is the reference table (TCC, Tabela 1)
var defaultPlanets = []Planet{
	{Name: "Marte", SemiMajorAxis: 1.524, Eccentricity: 0.0934, PeriodDays: 686.98, Color: "red"},
	{Name: "Vênus", SemiMajorAxis: 0.723, Eccentricity: 0.0068, PeriodDays: 224.7, Color: "orange"},
	{Name: "Mercúrio", SemiMajorAxis: 0.387, Eccentricity: 0.2056, PeriodDays: 87.97, Color: "gray"},
}

// Catalog is a read-only, ordered planet table
type Catalog struct {
	planets []Planet
	byName  map[string]int
	byFold  map[string]int
}

// Default returns the reference catalog
func Default() *Catalog {
	c, err := NewCatalog(defaultPlanets...)
	if err != nil {
		panic(fmt.Sprintf("planets: invalid default catalog: %v", err))
	}
	return c
}

// NewCatalog validates the entries and builds a catalog that keeps their order.
// Names must be unique, also after case and accent folding.
func NewCatalog(entries ...Planet) (*Catalog, error) {
	c := &Catalog{
		planets: make([]Planet, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
		byFold:  make(map[string]int, len(entries)),
	}
	for _, p := range entries {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, types.NewInvalidParameter("name", p.Name, "planet name cannot be empty")
		}
		if err := p.Elements().Validate(); err != nil {
			return nil, fmt.Errorf("planet %s: %w", p.Name, err)
		}
		key := foldName(p.Name)
		if _, dup := c.byFold[key]; dup {
			return nil, types.NewInvalidParameter("name", p.Name, "duplicate planet name")
		}
		c.byName[p.Name] = len(c.planets)
		c.byFold[key] = len(c.planets)
		c.planets = append(c.planets, p)
	}
	return c, nil
}

// Lookup finds a planet by exact name, falling back to a case and
// accent-insensitive match ("venus" finds "Vênus").
func (c *Catalog) Lookup(name string) (Planet, error) {
	if i, ok := c.byName[name]; ok {
		return c.planets[i], nil
	}
	if i, ok := c.byFold[foldName(name)]; ok {
		return c.planets[i], nil
	}
	return Planet{}, &types.UnknownPlanetError{Name: name, Known: c.Names()}
}

// At returns the i-th planet in catalog order
func (c *Catalog) At(i int) (Planet, bool) {
	if i < 0 || i >= len(c.planets) {
		return Planet{}, false
	}
	return c.planets[i], true
}

// Len returns the number of planets
func (c *Catalog) Len() int { return len(c.planets) }

// Names returns the planet names in catalog order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.planets))
	for i, p := range c.planets {
		names[i] = p.Name
	}
	return names
}

// Planets returns a copy of the entries in catalog order
func (c *Catalog) Planets() []Planet {
	out := make([]Planet, len(c.planets))
	copy(out, c.planets)
	return out
}

func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
