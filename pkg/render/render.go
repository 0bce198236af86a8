// Package render presents an exact orbit next to its Fourier approximation.
// The simulation core never depends on whether rendering succeeds.
package render

import (
	"errors"
	"fmt"

	"github.com/oxygene76/orbitas-fourier/pkg/analysis"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/fourier"
	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/orbital"
	"github.com/oxygene76/orbitas-fourier/pkg/planets"
)

// Scene is everything a renderer gets for one simulation
type Scene struct {
	Planet       planets.Planet
	NumTerms     int
	Sampling     astromath.Sampling
	Exact        orbital.Curve
	Approx       fourier.Curve
	Coefficients fourier.Coefficients
	Deviation    analysis.Deviation
}

// Title returns the figure title for the scene
func (s Scene) Title() string {
	return fmt.Sprintf("Órbitas de %s (Aproximação por Fourier)", s.Planet.Name)
}

// ApproxLabel returns the legend label of the Fourier curve
func (s Scene) ApproxLabel() string {
	return fmt.Sprintf("Fourier (%d termos)", s.NumTerms)
}

// Renderer consumes a scene
type Renderer interface {
	Render(s Scene) error
}

// Func adapts a function to a Renderer
type Func func(s Scene) error

// Render calls f(s)
func (f Func) Render(s Scene) error { return f(s) }

// Multi renders the scene with every renderer and joins their errors
type Multi []Renderer

// Render runs all renderers even when one fails
func (m Multi) Render(s Scene) error {
	var errs []error
	for _, r := range m {
		if err := r.Render(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
