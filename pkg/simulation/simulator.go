// Package simulation wires orbit generation, coefficient extraction and
// reconstruction together for a named planet.
package simulation

import (
	"fmt"
	"log"
	"time"

	"github.com/oxygene76/orbitas-fourier/internal/types"
	"github.com/oxygene76/orbitas-fourier/pkg/analysis"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/fourier"
	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/orbital"
	"github.com/oxygene76/orbitas-fourier/pkg/planets"
	"github.com/oxygene76/orbitas-fourier/pkg/render"
)

// DefaultTerms is the series order used when the caller has no preference
const DefaultTerms = 3

// Options controls sampling resolution and convention
type Options struct {
	NumPoints         int // exact orbit samples
	ReconstructPoints int // approximate curve samples
	Sampling          astromath.Sampling
}

// DefaultOptions samples both curves with 1000 closed points
func DefaultOptions() Options {
	return Options{
		NumPoints:         orbital.DefaultPoints,
		ReconstructPoints: orbital.DefaultPoints,
		Sampling:          astromath.SamplingClosed,
	}
}

// Result of a single simulation
type Result struct {
	Planet       planets.Planet
	NumTerms     int
	Sampling     astromath.Sampling
	Exact        orbital.Curve
	Approx       fourier.Curve
	Coefficients fourier.Coefficients
	// Deviation of the approximation from the exact curve, measured at the
	// exact curve's resolution
	Deviation analysis.Deviation
}

// Scene converts the result for a renderer
func (r *Result) Scene() render.Scene {
	return render.Scene{
		Planet:       r.Planet,
		NumTerms:     r.NumTerms,
		Sampling:     r.Sampling,
		Exact:        r.Exact,
		Approx:       r.Approx,
		Coefficients: r.Coefficients,
		Deviation:    r.Deviation,
	}
}

// Simulator runs simulations against an injected planet catalog
type Simulator struct {
	catalog *planets.Catalog
	opts    Options
}

// New creates a simulator. Zero resolutions in opts fall back to the defaults.
func New(catalog *planets.Catalog, opts Options) (*Simulator, error) {
	if catalog == nil {
		return nil, fmt.Errorf("simulator needs a planet catalog")
	}
	def := DefaultOptions()
	if opts.NumPoints == 0 {
		opts.NumPoints = def.NumPoints
	}
	if opts.ReconstructPoints == 0 {
		opts.ReconstructPoints = def.ReconstructPoints
	}
	if opts.NumPoints < 1 {
		return nil, types.NewInvalidParameter("num_points", opts.NumPoints, "must be at least 1")
	}
	if opts.ReconstructPoints < 1 {
		return nil, types.NewInvalidParameter("reconstruct_points", opts.ReconstructPoints, "must be at least 1")
	}
	if !opts.Sampling.Valid() {
		return nil, types.NewInvalidParameter("sampling", opts.Sampling, "must be closed or periodic")
	}
	return &Simulator{catalog: catalog, opts: opts}, nil
}

// Catalog returns the planet catalog in use
func (s *Simulator) Catalog() *planets.Catalog { return s.catalog }

// Options returns the effective options
func (s *Simulator) Options() Options { return s.opts }

// SimulateOrbit looks up the planet, samples its exact orbit, fits numTerms
// harmonics and rebuilds the approximate curve. numTerms = 0 is valid and
// yields the mean point repeated.
func (s *Simulator) SimulateOrbit(planetName string, numTerms int) (*Result, error) {
	planet, err := s.catalog.Lookup(planetName)
	if err != nil {
		return nil, err
	}
	return s.SimulatePlanet(planet, numTerms)
}

// SimulatePlanet runs the pipeline for a planet that is not necessarily in the catalog
func (s *Simulator) SimulatePlanet(planet planets.Planet, numTerms int) (*Result, error) {
	if numTerms < 0 {
		return nil, types.NewInvalidParameter("num_terms", numTerms, "must not be negative")
	}
	start := time.Now()

	exact, err := planet.Elements().Sample(s.opts.NumPoints, s.opts.Sampling)
	if err != nil {
		return nil, fmt.Errorf("failed to generate orbit of %s: %w", planet.Name, err)
	}

	coeffs, err := fourier.ExtractSampled(exact.X, exact.Y, numTerms, s.opts.Sampling)
	if err != nil {
		return nil, fmt.Errorf("failed to extract coefficients: %w", err)
	}

	approx, err := fourier.ReconstructSampled(coeffs, numTerms, s.opts.ReconstructPoints, s.opts.Sampling)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct orbit: %w", err)
	}

	aligned := approx
	if approx.Len() != exact.Len() {
		aligned, err = fourier.ReconstructSampled(coeffs, numTerms, exact.Len(), s.opts.Sampling)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct orbit for comparison: %w", err)
		}
	}
	dev, err := analysis.CompareCurves(exact, aligned)
	if err != nil {
		return nil, fmt.Errorf("failed to compare orbits: %w", err)
	}

	log.Printf("Simulated %s with %d terms in %v (max deviation %.6f AU)", planet.Name, numTerms, time.Since(start), dev.Max)
	return &Result{
		Planet:       planet,
		NumTerms:     numTerms,
		Sampling:     s.opts.Sampling,
		Exact:        exact,
		Approx:       approx,
		Coefficients: coeffs,
		Deviation:    dev,
	}, nil
}

// Run simulates and hands the result to the renderer
func (s *Simulator) Run(planetName string, numTerms int, r render.Renderer) (*Result, error) {
	res, err := s.SimulateOrbit(planetName, numTerms)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return res, nil
	}
	if err := r.Render(res.Scene()); err != nil {
		return res, fmt.Errorf("failed to render %s: %w", planetName, err)
	}
	return res, nil
}
