package simulation

import (
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/fourier"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/orbital"
	"github.com/oxygene76/orbitas-fourier/pkg/planets"
)

// SimulateOrbit runs a simulation against the reference catalog with default
// options and returns the exact curve, the approximation and the coefficients.
func SimulateOrbit(planetName string, numTerms int) (orbital.Curve, fourier.Curve, fourier.Coefficients, error) {
	sim, err := New(planets.Default(), DefaultOptions())
	if err != nil {
		return orbital.Curve{}, fourier.Curve{}, fourier.Coefficients{}, err
	}
	res, err := sim.SimulateOrbit(planetName, numTerms)
	if err != nil {
		return orbital.Curve{}, fourier.Curve{}, fourier.Coefficients{}, err
	}
	return res.Exact, res.Approx, res.Coefficients, nil
}
