package orbital

import (
	"math"

	"github.com/oxygene76/orbitas-fourier/internal/types"
	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
)

// DefaultPoints is the sampling resolution of the exact orbit
const DefaultPoints = 1000

// Curve is the exact orbit sampled at evenly spaced true anomalies.
// Theta, X, Y and R are parallel slices.
type Curve struct {
	Theta []float64
	X     []float64
	Y     []float64
	R     []float64
}

// Len returns the number of samples
func (c Curve) Len() int { return len(c.X) }

// Points returns the curve as plane points
func (c Curve) Points() []astromath.Vector2 {
	return astromath.Zip(c.X, c.Y)
}

// Generate samples the orbit (a, e) at numPoints angles over [0, 2π] inclusive,
// so the last point closes the curve on the first.
func Generate(a, e float64, numPoints int) (Curve, error) {
	return GenerateSampled(a, e, numPoints, astromath.SamplingClosed)
}

// GenerateSampled is Generate with an explicit sampling convention
func GenerateSampled(a, e float64, numPoints int, sampling astromath.Sampling) (Curve, error) {
	return Elements{SemiMajorAxis: a, Eccentricity: e}.Sample(numPoints, sampling)
}

// Sample evaluates the polar conic r = a(1-e²)/(1+e·cosθ) at numPoints angles
func (oe Elements) Sample(numPoints int, sampling astromath.Sampling) (Curve, error) {
	if err := oe.Validate(); err != nil {
		return Curve{}, err
	}
	if numPoints < 1 {
		return Curve{}, types.NewInvalidParameter("num_points", numPoints, "must be at least 1")
	}

	theta := astromath.Angles(numPoints, sampling)
	c := Curve{
		Theta: theta,
		X:     make([]float64, numPoints),
		Y:     make([]float64, numPoints),
		R:     make([]float64, numPoints),
	}
	for i, th := range theta {
		r := oe.Radius(th)
		c.R[i] = r
		c.X[i] = r * math.Cos(th)
		c.Y[i] = r * math.Sin(th)
	}
	return c, nil
}
