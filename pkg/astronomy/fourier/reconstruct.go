package fourier

import (
	"gonum.org/v1/gonum/floats"

	"github.com/oxygene76/orbitas-fourier/internal/types"
	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
)

// Curve is a partial Fourier sum evaluated at evenly spaced t
type Curve struct {
	T []float64
	X []float64
	Y []float64
}

// Len returns the number of samples
func (c Curve) Len() int { return len(c.X) }

// Points returns the curve as plane points
func (c Curve) Points() []astromath.Vector2 {
	return astromath.Zip(c.X, c.Y)
}

// Reconstruct evaluates the first numTerms harmonics of coeffs at numPoints
// values of t spanning [0, 2π] inclusive. The output resolution is independent
// of the one the coefficients were extracted from.
func Reconstruct(coeffs Coefficients, numTerms, numPoints int) (Curve, error) {
	return ReconstructSampled(coeffs, numTerms, numPoints, astromath.SamplingClosed)
}

// ReconstructSampled is Reconstruct with an explicit sampling convention for t
func ReconstructSampled(coeffs Coefficients, numTerms, numPoints int, sampling astromath.Sampling) (Curve, error) {
	if len(coeffs.A) == 0 || len(coeffs.B) != len(coeffs.A) || len(coeffs.C) != len(coeffs.A) || len(coeffs.D) != len(coeffs.A) {
		return Curve{}, types.NewInvalidParameter("coefficients", len(coeffs.A), "sequences must be non-empty and of equal length")
	}
	if numTerms < 0 || numTerms > coeffs.Terms() {
		return Curve{}, types.NewInvalidParameter("num_terms", numTerms, "must be between 0 and the number of extracted terms")
	}
	if numPoints < 1 {
		return Curve{}, types.NewInvalidParameter("num_points", numPoints, "must be at least 1")
	}

	t := astromath.Angles(numPoints, sampling)
	out := Curve{
		T: t,
		X: make([]float64, numPoints),
		Y: make([]float64, numPoints),
	}
	mean := coeffs.Mean()
	for i := range out.X {
		out.X[i] = mean.X
		out.Y[i] = mean.Y
	}

	cosNT := make([]float64, numPoints)
	sinNT := make([]float64, numPoints)
	for k := 1; k <= numTerms; k++ {
		harmonic(cosNT, sinNT, t, k)
		floats.AddScaled(out.X, coeffs.A[k], cosNT)
		floats.AddScaled(out.X, coeffs.B[k], sinNT)
		floats.AddScaled(out.Y, coeffs.C[k], cosNT)
		floats.AddScaled(out.Y, coeffs.D[k], sinNT)
	}
	return out, nil
}
