// Package fourier fits a sampled closed curve with a truncated trigonometric
// series and evaluates that series back into a curve.
//
// The curve is parametrised by sample index: x and y are treated as periodic
// functions of a synthetic parameter t spread evenly over one period, not as
// functions of physical time.
package fourier

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/oxygene76/orbitas-fourier/internal/types"
	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
)

// Coefficients of the series
//
//	x(t) = A[0] + Σ A[n]cos(nt) + B[n]sin(nt)
//	y(t) = C[0] + Σ C[n]cos(nt) + D[n]sin(nt)
//
// All four slices have length Terms()+1. B[0] and D[0] are always zero.
type Coefficients struct {
	A []float64
	B []float64
	C []float64
	D []float64
}

// Terms returns the highest harmonic held
func (c Coefficients) Terms() int {
	return len(c.A) - 1
}

// Mean returns the DC point (A[0], C[0])
func (c Coefficients) Mean() astromath.Vector2 {
	if len(c.A) == 0 {
		return astromath.Vector2{}
	}
	return astromath.Vector2{X: c.A[0], Y: c.C[0]}
}

// Extract projects x and y onto cos/sin harmonics 1..numTerms using a Riemann
// sum over the samples, with t spanning [0, 2π] inclusive.
func Extract(x, y []float64, numTerms int) (Coefficients, error) {
	return ExtractSampled(x, y, numTerms, astromath.SamplingClosed)
}

// ExtractSampled is Extract with an explicit sampling convention for t
func ExtractSampled(x, y []float64, numTerms int, sampling astromath.Sampling) (Coefficients, error) {
	n := len(x)
	if n == 0 {
		return Coefficients{}, types.NewInvalidParameter("num_points", n, "curve must not be empty")
	}
	if len(y) != n {
		return Coefficients{}, types.NewInvalidParameter("len(y)", len(y), "must equal len(x)")
	}
	if numTerms < 0 {
		return Coefficients{}, types.NewInvalidParameter("num_terms", numTerms, "must not be negative")
	}

	c := Coefficients{
		A: make([]float64, numTerms+1),
		B: make([]float64, numTerms+1),
		C: make([]float64, numTerms+1),
		D: make([]float64, numTerms+1),
	}
	c.A[0] = stat.Mean(x, nil)
	c.C[0] = stat.Mean(y, nil)

	t := astromath.Angles(n, sampling)
	cosNT := make([]float64, n)
	sinNT := make([]float64, n)
	scale := 2 / float64(n)
	for k := 1; k <= numTerms; k++ {
		harmonic(cosNT, sinNT, t, k)
		c.A[k] = scale * floats.Dot(x, cosNT)
		c.B[k] = scale * floats.Dot(x, sinNT)
		c.C[k] = scale * floats.Dot(y, cosNT)
		c.D[k] = scale * floats.Dot(y, sinNT)
	}
	return c, nil
}

// harmonic fills cosNT and sinNT with cos(k·t) and sin(k·t)
func harmonic(cosNT, sinNT, t []float64, k int) {
	fk := float64(k)
	for i, ti := range t {
		cosNT[i] = math.Cos(fk * ti)
		sinNT[i] = math.Sin(fk * ti)
	}
}
