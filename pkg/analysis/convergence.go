package analysis

import (
	"fmt"
	"log"
	"time"

	"github.com/oxygene76/orbitas-fourier/internal/types"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/fourier"
	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/orbital"
)

// ConvergencePoint is the reconstruction error at one truncation order
type ConvergencePoint struct {
	Terms     int
	Deviation Deviation
}

// Convergence extracts maxTerms harmonics from the curve once and measures the
// reconstruction error for every truncation 0..maxTerms, evaluated at the
// curve's own resolution and sampling.
func Convergence(c orbital.Curve, maxTerms int, sampling astromath.Sampling) ([]ConvergencePoint, error) {
	if maxTerms < 0 {
		return nil, types.NewInvalidParameter("max_terms", maxTerms, "must not be negative")
	}
	start := time.Now()

	coeffs, err := fourier.ExtractSampled(c.X, c.Y, maxTerms, sampling)
	if err != nil {
		return nil, fmt.Errorf("failed to extract coefficients: %w", err)
	}

	points := make([]ConvergencePoint, 0, maxTerms+1)
	for k := 0; k <= maxTerms; k++ {
		approx, err := fourier.ReconstructSampled(coeffs, k, c.Len(), sampling)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct with %d terms: %w", k, err)
		}
		dev, err := CompareCurves(c, approx)
		if err != nil {
			return nil, err
		}
		points = append(points, ConvergencePoint{Terms: k, Deviation: dev})
	}

	log.Printf("Convergence sweep over %d truncations completed in %v", maxTerms+1, time.Since(start))
	return points, nil
}
