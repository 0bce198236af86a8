package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/oxygene76/orbitas-fourier/internal/types"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/fourier"
	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/orbital"
)

// Deviation compares two index-aligned curves
type Deviation struct {
	Max float64 // largest pointwise distance (AU)
	RMS float64 // root mean square distance (AU)
}

// Compare measures how far (x2, y2) lies from (x1, y1) point by point.
// Both curves must have the same, non-zero length.
func Compare(x1, y1, x2, y2 []float64) (Deviation, error) {
	n := len(x1)
	if len(y1) != n || len(x2) != n || len(y2) != n {
		return Deviation{}, types.NewInvalidParameter("num_points", n, "curves must have the same length")
	}
	return comparePoints(astromath.Zip(x1, y1), astromath.Zip(x2, y2))
}

// CompareCurves measures an approximate curve against the exact orbit it was
// fitted to. Both must be sampled at the same resolution.
func CompareCurves(exact orbital.Curve, approx fourier.Curve) (Deviation, error) {
	return comparePoints(exact.Points(), approx.Points())
}

func comparePoints(p, q []astromath.Vector2) (Deviation, error) {
	d, err := distances(p, q)
	if err != nil {
		return Deviation{}, err
	}
	sq := make([]float64, len(d))
	floats.MulTo(sq, d, d)
	return Deviation{
		Max: floats.Max(d),
		RMS: math.Sqrt(stat.Mean(sq, nil)),
	}, nil
}

// MaxDeviation returns the largest pointwise distance between two curves
func MaxDeviation(x1, y1, x2, y2 []float64) (float64, error) {
	dev, err := Compare(x1, y1, x2, y2)
	return dev.Max, err
}

// RMSDeviation returns the root mean square pointwise distance between two curves
func RMSDeviation(x1, y1, x2, y2 []float64) (float64, error) {
	dev, err := Compare(x1, y1, x2, y2)
	return dev.RMS, err
}

func distances(p, q []astromath.Vector2) ([]float64, error) {
	n := len(p)
	if n == 0 {
		return nil, types.NewInvalidParameter("num_points", 0, "curves must not be empty")
	}
	if len(q) != n {
		return nil, types.NewInvalidParameter("num_points", len(q), "curves must have the same length")
	}
	d := make([]float64, n)
	for i := range d {
		d[i] = p[i].Distance(q[i])
	}
	return d, nil
}

// RadiusRange returns the smallest and largest sampled focal distance
func RadiusRange(c orbital.Curve) (lo, hi float64) {
	if len(c.R) == 0 {
		return 0, 0
	}
	return floats.Min(c.R), floats.Max(c.R)
}

// Amplitude is the magnitude of one harmonic in each coordinate
type Amplitude struct {
	N int
	X float64 // sqrt(a_n² + b_n²)
	Y float64 // sqrt(c_n² + d_n²)
}

// Amplitudes lists harmonic amplitudes 0..Terms(); entry 0 is the mean point
func Amplitudes(c fourier.Coefficients) []Amplitude {
	out := make([]Amplitude, 0, len(c.A))
	for n := range c.A {
		out = append(out, Amplitude{
			N: n,
			X: math.Hypot(c.A[n], c.B[n]),
			Y: math.Hypot(c.C[n], c.D[n]),
		})
	}
	return out
}
