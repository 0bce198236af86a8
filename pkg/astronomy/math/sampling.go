package math

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Sampling selects how a period is split into sample angles.
type Sampling int

const (
	// SamplingClosed spans [0, 2π] inclusive, so the last sample repeats the first
	// point of a periodic curve and the curve is drawn closed.
	SamplingClosed Sampling = iota
	// SamplingPeriodic spans [0, 2π) with step 2π/n.
	SamplingPeriodic
)

// String returns the config/flag name of the sampling mode
func (s Sampling) String() string {
	switch s {
	case SamplingClosed:
		return "closed"
	case SamplingPeriodic:
		return "periodic"
	default:
		return fmt.Sprintf("sampling(%d)", int(s))
	}
}

// Valid reports whether s is one of the defined conventions
func (s Sampling) Valid() bool {
	return s == SamplingClosed || s == SamplingPeriodic
}

// ParseSampling parses "closed" or "periodic" (case-insensitive). Empty means closed.
func ParseSampling(s string) (Sampling, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "closed":
		return SamplingClosed, nil
	case "periodic":
		return SamplingPeriodic, nil
	default:
		return SamplingClosed, fmt.Errorf("unknown sampling mode %q (want closed or periodic)", s)
	}
}

// Angles returns n evenly spaced angles over one period.
// n must be positive; a single sample is always 0.
func Angles(n int, s Sampling) []float64 {
	if n <= 0 {
		return nil
	}
	dst := make([]float64, n)
	if n == 1 {
		return dst
	}
	switch s {
	case SamplingPeriodic:
		step := 2 * math.Pi / float64(n)
		for i := range dst {
			dst[i] = step * float64(i)
		}
		return dst
	default:
		floats.Span(dst, 0, 2*math.Pi)
		dst[n-1] = 2 * math.Pi
		return dst
	}
}
