package orbital

import (
	"math"

	"github.com/oxygene76/orbitas-fourier/internal/types"
)

// GaussianGravitationalConstant k in AU^(3/2)/day for a solar-mass central body
const GaussianGravitationalConstant = 0.01720209895

// Elements are the in-plane Keplerian elements of a bound orbit
type Elements struct {
	SemiMajorAxis float64 // a - Semi-major axis (AU)
	Eccentricity  float64 // e - Eccentricity [0, 1)
}

// Validate checks a > 0 and 0 <= e < 1
func (oe Elements) Validate() error {
	a, e := oe.SemiMajorAxis, oe.Eccentricity
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return types.NewInvalidParameter("semi_major_axis", a, "must be a positive finite number")
	}
	if math.IsNaN(e) || e < 0 || e >= 1 {
		return types.NewInvalidParameter("eccentricity", e, "must be in [0, 1)")
	}
	return nil
}

// SemiLatusRectum returns p = a(1 - e²)
func (oe Elements) SemiLatusRectum() float64 {
	return oe.SemiMajorAxis * (1 - oe.Eccentricity*oe.Eccentricity)
}

// SemiMinorAxis returns b = a·sqrt(1 - e²)
func (oe Elements) SemiMinorAxis() float64 {
	return oe.SemiMajorAxis * math.Sqrt(1-oe.Eccentricity*oe.Eccentricity)
}

// Radius returns the focal distance at true anomaly theta
func (oe Elements) Radius(theta float64) float64 {
	return oe.SemiLatusRectum() / (1 + oe.Eccentricity*math.Cos(theta))
}

// GetPerihelion returns the perihelion distance
func (oe Elements) GetPerihelion() float64 {
	return oe.SemiMajorAxis * (1 - oe.Eccentricity)
}

// GetAphelion returns the aphelion distance
func (oe Elements) GetAphelion() float64 {
	return oe.SemiMajorAxis * (1 + oe.Eccentricity)
}

// GetOrbitalPeriod returns the Keplerian period in days around a solar-mass body
func (oe Elements) GetOrbitalPeriod() float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(oe.SemiMajorAxis, 3)) / GaussianGravitationalConstant
}
