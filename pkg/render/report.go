package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/oxygene76/orbitas-fourier/internal/types"
)

// Version is stamped into every report
const Version = "1.0.0"

// ReportRenderer writes a SimulationReport JSON document
type ReportRenderer struct {
	W io.Writer
	// Now defaults to time.Now
	Now func() time.Time
}

// Render encodes the report for the scene
func (r ReportRenderer) Render(s Scene) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(s, now())); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// NewReport converts a scene into its JSON report form
func NewReport(s Scene, at time.Time) types.SimulationReport {
	el := s.Planet.Elements()
	return types.SimulationReport{
		ID: fmt.Sprintf("fourier_%d", at.Unix()),
		Planet: types.PlanetInfo{
			Name:          s.Planet.Name,
			SemiMajorAxis: s.Planet.SemiMajorAxis,
			Eccentricity:  s.Planet.Eccentricity,
			PeriodDays:    s.Planet.PeriodDays,
			Color:         s.Planet.Color,
			Perihelion:    el.GetPerihelion(),
			Aphelion:      el.GetAphelion(),
		},
		NumTerms: s.NumTerms,
		Sampling: s.Sampling.String(),
		Coefficients: types.CoefficientTable{
			A: s.Coefficients.A,
			B: s.Coefficients.B,
			C: s.Coefficients.C,
			D: s.Coefficients.D,
		},
		Deviation: types.DeviationStats{Max: s.Deviation.Max, RMS: s.Deviation.RMS},
		Exact:     types.CurveData{X: s.Exact.X, Y: s.Exact.Y},
		Approx:    types.CurveData{X: s.Approx.X, Y: s.Approx.Y},
		Metadata: types.ReportMetadata{
			ExactPoints:  s.Exact.Len(),
			ApproxPoints: s.Approx.Len(),
			Version:      Version,
		},
		Timestamp: at,
	}
}
