package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oxygene76/orbitas-fourier/pkg/analysis"
)

// SummaryRenderer prints a plain-text comparison
type SummaryRenderer struct {
	W io.Writer
}

// Render prints orbit parameters, coefficients and the deviation
func (r SummaryRenderer) Render(s Scene) error {
	el := s.Planet.Elements()
	rmin, rmax := analysis.RadiusRange(s.Exact)

	fmt.Fprintf(r.W, "=== %s ===\n", s.Title())
	fmt.Fprintf(r.W, "Semi-major axis: %.4f AU\n", s.Planet.SemiMajorAxis)
	fmt.Fprintf(r.W, "Eccentricity:    %.4f\n", s.Planet.Eccentricity)
	fmt.Fprintf(r.W, "Semi-minor axis: %.4f AU\n", el.SemiMinorAxis())
	fmt.Fprintf(r.W, "Period:          %.2f days (Kepler: %.2f)\n", s.Planet.PeriodDays, el.GetOrbitalPeriod())
	fmt.Fprintf(r.W, "Perihelion:      %.6f AU (sampled %.6f)\n", el.GetPerihelion(), rmin)
	fmt.Fprintf(r.W, "Aphelion:        %.6f AU (sampled %.6f)\n", el.GetAphelion(), rmax)
	fmt.Fprintf(r.W, "Terms:           %d (%s sampling)\n\n", s.NumTerms, s.Sampling)

	tw := tabwriter.NewWriter(r.W, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "n\ta_n\tb_n\tc_n\td_n\t|x_n|\t|y_n|\t")
	for _, amp := range analysis.Amplitudes(s.Coefficients) {
		n := amp.N
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t\n",
			n, s.Coefficients.A[n], s.Coefficients.B[n], s.Coefficients.C[n], s.Coefficients.D[n], amp.X, amp.Y)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(r.W, "\nMax deviation: %.6f AU\nRMS deviation: %.6f AU\n", s.Deviation.Max, s.Deviation.RMS)
	return err
}
