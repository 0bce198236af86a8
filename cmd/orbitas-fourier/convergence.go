package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oxygene76/orbitas-fourier/pkg/analysis"
	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
)

var convergenceCmd = &cobra.Command{
	Use:   "convergence [planet]",
	Short: "Show how the reconstruction error shrinks with more terms",
	Long: `
Fit the exact orbit once with --max-terms harmonics and report the maximum and
RMS deviation of every truncation 0..max-terms.

With closed sampling the duplicated closing point biases each coefficient by
about 2·x(0)/N, so the error levels off after a few terms; periodic sampling
converges to the sampled curve.
`,
	Args: cobra.ExactArgs(1),
	RunE: runConvergence,
}

var (
	convMaxTerms int
	convSampling string
)

func init() {
	rootCmd.AddCommand(convergenceCmd)

	convergenceCmd.Flags().IntVar(&convMaxTerms, "max-terms", 10, "Highest number of terms to evaluate")
	convergenceCmd.Flags().StringVar(&convSampling, "sampling", "", "Sampling convention: closed or periodic (default from config)")
}

func runConvergence(cmd *cobra.Command, args []string) error {
	catalog, err := appConfig.Catalog()
	if err != nil {
		return err
	}
	planet, err := catalog.Lookup(args[0])
	if err != nil {
		return err
	}

	mode := appConfig.Simulation.Sampling
	if convSampling != "" {
		mode = convSampling
	}
	sampling, err := astromath.ParseSampling(mode)
	if err != nil {
		return err
	}

	curve, err := planet.Elements().Sample(appConfig.Simulation.NumPoints, sampling)
	if err != nil {
		return err
	}
	points, err := analysis.Convergence(curve, convMaxTerms, sampling)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d pontos, amostragem %s\n\n", planet.Name, curve.Len(), sampling)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "terms\tmax (UA)\trms (UA)\t")
	for _, p := range points {
		fmt.Fprintf(tw, "%d\t%.3e\t%.3e\t\n", p.Terms, p.Deviation.Max, p.Deviation.RMS)
	}
	return tw.Flush()
}
