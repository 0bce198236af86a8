package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
	"github.com/oxygene76/orbitas-fourier/pkg/render"
	"github.com/oxygene76/orbitas-fourier/pkg/simulation"
	"github.com/oxygene76/orbitas-fourier/pkg/utils"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [planet]",
	Short: "Approximate a planet's orbit with a Fourier series",
	Long: `
Sample the exact orbit of a planet, fit a truncated Fourier series of the
requested order and render both curves.

Output formats:
  plot     - PNG/SVG/PDF figure (format from the --output extension)
  csv      - both curves, one row per sample
  jsonl    - one JSON record per sample
  json     - full report including the coefficients
  summary  - text table of coefficients and deviation

Examples:
  orbitas-fourier simulate Marte --terms 3
  orbitas-fourier simulate Mercúrio --terms 8 --output mercurio.svg
  orbitas-fourier simulate venus --format csv --output venus.csv
`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

var (
	simTerms    int
	simOutput   string
	simFormat   string
	simSampling string
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVarP(&simTerms, "terms", "n", simulation.DefaultTerms, "Number of Fourier terms (default from config)")
	simulateCmd.Flags().StringVarP(&simOutput, "output", "o", "", "Output file (stdout for text formats when empty)")
	simulateCmd.Flags().StringVar(&simFormat, "format", "", "Output format: plot, csv, jsonl, json, summary")
	simulateCmd.Flags().StringVar(&simSampling, "sampling", "", "Sampling convention: closed or periodic")
}

func runSimulate(cmd *cobra.Command, args []string) (err error) {
	planetName := args[0]

	// Flag overrides apply to this run only.
	cfg := *appConfig
	numTerms := cfg.Simulation.DefaultTerms
	if cmd.Flags().Changed("terms") {
		numTerms = simTerms
	}
	if simSampling != "" {
		if _, err := astromath.ParseSampling(simSampling); err != nil {
			return err
		}
		cfg.Simulation.Sampling = simSampling
	}
	format := cfg.Output.Format
	if simFormat != "" {
		format = simFormat
	}

	sim, err := cfg.NewSimulator()
	if err != nil {
		return err
	}

	renderer, closeFn, err := buildRenderer(format, simOutput, &cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", simOutput, cerr)
		}
	}()

	res, err := sim.Run(planetName, numTerms, renderer)
	if err != nil {
		return err
	}

	if format == "plot" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d termos, desvio máximo %.6f UA\n", res.Planet.Name, res.NumTerms, res.Deviation.Max)
	}
	return nil
}

// buildRenderer picks the renderer for format. Text formats go to stdout when
// output is empty or "-". The returned close function must be called once
// rendering is done.
func buildRenderer(format, output string, cfg *utils.Config, stdout io.Writer) (render.Renderer, func() error, error) {
	noop := func() error { return nil }
	if !utils.IsValidFormat(format) {
		return nil, noop, fmt.Errorf("invalid output format: %s", format)
	}

	if format == "plot" {
		if output == "" {
			output = cfg.Output.File
		}
		return render.NewPlotRenderer(output, cfg.Output.SizeInches), noop, nil
	}

	toFile := output != "" && output != "-"
	if format == "jsonl" {
		if !toFile {
			return render.NewJSONLRenderer(stdout), noop, nil
		}
		r, err := render.NewJSONLFile(output)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create %s: %w", output, err)
		}
		return r, r.Close, nil
	}

	w := stdout
	closeFn := noop
	if toFile {
		f, err := os.Create(output)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create %s: %w", output, err)
		}
		w, closeFn = f, f.Close
	}

	switch format {
	case "csv":
		return render.CSVRenderer{W: w}, closeFn, nil
	case "json":
		return render.ReportRenderer{W: w}, closeFn, nil
	default:
		return render.SummaryRenderer{W: w}, closeFn, nil
	}
}
