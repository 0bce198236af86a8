package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oxygene76/orbitas-fourier/internal/prompt"
	"github.com/oxygene76/orbitas-fourier/pkg/render"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Choose planet and number of terms interactively",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	sim, err := appConfig.NewSimulator()
	if err != nil {
		return err
	}

	banner := strings.Repeat("=", 60)
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "Simulação de Órbitas Planetárias - Série de Fourier")
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out)
	prompt.ListPlanets(out, sim.Catalog())

	p := prompt.New(cmd.InOrStdin(), out)
	planet, err := p.ChoosePlanet(sim.Catalog())
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(out, "\n\nAté logo!")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nVocê escolheu: %s\n\n", planet.Name)

	numTerms, err := p.ChooseTerms(appConfig.Simulation.MaxTermsWarning)
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(out, "\n\nAté logo!")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nUsando %d termos na série de Fourier\n", numTerms)
	fmt.Fprintln(out, "\nGerando simulação...")

	renderer := render.Multi{
		render.NewPlotRenderer(appConfig.Output.File, appConfig.Output.SizeInches),
		render.SummaryRenderer{W: out},
	}
	if _, err := sim.Run(planet.Name, numTerms, renderer); err != nil {
		return fmt.Errorf("ao gerar simulação: %w", err)
	}
	fmt.Fprintf(out, "\nSimulação concluída! Gráfico salvo em %s\n", appConfig.Output.File)
	return nil
}
