package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oxygene76/orbitas-fourier/pkg/utils"
)

const (
	// Application constants
	appName = "orbitas-fourier"
	version = "v1.0.0"
)

var (
	// Configuration
	cfgFile   string
	appConfig *utils.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Fourier-series approximation of planetary orbits",
	Long: `orbitas-fourier samples the exact Keplerian ellipse of a planet, decomposes
its x(θ) and y(θ) coordinates into a truncated Fourier series and compares the
reconstructed curve with the exact orbit.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" || cmd.Name() == "help" {
			return nil
		}
		config, err := utils.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		appConfig = config
		return nil
	},
}

// initCmd writes the default configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		path := cfgFile
		if path == "" {
			p, err := utils.GetConfigPath()
			if err != nil {
				return fmt.Errorf("failed to resolve config path: %w", err)
			}
			path = p
		}
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}

		if err := utils.SaveConfig(utils.DefaultConfig(), path); err != nil {
			return err
		}
		fmt.Printf("Configuration saved to: %s\n", path)
		return nil
	},
}

// planetsCmd lists the catalog
var planetsCmd = &cobra.Command{
	Use:   "planets",
	Short: "List the available planets",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := appConfig.Catalog()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tPLANET\tA (UA)\tE\tPERIOD (d)\tPERIHELION\tAPHELION\tCOLOR")
		for i, p := range catalog.Planets() {
			el := p.Elements()
			fmt.Fprintf(tw, "%d\t%s\t%.3f\t%.4f\t%.2f\t%.4f\t%.4f\t%s\n",
				i+1, p.Name, p.SemiMajorAxis, p.Eccentricity, p.PeriodDays, el.GetPerihelion(), el.GetAphelion(), p.Color)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.orbitas-fourier/config.yaml)")

	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(planetsCmd)
}

func main() {
	log.SetFlags(log.LstdFlags)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "!! Erro: %v\n", err)
		os.Exit(1)
	}
}
