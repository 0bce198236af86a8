package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
	"github.com/oxygene76/orbitas-fourier/pkg/planets"
	"github.com/oxygene76/orbitas-fourier/pkg/simulation"
)

// AppDirName is the directory under $HOME holding the config file
const AppDirName = ".orbitas-fourier"

// Config represents the tool configuration
type Config struct {
	Simulation SimulationConfig `yaml:"simulation" mapstructure:"simulation"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Planets    []PlanetConfig   `yaml:"planets,omitempty" mapstructure:"planets"`
}

// SimulationConfig contains sampling and series settings
type SimulationConfig struct {
	NumPoints         int    `yaml:"num_points" mapstructure:"num_points"`
	ReconstructPoints int    `yaml:"reconstruct_points" mapstructure:"reconstruct_points"`
	DefaultTerms      int    `yaml:"default_terms" mapstructure:"default_terms"`
	MaxTermsWarning   int    `yaml:"max_terms_warning" mapstructure:"max_terms_warning"`
	Sampling          string `yaml:"sampling" mapstructure:"sampling"`
}

// OutputConfig contains rendering settings
type OutputConfig struct {
	Format     string  `yaml:"format" mapstructure:"format"`
	File       string  `yaml:"file" mapstructure:"file"`
	SizeInches float64 `yaml:"size_inches" mapstructure:"size_inches"`
}

// PlanetConfig overrides the built-in planet table when present
type PlanetConfig struct {
	Name       string  `yaml:"name" mapstructure:"name"`
	SemiMajor  float64 `yaml:"semi_major" mapstructure:"semi_major"`
	Ecc        float64 `yaml:"ecc" mapstructure:"ecc"`
	PeriodDays float64 `yaml:"period" mapstructure:"period"`
	Color      string  `yaml:"color" mapstructure:"color"`
}

// ValidFormats lists the accepted output formats
var ValidFormats = []string{"plot", "csv", "jsonl", "json", "summary"}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			NumPoints:         1000,
			ReconstructPoints: 1000,
			DefaultTerms:      simulation.DefaultTerms,
			MaxTermsWarning:   50,
			Sampling:          astromath.SamplingClosed.String(),
		},
		Output: OutputConfig{
			Format:     "plot",
			File:       "orbit.png",
			SizeInches: 8,
		},
	}
}

// setDefaults mirrors DefaultConfig into viper so partial files and env vars merge over it
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("simulation.num_points", def.Simulation.NumPoints)
	v.SetDefault("simulation.reconstruct_points", def.Simulation.ReconstructPoints)
	v.SetDefault("simulation.default_terms", def.Simulation.DefaultTerms)
	v.SetDefault("simulation.max_terms_warning", def.Simulation.MaxTermsWarning)
	v.SetDefault("simulation.sampling", def.Simulation.Sampling)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.file", def.Output.File)
	v.SetDefault("output.size_inches", def.Output.SizeInches)
}

// LoadConfig reads configFile, or searches $HOME/.orbitas-fourier, . and ./configs
// for config.yaml when configFile is empty. A missing file yields the defaults.
// ORBITAS_* environment variables override file values.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, AppDirName))
		}
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("ORBITAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig writes the configuration as YAML to path, creating its directory
func SaveConfig(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetConfigPath returns the default path of the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, AppDirName, "config.yaml"), nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	sim := config.Simulation
	if sim.NumPoints < 1 {
		return fmt.Errorf("simulation.num_points must be at least 1")
	}
	if sim.ReconstructPoints < 1 {
		return fmt.Errorf("simulation.reconstruct_points must be at least 1")
	}
	if sim.DefaultTerms < 0 {
		return fmt.Errorf("simulation.default_terms cannot be negative")
	}
	if sim.MaxTermsWarning < 1 {
		return fmt.Errorf("simulation.max_terms_warning must be at least 1")
	}
	if _, err := astromath.ParseSampling(sim.Sampling); err != nil {
		return err
	}

	if !IsValidFormat(config.Output.Format) {
		return fmt.Errorf("invalid output format: %s", config.Output.Format)
	}
	if config.Output.SizeInches <= 0 {
		return fmt.Errorf("output.size_inches must be positive")
	}

	if len(config.Planets) > 0 {
		if _, err := config.Catalog(); err != nil {
			return err
		}
	}
	return nil
}

// IsValidFormat reports whether format is a known output format
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Catalog builds the planet catalog: the configured planets, or the
// built-in table when none are configured
func (c *Config) Catalog() (*planets.Catalog, error) {
	if len(c.Planets) == 0 {
		return planets.Default(), nil
	}
	entries := make([]planets.Planet, len(c.Planets))
	for i, p := range c.Planets {
		entries[i] = planets.Planet{
			Name:          p.Name,
			SemiMajorAxis: p.SemiMajor,
			Eccentricity:  p.Ecc,
			PeriodDays:    p.PeriodDays,
			Color:         p.Color,
		}
	}
	return planets.NewCatalog(entries...)
}

// SimulationOptions converts the simulation section
func (c *Config) SimulationOptions() (simulation.Options, error) {
	sampling, err := astromath.ParseSampling(c.Simulation.Sampling)
	if err != nil {
		return simulation.Options{}, err
	}
	return simulation.Options{
		NumPoints:         c.Simulation.NumPoints,
		ReconstructPoints: c.Simulation.ReconstructPoints,
		Sampling:          sampling,
	}, nil
}

// NewSimulator builds a simulator from the configuration
func (c *Config) NewSimulator() (*simulation.Simulator, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, err
	}
	opts, err := c.SimulationOptions()
	if err != nil {
		return nil, err
	}
	return simulation.New(catalog, opts)
}
