package utils

import (
	"os"
	"path/filepath"
	"testing"

	astromath "github.com/oxygene76/orbitas-fourier/pkg/astronomy/math"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := validateConfig(DefaultConfig()); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	path := writeConfig(t, `
simulation:
  default_terms: 7
  sampling: periodic
output:
  format: csv
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.DefaultTerms != 7 || cfg.Output.Format != "csv" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Simulation.NumPoints != 1000 || cfg.Output.SizeInches != 8 {
		t.Fatalf("defaults not merged: %+v", cfg)
	}
	opts, err := cfg.SimulationOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Sampling != astromath.SamplingPeriodic {
		t.Fatalf("sampling %s", opts.Sampling)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "simulation:\n  default_terms: 7\n")
	t.Setenv("ORBITAS_SIMULATION_DEFAULT_TERMS", "11")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.DefaultTerms != 11 {
		t.Fatalf("env override ignored: %d", cfg.Simulation.DefaultTerms)
	}
}

func TestLoadConfigPlanets(t *testing.T) {
	path := writeConfig(t, `
planets:
  - name: Terra
    semi_major: 1.0
    ecc: 0.0167
    period: 365.25
    color: blue
  - name: Júpiter
    semi_major: 5.204
    ecc: 0.0489
    period: 4332.59
    color: brown
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := cfg.NewSimulator()
	if err != nil {
		t.Fatal(err)
	}
	if got := sim.Catalog().Names(); len(got) != 2 || got[0] != "Terra" || got[1] != "Júpiter" {
		t.Fatalf("catalog %v", got)
	}
	if _, err := sim.SimulateOrbit("jupiter", 4); err != nil {
		t.Fatal(err)
	}
	if _, err := sim.SimulateOrbit("Marte", 4); err == nil {
		t.Fatal("configured catalog should replace the built-in one")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"format":   "output:\n  format: gif\n",
		"sampling": "simulation:\n  sampling: open\n",
		"points":   "simulation:\n  num_points: 0\n",
		"planet":   "planets:\n  - name: Cometa\n    semi_major: 3\n    ecc: 1.2\n",
	}
	for name, body := range cases {
		if _, err := LoadConfig(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for an explicit missing file")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Simulation.DefaultTerms = 9
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Simulation.DefaultTerms != 9 || loaded.Output.File != "orbit.png" {
		t.Fatalf("unexpected round trip %+v", loaded)
	}
}
