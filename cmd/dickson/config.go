package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dickson/dataset"
)

// Config mirrors the YAML configuration file. Zero values fall back to
// the canonical enumeration: odd primes 3..97, a = 1, full period.
type Config struct {
	Primes             PrimesConfig `yaml:"primes"`
	ParameterA         []int64      `yaml:"parameter_a"`
	FullParameterSweep bool         `yaml:"full_parameter_sweep"`
	Parallelism        int          `yaml:"parallelism"`
}

// PrimesConfig selects the moduli: an explicit list wins over the range.
type PrimesConfig struct {
	From int64   `yaml:"from"`
	To   int64   `yaml:"to"`
	List []int64 `yaml:"list"`
}

// DefaultCLIConfig returns the configuration used when no file is given.
func DefaultCLIConfig() Config {
	return Config{
		Primes:     PrimesConfig{From: 3, To: 97},
		ParameterA: []int64{1},
	}
}

// LoadConfig reads and decodes the YAML file at path; an empty path
// yields DefaultCLIConfig. Unknown keys are rejected so that typos in a
// configuration file fail loudly instead of silently running defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultCLIConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if len(cfg.ParameterA) == 0 {
		cfg.ParameterA = []int64{1}
	}

	return cfg, nil
}

// datasetOptions translates a Config into dataset functional options.
// Validation (primality, bounds) stays in dataset.Build, the single
// authority for it.
func (c Config) datasetOptions() []dataset.Option {
	opts := make([]dataset.Option, 0, 4)
	if len(c.Primes.List) > 0 {
		opts = append(opts, dataset.WithPrimes(c.Primes.List...))
	} else {
		opts = append(opts, dataset.WithPrimeRange(c.Primes.From, c.Primes.To))
	}
	if c.FullParameterSweep {
		opts = append(opts, dataset.WithFullParameterSweep())
	} else {
		opts = append(opts, dataset.WithParameterA(c.ParameterA...))
	}
	if c.Parallelism > 0 {
		opts = append(opts, dataset.WithParallelism(c.Parallelism))
	}

	return opts
}
