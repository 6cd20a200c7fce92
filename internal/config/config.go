// Package config loads the tunable defaults that sampling.NewFromTunables
// and sampling.NewChaoFromTunables use to construct samplers, so those
// values can live in one YAML file instead of being scattered as literals.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tunables holds the default knobs for constructing a sampler when a
// caller does not supply its own.
type Tunables struct {
	// SampleSize is the default reservoir size, k.
	SampleSize int `yaml:"sample_size"`

	// Seed seeds the default random source. A zero value means
	// "unseeded": callers should fall back to a time-derived seed.
	Seed int64 `yaml:"seed"`

	// DefaultWeight is a default weight for weighted samplers. The
	// constructors in package sampling do not read it: NewFromTunables
	// builds an unweighted sampler and NewChaoFromTunables ignores it.
	DefaultWeight float64 `yaml:"default_weight"`
}

// Default returns the built-in tunables used when no config file is
// supplied.
func Default() Tunables {
	return Tunables{
		SampleSize:    10,
		Seed:          0,
		DefaultWeight: 1.0,
	}
}

// Load reads tunables from a YAML file at path, filling in any field
// the file omits from Default.
func Load(path string) (Tunables, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, fmt.Errorf("reading tunables file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("parsing tunables file: %w", err)
	}
	if t.SampleSize < 1 {
		return Tunables{}, fmt.Errorf("tunables file: sample_size must be at least 1, got %d", t.SampleSize)
	}
	return t, nil
}
