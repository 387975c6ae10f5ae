// Package config resolves settings from the environment, optionally backed by
// a YAML file of simulation defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Get returns the environment value for key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Simulation holds the defaults used when a request or command line leaves a
// value out.
type Simulation struct {
	Depot         string `yaml:"depot"`
	Strategy      string `yaml:"strategy"`
	MaxExpansions int    `yaml:"max_expansions"`
}

type file struct {
	Simulation Simulation `yaml:"simulation"`
}

// LoadFile reads simulation defaults from a YAML file of the form
//
//	simulation:
//	  depot: A
//	  strategy: optimized
//	  max_expansions: 200000
//
// An empty path yields zero defaults.
func LoadFile(path string) (Simulation, error) {
	if strings.TrimSpace(path) == "" {
		return Simulation{}, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Simulation{}, fmt.Errorf("load config: read %q: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Simulation{}, fmt.Errorf("load config: parse %q: %w", path, err)
	}
	if f.Simulation.MaxExpansions < 0 {
		return Simulation{}, errors.New("load config: max_expansions must not be negative")
	}
	return f.Simulation, nil
}

// Load reads CONFIG_PATH (if set) and applies the DEPOT, STRATEGY and
// MAX_EXPANSIONS environment overrides on top.
func Load() (Simulation, error) {
	s, err := LoadFile(Get("CONFIG_PATH", ""))
	if err != nil {
		return Simulation{}, err
	}

	s.Depot = Get("DEPOT", s.Depot)
	s.Strategy = Get("STRATEGY", s.Strategy)

	if raw := Get("MAX_EXPANSIONS", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Simulation{}, fmt.Errorf("load config: MAX_EXPANSIONS=%q: must be a non-negative integer", raw)
		}
		s.MaxExpansions = n
	}
	return s, nil
}
