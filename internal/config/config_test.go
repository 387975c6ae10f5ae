package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGet(t *testing.T) {
	t.Setenv("PLANNER_TEST_KEY", "  value ")
	require.Equal(t, "value", Get("PLANNER_TEST_KEY", "fallback"))

	t.Setenv("PLANNER_TEST_KEY", " ")
	require.Equal(t, "fallback", Get("PLANNER_TEST_KEY", "fallback"))
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "simulation:\n  depot: A\n  strategy: basic\n  max_expansions: 500\n")

	s, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, Simulation{Depot: "A", Strategy: "basic", MaxExpansions: 500}, s)

	s, err = LoadFile("")
	require.NoError(t, err)
	require.Zero(t, s)

	_, err = LoadFile(writeConfig(t, "simulation: [nope"))
	require.Error(t, err)

	_, err = LoadFile(writeConfig(t, "simulation:\n  max_expansions: -1\n"))
	require.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, "simulation:\n  depot: A\n  strategy: basic\n  max_expansions: 500\n"))
	t.Setenv("DEPOT", "B")
	t.Setenv("STRATEGY", "")
	t.Setenv("MAX_EXPANSIONS", "42")

	s, err := Load()
	require.NoError(t, err)
	require.Equal(t, Simulation{Depot: "B", Strategy: "basic", MaxExpansions: 42}, s)

	t.Setenv("MAX_EXPANSIONS", "lots")
	_, err = Load()
	require.Error(t, err)
}
