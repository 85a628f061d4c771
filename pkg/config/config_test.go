package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosolve/cropevo/pkg/config"
	"github.com/agrosolve/cropevo/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Problem.CropNames, 6)
	assert.Len(t, cfg.Problem.CropCosts, 6)
	assert.Len(t, cfg.Problem.FieldYields, 10)
	assert.Equal(t, 20, cfg.GA.PopulationSize)
	assert.Equal(t, 50, cfg.GA.Generations)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
ga:
  population_size: 30
  generations: 10
seed: 42
log_level: DEBUG
output:
  chart_path: out/run.png
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.GA.PopulationSize)
	assert.Equal(t, 10, cfg.GA.Generations)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "out/run.png", cfg.Output.ChartPath)

	// Untouched sections keep their defaults.
	assert.InDelta(t, 0.7, cfg.GA.CrossoverRate, 1e-12)
	assert.Len(t, cfg.Problem.CropNames, 6)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.InvalidConfiguration, errors.Code(err))
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ga: [not a map"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.InvalidConfiguration, errors.Code(err))
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Config)
		wantCode errors.ErrorCode
	}{
		{
			name:     "population too small",
			mutate:   func(c *config.Config) { c.GA.PopulationSize = 1 },
			wantCode: errors.ValidationFailed,
		},
		{
			name:     "crossover rate above one",
			mutate:   func(c *config.Config) { c.GA.CrossoverRate = 1.5 },
			wantCode: errors.ValidationFailed,
		},
		{
			name:     "negative cost",
			mutate:   func(c *config.Config) { c.Problem.CropCosts[0] = -3 },
			wantCode: errors.ValidationFailed,
		},
		{
			name:     "unknown log level",
			mutate:   func(c *config.Config) { c.LogLevel = "VERBOSE" },
			wantCode: errors.ValidationFailed,
		},
		{
			name:     "name and cost tables disagree",
			mutate:   func(c *config.Config) { c.Problem.CropNames = c.Problem.CropNames[:5] },
			wantCode: errors.ValidationFailed,
		},
		{
			name: "ragged yield row",
			mutate: func(c *config.Config) {
				c.Problem.FieldYields[2] = c.Problem.FieldYields[2][:4]
			},
			wantCode: errors.ValidationFailed,
		},
		{
			name: "tournament exceeds population",
			mutate: func(c *config.Config) {
				c.GA.PopulationSize = 4
				c.GA.TournamentSize = 5
			},
			wantCode: errors.InsufficientPopulation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.Code(err))
		})
	}
}

func TestBuildProblemMatchesTables(t *testing.T) {
	cfg := config.DefaultConfig()

	p, err := cfg.BuildProblem()
	require.NoError(t, err)

	assert.Equal(t, 10, p.FieldCount())
	assert.Equal(t, 6, p.CropCount())
	assert.InDelta(t, cfg.Problem.Alpha, p.Alpha(), 1e-12)
	assert.InDelta(t, cfg.Problem.Beta, p.Beta(), 1e-12)
	assert.InDelta(t, cfg.Problem.CropCosts[1], p.CropCost(1), 1e-12)
	assert.InDelta(t, cfg.Problem.FieldYields[3][2], p.Yield(3, 2), 1e-12)
}

func TestParamsMapping(t *testing.T) {
	cfg := config.DefaultConfig()
	params := cfg.Params()

	assert.Equal(t, cfg.GA.PopulationSize, params.PopulationSize)
	assert.Equal(t, cfg.GA.Generations, params.Generations)
	assert.InDelta(t, cfg.GA.CrossoverRate, params.CrossoverRate, 1e-12)
	assert.InDelta(t, cfg.GA.MutationRate, params.MutationRate, 1e-12)
	assert.Equal(t, cfg.GA.TournamentSize, params.TournamentSize)
}
