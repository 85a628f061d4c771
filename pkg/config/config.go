// Package config loads and validates the experiment configuration: the
// problem tables (crops, costs, yields, objective weights) and the GA
// hyperparameters. Configuration is an explicit immutable value threaded
// through the engine, never module-level state, so several experiment
// suites with different parameters can run in one process.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agrosolve/cropevo/pkg/core"
	"github.com/agrosolve/cropevo/pkg/errors"
	"github.com/agrosolve/cropevo/pkg/experiment"
)

// ProblemConfig describes one crop-assignment instance.
type ProblemConfig struct {
	CropNames   []string    `yaml:"crop_names" validate:"required,min=1"`
	CropCosts   []float64   `yaml:"crop_costs" validate:"required,min=1,dive,gte=0"`
	FieldYields [][]float64 `yaml:"field_yields" validate:"required,min=1,dive,min=1,dive,gte=0"`
	Alpha       float64     `yaml:"alpha" validate:"gte=0"`
	Beta        float64     `yaml:"beta" validate:"gte=0"`
}

// GAConfig holds the evolutionary hyperparameters.
type GAConfig struct {
	PopulationSize int     `yaml:"population_size" validate:"gte=2"`
	Generations    int     `yaml:"generations" validate:"gte=1"`
	CrossoverRate  float64 `yaml:"crossover_rate" validate:"gte=0,lte=1"`
	MutationRate   float64 `yaml:"mutation_rate" validate:"gte=0,lte=1"`
	TournamentSize int     `yaml:"tournament_size" validate:"gte=2"`
}

// OutputConfig controls what the CLI writes besides the console report.
type OutputConfig struct {
	ChartPath string `yaml:"chart_path"`
}

// Config is the complete experiment configuration.
type Config struct {
	Problem  ProblemConfig `yaml:"problem"`
	GA       GAConfig      `yaml:"ga"`
	Seed     int64         `yaml:"seed"`
	Workers  int           `yaml:"workers" validate:"gte=0"`
	LogLevel string        `yaml:"log_level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR FATAL"`
	Output   OutputConfig  `yaml:"output"`
}

// Load reads a YAML file over the defaults: fields present in the file
// override the default configuration, everything else keeps its default.
// The merged configuration is validated before being returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.InvalidConfiguration, "reading config file")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.InvalidConfiguration, "parsing config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags and the cross-field constraints the tags
// cannot express: table dimensions must agree and the tournament must fit
// inside the population.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}

	if len(c.Problem.CropNames) != len(c.Problem.CropCosts) {
		return errors.WithFields(
			errors.New(errors.ValidationFailed, "crop name and cost tables disagree"),
			errors.Fields{"names": len(c.Problem.CropNames), "costs": len(c.Problem.CropCosts)})
	}
	for f, row := range c.Problem.FieldYields {
		if len(row) != len(c.Problem.CropCosts) {
			return errors.WithFields(
				errors.New(errors.ValidationFailed, "yield row length disagrees with crop count"),
				errors.Fields{"field": f, "row_len": len(row), "crop_count": len(c.Problem.CropCosts)})
		}
	}
	if c.GA.TournamentSize > c.GA.PopulationSize {
		return errors.WithFields(
			errors.New(errors.InsufficientPopulation, "tournament size exceeds population size"),
			errors.Fields{"tournament_size": c.GA.TournamentSize, "population_size": c.GA.PopulationSize})
	}
	return nil
}

// BuildProblem constructs the immutable problem instance from the tables.
func (c *Config) BuildProblem() (*core.Problem, error) {
	return core.NewProblem(c.Problem.CropCosts, c.Problem.FieldYields, c.Problem.Alpha, c.Problem.Beta)
}

// Params maps the GA section onto the experiment driver's parameters.
func (c *Config) Params() experiment.Params {
	return experiment.Params{
		PopulationSize: c.GA.PopulationSize,
		Generations:    c.GA.Generations,
		CrossoverRate:  c.GA.CrossoverRate,
		MutationRate:   c.GA.MutationRate,
		TournamentSize: c.GA.TournamentSize,
	}
}
