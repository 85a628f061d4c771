// Package experiment runs GA searches over a crop-assignment problem: one
// driver run per operator pair, and a suite that fans out every crossover ×
// mutation combination as independent runs.
package experiment

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/agrosolve/cropevo/pkg/core"
	"github.com/agrosolve/cropevo/pkg/errors"
	"github.com/agrosolve/cropevo/pkg/evolve"
	"github.com/agrosolve/cropevo/pkg/logging"
)

// Params holds the GA hyperparameters of one run.
type Params struct {
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	TournamentSize int
}

// Validate surfaces every static configuration error before any generation
// runs. There is no retry policy: each of these reflects a broken setup.
func (p Params) Validate() error {
	if p.PopulationSize < 2 {
		return errors.WithFields(
			errors.New(errors.InvalidConfiguration, "population size must be at least 2"),
			errors.Fields{"population_size": p.PopulationSize})
	}
	if p.Generations < 1 {
		return errors.WithFields(
			errors.New(errors.InvalidConfiguration, "generation count must be at least 1"),
			errors.Fields{"generations": p.Generations})
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		return errors.WithFields(
			errors.New(errors.InvalidConfiguration, "crossover rate must lie in [0, 1]"),
			errors.Fields{"crossover_rate": p.CrossoverRate})
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return errors.WithFields(
			errors.New(errors.InvalidConfiguration, "mutation rate must lie in [0, 1]"),
			errors.Fields{"mutation_rate": p.MutationRate})
	}
	if p.TournamentSize < 2 {
		return errors.WithFields(
			errors.New(errors.InvalidConfiguration, "tournament size must be at least 2"),
			errors.Fields{"tournament_size": p.TournamentSize})
	}
	if p.TournamentSize > p.PopulationSize {
		return errors.WithFields(
			errors.New(errors.InsufficientPopulation, "tournament size exceeds population size"),
			errors.Fields{"tournament_size": p.TournamentSize, "population_size": p.PopulationSize})
	}
	return nil
}

// Result is the outcome of one experiment run.
type Result struct {
	ID        string
	Label     string
	Crossover string
	Mutation  string
	Trace     *core.GenerationTrace
	Best      *core.Individual
}

// Run executes one GA search: it initializes a random population, replaces
// it generation by generation with the given operator pair, records the best
// fitness of every generation and returns the trace together with the final
// generation's best individual.
//
// Runs sharing a problem are independent as long as each gets its own rng;
// the caller may execute them in parallel. The context is checked once per
// generation, which is the run's only preemption point.
func Run(ctx context.Context, problem *core.Problem, params Params, cx evolve.Crossover, mut evolve.Mutation, rng *rand.Rand) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	label := cx.Name() + " + " + mut.Name()
	ctx = logging.WithRunID(ctx, label)
	logger := logging.GetLogger()

	pop := core.RandomPopulation(problem, params.PopulationSize, rng)
	trace := &core.GenerationTrace{BestFitness: make([]float64, 0, params.Generations)}

	var best *core.Individual
	for gen := 0; gen < params.Generations; gen++ {
		if err := errors.CheckContext(ctx, "experiment run"); err != nil {
			return nil, err
		}

		next, err := evolve.NextGeneration(rng, pop, cx, mut,
			params.CrossoverRate, params.MutationRate, params.TournamentSize)
		if err != nil {
			return nil, err
		}
		pop = next

		best = pop.Best()
		trace.Record(best.Fitness())
		logger.Debug(ctx, "generation %d: best fitness %.4f", gen, best.Fitness())
	}
	trace.FinalBest = best

	result := &Result{
		ID:        uuid.New().String(),
		Label:     label,
		Crossover: cx.Name(),
		Mutation:  mut.Name(),
		Trace:     trace,
		Best:      best,
	}

	logger.Info(ctx, "run complete: yield=%.2f cost=%.2f fitness=%.3f",
		best.TotalYield(), best.TotalCost(), best.Fitness())

	return result, nil
}
