package experiment_test

import (
	"context"
	stderrors "errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosolve/cropevo/internal/testutil"
	"github.com/agrosolve/cropevo/pkg/errors"
	"github.com/agrosolve/cropevo/pkg/evolve"
	"github.com/agrosolve/cropevo/pkg/experiment"
)

func referenceParams() experiment.Params {
	return experiment.Params{
		PopulationSize: 20,
		Generations:    50,
		CrossoverRate:  0.7,
		MutationRate:   0.5,
		TournamentSize: 5,
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*experiment.Params)
		code   errors.ErrorCode
	}{
		{"population too small", func(p *experiment.Params) { p.PopulationSize = 1 }, errors.InvalidConfiguration},
		{"no generations", func(p *experiment.Params) { p.Generations = 0 }, errors.InvalidConfiguration},
		{"crossover rate above 1", func(p *experiment.Params) { p.CrossoverRate = 1.1 }, errors.InvalidConfiguration},
		{"negative mutation rate", func(p *experiment.Params) { p.MutationRate = -0.1 }, errors.InvalidConfiguration},
		{"tiny tournament", func(p *experiment.Params) { p.TournamentSize = 1 }, errors.InvalidConfiguration},
		{"tournament exceeds population", func(p *experiment.Params) { p.TournamentSize = 21 }, errors.InsufficientPopulation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := referenceParams()
			tt.mutate(&params)

			err := params.Validate()
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.New(tt.code, "")), "got %v", err)
		})
	}

	assert.NoError(t, referenceParams().Validate())
}

func TestRunTraceShape(t *testing.T) {
	p := testutil.SmallFarm(t)
	rng := rand.New(rand.NewSource(83))

	result, err := experiment.Run(context.Background(), p, referenceParams(),
		evolve.SinglePoint{}, evolve.RandomReset{}, rng)
	require.NoError(t, err)

	assert.Len(t, result.Trace.BestFitness, 50)
	assert.NotNil(t, result.Best)
	assert.Same(t, result.Best, result.Trace.FinalBest)
	assert.Equal(t, "single-point + reset", result.Label)
	assert.NotEmpty(t, result.ID)

	// The final trace entry is the final best's fitness.
	assert.Equal(t, result.Best.Fitness(), result.Trace.BestFitness[49])
}

func TestRunIsDeterministicUnderFixedSeed(t *testing.T) {
	p := testutil.SmallFarm(t)

	run := func() []float64 {
		rng := rand.New(rand.NewSource(12345))
		result, err := experiment.Run(context.Background(), p, referenceParams(),
			evolve.TwoPoint{}, evolve.Swap{}, rng)
		require.NoError(t, err)
		return result.Trace.BestFitness
	}

	assert.Equal(t, run(), run())
}

func TestRunConvergesOnCornerProblem(t *testing.T) {
	// Two fields, two crops, zero costs, identity yields: genome [0 1] is
	// the unique optimum with fitness 1. Every operator pair must find it
	// within 50 generations of a population of 20.
	p := testutil.CornerProblem(t)
	params := referenceParams()
	params.MutationRate = 0.3

	seed := int64(1)
	for _, cxName := range evolve.CrossoverNames() {
		for _, mutName := range evolve.MutationNames() {
			cx, err := evolve.CrossoverByName(cxName)
			require.NoError(t, err)
			mut, err := evolve.MutationByName(mutName)
			require.NoError(t, err)

			rng := rand.New(rand.NewSource(seed))
			seed++

			result, err := experiment.Run(context.Background(), p, params, cx, mut, rng)
			require.NoError(t, err)

			assert.Equal(t, 1.0, result.Trace.BestFitness[len(result.Trace.BestFitness)-1],
				"%s + %s should report the optimum as final best", cxName, mutName)
		}
	}
}

func TestRunDegenerateSingleFieldProblem(t *testing.T) {
	// One field: crossover and swap/inversion fall back to pass-through,
	// and every assignment scores the same.
	p := testutil.FlatProblem(t)
	params := referenceParams()
	params.Generations = 10

	rng := rand.New(rand.NewSource(89))
	result, err := experiment.Run(context.Background(), p, params,
		evolve.SinglePoint{}, evolve.Swap{}, rng)
	require.NoError(t, err)

	want := result.Trace.BestFitness[0]
	for _, fitness := range result.Trace.BestFitness {
		assert.Equal(t, want, fitness)
	}
}

func TestRunSurfacesConfigErrorsBeforeEvolving(t *testing.T) {
	p := testutil.SmallFarm(t)
	params := referenceParams()
	params.TournamentSize = 50

	rng := rand.New(rand.NewSource(97))
	_, err := experiment.Run(context.Background(), p, params,
		evolve.Uniform{}, evolve.Inversion{}, rng)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.New(errors.InsufficientPopulation, "")))
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	p := testutil.SmallFarm(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rng := rand.New(rand.NewSource(101))
	_, err := experiment.Run(ctx, p, referenceParams(), evolve.Uniform{}, evolve.Swap{}, rng)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.New(errors.Canceled, "")))
}
