package experiment

import (
	"context"
	"math/rand"

	"github.com/sourcegraph/conc/pool"

	"github.com/agrosolve/cropevo/pkg/core"
	"github.com/agrosolve/cropevo/pkg/evolve"
	"github.com/agrosolve/cropevo/pkg/logging"
)

// RunAll executes one run per crossover × mutation combination, in the
// registries' conventional order, and returns the results in that same
// order regardless of scheduling.
//
// Runs share only the immutable problem, so they execute in parallel on a
// bounded pool; each run derives its own seed from the base seed and its
// combination index, which keeps a fixed seed reproducible under any worker
// count.
func RunAll(ctx context.Context, problem *core.Problem, params Params, seed int64, workers int) ([]*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	type combo struct {
		cx  evolve.Crossover
		mut evolve.Mutation
	}

	var combos []combo
	for _, cxName := range evolve.CrossoverNames() {
		for _, mutName := range evolve.MutationNames() {
			cx, err := evolve.CrossoverByName(cxName)
			if err != nil {
				return nil, err
			}
			mut, err := evolve.MutationByName(mutName)
			if err != nil {
				return nil, err
			}
			combos = append(combos, combo{cx: cx, mut: mut})
		}
	}

	if workers <= 0 {
		workers = len(combos)
	}

	logger := logging.GetLogger()
	logger.Info(ctx, "running %d operator combinations (%d workers, seed %d)",
		len(combos), workers, seed)

	results := make([]*Result, len(combos))
	errCh := make(chan error, 1)

	p := pool.New().WithMaxGoroutines(workers)
	for i, c := range combos {
		i, c := i, c
		p.Go(func() {
			rng := rand.New(rand.NewSource(seed + int64(i)))

			result, err := Run(ctx, problem, params, c.cx, c.mut, rng)
			if err != nil {
				select {
				case errCh <- err:
				default:
				}
				return
			}
			results[i] = result
		})
	}
	p.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	return results, nil
}
