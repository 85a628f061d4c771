package evolve

import (
	"math/rand"

	"github.com/agrosolve/cropevo/pkg/core"
)

// NextGeneration replaces a population with its successor of identical size.
// Pairs of parents are tournament-selected; with probability pc they are
// recombined by the chosen crossover, otherwise passed through unchanged;
// each resulting child is then independently mutated with probability pm.
// Children accumulate until the new generation is full, truncating the last
// pair if needed.
//
// The replacement is purely generational: nothing carries over, so the best
// fitness may regress between generations and callers must tolerate that.
func NextGeneration(rng *rand.Rand, pop *core.Population, cx Crossover, mut Mutation, pc, pm float64, tournamentSize int) (*core.Population, error) {
	size := pop.Size()
	next := make([]*core.Individual, 0, size+1)

	for len(next) < size {
		parent1, parent2, err := SelectParents(rng, pop, tournamentSize)
		if err != nil {
			return nil, err
		}

		child1, child2 := parent1, parent2
		if rng.Float64() < pc {
			child1, child2, err = cx.Cross(rng, parent1, parent2)
			if err != nil {
				return nil, err
			}
		}

		if rng.Float64() < pm {
			child1, err = mut.Mutate(rng, child1)
			if err != nil {
				return nil, err
			}
		}
		if rng.Float64() < pm {
			child2, err = mut.Mutate(rng, child2)
			if err != nil {
				return nil, err
			}
		}

		next = append(next, child1, child2)
	}

	return core.NewPopulation(next[:size]), nil
}
