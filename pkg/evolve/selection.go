package evolve

import (
	"math/rand"
	"sort"

	"github.com/agrosolve/cropevo/pkg/core"
	"github.com/agrosolve/cropevo/pkg/errors"
)

// SelectParents runs one tournament: it samples tournamentSize individuals
// from the population uniformly without replacement and returns the two
// fittest of the sample. Ties order arbitrarily. It fails with
// InsufficientPopulation when the population is smaller than the tournament
// and with InvalidConfiguration when the tournament cannot produce two
// parents.
func SelectParents(rng *rand.Rand, pop *core.Population, tournamentSize int) (*core.Individual, *core.Individual, error) {
	if tournamentSize < 2 {
		return nil, nil, errors.WithFields(
			errors.New(errors.InvalidConfiguration, "tournament size must be at least 2"),
			errors.Fields{"tournament_size": tournamentSize})
	}
	if pop.Size() < tournamentSize {
		return nil, nil, errors.WithFields(
			errors.New(errors.InsufficientPopulation, "population smaller than tournament"),
			errors.Fields{"population_size": pop.Size(), "tournament_size": tournamentSize})
	}

	// Partial Fisher-Yates over the index space draws the sample without
	// replacement.
	idx := make([]int, pop.Size())
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < tournamentSize; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	sample := idx[:tournamentSize]

	sort.SliceStable(sample, func(a, b int) bool {
		return pop.Member(sample[a]).Fitness() > pop.Member(sample[b]).Fitness()
	})

	return pop.Member(sample[0]), pop.Member(sample[1]), nil
}
