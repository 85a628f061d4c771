package core

import (
	"math/rand"
)

// Population is an ordered collection of individuals forming one generation.
// Its size is invariant across generation boundaries.
type Population struct {
	members []*Individual
}

// NewPopulation wraps the given individuals; the slice is copied.
func NewPopulation(members []*Individual) *Population {
	owned := make([]*Individual, len(members))
	copy(owned, members)
	return &Population{members: owned}
}

// RandomPopulation creates size random individuals for the problem.
func RandomPopulation(p *Problem, size int, rng *rand.Rand) *Population {
	members := make([]*Individual, size)
	for i := range members {
		members[i] = RandomIndividual(p, rng)
	}
	return &Population{members: members}
}

// Size returns the number of individuals in the population.
func (pop *Population) Size() int { return len(pop.members) }

// Member returns the individual at the given position.
func (pop *Population) Member(i int) *Individual { return pop.members[i] }

// Members returns a copy of the member slice in population order.
func (pop *Population) Members() []*Individual {
	members := make([]*Individual, len(pop.members))
	copy(members, pop.members)
	return members
}

// Best returns the first individual with maximal fitness in population
// order, or nil for an empty population. Ties resolve to the earliest
// member; callers must not depend on which of several equals is returned.
func (pop *Population) Best() *Individual {
	if len(pop.members) == 0 {
		return nil
	}
	best := pop.members[0]
	for _, ind := range pop.members[1:] {
		if ind.Fitness() > best.Fitness() {
			best = ind
		}
	}
	return best
}
