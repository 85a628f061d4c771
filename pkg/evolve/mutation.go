package evolve

import (
	"math/rand"

	"github.com/agrosolve/cropevo/pkg/core"
)

// Mutation produces a modified copy of an individual. Implementations never
// modify their input.
type Mutation interface {
	Name() string
	Mutate(rng *rand.Rand, ind *core.Individual) (*core.Individual, error)
}

// RandomReset replaces the gene at one uniformly drawn field with a
// uniformly drawn crop. The new crop may coincide with the old one.
type RandomReset struct{}

func (RandomReset) Name() string { return "reset" }

func (RandomReset) Mutate(rng *rand.Rand, ind *core.Individual) (*core.Individual, error) {
	p := ind.Problem()
	genome := ind.Genome()
	genome[rng.Intn(p.FieldCount())] = rng.Intn(p.CropCount())
	return core.NewIndividual(p, genome)
}

// Swap exchanges the genes of two distinct uniformly drawn fields. With a
// single field there is no second position, so the individual is returned
// unchanged.
type Swap struct{}

func (Swap) Name() string { return "swap" }

func (Swap) Mutate(rng *rand.Rand, ind *core.Individual) (*core.Individual, error) {
	p := ind.Problem()
	n := p.FieldCount()
	if n < 2 {
		return ind, nil
	}

	i, j := distinctPair(rng, n)
	genome := ind.Genome()
	genome[i], genome[j] = genome[j], genome[i]
	return core.NewIndividual(p, genome)
}

// Inversion reverses the gene order between two distinct uniformly drawn
// positions, inclusive on both ends. With a single field the individual is
// returned unchanged.
type Inversion struct{}

func (Inversion) Name() string { return "inversion" }

func (Inversion) Mutate(rng *rand.Rand, ind *core.Individual) (*core.Individual, error) {
	p := ind.Problem()
	n := p.FieldCount()
	if n < 2 {
		return ind, nil
	}

	i, j := distinctPair(rng, n)
	if j < i {
		i, j = j, i
	}

	genome := ind.Genome()
	for i < j {
		genome[i], genome[j] = genome[j], genome[i]
		i++
		j--
	}
	return core.NewIndividual(p, genome)
}

// distinctPair draws two distinct positions from [0, n) without replacement.
func distinctPair(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
