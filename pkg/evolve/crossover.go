// Package evolve implements the genetic operators and the generational
// evolution loop over crop-assignment individuals. The operator set is
// closed: three crossover strategies and three mutation strategies, each a
// pure function over immutable individuals with an injected random source.
package evolve

import (
	"math/rand"

	"github.com/agrosolve/cropevo/pkg/core"
)

// Crossover recombines two parents into two children. Implementations never
// modify their inputs; children are freshly scored individuals on the same
// problem instance as the parents.
type Crossover interface {
	Name() string
	Cross(rng *rand.Rand, parent1, parent2 *core.Individual) (*core.Individual, *core.Individual, error)
}

// SinglePoint cuts both genomes at one uniformly drawn point in
// [1, fieldCount-1] and exchanges the tails. With a single field there is no
// valid cut point, so the parents are returned unchanged.
type SinglePoint struct{}

func (SinglePoint) Name() string { return "single-point" }

func (SinglePoint) Cross(rng *rand.Rand, parent1, parent2 *core.Individual) (*core.Individual, *core.Individual, error) {
	p := parent1.Problem()
	n := p.FieldCount()
	if n < 2 {
		return parent1, parent2, nil
	}

	cut := 1 + rng.Intn(n-1)

	g1 := parent1.Genome()
	g2 := parent2.Genome()
	for f := cut; f < n; f++ {
		g1[f], g2[f] = g2[f], g1[f]
	}

	return buildChildren(p, g1, g2)
}

// TwoPoint draws two distinct cut points from [1, fieldCount-1], sorts them
// and exchanges the gene segment [p1, p2) between the parents. Fewer than
// three fields leave no room for two distinct cut points; the parents are
// then returned unchanged.
type TwoPoint struct{}

func (TwoPoint) Name() string { return "two-point" }

func (TwoPoint) Cross(rng *rand.Rand, parent1, parent2 *core.Individual) (*core.Individual, *core.Individual, error) {
	p := parent1.Problem()
	n := p.FieldCount()
	if n < 3 {
		return parent1, parent2, nil
	}

	lo := 1 + rng.Intn(n-1)
	hi := 1 + rng.Intn(n-1)
	for hi == lo {
		hi = 1 + rng.Intn(n-1)
	}
	if hi < lo {
		lo, hi = hi, lo
	}

	g1 := parent1.Genome()
	g2 := parent2.Genome()
	for f := lo; f < hi; f++ {
		g1[f], g2[f] = g2[f], g1[f]
	}

	return buildChildren(p, g1, g2)
}

// Uniform flips an independent fair coin per gene position; one child takes
// parent1's gene where the coin lands true, the other takes parent2's, so
// the children are complementary at every position.
type Uniform struct{}

func (Uniform) Name() string { return "uniform" }

func (Uniform) Cross(rng *rand.Rand, parent1, parent2 *core.Individual) (*core.Individual, *core.Individual, error) {
	p := parent1.Problem()
	n := p.FieldCount()

	g1 := make([]int, n)
	g2 := make([]int, n)
	for f := 0; f < n; f++ {
		if rng.Intn(2) == 1 {
			g1[f] = parent1.Gene(f)
			g2[f] = parent2.Gene(f)
		} else {
			g1[f] = parent2.Gene(f)
			g2[f] = parent1.Gene(f)
		}
	}

	return buildChildren(p, g1, g2)
}

func buildChildren(p *core.Problem, g1, g2 []int) (*core.Individual, *core.Individual, error) {
	child1, err := core.NewIndividual(p, g1)
	if err != nil {
		return nil, nil, err
	}
	child2, err := core.NewIndividual(p, g2)
	if err != nil {
		return nil, nil, err
	}
	return child1, child2, nil
}
