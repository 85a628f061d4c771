package core

import (
	"math/rand"

	"github.com/agrosolve/cropevo/pkg/errors"
)

// Individual is one candidate assignment: genome[f] is the crop planted on
// field f. Total yield, total cost and fitness are computed once at
// construction and never change; operators that modify a genome must build a
// new Individual instead of mutating an existing one.
type Individual struct {
	problem    *Problem
	genome     []int
	totalYield float64
	totalCost  float64
	fitness    float64
}

// NewIndividual builds an individual from the given genome, copying it and
// caching its derived scores. It fails with InvalidGenome if the genome
// length differs from the field count or any gene falls outside
// [0, cropCount). In normal operation that indicates a bug in an operator.
func NewIndividual(p *Problem, genome []int) (*Individual, error) {
	if len(genome) != p.fieldCount {
		return nil, errors.WithFields(
			errors.New(errors.InvalidGenome, "genome length disagrees with field count"),
			errors.Fields{"genome_len": len(genome), "field_count": p.fieldCount})
	}
	for f, gene := range genome {
		if gene < 0 || gene >= p.cropCount {
			return nil, errors.WithFields(
				errors.New(errors.InvalidGenome, "gene outside crop range"),
				errors.Fields{"position": f, "gene": gene, "crop_count": p.cropCount})
		}
	}

	owned := make([]int, len(genome))
	copy(owned, genome)

	ind := &Individual{problem: p, genome: owned}
	ind.score()
	return ind, nil
}

// RandomIndividual draws every gene uniformly from [0, cropCount).
func RandomIndividual(p *Problem, rng *rand.Rand) *Individual {
	genome := make([]int, p.fieldCount)
	for f := range genome {
		genome[f] = rng.Intn(p.cropCount)
	}

	ind := &Individual{problem: p, genome: genome}
	ind.score()
	return ind
}

// score computes the cached yield, cost and fitness from the genome.
// A zero normalization bound contributes nothing to the fitness: it can only
// occur when every yield (or every cost) in the problem is zero, in which
// case the corresponding term is identically zero for all genomes anyway.
func (ind *Individual) score() {
	p := ind.problem
	for f, crop := range ind.genome {
		ind.totalYield += p.yields[f][crop]
		ind.totalCost += p.cropCosts[crop]
	}

	normYield := 0.0
	if p.maxYield > 0 {
		normYield = ind.totalYield / p.maxYield
	}
	normCost := 0.0
	if p.maxCost > 0 {
		normCost = ind.totalCost / p.maxCost
	}
	ind.fitness = p.alpha*normYield - p.beta*normCost
}

// Problem returns the problem instance this individual was scored against.
func (ind *Individual) Problem() *Problem { return ind.problem }

// Genome returns a copy of the genome.
func (ind *Individual) Genome() []int {
	genome := make([]int, len(ind.genome))
	copy(genome, ind.genome)
	return genome
}

// Gene returns the crop planted on the given field.
func (ind *Individual) Gene(field int) int { return ind.genome[field] }

// TotalYield returns the summed yield of the assignment.
func (ind *Individual) TotalYield() float64 { return ind.totalYield }

// TotalCost returns the summed planting cost of the assignment.
func (ind *Individual) TotalCost() float64 { return ind.totalCost }

// Fitness returns alpha*yield/maxYield - beta*cost/maxCost.
func (ind *Individual) Fitness() float64 { return ind.fitness }
