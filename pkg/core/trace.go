package core

// GenerationTrace records the outcome of one experiment run: the best
// fitness observed in each generation, in generation order, and the best
// individual of the final generation.
type GenerationTrace struct {
	BestFitness []float64
	FinalBest   *Individual
}

// Generations returns the number of recorded generations.
func (t *GenerationTrace) Generations() int { return len(t.BestFitness) }

// Record appends one generation's best fitness.
func (t *GenerationTrace) Record(fitness float64) {
	t.BestFitness = append(t.BestFitness, fitness)
}
