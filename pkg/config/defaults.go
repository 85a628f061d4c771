package config

// DefaultConfig returns the reference experiment: six crops over ten fields
// with yield weighted 0.6 against cost weighted 0.4, searched by a
// population of 20 over 50 generations.
func DefaultConfig() *Config {
	return &Config{
		Problem: ProblemConfig{
			CropNames: []string{"Wheat", "Corn", "Barley", "Soybean", "Sunflower", "Beet"},
			CropCosts: []float64{30, 45, 25, 50, 40, 35},
			FieldYields: [][]float64{
				{1.72, 4.13, 2.95, 3.47, 1.59, 4.88},
				{2.34, 3.21, 1.87, 4.45, 2.76, 3.99},
				{4.67, 1.98, 2.43, 3.88, 4.12, 1.34},
				{3.56, 2.67, 4.21, 1.76, 2.91, 3.44},
				{1.88, 4.55, 3.12, 2.34, 1.99, 4.01},
				{2.77, 3.89, 1.45, 4.67, 2.18, 3.22},
				{4.33, 2.12, 3.76, 1.54, 4.88, 2.65},
				{3.11, 1.67, 4.44, 2.23, 3.55, 1.88},
				{2.56, 4.22, 3.33, 1.99, 2.77, 4.66},
				{1.45, 3.88, 2.12, 4.55, 3.01, 2.34},
			},
			Alpha: 0.6,
			Beta:  0.4,
		},
		GA: GAConfig{
			PopulationSize: 20,
			Generations:    50,
			CrossoverRate:  0.7,
			MutationRate:   0.5,
			TournamentSize: 5,
		},
		// Seed 0 asks the CLI to derive a seed from the clock.
		Seed:     0,
		Workers:  0, // one worker per operator combination
		LogLevel: "INFO",
		Output: OutputConfig{
			ChartPath: "fitness.png",
		},
	}
}
