// Package cropevo is a genetic-algorithm engine for crop assignment: given a
// set of fields, a catalog of crops with per-crop costs and per-field yields,
// it searches for the assignment of one crop per field that best trades total
// yield against total cost.
//
// Key components:
//
//   - core: the problem definition (cost and yield tables, objective
//     weights), immutable individuals with normalized weighted-sum fitness,
//     populations and per-generation fitness traces.
//
//   - evolve: the operator library (single-point, two-point and uniform
//     crossover; random-reset, swap and inversion mutation), tournament
//     selection and the generational evolution step.
//
//   - experiment: the driver that runs one experiment per operator
//     combination, renders a fitness-over-generations chart and formats the
//     best assignments for the console.
//
//   - config: YAML configuration for the problem tables and the GA
//     hyperparameters, with a built-in reference problem.
//
// All randomness flows through explicit *rand.Rand values, so a fixed seed
// reproduces an experiment exactly, including when the experiment suite runs
// its combinations in parallel.
package cropevo
