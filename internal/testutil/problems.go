// Package testutil provides fixture problems shared by tests across packages.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrosolve/cropevo/pkg/core"
)

// MustProblem builds a problem and fails the test on a definition error.
func MustProblem(t *testing.T, costs []float64, yields [][]float64, alpha, beta float64) *core.Problem {
	t.Helper()
	p, err := core.NewProblem(costs, yields, alpha, beta)
	require.NoError(t, err)
	return p
}

// MustIndividual builds an individual and fails the test on a genome error.
func MustIndividual(t *testing.T, p *core.Problem, genome []int) *core.Individual {
	t.Helper()
	ind, err := core.NewIndividual(p, genome)
	require.NoError(t, err)
	return ind
}

// FlatProblem is a degenerate single-field instance where every genome has
// identical fitness: one field, two crops, equal costs and yields, cost
// weight zero.
func FlatProblem(t *testing.T) *core.Problem {
	t.Helper()
	return MustProblem(t, []float64{10, 10}, [][]float64{{5, 5}}, 1, 0)
}

// CornerProblem is a two-field, two-crop instance with a unique global
// optimum: zero costs and an identity yield matrix, so genome [0 1] is the
// only assignment reaching fitness 1.
func CornerProblem(t *testing.T) *core.Problem {
	t.Helper()
	return MustProblem(t, []float64{0, 0}, [][]float64{{1, 0}, {0, 1}}, 1, 0)
}

// SmallFarm is a four-field, three-crop instance with distinct yields and
// costs, convenient for operator tests that need room for cut points.
func SmallFarm(t *testing.T) *core.Problem {
	t.Helper()
	return MustProblem(t,
		[]float64{30, 45, 25},
		[][]float64{
			{1.7, 4.1, 2.9},
			{2.3, 3.2, 1.8},
			{4.6, 1.9, 2.4},
			{3.5, 2.6, 4.2},
		},
		0.6, 0.4)
}
