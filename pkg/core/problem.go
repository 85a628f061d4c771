package core

import (
	"github.com/agrosolve/cropevo/pkg/errors"
)

// Problem is the immutable definition of one crop-assignment instance: which
// crops exist, what each costs to plant, how much each yields on each field,
// and how yield and cost are weighted against each other. A Problem is built
// once and shared read-only by every individual, operator and experiment run.
type Problem struct {
	fieldCount int
	cropCount  int
	cropCosts  []float64
	yields     [][]float64 // yields[field][crop]
	alpha      float64     // weight of normalized yield
	beta       float64     // weight of normalized cost
	maxYield   float64     // sum over fields of the best yield per field
	maxCost    float64     // fieldCount times the most expensive crop
}

// NewProblem validates the cost table and yield matrix and precomputes the
// normalization bounds. It fails with InvalidProblemDefinition if either
// dimension is zero, the matrix is ragged or disagrees with the cost table,
// or any cost, yield or weight is negative.
func NewProblem(cropCosts []float64, fieldYields [][]float64, alpha, beta float64) (*Problem, error) {
	cropCount := len(cropCosts)
	fieldCount := len(fieldYields)

	if cropCount == 0 {
		return nil, errors.New(errors.InvalidProblemDefinition, "crop cost table is empty")
	}
	if fieldCount == 0 {
		return nil, errors.New(errors.InvalidProblemDefinition, "yield matrix has no fields")
	}
	if alpha < 0 || beta < 0 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidProblemDefinition, "objective weights must be non-negative"),
			errors.Fields{"alpha": alpha, "beta": beta})
	}

	costs := make([]float64, cropCount)
	for c, cost := range cropCosts {
		if cost < 0 {
			return nil, errors.WithFields(
				errors.New(errors.InvalidProblemDefinition, "crop cost must be non-negative"),
				errors.Fields{"crop": c, "cost": cost})
		}
		costs[c] = cost
	}

	yields := make([][]float64, fieldCount)
	maxYield := 0.0
	for f, row := range fieldYields {
		if len(row) != cropCount {
			return nil, errors.WithFields(
				errors.New(errors.InvalidProblemDefinition, "yield row length disagrees with crop count"),
				errors.Fields{"field": f, "row_len": len(row), "crop_count": cropCount})
		}
		yields[f] = make([]float64, cropCount)
		bestInField := 0.0
		for c, y := range row {
			if y < 0 {
				return nil, errors.WithFields(
					errors.New(errors.InvalidProblemDefinition, "yield must be non-negative"),
					errors.Fields{"field": f, "crop": c, "yield": y})
			}
			yields[f][c] = y
			if y > bestInField {
				bestInField = y
			}
		}
		maxYield += bestInField
	}

	maxCost := 0.0
	for _, cost := range costs {
		if cost > maxCost {
			maxCost = cost
		}
	}
	maxCost *= float64(fieldCount)

	return &Problem{
		fieldCount: fieldCount,
		cropCount:  cropCount,
		cropCosts:  costs,
		yields:     yields,
		alpha:      alpha,
		beta:       beta,
		maxYield:   maxYield,
		maxCost:    maxCost,
	}, nil
}

// FieldCount returns the number of fields (genome length).
func (p *Problem) FieldCount() int { return p.fieldCount }

// CropCount returns the number of crop choices per field.
func (p *Problem) CropCount() int { return p.cropCount }

// CropCost returns the planting cost of the given crop.
func (p *Problem) CropCost(crop int) float64 { return p.cropCosts[crop] }

// Yield returns the yield obtained by planting the given crop on the given field.
func (p *Problem) Yield(field, crop int) float64 { return p.yields[field][crop] }

// Alpha returns the weight of the normalized yield term.
func (p *Problem) Alpha() float64 { return p.alpha }

// Beta returns the weight of the normalized cost term.
func (p *Problem) Beta() float64 { return p.beta }

// MaxYield returns the upper bound used to normalize total yield: the sum
// over fields of the best yield achievable on that field.
func (p *Problem) MaxYield() float64 { return p.maxYield }

// MaxCost returns the upper bound used to normalize total cost: the field
// count times the most expensive single crop.
func (p *Problem) MaxCost() float64 { return p.maxCost }
