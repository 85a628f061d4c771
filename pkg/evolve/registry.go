package evolve

import (
	"github.com/agrosolve/cropevo/pkg/errors"
)

// The operator menu is fixed and closed; the registries exist so config
// files and the CLI can refer to operators by name.

var crossovers = map[string]Crossover{
	SinglePoint{}.Name(): SinglePoint{},
	TwoPoint{}.Name():    TwoPoint{},
	Uniform{}.Name():     Uniform{},
}

var mutations = map[string]Mutation{
	RandomReset{}.Name(): RandomReset{},
	Swap{}.Name():        Swap{},
	Inversion{}.Name():   Inversion{},
}

// CrossoverNames lists the crossover operators in their conventional order.
func CrossoverNames() []string {
	return []string{SinglePoint{}.Name(), TwoPoint{}.Name(), Uniform{}.Name()}
}

// MutationNames lists the mutation operators in their conventional order.
func MutationNames() []string {
	return []string{RandomReset{}.Name(), Swap{}.Name(), Inversion{}.Name()}
}

// CrossoverByName resolves a crossover operator from its registry name.
func CrossoverByName(name string) (Crossover, error) {
	cx, ok := crossovers[name]
	if !ok {
		return nil, errors.WithFields(
			errors.New(errors.InvalidConfiguration, "unknown crossover operator"),
			errors.Fields{"name": name, "known": CrossoverNames()})
	}
	return cx, nil
}

// MutationByName resolves a mutation operator from its registry name.
func MutationByName(name string) (Mutation, error) {
	mut, ok := mutations[name]
	if !ok {
		return nil, errors.WithFields(
			errors.New(errors.InvalidConfiguration, "unknown mutation operator"),
			errors.Fields{"name": name, "known": MutationNames()})
	}
	return mut, nil
}
