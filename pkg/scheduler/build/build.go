package build

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/model"
	"github.com/shiftplan/scheduler/pkg/scheduler/precompute"
)

// Model is everything the search driver and result extractor need: the
// populated builder, every decision variable, and the bookkeeping the
// auditor uses to reconstruct a readable penalty list from the solution.
type Model struct {
	Builder    *cpmodel.CpModelBuilder
	Variables  *Variables
	Objective  cpmodel.IntVar
	Shortfalls []ShortfallDetail
	Penalties  []PenaltyDetail
	GroupOf    map[string]string
}

const maxObjectiveValue = 1_000_000_000

// Build instantiates the CP decision variables and imposes every hard and
// soft rule in spec.md §4.C, in the same four-stage order as the reference
// implementation: variables, hard constraints, soft objectives, search
// strategy.
func Build(cat model.Catalog, cfg Config, priority []string) (*Model, error) {
	b := cpmodel.NewCpModelBuilder()

	v, err := NewVariables(b, cat)
	if err != nil {
		return nil, err
	}

	forbidden := precompute.ForbiddenTransitions(cat.Shifts, cfg.MinRestHours)
	weekends := precompute.Weekends(cat.Horizon)
	groupOf := employeeGroup(cat)

	addHardRules(b, cat, v, forbidden, groupOf, cfg)
	soft := addSoftRules(b, cat, v, weekends, groupOf, cfg)

	objective := b.NewIntVar(0, maxObjectiveValue).WithName("objective")
	b.AddEquality(objective, cpmodel.Sum(soft.ObjectiveTerms...))
	b.Minimize(objective)

	if priority == nil {
		priority = DefaultFunctionPriority
	}
	addSearchStrategy(b, cat, v, ShiftToFunctionMap(cat), priority)

	return &Model{
		Builder:    b,
		Variables:  v,
		Objective:  objective,
		Shortfalls: soft.Shortfalls,
		Penalties:  soft.PenaltyDetails,
		GroupOf:    groupOf,
	}, nil
}
