// Package solver drives the CP-SAT search (component D) and extracts the
// solved assignment grid (component E).
package solver

import (
	"sort"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/model"
	"github.com/shiftplan/scheduler/pkg/scheduler/build"
)

// greedyAssignment is one (employee, day, shift) seed pick produced by the
// hint generator.
type greedyAssignment struct {
	EmployeeID string
	Day        string
	ShiftID    string
}

// BuildHint runs a two-phase balanced-greedy pass over the catalog and
// returns a seed assignment for every need, filling one person per need per
// round (rather than filling each need to completion before moving to the
// next) so coverage stays evenly spread across the horizon even when the
// workforce is short. It never considers hard-rule feasibility beyond
// same-day double-booking and qualification — it is a warm start for the
// solver, not a candidate plan, so the solver's own hard constraints remain
// authoritative regardless of what this produces.
func BuildHint(cat model.Catalog) []greedyAssignment {
	needs := make([]model.Need, len(cat.Needs))
	copy(needs, cat.Needs)
	sort.Slice(needs, func(i, j int) bool {
		if !needs[i].Date.Equal(needs[j].Date) {
			return needs[i].Date.Before(needs[j].Date)
		}
		return needs[i].ShiftID < needs[j].ShiftID
	})

	maxRounds := 1
	for _, n := range needs {
		if n.Count > maxRounds {
			maxRounds = n.Count
		}
	}

	workload := make(map[string]int, len(cat.Employees))
	for _, e := range cat.Employees {
		workload[e.ID] = 0
	}

	assignedCount := make(map[int]int, len(needs))
	assignedToday := make(map[string]map[string]bool) // day -> employee id -> booked

	var seed []greedyAssignment

	for round := 1; round <= maxRounds; round++ {
		for i, n := range needs {
			if assignedCount[i] >= n.Count {
				continue
			}
			if assignedCount[i] >= round {
				continue
			}
			dk := n.Date.Format("2006-01-02")
			if assignedToday[dk] == nil {
				assignedToday[dk] = make(map[string]bool)
			}

			candidates := eligibleCandidates(cat, n.ShiftID, assignedToday[dk], workload)
			if len(candidates) == 0 {
				continue
			}
			chosen := candidates[0]
			assignedToday[dk][chosen] = true
			workload[chosen] += workloadUnit
			assignedCount[i]++
			seed = append(seed, greedyAssignment{EmployeeID: chosen, Day: dk, ShiftID: n.ShiftID})
		}
	}

	return seed
}

const workloadUnit = 1

func eligibleCandidates(cat model.Catalog, shiftID string, bookedToday map[string]bool, workload map[string]int) []string {
	var candidates []string
	for _, e := range cat.Employees {
		if bookedToday[e.ID] {
			continue
		}
		if !e.IsQualifiedFor(shiftID) {
			continue
		}
		candidates = append(candidates, e.ID)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return workload[candidates[i]] < workload[candidates[j]]
	})
	return candidates
}

// ApplyHint seeds the CP-SAT builder with the greedy solution: every hinted
// assign[e,d,s] variable is hinted to 1, and is_off[e,d] is hinted to 1 for
// every employee/day the greedy pass left unfilled. Employees or days absent
// from the model (e.g. filtered out by sparse variable creation) are
// skipped rather than erroring, since a hint is advisory.
func ApplyHint(b *cpmodel.CpModelBuilder, v *build.Variables, cat model.Catalog, seed []greedyAssignment) {
	hinted := make(map[build.OffKey]bool)

	for _, a := range seed {
		key := build.AssignKey{EmployeeID: a.EmployeeID, Day: a.Day, ShiftID: a.ShiftID}
		if bv, ok := v.Assign[key]; ok {
			b.AddHint(bv, 1)
			hinted[build.OffKey{EmployeeID: a.EmployeeID, Day: a.Day}] = true
		}
	}

	for _, e := range cat.Employees {
		for _, d := range cat.Horizon.Days() {
			dk := d.Format("2006-01-02")
			off, ok := v.IsOff[build.OffKey{EmployeeID: e.ID, Day: dk}]
			if !ok {
				continue
			}
			if hinted[build.OffKey{EmployeeID: e.ID, Day: dk}] {
				b.AddHint(off, 0)
			} else {
				b.AddHint(off, 1)
			}
		}
	}
}
