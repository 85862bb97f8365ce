package build

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/model"
)

// DefaultFunctionPriority is the fixed branching order from spec.md §4.C.3.
// Functions not listed rank last (priority 99).
var DefaultFunctionPriority = []string{
	"CARGO-F", "XRAY-F", "MAILXR-F", "SV-F", "UAGSR-F",
	"UAGC-F", "UALA-F", "BS-F", "ISA-F", "UACKIN-F",
}

const unrankedFunctionPriority = 99

// addSearchStrategy orders assign[] variables by function priority and asks
// the solver to branch on the highest-priority (lowest rank, most critical)
// functions first, preferring to leave them unassigned (value 0) until forced
// otherwise. This is a search hint, not a correctness requirement — a
// backend lacking decision-strategy hooks can safely skip it.
func addSearchStrategy(b *cpmodel.CpModelBuilder, cat model.Catalog, v *Variables, shiftToFunction map[string]string, priority []string) {
	rank := make(map[string]int, len(priority))
	for i, fid := range priority {
		rank[fid] = i
	}

	type ranked struct {
		priority int
		tie      string
		v        cpmodel.BoolVar
	}
	var all []ranked
	for key, a := range v.Assign {
		p := unrankedFunctionPriority
		if fid, ok := shiftToFunction[key.ShiftID]; ok {
			if r, ok := rank[fid]; ok {
				p = r
			}
		}
		all = append(all, ranked{priority: p, tie: key.EmployeeID + "|" + key.Day + "|" + key.ShiftID, v: a})
	}

	// Sort by priority; iteration order over the map is nondeterministic,
	// so ties are broken by employee id, day and shift id to keep variable
	// ordering reproducible across runs.
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && (all[j].priority < all[j-1].priority ||
			(all[j].priority == all[j-1].priority && all[j].tie < all[j-1].tie)); j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}

	sorted := make([]cpmodel.IntVar, len(all))
	for i, r := range all {
		sorted[i] = cpmodel.IntVar(r.v)
	}

	b.AddDecisionStrategy(sorted, cpmodel.ChooseFirst, cpmodel.SelectMinValue)
}

// ShiftToFunctionMap inverts functions_catalog into shift_id -> function_id,
// needed to resolve each assign[] variable's branching priority and, in the
// auditor, to break an employee's shift counts down by function. A shift
// qualifying more than one function picks whichever is encountered last;
// the source has the same ambiguity (a plain dict overwrite in a loop).
func ShiftToFunctionMap(cat model.Catalog) map[string]string {
	out := make(map[string]string)
	for fid, fn := range cat.Functions {
		for sid := range fn.Qualifications {
			out[sid] = fid
		}
	}
	return out
}
