// Package build instantiates the CP-SAT decision variables and imposes the
// hard and soft rules described by the domain configuration, producing a
// cpmodel.CpModelBuilder ready to hand to the search driver.
package build

import (
	"fmt"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/model"
)

const dayKeyLayout = "2006-01-02"

// AssignKey identifies one assign[e,d,s] decision variable.
type AssignKey struct {
	EmployeeID string
	Day        string
	ShiftID    string
}

// OffKey identifies one is_off[e,d] decision variable.
type OffKey struct {
	EmployeeID string
	Day        string
}

// FunctionKey identifies one shifts_per_function[e,f] aggregate variable.
type FunctionKey struct {
	EmployeeID string
	FunctionID string
}

// Variables holds every decision variable and integer aggregate the model
// builder creates, keyed for lookup by the hard/soft rule constructors.
type Variables struct {
	Assign            map[AssignKey]cpmodel.BoolVar
	IsOff             map[OffKey]cpmodel.BoolVar
	TotalMinutes      map[string]cpmodel.IntVar // keyed by employee id
	TotalOffDays      map[string]cpmodel.IntVar // keyed by employee id
	ShiftsPerFunction map[FunctionKey]cpmodel.IntVar
}

func dayKey(d time.Time) string {
	return d.Format(dayKeyLayout)
}

// NewVariables creates every decision variable and the defining constraints
// that relate assign/is_off to the aggregates (total worked minutes, total
// off days, and total shifts per function). Variables are allocated sparse:
// assign[e,d,s] is only created for s in e.Qualifications.
func NewVariables(b *cpmodel.CpModelBuilder, cat model.Catalog) (*Variables, error) {
	days := cat.Horizon.Days()
	numDays := int64(len(days))

	v := &Variables{
		Assign:            make(map[AssignKey]cpmodel.BoolVar),
		IsOff:             make(map[OffKey]cpmodel.BoolVar),
		TotalMinutes:      make(map[string]cpmodel.IntVar, len(cat.Employees)),
		TotalOffDays:      make(map[string]cpmodel.IntVar, len(cat.Employees)),
		ShiftsPerFunction: make(map[FunctionKey]cpmodel.IntVar),
	}

	for _, e := range cat.Employees {
		v.TotalMinutes[e.ID] = b.NewIntVar(0, 31*int64(model.MinutesInDay)).WithName(fmt.Sprintf("total_min_%s", e.ID))
		v.TotalOffDays[e.ID] = b.NewIntVar(0, numDays).WithName(fmt.Sprintf("total_off_%s", e.ID))

		for fid := range e.FunctionIDs {
			v.ShiftsPerFunction[FunctionKey{EmployeeID: e.ID, FunctionID: fid}] =
				b.NewIntVar(0, numDays).WithName(fmt.Sprintf("total_shifts_%s_%s", e.ID, fid))
		}

		minutesTerms := cpmodel.NewLinearExpr()
		var offTerms []cpmodel.BoolVar

		for _, d := range days {
			dk := dayKey(d)
			off := b.NewBoolVar().WithName(fmt.Sprintf("off_%s_%s", e.ID, dk))
			v.IsOff[OffKey{EmployeeID: e.ID, Day: dk}] = off
			offTerms = append(offTerms, off)

			for sid := range e.Qualifications {
				shift, ok := cat.ShiftByID(sid)
				if !ok {
					continue
				}
				assign := b.NewBoolVar().WithName(fmt.Sprintf("assign_%s_%s_%s", e.ID, dk, sid))
				v.Assign[AssignKey{EmployeeID: e.ID, Day: dk, ShiftID: sid}] = assign
				minutesTerms.AddTerm(assign, int64(shift.DurationMinutes))
			}
		}

		b.AddEquality(v.TotalMinutes[e.ID], minutesTerms)
		b.AddEquality(v.TotalOffDays[e.ID], cpmodel.Sum(boolsToLinear(offTerms)...))

		for fid := range e.FunctionIDs {
			var terms []cpmodel.LinearArgument
			for _, d := range days {
				dk := dayKey(d)
				fn, ok := cat.FunctionByID(fid)
				if !ok {
					continue
				}
				for sid := range fn.Qualifications {
					if a, ok := v.Assign[AssignKey{EmployeeID: e.ID, Day: dk, ShiftID: sid}]; ok {
						terms = append(terms, a)
					}
				}
			}
			target := v.ShiftsPerFunction[FunctionKey{EmployeeID: e.ID, FunctionID: fid}]
			if len(terms) > 0 {
				b.AddEquality(target, cpmodel.Sum(terms...))
			} else {
				b.AddEquality(target, cpmodel.NewConstant(0))
			}
		}
	}

	return v, nil
}

func boolsToLinear(bs []cpmodel.BoolVar) []cpmodel.LinearArgument {
	out := make([]cpmodel.LinearArgument, len(bs))
	for i, b := range bs {
		out[i] = b
	}
	return out
}
