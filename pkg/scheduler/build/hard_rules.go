package build

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/model"
	"github.com/shiftplan/scheduler/pkg/scheduler/precompute"
)

// Config is the subset of runtime policy the hard and soft rules consume.
// It mirrors the SPEC_FULL.md §8 configuration surface.
type Config struct {
	MinRestHours           int
	MinOffDaysPerMonth     int
	MaxConsecutiveWorkDays int
	GroupMinOffDays        map[string]int
	SpecificAgentRules     []SpecificAgentRule
	Penalties              map[string]int
}

// SpecificAgentRule is one entry of config.specific_agent_rules.
type SpecificAgentRule struct {
	AgentIDs       []string
	TargetFunction string
	MinCount       int
}

const triGroupName = "3. TRI"
const triTargetFunction = "BEUA-F"
const triMinShifts = 4

// addHardRules imposes hard rules 1-7 (spec.md §4.C.1) on the builder.
func addHardRules(b *cpmodel.CpModelBuilder, cat model.Catalog, v *Variables, forbidden map[precompute.Transition]struct{}, groupOf map[string]string, cfg Config) {
	days := cat.Horizon.Days()

	// Rule 1: unit assignment.
	for _, e := range cat.Employees {
		for _, d := range days {
			dk := dayKey(d)
			var shiftVars []cpmodel.LinearArgument
			for sid := range e.Qualifications {
				if a, ok := v.Assign[AssignKey{EmployeeID: e.ID, Day: dk, ShiftID: sid}]; ok {
					shiftVars = append(shiftVars, a)
				}
			}
			off := v.IsOff[OffKey{EmployeeID: e.ID, Day: dk}]
			shiftVars = append(shiftVars, off)
			b.AddEquality(cpmodel.Sum(shiftVars...), cpmodel.NewConstant(1))
		}
	}

	// Rule 2: minimum rest via forbidden transitions.
	for _, e := range cat.Employees {
		for i := 0; i < len(days)-1; i++ {
			today, tomorrow := dayKey(days[i]), dayKey(days[i+1])
			for t := range forbidden {
				late, ok1 := v.Assign[AssignKey{EmployeeID: e.ID, Day: today, ShiftID: t.Late}]
				early, ok2 := v.Assign[AssignKey{EmployeeID: e.ID, Day: tomorrow, ShiftID: t.Early}]
				if ok1 && ok2 {
					b.AddLessOrEqual(cpmodel.Sum(late, early), cpmodel.NewConstant(1))
				}
			}
		}
	}

	// Rule 3: personal constraints.
	for _, e := range cat.Employees {
		for _, c := range e.Constraints {
			switch c.Kind {
			case model.KindHoliday:
				if cat.Horizon.Contains(c.Date) {
					off := v.IsOff[OffKey{EmployeeID: e.ID, Day: dayKey(c.Date)}]
					b.AddEquality(off, cpmodel.NewConstant(1))
				}
			case model.KindFixedOff:
				for _, d := range days {
					if d.Weekday() == c.Weekday {
						off := v.IsOff[OffKey{EmployeeID: e.ID, Day: dayKey(d)}]
						b.AddEquality(off, cpmodel.NewConstant(1))
					}
				}
			case model.KindMaxHours:
				b.AddLessOrEqual(v.TotalMinutes[e.ID], cpmodel.NewConstant(int64(c.Value*60)))
			case model.KindMaxShiftsPerQualif:
				if sv, ok := v.ShiftsPerFunction[FunctionKey{EmployeeID: e.ID, FunctionID: c.Function}]; ok {
					b.AddLessOrEqual(sv, cpmodel.NewConstant(int64(c.Value)))
				}
			}
		}
	}

	// Rule 4: forbid shifts with no demand.
	needed := make(map[AssignKey]struct{}, len(cat.Needs))
	for _, n := range cat.Needs {
		needed[AssignKey{Day: dayKey(n.Date), ShiftID: n.ShiftID}] = struct{}{}
	}
	for _, d := range days {
		dk := dayKey(d)
		for sid := range cat.Shifts {
			if _, ok := needed[AssignKey{Day: dk, ShiftID: sid}]; ok {
				continue
			}
			var assigned []cpmodel.LinearArgument
			for _, e := range cat.Employees {
				if a, ok := v.Assign[AssignKey{EmployeeID: e.ID, Day: dk, ShiftID: sid}]; ok {
					assigned = append(assigned, a)
				}
			}
			if len(assigned) > 0 {
				b.AddEquality(cpmodel.Sum(assigned...), cpmodel.NewConstant(0))
			}
		}
	}

	// Rule 5: group minimum off-days override.
	for _, e := range cat.Employees {
		if minOff, ok := cfg.GroupMinOffDays[groupOf[e.ID]]; ok && minOff > 0 {
			b.AddGreaterOrEqual(v.TotalOffDays[e.ID], cpmodel.NewConstant(int64(minOff)))
		}
	}

	// Rule 7: tri-group rule, hard-coded per spec.md §9 open question 1.
	for _, e := range cat.Employees {
		if groupOf[e.ID] != triGroupName {
			continue
		}
		if sv, ok := v.ShiftsPerFunction[FunctionKey{EmployeeID: e.ID, FunctionID: triTargetFunction}]; ok {
			b.AddGreaterOrEqual(sv, cpmodel.NewConstant(triMinShifts))
		}
	}

	// Rule 6: domain-specific agent minimums.
	for _, rule := range cfg.SpecificAgentRules {
		if rule.TargetFunction == "" || rule.MinCount <= 0 {
			continue
		}
		for _, eid := range rule.AgentIDs {
			if sv, ok := v.ShiftsPerFunction[FunctionKey{EmployeeID: eid, FunctionID: rule.TargetFunction}]; ok {
				b.AddGreaterOrEqual(sv, cpmodel.NewConstant(int64(rule.MinCount)))
			}
		}
	}
}
