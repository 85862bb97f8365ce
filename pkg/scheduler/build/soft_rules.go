package build

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/model"
	"github.com/shiftplan/scheduler/pkg/scheduler/precompute"
)

// Penalty weight keys, matching config.penalties in SPEC_FULL.md §8.
const (
	PenaltyMissingNeedUnit            = "PER_MISSING_NEED_UNIT"
	PenaltyDayOffMissing              = "PER_DAY_OFF_MISSING"
	PenaltyNoWeekendGuaranteed        = "NO_WEEKEND_GUARANTEED"
	PenaltyIntraGroupWorkDaysEquity   = "PENALTY_INTRA_GROUP_WORK_DAYS_EQUITY_GAP"
	PenaltyIntraGroupShiftEquity      = "PENALTY_INTRA_GROUP_SHIFT_EQUITY_GAP"
	PenaltyConsecutiveWorkDayViolation = "PER_CONSECUTIVE_WORK_DAY_VIOLATION"
	PenaltyIsolatedDayOff             = "PENALTY_ISOLATED_DAY_OFF"
)

const defaultMinOffDaysPerMonth = 8
const defaultMaxConsecutiveWorkDays = 6
const defaultIntraGroupWorkDaysEquity = 5000
const defaultIntraGroupShiftEquity = 500
const defaultIsolatedDayOff = 1000

// PenaltyDetail records one non-zero-able soft-rule term for the auditor,
// carrying enough context (subject + human label) to render the report's
// penalty list without re-deriving it from the raw model.
type PenaltyDetail struct {
	Label   string
	Subject string // employee name, "GROUPE", or "GLOBAL"
	Term    cpmodel.LinearArgument
	Weight  int
}

// ShortfallDetail ties a coverage slack variable back to the Need it covers.
type ShortfallDetail struct {
	Need      model.Need
	Shortfall cpmodel.IntVar
}

// SoftRuleOutputs collects everything the objective and the auditor need
// from the soft rules.
type SoftRuleOutputs struct {
	ObjectiveTerms   []cpmodel.LinearArgument
	Shortfalls       []ShortfallDetail
	PenaltyDetails   []PenaltyDetail
}

// addSoftRules imposes soft rules S1-S7 (spec.md §4.C.2), returning every
// term that feeds the minimized objective plus the bookkeeping the auditor
// needs to reconstruct a readable penalty list.
func addSoftRules(b *cpmodel.CpModelBuilder, cat model.Catalog, v *Variables, weekends []precompute.WeekendPair, groupOf map[string]string, cfg Config) SoftRuleOutputs {
	out := SoftRuleOutputs{}
	days := cat.Horizon.Days()
	numDays := int64(len(days))

	groups := groupMembers(cat)

	// S1: demand coverage.
	costMissing := int64(cfg.Penalties[PenaltyMissingNeedUnit])
	for i, need := range cat.Needs {
		if !cat.Horizon.Contains(need.Date) {
			continue
		}
		dk := dayKey(need.Date)
		var covering []cpmodel.LinearArgument
		for _, e := range cat.Employees {
			if a, ok := v.Assign[AssignKey{EmployeeID: e.ID, Day: dk, ShiftID: need.ShiftID}]; ok {
				covering = append(covering, a)
			}
		}
		shortfall := b.NewIntVar(0, int64(need.Count)).WithName(fmt.Sprintf("short_%s_%s_%d", need.ShiftID, dk, i))
		covering = append(covering, shortfall)
		b.AddGreaterOrEqual(cpmodel.Sum(covering...), cpmodel.NewConstant(int64(need.Count)))

		out.Shortfalls = append(out.Shortfalls, ShortfallDetail{Need: need, Shortfall: shortfall})
		out.ObjectiveTerms = append(out.ObjectiveTerms, cpmodel.NewLinearExpr().AddTerm(shortfall, costMissing))
	}

	// S2: minimum days off (skipped for employees under a hard group override).
	costOff := int64(cfg.Penalties[PenaltyDayOffMissing])
	globalMinOff := cfg.MinOffDaysPerMonth
	if globalMinOff == 0 {
		globalMinOff = defaultMinOffDaysPerMonth
	}
	for _, e := range cat.Employees {
		groupMin, hasOverride := cfg.GroupMinOffDays[groupOf[e.ID]]
		if hasOverride && groupMin > 0 {
			continue
		}
		minOff := globalMinOff
		if hasOverride {
			minOff = groupMin
		}
		if minOff <= 0 {
			continue
		}
		missing := b.NewIntVar(0, int64(minOff)).WithName(fmt.Sprintf("manque_off_%s", e.ID))
		b.AddGreaterOrEqual(cpmodel.Sum(v.TotalOffDays[e.ID], missing), cpmodel.NewConstant(int64(minOff)))
		out.ObjectiveTerms = append(out.ObjectiveTerms, cpmodel.NewLinearExpr().AddTerm(missing, costOff))
		out.PenaltyDetails = append(out.PenaltyDetails, PenaltyDetail{Label: "Jours OFF manquants", Subject: e.Name, Term: missing, Weight: int(costOff)})
	}

	// S3: guaranteed weekend.
	costWeekend := int64(cfg.Penalties[PenaltyNoWeekendGuaranteed])
	for _, e := range cat.Employees {
		var weekendOKVars []cpmodel.BoolVar
		for _, w := range weekends {
			sat := v.IsOff[OffKey{EmployeeID: e.ID, Day: dayKey(w.Saturday)}]
			sun := v.IsOff[OffKey{EmployeeID: e.ID, Day: dayKey(w.Sunday)}]
			weOK := b.NewBoolVar().WithName(fmt.Sprintf("we_ok_%s_%s", e.ID, dayKey(w.Saturday)))
			b.AddBoolAnd(sat, sun).OnlyEnforceIf(weOK)
			b.AddEquality(weOK, cpmodel.NewConstant(0)).OnlyEnforceIf(sat.Not())
			b.AddEquality(weOK, cpmodel.NewConstant(0)).OnlyEnforceIf(sun.Not())
			weekendOKVars = append(weekendOKVars, weOK)
		}

		hasWeekend := b.NewBoolVar().WithName(fmt.Sprintf("a_we_%s", e.ID))
		if len(weekendOKVars) > 0 {
			b.AddGreaterOrEqual(cpmodel.Sum(boolsToLinear(weekendOKVars)...), cpmodel.NewConstant(1)).OnlyEnforceIf(hasWeekend)
			b.AddEquality(cpmodel.Sum(boolsToLinear(weekendOKVars)...), cpmodel.NewConstant(0)).OnlyEnforceIf(hasWeekend.Not())
		} else {
			b.AddEquality(hasWeekend, cpmodel.NewConstant(0))
		}
		noWeekend := b.NewBoolVar().WithName(fmt.Sprintf("no_we_%s", e.ID))
		b.AddEquality(hasWeekend, noWeekend.Not())

		out.ObjectiveTerms = append(out.ObjectiveTerms, cpmodel.NewLinearExpr().AddTerm(noWeekend, costWeekend))
		out.PenaltyDetails = append(out.PenaltyDetails, PenaltyDetail{Label: "Weekend non garanti", Subject: e.Name, Term: noWeekend, Weight: int(costWeekend)})
	}

	// S4: intra-group work-day equity.
	costEquityDays := cfg.Penalties[PenaltyIntraGroupWorkDaysEquity]
	if costEquityDays == 0 {
		costEquityDays = defaultIntraGroupWorkDaysEquity
	}
	if costEquityDays > 0 {
		for groupName, members := range groups {
			if len(members) < 2 {
				continue
			}
			var workDaysVars []cpmodel.LinearArgument
			for _, e := range members {
				wd := b.NewIntVar(0, numDays).WithName(fmt.Sprintf("work_days_%s", e.ID))
				b.AddEquality(wd, cpmodel.NewLinearExpr().AddConstant(numDays).AddTerm(v.TotalOffDays[e.ID], -1))
				workDaysVars = append(workDaysVars, wd)
			}
			minWD := b.NewIntVar(0, numDays).WithName(fmt.Sprintf("min_wd_%s", groupName))
			maxWD := b.NewIntVar(0, numDays).WithName(fmt.Sprintf("max_wd_%s", groupName))
			b.AddMinEquality(minWD, workDaysVars)
			b.AddMaxEquality(maxWD, workDaysVars)
			gap := b.NewIntVar(0, numDays).WithName(fmt.Sprintf("gap_days_%s", groupName))
			b.AddEquality(gap, cpmodel.NewLinearExpr().AddTerm(maxWD, 1).AddTerm(minWD, -1))

			out.ObjectiveTerms = append(out.ObjectiveTerms, cpmodel.NewLinearExpr().AddTerm(gap, int64(costEquityDays)))
			out.PenaltyDetails = append(out.PenaltyDetails, PenaltyDetail{Label: fmt.Sprintf("Ecart Total Jours %s", groupName), Subject: "GROUPE", Term: gap, Weight: costEquityDays})
		}
	}

	// S5: intra-group per-function equity.
	costEquityShifts := cfg.Penalties[PenaltyIntraGroupShiftEquity]
	if costEquityShifts == 0 {
		costEquityShifts = defaultIntraGroupShiftEquity
	}
	if costEquityShifts > 0 {
		for groupName, members := range groups {
			if len(members) < 2 {
				continue
			}
			for funcID := range cat.Functions {
				var counts []cpmodel.LinearArgument
				for _, e := range members {
					if !e.HasFunction(funcID) {
						continue
					}
					if sv, ok := v.ShiftsPerFunction[FunctionKey{EmployeeID: e.ID, FunctionID: funcID}]; ok {
						counts = append(counts, sv)
					}
				}
				if len(counts) < 2 {
					continue
				}
				minS := b.NewIntVar(0, numDays).WithName(fmt.Sprintf("min_s_%s_%s", groupName, funcID))
				maxS := b.NewIntVar(0, numDays).WithName(fmt.Sprintf("max_s_%s_%s", groupName, funcID))
				b.AddMinEquality(minS, counts)
				b.AddMaxEquality(maxS, counts)
				gapS := b.NewIntVar(0, numDays).WithName(fmt.Sprintf("gap_s_%s_%s", groupName, funcID))
				b.AddEquality(gapS, cpmodel.NewLinearExpr().AddTerm(maxS, 1).AddTerm(minS, -1))

				out.ObjectiveTerms = append(out.ObjectiveTerms, cpmodel.NewLinearExpr().AddTerm(gapS, int64(costEquityShifts)))
				out.PenaltyDetails = append(out.PenaltyDetails, PenaltyDetail{Label: fmt.Sprintf("Ecart Qualif %s (%s)", funcID, groupName), Subject: "GROUPE", Term: gapS, Weight: costEquityShifts})
			}
		}
	}

	// S6: max consecutive work-days.
	maxConsec := cfg.MaxConsecutiveWorkDays
	if maxConsec == 0 {
		maxConsec = defaultMaxConsecutiveWorkDays
	}
	costConsec := int64(cfg.Penalties[PenaltyConsecutiveWorkDayViolation])
	for _, e := range cat.Employees {
		for i := 0; i+maxConsec < len(days); i++ {
			violation := b.NewBoolVar().WithName(fmt.Sprintf("consec_violation_%s_%d", e.ID, i))
			var workedTerms []cpmodel.LinearArgument
			for k := 0; k <= maxConsec; k++ {
				off := v.IsOff[OffKey{EmployeeID: e.ID, Day: dayKey(days[i+k])}]
				workedTerms = append(workedTerms, off.Not())
			}
			b.AddGreaterOrEqual(cpmodel.Sum(workedTerms...), cpmodel.NewConstant(int64(maxConsec+1))).OnlyEnforceIf(violation)
			b.AddLessOrEqual(cpmodel.Sum(workedTerms...), cpmodel.NewConstant(int64(maxConsec))).OnlyEnforceIf(violation.Not())

			out.ObjectiveTerms = append(out.ObjectiveTerms, cpmodel.NewLinearExpr().AddTerm(violation, costConsec))
		}
	}

	// S7: isolated off-day.
	costIsolated := cfg.Penalties[PenaltyIsolatedDayOff]
	if costIsolated == 0 {
		costIsolated = defaultIsolatedDayOff
	}
	if costIsolated > 0 {
		for _, e := range cat.Employees {
			for i := 1; i < len(days)-1; i++ {
				isolated := b.NewBoolVar().WithName(fmt.Sprintf("isolated_off_%s_%d", e.ID, i))
				today := v.IsOff[OffKey{EmployeeID: e.ID, Day: dayKey(days[i])}]
				prev := v.IsOff[OffKey{EmployeeID: e.ID, Day: dayKey(days[i-1])}]
				next := v.IsOff[OffKey{EmployeeID: e.ID, Day: dayKey(days[i+1])}]

				b.AddBoolAnd(today, prev.Not(), next.Not()).OnlyEnforceIf(isolated)
				b.AddBoolOr(today.Not(), prev, next).OnlyEnforceIf(isolated.Not())

				out.ObjectiveTerms = append(out.ObjectiveTerms, cpmodel.NewLinearExpr().AddTerm(isolated, int64(costIsolated)))
			}
		}
	}

	return out
}

func groupMembers(cat model.Catalog) map[string][]model.Employee {
	members := make(map[string][]model.Employee, len(cat.Groups))
	for _, g := range cat.Groups {
		members[g.Name] = g.Employees
	}
	return members
}

// employeeGroup maps every employee id to the name of the group it belongs
// to, for the rules and soft objectives that key off group membership.
func employeeGroup(cat model.Catalog) map[string]string {
	groupOf := make(map[string]string, len(cat.Employees))
	for _, g := range cat.Groups {
		for _, e := range g.Employees {
			groupOf[e.ID] = g.Name
		}
	}
	return groupOf
}
