// Package stats collects a solved schedule's penalty and coverage data
// (component F, the auditor) and renders it as a text report.
package stats

import (
	"sort"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/model"
	"github.com/shiftplan/scheduler/pkg/scheduler/build"
	"github.com/shiftplan/scheduler/pkg/scheduler/precompute"
	"github.com/shiftplan/scheduler/pkg/scheduler/solver"
)

// PenaltyLine is one non-zero soft-rule cost, ready to print.
type PenaltyLine struct {
	Subject string // employee name, "GROUPE", or "GLOBAL"
	Reason  string
	Cost    int64
}

// EmployeeDetail is one employee's row in the per-employee detail table.
type EmployeeDetail struct {
	Name                string
	DaysOff             int64
	DaysWorked          int64
	TotalHours          float64
	ShiftsByID          map[string]int64
	ShiftsByFunction    map[string]int64
}

// QualifEquityRow is one shift id's spread of counts across the employees
// who worked it at least once (qualified employees with a count of zero are
// not included), shown only when the spread exceeds one shift.
type QualifEquityRow struct {
	ShiftID string
	Min     int64
	Max     int64
	Gap     int64
	Detail  map[string]int64 // employee name -> count
}

// ReportData is everything generate_text_report's reference equivalent
// needs: the penalty list, RH stats, the per-qualification equity audit,
// and the per-employee/per-family detail table.
type ReportData struct {
	Score             int64
	TotalUncovered    int64
	Penalties         []PenaltyLine
	AvgDaysOff        float64
	MinDaysOff        int64
	MinDaysOffAgent   string
	AgentsNoWeekend   int
	QualifEquity      []QualifEquityRow
	EmployeeDetails   map[string]EmployeeDetail
	Families          []model.Group
}

// Collect reads every variable the solved response set and reconstructs the
// report data, mirroring solver.py's _collect_report_data.
func Collect(cat model.Catalog, m *build.Model, result *solver.Result, costMissingNeedUnit int, shiftToFunction map[string]string, weekends []precompute.WeekendPair) ReportData {
	response := result.Response
	data := ReportData{
		Score:           int64(result.Objective),
		EmployeeDetails: make(map[string]EmployeeDetail, len(cat.Employees)),
		Families:        cat.Groups,
	}

	for _, sf := range m.Shortfalls {
		val := cpmodel.SolutionIntegerValue(response, sf.Shortfall)
		if val <= 0 {
			continue
		}
		data.TotalUncovered += val
		data.Penalties = append(data.Penalties, PenaltyLine{
			Subject: "GLOBAL",
			Reason:  shortfallReason(sf, val),
			Cost:    val * int64(costMissingNeedUnit),
		})
	}

	for _, pd := range m.Penalties {
		val := solutionValue(response, pd.Term)
		if val <= 0 {
			continue
		}
		data.Penalties = append(data.Penalties, PenaltyLine{
			Subject: pd.Subject,
			Reason:  penaltyReason(pd, val),
			Cost:    val * int64(pd.Weight),
		})
	}

	sort.Slice(data.Penalties, func(i, j int) bool {
		if data.Penalties[i].Subject != data.Penalties[j].Subject {
			return data.Penalties[i].Subject < data.Penalties[j].Subject
		}
		return data.Penalties[i].Cost < data.Penalties[j].Cost
	})

	type offCount struct {
		off  int64
		name string
	}
	var offs []offCount

	qualifCounts := make(map[string]map[string]int64) // shift id -> employee name -> count

	for _, e := range cat.Employees {
		nbOff := cpmodel.SolutionIntegerValue(response, m.Variables.TotalOffDays[e.ID])
		numDays := int64(len(cat.Horizon.Days()))
		nbWorked := numDays - nbOff
		totalHours := float64(cpmodel.SolutionIntegerValue(response, m.Variables.TotalMinutes[e.ID])) / 60.0

		offs = append(offs, offCount{off: nbOff, name: e.Name})

		shiftsByID := make(map[string]int64)
		shiftsByFunc := make(map[string]int64)
		for _, d := range cat.Horizon.Days() {
			dk := d.Format("2006-01-02")
			off, ok := m.Variables.IsOff[build.OffKey{EmployeeID: e.ID, Day: dk}]
			if ok && cpmodel.SolutionBooleanValue(response, off) {
				continue
			}
			for sid := range e.Qualifications {
				a, ok := m.Variables.Assign[build.AssignKey{EmployeeID: e.ID, Day: dk, ShiftID: sid}]
				if ok && cpmodel.SolutionBooleanValue(response, a) {
					shiftsByID[sid]++
					if fid, ok := shiftToFunction[sid]; ok {
						shiftsByFunc[fid]++
					}
					break
				}
			}
		}

		for sid, count := range shiftsByID {
			if qualifCounts[sid] == nil {
				qualifCounts[sid] = make(map[string]int64)
			}
			qualifCounts[sid][e.Name] = count
		}

		data.EmployeeDetails[e.Name] = EmployeeDetail{
			Name:             e.Name,
			DaysOff:          nbOff,
			DaysWorked:       nbWorked,
			TotalHours:       totalHours,
			ShiftsByID:       shiftsByID,
			ShiftsByFunction: shiftsByFunc,
		}

		if !hasGuaranteedWeekend(cat, m, response, e, weekends) {
			data.AgentsNoWeekend++
		}
	}

	sort.Slice(offs, func(i, j int) bool { return offs[i].off < offs[j].off })
	if len(offs) > 0 {
		var sum int64
		for _, o := range offs {
			sum += o.off
		}
		data.AvgDaysOff = float64(sum) / float64(len(offs))
		data.MinDaysOff = offs[0].off
		data.MinDaysOffAgent = offs[0].name
	}

	for sid, counts := range qualifCounts {
		if len(counts) == 0 {
			continue
		}
		var min, max int64 = -1, -1
		for _, c := range counts {
			if min == -1 || c < min {
				min = c
			}
			if c > max {
				max = c
			}
		}
		gap := max - min
		if gap <= 1 {
			continue
		}
		data.QualifEquity = append(data.QualifEquity, QualifEquityRow{
			ShiftID: sid, Min: min, Max: max, Gap: gap, Detail: counts,
		})
	}
	sort.Slice(data.QualifEquity, func(i, j int) bool { return data.QualifEquity[i].ShiftID < data.QualifEquity[j].ShiftID })

	return data
}

func hasGuaranteedWeekend(cat model.Catalog, m *build.Model, response *cpmodel.CpSolverResponse, e model.Employee, weekends []precompute.WeekendPair) bool {
	for _, w := range weekends {
		sat, okSat := m.Variables.IsOff[build.OffKey{EmployeeID: e.ID, Day: w.Saturday.Format("2006-01-02")}]
		sun, okSun := m.Variables.IsOff[build.OffKey{EmployeeID: e.ID, Day: w.Sunday.Format("2006-01-02")}]
		if okSat && okSun && cpmodel.SolutionBooleanValue(response, sat) && cpmodel.SolutionBooleanValue(response, sun) {
			return true
		}
	}
	return false
}

func shortfallReason(sf build.ShortfallDetail, val int64) string {
	return "missing " + sf.Need.ShiftID + " on " + sf.Need.Date.Format("2006-01-02")
}

func penaltyReason(pd build.PenaltyDetail, val int64) string {
	return pd.Label
}

// solutionValue reads back an IntVar or BoolVar's value through the
// LinearArgument interface. PenaltyDetail.Term is always a single variable
// rather than a composite expression, so a type switch over the two
// concrete variable kinds covers every case the builder produces.
func solutionValue(response *cpmodel.CpSolverResponse, term cpmodel.LinearArgument) int64 {
	switch t := term.(type) {
	case cpmodel.IntVar:
		return cpmodel.SolutionIntegerValue(response, t)
	case cpmodel.BoolVar:
		if cpmodel.SolutionBooleanValue(response, t) {
			return 1
		}
		return 0
	default:
		return 0
	}
}
