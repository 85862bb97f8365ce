package solver

import (
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/model"
	"github.com/shiftplan/scheduler/pkg/scheduler/build"
)

const labelErrNoShift = "ERR_NO_SHIFT"

// Planning is the per-employee, per-day label grid spec.md §4.E requires:
// employee name -> date string ("2006-01-02") -> label, where label is one
// of OFF, HOLIDAY, FIXED_OFF, ERR_NO_SHIFT, or a shift id.
type Planning map[string]map[string]string

// ExtractPlanning reads back the solved boolean values and reconstructs the
// planning grid exactly as _process_results does: is_off decides between a
// day-off label (refined to HOLIDAY/FIXED_OFF when a matching personal
// constraint explains it) and a worked day, where the worked day's label is
// whichever shift id the employee's own qualification loop finds assigned
// first. An employee left both "not off" and with no assigned shift reports
// ERR_NO_SHIFT rather than an empty string, so a downstream reader always
// sees an explicit label.
func ExtractPlanning(cat model.Catalog, v *build.Variables, response *cpmodel.CpSolverResponse) Planning {
	planning := make(Planning, len(cat.Employees))

	for _, e := range cat.Employees {
		byDate := make(map[string]string, len(cat.Horizon.Days()))
		for _, d := range cat.Horizon.Days() {
			dk := d.Format("2006-01-02")
			off, ok := v.IsOff[build.OffKey{EmployeeID: e.ID, Day: dk}]
			if ok && cpmodel.SolutionBooleanValue(response, off) {
				byDate[dk] = offLabel(e, d)
				continue
			}

			byDate[dk] = labelErrNoShift
			for sid := range e.Qualifications {
				a, ok := v.Assign[build.AssignKey{EmployeeID: e.ID, Day: dk, ShiftID: sid}]
				if ok && cpmodel.SolutionBooleanValue(response, a) {
					byDate[dk] = sid
					break
				}
			}
		}
		planning[e.Name] = byDate
	}

	return planning
}

// offLabel refines a plain OFF day to HOLIDAY or FIXED_OFF when the
// employee's own constraints explain it, matching the Python label
// priority (HOLIDAY checked before FIXED_OFF, first match wins).
func offLabel(e model.Employee, day time.Time) string {
	for _, c := range e.Constraints {
		if c.Kind == model.KindHoliday && c.Date.Equal(day) {
			return "HOLIDAY"
		}
	}
	for _, c := range e.Constraints {
		if c.Kind == model.KindFixedOff && c.Weekday == day.Weekday() {
			return "FIXED_OFF"
		}
	}
	return "OFF"
}
