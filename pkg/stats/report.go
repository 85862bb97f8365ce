package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shiftplan/scheduler/pkg/scheduler/solver"
)

// GenerateTextReport renders a ReportData plus the extracted planning grid
// into the same five-section audit report as the reference implementation's
// generate_text_report: penalty list (sorted by subject, then cost), RH
// stats, per-qualification equity
// audit, per-employee detail grouped by family, and the daily coverage
// summary.
func GenerateTextReport(data ReportData, planning solver.Planning) string {
	var b strings.Builder

	line := func(s string) { b.WriteString(s); b.WriteByte('\n') }

	line(strings.Repeat("=", 73))
	line("                       SCHEDULE AUDIT REPORT")
	line(strings.Repeat("=", 73))
	line(fmt.Sprintf("TOTAL PENALTY SCORE : %d", data.Score))
	line(fmt.Sprintf("UNCOVERED SHIFTS    : %d", data.TotalUncovered))
	line("")

	line("--- [1] PENALTY ANALYSIS (soft-rule violations) ---")
	if len(data.Penalties) == 0 {
		line("  No major penalty detected. Perfect schedule.")
	} else {
		penalties := append([]PenaltyLine(nil), data.Penalties...)
		sort.SliceStable(penalties, func(i, j int) bool {
			if penalties[i].Subject != penalties[j].Subject {
				return penalties[i].Subject < penalties[j].Subject
			}
			return penalties[i].Cost < penalties[j].Cost
		})
		for _, p := range penalties {
			line(fmt.Sprintf("  [COST %d] %s : %s", p.Cost, p.Subject, p.Reason))
		}
	}
	line("")

	line("--- [2] GLOBAL HR STATISTICS ---")
	line(fmt.Sprintf("  Average days off : %.1f", data.AvgDaysOff))
	line(fmt.Sprintf("  Min days off     : %d (Employee: %s)", data.MinDaysOff, orNA(data.MinDaysOffAgent)))
	line(fmt.Sprintf("  Agents without a weekend : %d", data.AgentsNoWeekend))
	line("")

	line("--- [3] PER-QUALIFICATION EQUITY AUDIT (shared shifts) ---")
	if len(data.QualifEquity) == 0 {
		line("  No shared qualification showed a significant gap.")
	} else {
		line(fmt.Sprintf("| %-12s | %-3s | %-3s | %-4s | DETAIL (agent:count) |", "QUALIFICATION", "MIN", "MAX", "GAP"))
		line(fmt.Sprintf("|:%s-|:%s-|:%s-|:%s-|:------------------|", strings.Repeat("-", 12), strings.Repeat("-", 3), strings.Repeat("-", 3), strings.Repeat("-", 4)))
		for _, q := range data.QualifEquity {
			names := make([]string, 0, len(q.Detail))
			for name := range q.Detail {
				names = append(names, name)
			}
			sort.Strings(names)
			parts := make([]string, 0, len(names))
			for _, name := range names {
				parts = append(parts, fmt.Sprintf("%s:%d", firstWord(name), q.Detail[name]))
			}
			line(fmt.Sprintf("| %-12s | %-3d | %-3d | %-4d | %s |", q.ShiftID, q.Min, q.Max, q.Gap, strings.Join(parts, ", ")))
		}
	}
	line("")

	line("--- [4] PER-EMPLOYEE DETAIL (grouped by family) ---")
	line(fmt.Sprintf("| %-17s | %-25s | %-3s | %-7s | %-6s | FUNCTION BREAKDOWN |", "GROUP", "AGENT NAME", "OFF", "WORKED", "HOURS"))
	for _, g := range data.Families {
		if len(g.Employees) == 0 {
			continue
		}
		var hours []float64
		var offs []int64
		for _, e := range g.Employees {
			d, ok := data.EmployeeDetails[e.Name]
			if !ok {
				continue
			}
			hours = append(hours, d.TotalHours)
			offs = append(offs, d.DaysOff)
		}
		minH, maxH := minMaxFloat(hours)
		minO, maxO := minMaxInt(offs)

		line(fmt.Sprintf("| %-17s | %-25s | %3dj | %-7s | %6.1fh | (hours/days-off spread) |", g.Name, "(GROUP EQUITY)", maxO-minO, "", maxH-minH))

		sorted := make([]int, len(g.Employees))
		for i := range sorted {
			sorted[i] = i
		}
		sort.Slice(sorted, func(i, j int) bool { return g.Employees[sorted[i]].Name < g.Employees[sorted[j]].Name })

		for _, idx := range sorted {
			e := g.Employees[idx]
			d, ok := data.EmployeeDetails[e.Name]
			if !ok {
				continue
			}
			funcNames := make([]string, 0, len(d.ShiftsByFunction))
			for fn := range d.ShiftsByFunction {
				funcNames = append(funcNames, fn)
			}
			sort.Strings(funcNames)
			var funcParts []string
			for _, fn := range funcNames {
				funcParts = append(funcParts, fmt.Sprintf("%s:%d", fn, d.ShiftsByFunction[fn]))
			}
			line(fmt.Sprintf("| %-17s | %-25s | %-3d | %-7d | %-6.1f | %s |", "", d.Name, d.DaysOff, d.DaysWorked, d.TotalHours, strings.Join(funcParts, ", ")))
		}
	}
	line("")

	line("--- [5] DAILY COVERAGE SUMMARY (assigned shifts) ---")
	if len(planning) == 0 {
		line("  No planning data available for the daily audit.")
	} else {
		dailyTotals := make(map[string]map[string]int)
		dateSet := make(map[string]struct{})
		for _, schedule := range planning {
			for date, label := range schedule {
				dateSet[date] = struct{}{}
				if isReservedLabel(label) {
					continue
				}
				if dailyTotals[date] == nil {
					dailyTotals[date] = make(map[string]int)
				}
				dailyTotals[date][label]++
			}
		}
		dates := make([]string, 0, len(dateSet))
		for d := range dateSet {
			dates = append(dates, d)
		}
		sort.Strings(dates)

		for _, date := range dates {
			totals := dailyTotals[date]
			if len(totals) == 0 {
				line(fmt.Sprintf("  %s : (no shift assigned)", date))
				continue
			}
			shiftIDs := make([]string, 0, len(totals))
			for sid := range totals {
				shiftIDs = append(shiftIDs, sid)
			}
			sort.Strings(shiftIDs)
			parts := make([]string, 0, len(shiftIDs))
			for _, sid := range shiftIDs {
				parts = append(parts, fmt.Sprintf("%dx %s", totals[sid], sid))
			}
			line(fmt.Sprintf("  %s : %s", date, strings.Join(parts, ", ")))
		}
	}

	line("")
	line(strings.Repeat("=", 73))

	return b.String()
}

func isReservedLabel(label string) bool {
	switch label {
	case "OFF", "HOLIDAY", "FIXED_OFF", "ERR_NO_SHIFT":
		return true
	default:
		return false
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func minMaxFloat(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func minMaxInt(values []int64) (int64, int64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
