package stats

import (
	"strings"
	"testing"

	"github.com/shiftplan/scheduler/pkg/scheduler/solver"
)

func TestGenerateTextReportPerfectSchedule(t *testing.T) {
	data := ReportData{
		Score:           0,
		TotalUncovered:  0,
		AvgDaysOff:      8,
		MinDaysOff:      8,
		MinDaysOffAgent: "Alice",
		EmployeeDetails: map[string]EmployeeDetail{},
		Families:        nil,
	}
	planning := solver.Planning{}

	report := GenerateTextReport(data, planning)

	if !strings.Contains(report, "No major penalty detected") {
		t.Error("expected a perfect-schedule message when there are no penalties")
	}
	if !strings.Contains(report, "TOTAL PENALTY SCORE : 0") {
		t.Error("expected the score line to print 0")
	}
}

func TestGenerateTextReportListsPenaltiesSortedBySubject(t *testing.T) {
	data := ReportData{
		Penalties: []PenaltyLine{
			{Subject: "GLOBAL", Reason: "missing A on 2026-07-01", Cost: 16},
			{Subject: "Alice", Reason: "Jours OFF manquants", Cost: 18},
		},
		EmployeeDetails: map[string]EmployeeDetail{},
	}

	report := GenerateTextReport(data, solver.Planning{})

	aliceIdx := strings.Index(report, "Alice")
	globalIdx := strings.Index(report, "GLOBAL")
	if aliceIdx == -1 || globalIdx == -1 || aliceIdx > globalIdx {
		t.Error("expected Alice's penalty line (sorts before GLOBAL) to appear first")
	}
}

func TestGenerateTextReportDailyCoverageSkipsReservedLabels(t *testing.T) {
	planning := solver.Planning{
		"Alice": {"2026-07-01": "A", "2026-07-02": "OFF"},
		"Bob":   {"2026-07-01": "A", "2026-07-02": "HOLIDAY"},
	}
	data := ReportData{EmployeeDetails: map[string]EmployeeDetail{}}

	report := GenerateTextReport(data, planning)

	if !strings.Contains(report, "2x A") {
		t.Errorf("expected two A assignments to be tallied on 2026-07-01, got:\n%s", report)
	}
	if !strings.Contains(report, "no shift assigned") {
		t.Error("expected 2026-07-02 to show no shift assigned (only OFF/HOLIDAY present)")
	}
}

func TestFirstWordSplitsOnSpace(t *testing.T) {
	if got := firstWord("Alice Dupont"); got != "Alice" {
		t.Errorf("firstWord() = %q, want Alice", got)
	}
	if got := firstWord("Alice"); got != "Alice" {
		t.Errorf("firstWord() = %q, want Alice", got)
	}
}

func TestMinMaxHelpers(t *testing.T) {
	if min, max := minMaxFloat([]float64{3, 1, 2}); min != 1 || max != 3 {
		t.Errorf("minMaxFloat() = (%v, %v), want (1, 3)", min, max)
	}
	if min, max := minMaxInt([]int64{3, 1, 2}); min != 1 || max != 3 {
		t.Errorf("minMaxInt() = (%v, %v), want (1, 3)", min, max)
	}
}
