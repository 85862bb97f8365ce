package model

import "testing"

func TestNewEmployeeParsesConstraintsAndSkipsInvalid(t *testing.T) {
	var warnings []string
	emp := NewEmployee(
		"E1", "Dupont",
		[]string{"INF"},
		map[string]struct{}{"A10-GS": {}},
		[]string{"MAX_HOURS(151)", "BOGUS_RULE"},
		func(employeeID, raw string, err error) {
			warnings = append(warnings, employeeID+":"+raw)
		},
	)

	if !emp.HasFunction("INF") {
		t.Error("expected employee to have function INF")
	}
	if !emp.IsQualifiedFor("A10-GS") {
		t.Error("expected employee to be qualified for A10-GS")
	}
	if got, ok := emp.MaxHours(); !ok || got != 151 {
		t.Errorf("MaxHours() = (%d, %v), want (151, true)", got, ok)
	}
	if len(warnings) != 1 || warnings[0] != "E1:BOGUS_RULE" {
		t.Errorf("warnings = %v, want one warning for BOGUS_RULE", warnings)
	}
}

func TestEmployeeMaxShiftsPerQualif(t *testing.T) {
	emp := NewEmployee("E2", "Martin", nil, nil, []string{"MAX_SHIFTS_PER_QUALIF(INF,5)"}, nil)
	if got, ok := emp.MaxShiftsPerQualif("INF"); !ok || got != 5 {
		t.Errorf("MaxShiftsPerQualif(INF) = (%d, %v), want (5, true)", got, ok)
	}
	if _, ok := emp.MaxShiftsPerQualif("OTHER"); ok {
		t.Error("expected no cap set for function OTHER")
	}
}
