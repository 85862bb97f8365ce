package build

import (
	"testing"

	"github.com/shiftplan/scheduler/pkg/model"
)

func TestShiftToFunctionMap(t *testing.T) {
	shifts := []model.Shift{model.NewShift("A", "08:00", "16:00")}
	functions := []model.Function{model.NewFunction("INF", []string{"A"})}
	employees := []model.Employee{model.NewEmployee("E1", "Alice", []string{"INF"}, map[string]struct{}{"A": {}}, nil, nil)}
	need, _ := model.NewNeed("01/07/26", "A", 1)
	groups := model.BuildGroups(nil, employees, nil)
	cat, err := model.Build(shifts, functions, employees, []model.Need{need}, groups)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ShiftToFunctionMap(cat)
	if got["A"] != "INF" {
		t.Errorf("ShiftToFunctionMap()[A] = %q, want INF", got["A"])
	}
}

func TestDefaultFunctionPriorityOrder(t *testing.T) {
	if len(DefaultFunctionPriority) == 0 {
		t.Fatal("expected a non-empty default priority list")
	}
	if DefaultFunctionPriority[0] != "CARGO-F" {
		t.Errorf("DefaultFunctionPriority[0] = %q, want CARGO-F", DefaultFunctionPriority[0])
	}
}
