package build

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/model"
)

func testCatalog(t *testing.T) model.Catalog {
	t.Helper()
	shifts := []model.Shift{
		model.NewShift("A", "08:00", "16:00"),
		model.NewShift("B", "16:00", "00:00"),
	}
	functions := []model.Function{model.NewFunction("INF", []string{"A", "B"})}
	employees := []model.Employee{
		model.NewEmployee("E1", "Alice", []string{"INF"}, map[string]struct{}{"A": {}, "B": {}}, nil, nil),
	}
	need, err := model.NewNeed("01/07/26", "A", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	groups := model.BuildGroups(nil, employees, nil)
	cat, err := model.Build(shifts, functions, employees, []model.Need{need}, groups)
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	return cat
}

func TestNewVariablesIsSparse(t *testing.T) {
	cat := testCatalog(t)
	b := cpmodel.NewCpModelBuilder()

	v, err := NewVariables(b, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	numDays := len(cat.Horizon.Days())
	wantAssign := numDays * 2 // 1 employee qualified for 2 shifts
	if len(v.Assign) != wantAssign {
		t.Errorf("len(Assign) = %d, want %d", len(v.Assign), wantAssign)
	}
	if len(v.IsOff) != numDays {
		t.Errorf("len(IsOff) = %d, want %d", len(v.IsOff), numDays)
	}
	if _, ok := v.TotalMinutes["E1"]; !ok {
		t.Error("expected a total-minutes variable for E1")
	}
	if _, ok := v.ShiftsPerFunction[FunctionKey{EmployeeID: "E1", FunctionID: "INF"}]; !ok {
		t.Error("expected a shifts-per-function variable for E1/INF")
	}
}
