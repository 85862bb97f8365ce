package solver

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/model"
	"github.com/shiftplan/scheduler/pkg/scheduler/build"
)

func hintTestCatalog(t *testing.T) model.Catalog {
	t.Helper()
	shifts := []model.Shift{model.NewShift("A", "08:00", "16:00")}
	functions := []model.Function{model.NewFunction("INF", []string{"A"})}
	employees := []model.Employee{
		model.NewEmployee("E1", "Alice", []string{"INF"}, map[string]struct{}{"A": {}}, nil, nil),
		model.NewEmployee("E2", "Bob", []string{"INF"}, map[string]struct{}{"A": {}}, nil, nil),
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

func TestBuildHintFillsEachNeedOnce(t *testing.T) {
	cat := hintTestCatalog(t)
	seed := BuildHint(cat)

	if len(seed) != 1 {
		t.Fatalf("len(seed) = %d, want 1", len(seed))
	}
	if seed[0].ShiftID != "A" || seed[0].Day != "2026-07-01" {
		t.Errorf("unexpected seed entry: %+v", seed[0])
	}
}

func TestBuildHintSkipsUnqualifiedCandidates(t *testing.T) {
	shifts := []model.Shift{
		model.NewShift("A", "08:00", "16:00"),
		model.NewShift("B", "16:00", "00:00"),
	}
	functions := []model.Function{
		model.NewFunction("INF", []string{"A"}),
		model.NewFunction("SUP", []string{"B"}),
	}
	employees := []model.Employee{
		model.NewEmployee("E1", "Alice", []string{"INF"}, map[string]struct{}{"A": {}}, nil, nil),
	}
	need, err := model.NewNeed("01/07/26", "B", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	groups := model.BuildGroups(nil, employees, nil)
	cat, err := model.Build(shifts, functions, employees, []model.Need{need}, groups)
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}

	seed := BuildHint(cat)
	if len(seed) != 0 {
		t.Fatalf("len(seed) = %d, want 0 (no one qualified for B)", len(seed))
	}
}

func TestApplyHintDoesNotPanicOnKnownVariables(t *testing.T) {
	cat := hintTestCatalog(t)
	b := cpmodel.NewCpModelBuilder()
	v, err := build.NewVariables(b, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seed := BuildHint(cat)
	ApplyHint(b, v, cat, seed)
}
