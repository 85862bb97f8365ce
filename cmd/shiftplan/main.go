// shiftplan solves one month of shift assignments with the CP-SAT engine
// and prints the audit report. Catalog ingestion from files is out of
// scope (SPEC_FULL.md §1); the catalog below is the thin CLI's own fixed
// sample, standing in for whatever in-memory adapter a caller supplies.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/shiftplan/scheduler/pkg/errors"
	"github.com/shiftplan/scheduler/pkg/logger"
	"github.com/shiftplan/scheduler/pkg/model"
	"github.com/shiftplan/scheduler/pkg/scheduler/build"
	"github.com/shiftplan/scheduler/pkg/scheduler/precompute"
	"github.com/shiftplan/scheduler/pkg/scheduler/solver"
	"github.com/shiftplan/scheduler/pkg/stats"

	"github.com/shiftplan/scheduler/internal/config"
)

// Version is injected via -ldflags at build time, matching the teacher's
// build metadata convention.
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:  cfg.App.LogLevel,
		Format: "console",
		Output: "stdout",
	})

	sessionID := uuid.New().String()
	logger.Info().Str("session_id", sessionID).Str("version", Version).Msg("shiftplan starting")

	cat, err := buildSampleCatalog()
	if err != nil {
		logger.ValidationFailed(err.Error())
		fmt.Fprintln(os.Stderr, "catalog validation failed:", err)
		os.Exit(1)
	}

	m, err := build.Build(cat, cfg.Scheduler.Build, cfg.Scheduler.FunctionPriority)
	if err != nil {
		logger.WithError(err).Msg("model build failed")
		fmt.Fprintln(os.Stderr, "model build failed:", err)
		os.Exit(1)
	}

	seed := solver.BuildHint(cat)
	solver.ApplyHint(m.Builder, m.Variables, cat, seed)

	result, err := solver.Solve(m, cfg.Scheduler.SolverTimeLimitSeconds, solver.NoopObserver{})
	if err != nil {
		if appErrors.Is(err, appErrors.CodeNoFeasibleSolution) {
			fmt.Fprintln(os.Stderr, "no feasible schedule within the time budget:", err)
		} else {
			fmt.Fprintln(os.Stderr, "solve failed:", err)
		}
		os.Exit(1)
	}

	planning := solver.ExtractPlanning(cat, m.Variables, result.Response)

	data := stats.Collect(
		cat,
		m,
		result,
		cfg.Scheduler.Build.Penalties[build.PenaltyMissingNeedUnit],
		build.ShiftToFunctionMap(cat),
		precompute.Weekends(cat.Horizon),
	)

	report := stats.GenerateTextReport(data, planning)
	fmt.Println(report)
}

// buildSampleCatalog assembles a small, internally-consistent catalog
// in-process. A real deployment wires its own adapter (database rows, an
// upstream HR system, a one-off script) in front of model.Build; this
// module's scope stops at the boundary model.Build defines.
func buildSampleCatalog() (model.Catalog, error) {
	shifts := []model.Shift{
		model.NewShift("M", "06:00", "14:00"),
		model.NewShift("A", "14:00", "22:00"),
		model.NewShift("N", "22:00", "06:00"),
	}

	functions := []model.Function{
		model.NewFunction("CARGO-F", []string{"M", "A"}),
		model.NewFunction("XRAY-F", []string{"M", "A", "N"}),
	}

	warnConstraint := func(employeeID, raw string, err error) {
		logger.ConstraintParseWarning(employeeID, raw, err)
	}

	employees := []model.Employee{
		model.NewEmployee("E1", "Alice Martin", []string{"CARGO-F"}, qualifications(functions, "CARGO-F"), nil, warnConstraint),
		model.NewEmployee("E2", "Bruno Silva", []string{"CARGO-F"}, qualifications(functions, "CARGO-F"), []string{"FIXED_OFF(SUNDAY)"}, warnConstraint),
		model.NewEmployee("E3", "Chloe Dubois", []string{"XRAY-F"}, qualifications(functions, "XRAY-F"), nil, warnConstraint),
		model.NewEmployee("E4", "David Nguyen", []string{"XRAY-F"}, qualifications(functions, "XRAY-F"), []string{"MAX_HOURS(160)"}, warnConstraint),
	}

	groups := model.BuildGroups(map[string][]string{
		"1. CARGO": {"E1", "E2"},
		"2. XRAY":  {"E3", "E4"},
	}, employees, func(groupName, employeeID string) {
		logger.Warn().Str("group", groupName).Str("employee_id", employeeID).Msg("group references unknown employee")
	})

	var needs []model.Need
	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		for _, sid := range []string{"M", "A", "N"} {
			need, err := model.NewNeed(d.Format("2006-01-02"), sid, 1)
			if err != nil {
				return model.Catalog{}, err
			}
			needs = append(needs, need)
		}
	}

	cat, err := model.Build(shifts, functions, employees, needs, groups)
	if err != nil {
		return model.Catalog{}, err
	}
	return cat, nil
}

func qualifications(functions []model.Function, functionID string) map[string]struct{} {
	for _, f := range functions {
		if f.ID == functionID {
			return f.Qualifications
		}
	}
	return map[string]struct{}{}
}
