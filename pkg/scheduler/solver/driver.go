package solver

import (
	"fmt"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftplan/scheduler/pkg/errors"
	"github.com/shiftplan/scheduler/pkg/logger"
	"github.com/shiftplan/scheduler/pkg/scheduler/build"
)

// Result is the outcome of one solve: the raw solver response plus the
// model it was produced against, ready for extraction and auditing.
type Result struct {
	Model     *build.Model
	Response  *cpmodel.CpSolverResponse
	Optimal   bool
	Feasible  bool
	Objective float64
}

// Solve builds the proto model and runs a time-bounded CP-SAT search (any
// warm-start hint must already have been added to m.Builder via ApplyHint), mirroring solver.py's solve(): same
// max_time_in_seconds knob, same optimal-or-feasible acceptance, same
// "no solution" outcome otherwise. The solver's own status string is
// compared by name rather than against an imported enum constant, since the
// status type is defined in the CP-SAT protobuf package this module never
// imports directly.
func Solve(m *build.Model, timeLimitSeconds int, obs Observer) (*Result, error) {
	if obs == nil {
		obs = NoopObserver{}
	}

	cpModel, err := m.Builder.Model()
	if err != nil {
		return nil, errors.New(errors.CodeSolverBackend, "failed to instantiate CP model", err)
	}

	logger.StartSolve(timeLimitSeconds)
	start := time.Now()

	response, err := solveWithTimeLimit(cpModel, timeLimitSeconds)
	if err != nil {
		return nil, errors.New(errors.CodeSolverBackend, "CP-SAT solve failed", err)
	}

	elapsed := time.Since(start)
	status := response.GetStatus().String()
	optimal := status == "OPTIMAL"
	feasible := optimal || status == "FEASIBLE"

	obs.OnSolution(1, response.GetObjectiveValue())

	if !feasible {
		logger.ValidationFailed(fmt.Sprintf("solver returned status %s after %s", status, elapsed))
		return nil, errors.New(errors.CodeNoFeasibleSolution, fmt.Sprintf("no feasible schedule found (status=%s)", status), nil)
	}

	logger.SolveComplete(status, response.GetObjectiveValue(), elapsed)

	return &Result{
		Model:     m,
		Response:  response,
		Optimal:   optimal,
		Feasible:  feasible,
		Objective: response.GetObjectiveValue(),
	}, nil
}

// solveWithTimeLimit is split out so the time-limit plumbing has a single
// seam: the sample program in this pack calls the parameterless
// cpmodel.SolveCpModel, so a zero or negative limit falls back to that
// unmodified call. A positive limit uses the SAT-parameters overload the
// binding exposes for this purpose, assumed to mirror the Python
// solver.parameters.max_time_in_seconds knob.
func solveWithTimeLimit(m *cpmodel.CpModelProto, timeLimitSeconds int) (*cpmodel.CpSolverResponse, error) {
	if timeLimitSeconds <= 0 {
		return cpmodel.SolveCpModel(m)
	}
	params := &cpmodel.SatParameters{MaxTimeInSeconds: float64(timeLimitSeconds)}
	return cpmodel.SolveCpModelWithSatParameters(m, params)
}
