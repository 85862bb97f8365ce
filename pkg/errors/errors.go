// Package errors provides the application's error taxonomy.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an AppError for callers that branch on failure kind
// instead of parsing message text.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidCatalog marks a catalog that failed validation: a need,
	// function, or employee referencing a shift/function id that does not
	// exist in the catalog (spec.md §4.A invariants 1-3).
	CodeInvalidCatalog Code = "INVALID_CATALOG"

	// CodeNoFeasibleSolution marks a solve that finished without an
	// OPTIMAL or FEASIBLE status.
	CodeNoFeasibleSolution Code = "NO_FEASIBLE_SOLUTION"

	// CodeSolverTimeout marks a solve that was cut off by
	// solver_time_limit_seconds before converging.
	CodeSolverTimeout Code = "SOLVER_TIMEOUT"

	// CodeSolverBackend marks a failure in the CP-SAT backend itself
	// (model instantiation, proto marshaling) rather than in the domain
	// model it was asked to solve.
	CodeSolverBackend Code = "SOLVER_BACKEND_ERROR"
)

// AppError is the error type every package in this module returns for
// anything beyond a plain programmer error.
type AppError struct {
	Code    Code
	Message string
	Cause   error
	Fields  map[string]interface{}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithField attaches a diagnostic field (e.g. the employee id or shift id
// the error relates to) and returns e for chaining.
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// New builds an AppError. cause may be nil.
func New(code Code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// Is reports whether err is an AppError carrying the given code.
func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode returns err's AppError code, or CodeUnknown if err is not one.
func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// InvalidCatalog wraps a catalog validation failure.
func InvalidCatalog(reason string, cause error) *AppError {
	return New(CodeInvalidCatalog, reason, cause)
}

// NoFeasibleSolution reports that the solver exhausted its time budget (or
// proved infeasibility) without returning an OPTIMAL or FEASIBLE status.
func NoFeasibleSolution(reason string) *AppError {
	return New(CodeNoFeasibleSolution, reason, nil)
}

// ValidationErrors accumulates every catalog-build error instead of failing
// on the first one, so a caller can report every bad need/function/employee
// reference in one pass.
type ValidationErrors struct {
	Errors []ValidationError
}

// ValidationError is one accumulated validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve *ValidationErrors) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s - %s", ve.Errors[0].Field, ve.Errors[0].Message)
}

// Add records one more validation failure.
func (ve *ValidationErrors) Add(field, message string) {
	ve.Errors = append(ve.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any failure was recorded.
func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

// ToAppError converts the accumulated failures into a single AppError
// carrying one field per validation error.
func (ve *ValidationErrors) ToAppError() *AppError {
	err := New(CodeInvalidCatalog, "validation failed", nil)
	err.Fields = make(map[string]interface{})
	for _, e := range ve.Errors {
		err.Fields[e.Field] = e.Message
	}
	return err
}
