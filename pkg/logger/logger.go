// Package logger provides the application's structured logging setup.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Level is a zerolog level, re-exported so callers don't import zerolog
// directly just to configure verbosity.
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// Config controls where and how log lines are written.
type Config struct {
	Level      string
	Format     string // json/console
	Output     string // stdout/stderr/file
	FilePath   string
	TimeFormat string
}

// DefaultConfig returns the configuration used when Init is never called
// explicitly: info level, human-readable console output on stdout.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	}
}

// Init configures the global logger. Only the first call takes effect.
func Init(cfg Config) {
	once.Do(func() {
		level := parseLevel(cfg.Level)
		zerolog.SetGlobalLevel(level)

		var output io.Writer
		switch cfg.Output {
		case "stderr":
			output = os.Stderr
		case "file":
			if cfg.FilePath != "" {
				f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if err == nil {
					output = f
				} else {
					output = os.Stdout
				}
			} else {
				output = os.Stdout
			}
		default:
			output = os.Stdout
		}

		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{
				Out:        output,
				TimeFormat: cfg.TimeFormat,
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get returns the global logger, lazily initializing it with
// DefaultConfig if Init was never called.
func Get() *zerolog.Logger {
	Init(DefaultConfig()) // no-op once Init has already run
	return &logger
}

// Debug starts a debug-level log entry.
func Debug() *zerolog.Event { return Get().Debug() }

// Info starts an info-level log entry.
func Info() *zerolog.Event { return Get().Info() }

// Warn starts a warn-level log entry.
func Warn() *zerolog.Event { return Get().Warn() }

// Error starts an error-level log entry.
func Error() *zerolog.Event { return Get().Error() }

// WithError starts an error-level entry carrying err.
func WithError(err error) *zerolog.Event { return Get().Error().Err(err) }

// SchedulerLogger is the scheduler's component logger, scoped under
// component=scheduler so its entries are filterable from any other
// subsystem sharing the same process.
type SchedulerLogger struct {
	base *zerolog.Logger
}

// NewSchedulerLogger returns a SchedulerLogger bound to the global logger.
func NewSchedulerLogger() *SchedulerLogger {
	l := Get().With().Str("component", "scheduler").Logger()
	return &SchedulerLogger{base: &l}
}

// StartSolve logs that the CP-SAT search is about to begin, recording the
// configured time budget.
func (l *SchedulerLogger) StartSolve(timeLimitSeconds int) {
	l.base.Info().
		Int("time_limit_seconds", timeLimitSeconds).
		Msg("starting CP-SAT search")
}

// IncumbentFound logs one improving solution reported by the search
// observer.
func (l *SchedulerLogger) IncumbentFound(count int, objectiveValue float64) {
	l.base.Info().
		Int("solution_number", count).
		Float64("objective", objectiveValue).
		Msg("incumbent solution found")
}

// SolveComplete logs the final solver status, objective value, and wall
// time.
func (l *SchedulerLogger) SolveComplete(status string, objectiveValue float64, duration time.Duration) {
	l.base.Info().
		Str("status", status).
		Float64("objective", objectiveValue).
		Dur("duration", duration).
		Msg("CP-SAT search complete")
}

// ValidationFailed logs a catalog or solve validation failure.
func (l *SchedulerLogger) ValidationFailed(reason string) {
	l.base.Warn().Str("reason", reason).Msg("validation failed")
}

// ConstraintParseWarning logs one raw constraint string that failed to
// parse for a given employee; the constraint is skipped, not fatal.
func (l *SchedulerLogger) ConstraintParseWarning(employeeID, raw string, err error) {
	l.base.Warn().
		Str("employee_id", employeeID).
		Str("raw_constraint", raw).
		Err(err).
		Msg("skipping unparseable constraint")
}

var (
	schedulerOnce    sync.Once
	defaultScheduler *SchedulerLogger
)

// defaultSchedulerLogger lazily builds the package-default scheduler logger
// on first use, so it always binds to whatever logger Init configured
// rather than freezing a default-config logger at package load time.
func defaultSchedulerLogger() *SchedulerLogger {
	schedulerOnce.Do(func() {
		defaultScheduler = NewSchedulerLogger()
	})
	return defaultScheduler
}

// StartSolve logs via the package-default scheduler logger.
func StartSolve(timeLimitSeconds int) { defaultSchedulerLogger().StartSolve(timeLimitSeconds) }

// IncumbentFound logs via the package-default scheduler logger.
func IncumbentFound(count int, objectiveValue float64) {
	defaultSchedulerLogger().IncumbentFound(count, objectiveValue)
}

// SolveComplete logs via the package-default scheduler logger.
func SolveComplete(status string, objectiveValue float64, duration time.Duration) {
	defaultSchedulerLogger().SolveComplete(status, objectiveValue, duration)
}

// ValidationFailed logs via the package-default scheduler logger.
func ValidationFailed(reason string) { defaultSchedulerLogger().ValidationFailed(reason) }

// ConstraintParseWarning logs via the package-default scheduler logger.
func ConstraintParseWarning(employeeID, raw string, err error) {
	defaultSchedulerLogger().ConstraintParseWarning(employeeID, raw, err)
}
