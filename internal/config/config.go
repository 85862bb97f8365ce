// Package config loads the scheduler's runtime policy from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/shiftplan/scheduler/pkg/scheduler/build"
)

// Config is the application's full runtime configuration: the ambient
// logging surface plus every knob the CP-SAT model builder consumes.
type Config struct {
	App       AppConfig
	Scheduler SchedulerConfig
}

// AppConfig carries the ambient settings that have nothing to do with the
// scheduling domain itself.
type AppConfig struct {
	Name     string
	Env      string
	LogLevel string
}

// SchedulerConfig is the domain configuration surface described in
// SPEC_FULL.md §8: rest rules, fairness knobs, penalty weights, branching
// order, and the solver's own time budget and worker count.
type SchedulerConfig struct {
	SolverTimeLimitSeconds int
	SearchWorkers          int
	FunctionPriority       []string
	Build                  build.Config
}

const (
	defaultMinRestHours           = 11
	defaultSolverTimeLimitSeconds = 60
	defaultSearchWorkers          = 1
)

// Load builds a Config from environment variables, falling back to the
// documented defaults (SPEC_FULL.md §8) for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:     getEnv("APP_NAME", "shiftplan"),
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("APP_LOG_LEVEL", "info"),
		},
		Scheduler: SchedulerConfig{
			SolverTimeLimitSeconds: getEnvInt("SOLVER_TIME_LIMIT_SECONDS", defaultSolverTimeLimitSeconds),
			SearchWorkers:          getEnvInt("SEARCH_WORKERS", defaultSearchWorkers),
			FunctionPriority:       build.DefaultFunctionPriority,
			Build: build.Config{
				MinRestHours:           getEnvInt("MIN_REST_HOURS", defaultMinRestHours),
				MinOffDaysPerMonth:     getEnvInt("MIN_OFF_DAYS_PER_MONTH", 0),
				MaxConsecutiveWorkDays: getEnvInt("MAX_CONSECUTIVE_WORK_DAYS", 0),
				GroupMinOffDays:        map[string]int{},
				Penalties:              defaultPenalties(),
			},
		},
	}

	return cfg, nil
}

// defaultPenalties returns the default weight for every SPEC_FULL.md §8
// penalty key, each overridable by a PENALTY_<KEY> environment variable.
// PENALTY_INTRA_GROUP_WORK_DAYS_EQUITY_GAP (5000), PENALTY_INTRA_GROUP_SHIFT_EQUITY_GAP
// (500), and PENALTY_ISOLATED_DAY_OFF (1000) carry documented defaults; the
// other four have none in the source material and are given workable
// values here rather than left at zero, which would silently disable them.
func defaultPenalties() map[string]int {
	defaults := map[string]int{
		build.PenaltyMissingNeedUnit:            8,
		build.PenaltyDayOffMissing:               6,
		build.PenaltyNoWeekendGuaranteed:         5000,
		build.PenaltyIntraGroupWorkDaysEquity:    5000,
		build.PenaltyIntraGroupShiftEquity:       500,
		build.PenaltyConsecutiveWorkDayViolation: 200,
		build.PenaltyIsolatedDayOff:              1000,
	}
	out := make(map[string]int, len(defaults))
	for key, def := range defaults {
		out[key] = getEnvInt("PENALTY_"+strings.ToUpper(key), def)
	}
	return out
}

// IsDevelopment reports whether APP_ENV selects the development profile.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction reports whether APP_ENV selects the production profile.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
