package config

import (
	"os"
	"testing"

	"github.com/shiftplan/scheduler/pkg/scheduler/build"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Scheduler.SolverTimeLimitSeconds != defaultSolverTimeLimitSeconds {
		t.Errorf("SolverTimeLimitSeconds = %d, want %d", cfg.Scheduler.SolverTimeLimitSeconds, defaultSolverTimeLimitSeconds)
	}
	if cfg.Scheduler.Build.MinRestHours != defaultMinRestHours {
		t.Errorf("MinRestHours = %d, want %d", cfg.Scheduler.Build.MinRestHours, defaultMinRestHours)
	}
	if cfg.Scheduler.Build.Penalties[build.PenaltyIsolatedDayOff] != 1000 {
		t.Errorf("Penalties[%s] = %d, want 1000", build.PenaltyIsolatedDayOff, cfg.Scheduler.Build.Penalties[build.PenaltyIsolatedDayOff])
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("MIN_REST_HOURS", "12")
	os.Setenv("SOLVER_TIME_LIMIT_SECONDS", "120")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scheduler.Build.MinRestHours != 12 {
		t.Errorf("MinRestHours = %d, want 12", cfg.Scheduler.Build.MinRestHours)
	}
	if cfg.Scheduler.SolverTimeLimitSeconds != 120 {
		t.Errorf("SolverTimeLimitSeconds = %d, want 120", cfg.Scheduler.SolverTimeLimitSeconds)
	}
}
