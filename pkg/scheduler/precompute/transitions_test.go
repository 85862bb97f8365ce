package precompute

import (
	"testing"

	"github.com/shiftplan/scheduler/pkg/model"
)

func TestForbiddenTransitions(t *testing.T) {
	shifts := map[string]model.Shift{
		"NIGHT": model.NewShift("NIGHT", "15:00", "23:00"),
		"EARLY": model.NewShift("EARLY", "06:00", "14:00"),
		"MID":   model.NewShift("MID", "12:00", "20:00"),
	}

	forbidden := ForbiddenTransitions(shifts, 11)

	// NIGHT ends 23:00 (1380). EARLY starts 06:00 (360).
	// rest = (1440-1380) + 360 = 420 min = 7h < 11h: forbidden.
	if !IsForbidden(forbidden, "NIGHT", "EARLY") {
		t.Error("expected NIGHT->EARLY to be forbidden (rest under 11h)")
	}
	// EARLY ends 14:00 (840). MID starts 12:00 (720).
	// rest = (1440-840) + 720 = 1320 min = 22h >= 11h: allowed.
	if IsForbidden(forbidden, "EARLY", "MID") {
		t.Error("did not expect EARLY->MID to be forbidden")
	}
}

func TestIsForbiddenUnknownPair(t *testing.T) {
	forbidden := ForbiddenTransitions(nil, 11)
	if IsForbidden(forbidden, "X", "Y") {
		t.Error("expected no forbidden pairs from an empty shift catalog")
	}
}
