package solver

import (
	"testing"
	"time"

	"github.com/shiftplan/scheduler/pkg/model"
)

func TestOffLabelPriority(t *testing.T) {
	holiday, _ := model.ParseConstraint("HOLIDAY(2026-07-04)")
	fixedOff, _ := model.ParseConstraint("FIXED_OFF(SATURDAY)")

	e := model.Employee{
		ID:          "E1",
		Constraints: append(append([]model.Constraint{}, holiday...), fixedOff...),
	}

	saturdayHoliday := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC) // also a Saturday
	if got := offLabel(e, saturdayHoliday); got != "HOLIDAY" {
		t.Errorf("offLabel() = %q, want HOLIDAY (checked before FIXED_OFF)", got)
	}

	plainSaturday := time.Date(2026, 7, 11, 0, 0, 0, 0, time.UTC)
	if got := offLabel(e, plainSaturday); got != "FIXED_OFF" {
		t.Errorf("offLabel() = %q, want FIXED_OFF", got)
	}

	plainSunday := time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)
	if got := offLabel(e, plainSunday); got != "OFF" {
		t.Errorf("offLabel() = %q, want OFF", got)
	}
}
