package model

import (
	"testing"
	"time"
)

func TestParseConstraint(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{"holiday", "HOLIDAY(2026-07-04)", 1, false},
		{"vacation range", "VACATION(2026-07-01,2026-07-03)", 3, false},
		{"fixed off", "FIXED_OFF(MONDAY)", 1, false},
		{"not weekend", "NOT_WEEKEND", 2, false},
		{"max hours", "MAX_HOURS(151)", 1, false},
		{"max shifts per qualif", "MAX_SHIFTS_PER_QUALIF(INF,10)", 1, false},
		{"bad weekday", "FIXED_OFF(FUNDAY)", 0, true},
		{"bad holiday date", "HOLIDAY(not-a-date)", 0, true},
		{"unrecognized", "BOGUS", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConstraint(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseConstraint(%q) err = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if len(got) != tt.wantLen {
				t.Errorf("ParseConstraint(%q) len = %d, want %d", tt.raw, len(got), tt.wantLen)
			}
		})
	}
}

func TestParseConstraintVacationExpansion(t *testing.T) {
	got, err := ParseConstraint("VACATION(2026-07-01,2026-07-03)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []time.Time{
		mustDate(t, "2026-07-01"),
		mustDate(t, "2026-07-02"),
		mustDate(t, "2026-07-03"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d constraints, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Kind != KindHoliday || !c.Date.Equal(want[i]) {
			t.Errorf("constraint[%d] = %+v, want HOLIDAY on %v", i, c, want[i])
		}
	}
}

func TestParseConstraintNotWeekend(t *testing.T) {
	got, err := ParseConstraint("NOT_WEEKEND")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Weekday != time.Saturday || got[1].Weekday != time.Sunday {
		t.Errorf("NOT_WEEKEND expansion = %+v, want Saturday then Sunday", got)
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}
