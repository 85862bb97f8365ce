package model

import "testing"

func TestNewShift(t *testing.T) {
	tests := []struct {
		name         string
		start, end   string
		wantDuration int
		wantOvernight bool
	}{
		{"日班", "07:45", "15:15", 450, false},
		{"零时长", "08:00", "08:00", 0, false},
		{"跨夜班次", "22:00", "06:00", 480, true},
		{"非法起始时间", "bad", "15:00", 0, false},
		{"非法结束时间", "07:00", "nope", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShift("S1", tt.start, tt.end)
			if s.DurationMinutes != tt.wantDuration {
				t.Errorf("DurationMinutes = %d, want %d", s.DurationMinutes, tt.wantDuration)
			}
			if s.IsOvernight() != tt.wantOvernight {
				t.Errorf("IsOvernight() = %v, want %v", s.IsOvernight(), tt.wantOvernight)
			}
		})
	}
}

func TestFunctionHas(t *testing.T) {
	f := NewFunction("INF", []string{"A10-GS", "A10-GS", "B20-GN"})
	if len(f.Qualifications) != 2 {
		t.Fatalf("expected dedup to 2 qualifications, got %d", len(f.Qualifications))
	}
	if !f.Has("A10-GS") {
		t.Error("expected function to have A10-GS")
	}
	if f.Has("Z99") {
		t.Error("did not expect function to have Z99")
	}
}
