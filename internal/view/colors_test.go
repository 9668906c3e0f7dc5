package view

import "testing"

func TestDayColor(t *testing.T) {
	tests := []struct {
		name     string
		day      int
		expected string
	}{
		{"day one", 1, "#3B82F6"},
		{"day two", 2, "#10B981"},
		{"last palette entry", 14, "#0EA5E9"},
		{"wraps around", 15, "#3B82F6"},
		{"second wrap", 16, "#10B981"},
		{"zero is neutral", 0, NeutralColor},
		{"negative is neutral", -3, NeutralColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayColor(tt.day); got != tt.expected {
				t.Errorf("DayColor(%d) = %s, expected %s", tt.day, got, tt.expected)
			}
		})
	}
}

func TestDayColorDeterministic(t *testing.T) {
	for day := 1; day <= 50; day++ {
		if DayColor(day) != DayColor(day) {
			t.Fatalf("DayColor(%d) not deterministic", day)
		}
		if DayColor(day) != DayColor(day+len(dayPalette)) {
			t.Fatalf("DayColor(%d) does not cycle with period %d", day, len(dayPalette))
		}
	}
}
