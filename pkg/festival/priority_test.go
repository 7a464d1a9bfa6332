package festival

import (
	"testing"
)

func TestPriority_Next(t *testing.T) {
	tests := []struct {
		name    string
		current Priority
		want    Priority
	}{
		{name: "maybe advances to must", current: PriorityMaybe, want: PriorityMust},
		{name: "must advances to skip", current: PriorityMust, want: PrioritySkip},
		{name: "skip wraps around to maybe", current: PrioritySkip, want: PriorityMaybe},
		{name: "unknown value restarts the cycle", current: Priority("headliner"), want: PriorityMaybe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.current.Next(); got != tt.want {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriority_CycleClosure(t *testing.T) {
	for _, p := range []Priority{PriorityMaybe, PriorityMust, PrioritySkip} {
		if p.Next() == p {
			t.Errorf("Next() must never return its input, got %v", p)
		}
		if got := p.Next().Next().Next(); got != p {
			t.Errorf("three applications of Next() on %v = %v, want %v", p, got, p)
		}
	}
}

func TestParsePriority(t *testing.T) {
	for _, valid := range []string{"must", "maybe", "skip"} {
		if _, err := ParsePriority(valid); err != nil {
			t.Errorf("ParsePriority(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParsePriority("definitely"); err == nil {
		t.Error("ParsePriority should reject unknown values")
	}
	if _, err := ParsePriority(""); err == nil {
		t.Error("ParsePriority should reject the empty string")
	}
}
