package stress

import "testing"

func TestVerdict_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.0, "LOW"},
		{0.0099, "LOW"},
		{0.01, "MEDIUM"},
		{0.0299, "MEDIUM"},
		{0.03, "HIGH"},
		{0.5, "HIGH"},
	}

	for _, tt := range tests {
		got := Verdict(tt.score)
		if got.Verdict != tt.want {
			t.Errorf("Verdict(%v) = %q, want %q", tt.score, got.Verdict, tt.want)
		}
		if got.Description == "" {
			t.Errorf("Verdict(%v) has empty description", tt.score)
		}
	}
}
