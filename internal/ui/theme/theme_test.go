package theme

import (
	"image/color"
	"testing"
)

func TestMoodColorCoversEveryLabel(t *testing.T) {
	tests := []struct {
		label string
		want  color.Color
	}{
		{"grateful", Success},
		{"satisfied", Success},
		{"cooperative", Secondary},
		{"neutral", TextDim},
		{"frustrated", Accent},
		{"angry", Warning},
		{"panicked", Error},
		{"unknown", Text},
		{"", Text},
	}
	for _, tt := range tests {
		if got := MoodColor(tt.label); got != tt.want {
			t.Errorf("MoodColor(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
