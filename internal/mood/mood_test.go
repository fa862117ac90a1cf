package mood

import "testing"

func TestApply_ImproveAndWorsen(t *testing.T) {
	cases := []struct {
		name string
		in   Mood
		dir  Direction
		sev  Severity
		want Mood
	}{
		{"improve minor", Frustrated, Improve, Minor, Neutral},
		{"improve moderate same as minor", Frustrated, Improve, Moderate, Neutral},
		{"improve major", Frustrated, Improve, Major, Cooperative},
		{"worsen minor", Neutral, Worsen, Minor, Frustrated},
		{"worsen major", Frustrated, Worsen, Major, Panicked},
		{"maintain", Angry, Maintain, Major, Angry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.in, tc.dir, tc.sev); got != tc.want {
				t.Errorf("Apply(%s, %s, %s) = %s, want %s", tc.in, tc.dir, tc.sev, got, tc.want)
			}
		})
	}
}

func TestApply_ClampsAtBothEnds(t *testing.T) {
	m := Satisfied
	for i := 0; i < 10; i++ {
		m = Apply(m, Improve, Major)
	}
	if m != Grateful {
		t.Errorf("repeated improve = %s, want grateful", m)
	}

	m = Frustrated
	for i := 0; i < 10; i++ {
		m = Apply(m, Worsen, Major)
	}
	if m != Panicked {
		t.Errorf("repeated worsen = %s, want panicked", m)
	}
}

func TestWorsenStep_Table(t *testing.T) {
	cases := []struct{ in, want Mood }{
		{Grateful, Satisfied},
		{Satisfied, Neutral},
		{Cooperative, Frustrated}, // skips neutral, authored table
		{Neutral, Frustrated},
		{Frustrated, Angry},
		{Angry, Panicked},
		{Panicked, Panicked}, // terminal
	}
	for _, tc := range cases {
		if got := WorsenStep(tc.in); got != tc.want {
			t.Errorf("WorsenStep(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestWorsenStep_DivergesFromApply(t *testing.T) {
	// Cooperative worsens to frustrated in the authored table but only to
	// neutral under the index-based operator. Both behaviors are load-bearing.
	if got := WorsenStep(Cooperative); got != Frustrated {
		t.Fatalf("WorsenStep(cooperative) = %s, want frustrated", got)
	}
	if got := Apply(Cooperative, Worsen, Minor); got != Neutral {
		t.Fatalf("Apply(cooperative, worsen, minor) = %s, want neutral", got)
	}
}

func TestSatisfactionRating(t *testing.T) {
	cases := []struct {
		in   Mood
		want float64
	}{
		{Panicked, 1.0},
		{Angry, 1.5},
		{Frustrated, 2.0},
		{Neutral, 3.0},
		{Cooperative, 3.5},
		{Satisfied, 4.0},
		{Grateful, 5.0},
	}
	for _, tc := range cases {
		if got := SatisfactionRating(tc.in); got != tc.want {
			t.Errorf("SatisfactionRating(%s) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, m := range AllMoods() {
		if got := Parse(m.String()); got != m {
			t.Errorf("Parse(%q) = %s, want %s", m.String(), got, m)
		}
	}
	if got := Parse("bogus"); got != Neutral {
		t.Errorf("Parse(bogus) = %s, want neutral", got)
	}
}
