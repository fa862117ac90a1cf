package mood

// Mood is the simulated client's emotional state, a position on a fixed
// 7-point scale ordered best to worst.
type Mood int

const (
	Grateful Mood = iota
	Satisfied
	Cooperative
	Neutral
	Frustrated
	Angry
	Panicked
)

// scale lists all moods in order, best to worst.
var scale = [...]Mood{Grateful, Satisfied, Cooperative, Neutral, Frustrated, Angry, Panicked}

// AllMoods returns the full scale, best to worst.
func AllMoods() []Mood {
	return scale[:]
}

// String returns the wire/display name of the mood.
func (m Mood) String() string {
	switch m {
	case Grateful:
		return "grateful"
	case Satisfied:
		return "satisfied"
	case Cooperative:
		return "cooperative"
	case Neutral:
		return "neutral"
	case Frustrated:
		return "frustrated"
	case Angry:
		return "angry"
	case Panicked:
		return "panicked"
	default:
		return "unknown"
	}
}

// Icon returns the display icon for the mood.
func (m Mood) Icon() string {
	switch m {
	case Grateful:
		return "😄"
	case Satisfied:
		return "🙂"
	case Cooperative:
		return "😌"
	case Neutral:
		return "😐"
	case Frustrated:
		return "😠"
	case Angry:
		return "😡"
	case Panicked:
		return "😱"
	default:
		return "?"
	}
}

// Parse converts a wire name back to a Mood. Unknown names map to Neutral.
func Parse(s string) Mood {
	for _, m := range scale {
		if m.String() == s {
			return m
		}
	}
	return Neutral
}

// Direction is the sign of a mood change.
type Direction string

const (
	Improve  Direction = "improve"
	Worsen   Direction = "worsen"
	Maintain Direction = "maintain"
)

// Severity scales a mood change.
type Severity string

const (
	Minor    Severity = "minor"
	Moderate Severity = "moderate"
	Major    Severity = "major"
)

// steps maps a severity to the number of positions moved on the scale.
// Moderate moves one step, same as minor; only major moves two. Product
// has not confirmed whether moderate should be a distinct step count.
func steps(sev Severity) int {
	if sev == Major {
		return 2
	}
	return 1
}

// Impact describes an authored mood effect on the client.
type Impact struct {
	Direction Direction `json:"change"`
	Severity  Severity  `json:"severity"`
	Reason    string    `json:"reason"`
}

// Apply returns the mood after a directed change, clamped at both ends of
// the scale. Maintain returns the input unchanged. Pure function; callers
// record history themselves.
func Apply(m Mood, dir Direction, sev Severity) Mood {
	switch dir {
	case Improve:
		return clamp(int(m) - steps(sev))
	case Worsen:
		return clamp(int(m) + steps(sev))
	default:
		return m
	}
}

// worsenTable is the hand-authored single-step degradation used for
// wrong-order penalties. It is deliberately not the index-based step from
// Apply: cooperative skips neutral, and panicked is terminal.
var worsenTable = map[Mood]Mood{
	Grateful:    Satisfied,
	Satisfied:   Neutral,
	Cooperative: Frustrated,
	Neutral:     Frustrated,
	Frustrated:  Angry,
	Angry:       Panicked,
	Panicked:    Panicked,
}

// WorsenStep returns the mood one authored step worse. Pure function.
func WorsenStep(m Mood) Mood {
	if next, ok := worsenTable[m]; ok {
		return next
	}
	return Frustrated
}

// SatisfactionRating maps the mood to a 1.0–5.0 client satisfaction scale.
func SatisfactionRating(m Mood) float64 {
	switch m {
	case Panicked:
		return 1.0
	case Angry:
		return 1.5
	case Frustrated:
		return 2.0
	case Neutral:
		return 3.0
	case Cooperative:
		return 3.5
	case Satisfied:
		return 4.0
	case Grateful:
		return 5.0
	default:
		return 3.0
	}
}

func clamp(i int) Mood {
	if i < 0 {
		return Grateful
	}
	if i > int(Panicked) {
		return Panicked
	}
	return Mood(i)
}

// MarshalText implements encoding.TextMarshaler so moods serialize as
// their wire names in snapshots.
func (m Mood) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mood) UnmarshalText(b []byte) error {
	*m = Parse(string(b))
	return nil
}
