package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"supportsim/internal/ui/theme"
)

// ActionChoice is a selector over the action types available at the
// current point of an incident. After submission it colors the choices
// to show which one the optimal path expected.
type ActionChoice struct {
	Prompt        string
	Options       []string
	ExpectedIndex int
	Selected      int
	Submitted     bool
	ChosenIndex   int
}

// NewActionChoice creates a new action selector. expectedIndex may be -1
// when no option is on the optimal path.
func NewActionChoice(prompt string, options []string, expectedIndex int) ActionChoice {
	return ActionChoice{
		Prompt:        prompt,
		Options:       options,
		ExpectedIndex: expectedIndex,
		Selected:      0,
		Submitted:     false,
		ChosenIndex:   -1,
	}
}

// Init returns nil.
func (a ActionChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (a ActionChoice) Update(msg tea.Msg) (ActionChoice, tea.Cmd) {
	if a.Submitted {
		return a, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.Selected > 0 {
			a.Selected--
		}
	case "down", "j":
		if a.Selected < len(a.Options)-1 {
			a.Selected++
		}
	case "enter":
		a.Submitted = true
		a.ChosenIndex = a.Selected
	}

	return a, nil
}

// View renders the action selector.
func (a ActionChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(a.Prompt) + "\n\n"

	for i, opt := range a.Options {
		prefix := "  "
		if i == a.Selected && !a.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if a.Submitted {
			switch i {
			case a.ExpectedIndex:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case a.ChosenIndex:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == a.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// WasExpected returns true if the learner chose the option on the
// optimal path.
func (a ActionChoice) WasExpected() bool {
	return a.Submitted && a.ChosenIndex == a.ExpectedIndex
}

// Reset clears the submission so the selector can be reused.
func (a *ActionChoice) Reset() {
	a.Submitted = false
	a.ChosenIndex = -1
}
