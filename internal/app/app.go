// Package app wires the screens, router, and persistence into the root
// Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"supportsim/internal/coach"
	"supportsim/internal/router"
	"supportsim/internal/scenario"
	"supportsim/internal/screen"
	"supportsim/internal/screens/home"
	"supportsim/internal/screens/session"
	"supportsim/internal/screens/welcome"
	"supportsim/internal/store"
	"supportsim/internal/ui/layout"
)

// Options carries everything the TUI needs. Coach may be nil; the
// trainer runs fully offline without it.
type Options struct {
	Catalog       *scenario.Catalog
	Events        store.EventRepo
	Saves         store.SaveRepo
	Coach         *coach.Coach
	UpdateVersion string
	SkipIntro     bool

	// StartScenario drops straight into a call for the given scenario,
	// with the home dashboard beneath it on the stack.
	StartScenario *scenario.Scenario
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		h := home.New(opts.Catalog, opts.Events, opts.Saves, opts.Coach)
		if opts.UpdateVersion != "" {
			h.SetUpdateNote(opts.UpdateVersion)
		}
		return h
	}
	var initial screen.Screen
	if opts.SkipIntro || opts.StartScenario != nil {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}
	r := router.New(initial)
	if opts.StartScenario != nil {
		r.Push(session.New(opts.StartScenario, opts.Events, opts.Saves, opts.Coach))
	}
	return AppModel{
		router: r,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if ei, ok := m.router.Active().(screen.EscInterceptor); ok && ei.InterceptEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	score, mood := 0, ""
	if sp, ok := active.(screen.StatusProvider); ok {
		score, mood = sp.Status()
	}
	header := layout.RenderHeader(title, score, mood, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
