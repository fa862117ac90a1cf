// Package home renders the main menu: the helpdesk dashboard the
// trainee lands on between calls.
package home

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"supportsim/internal/coach"
	"supportsim/internal/profile"
	"supportsim/internal/router"
	"supportsim/internal/scenario"
	"supportsim/internal/screen"
	"supportsim/internal/screens/badgewall"
	"supportsim/internal/screens/dispatch"
	"supportsim/internal/screens/history"
	sessionscreen "supportsim/internal/screens/session"
	"supportsim/internal/screens/skills"
	"supportsim/internal/store"
	"supportsim/internal/ui/layout"
)

type menuItem struct {
	label  string
	action func(h *HomeScreen) (screen.Screen, tea.Cmd)
}

// HomeScreen is the landing dashboard with the main menu.
type HomeScreen struct {
	catalog    *scenario.Catalog
	events     store.EventRepo
	saves      store.SaveRepo
	debriefs   *coach.Coach
	prof       profile.LearnerProfile
	held       *sessionscreen.SavedCall
	items      []menuItem
	selected   int
	llmMissing bool
	updateNote string
}

// New builds the home screen. A nil coach disables AI debriefs but
// nothing else; the trainer is fully playable without one.
func New(catalog *scenario.Catalog, events store.EventRepo, saves store.SaveRepo, debriefs *coach.Coach) *HomeScreen {
	h := &HomeScreen{
		catalog:    catalog,
		events:     events,
		saves:      saves,
		debriefs:   debriefs,
		llmMissing: debriefs == nil,
	}
	h.refresh()
	return h
}

// SetUpdateNote shows a one-line upgrade hint under the menu.
func (h *HomeScreen) SetUpdateNote(version string) {
	h.updateNote = version
}

// refresh reloads the profile and held-call slot and rebuilds the menu.
// Called on construction and every time the screen regains focus.
func (h *HomeScreen) refresh() {
	ctx := context.Background()
	h.prof = profile.New()
	if h.saves != nil {
		if found, err := h.saves.Load(ctx, store.SlotProfile, &h.prof); err != nil || !found {
			h.prof = profile.New()
		}
	}
	h.held = nil
	if sc, ok := sessionscreen.LoadSaved(ctx, h.saves); ok {
		if _, err := h.catalog.ByID(sc.ScenarioID); err == nil {
			h.held = sc
		}
	}

	h.items = h.items[:0]
	if h.held != nil {
		h.items = append(h.items, menuItem{"RESUME CALL", (*HomeScreen).resumeCall})
	}
	h.items = append(h.items,
		menuItem{"TAKE A CALL", (*HomeScreen).takeCall},
		menuItem{"SKILL PROFILE", (*HomeScreen).openSkills},
		menuItem{"BADGE WALL", (*HomeScreen).openBadges},
		menuItem{"CALL HISTORY", (*HomeScreen).openHistory},
		menuItem{"CLOCK OUT", nil},
	)
	if h.selected >= len(h.items) {
		h.selected = 0
	}
}

func (h *HomeScreen) takeCall() (screen.Screen, tea.Cmd) {
	return dispatch.New(h.catalog.All(), h.events, h.saves, h.debriefs), nil
}

func (h *HomeScreen) resumeCall() (screen.Screen, tea.Cmd) {
	scn, err := h.catalog.ByID(h.held.ScenarioID)
	if err != nil {
		return nil, nil
	}
	return sessionscreen.Resume(scn, h.held.State, h.held.AttemptID, h.events, h.saves, h.debriefs), nil
}

func (h *HomeScreen) openSkills() (screen.Screen, tea.Cmd) {
	return skills.New(h.saves), nil
}

func (h *HomeScreen) openBadges() (screen.Screen, tea.Cmd) {
	return badgewall.New(h.saves, h.catalog.All()), nil
}

func (h *HomeScreen) openHistory() (screen.Screen, tea.Cmd) {
	return history.New(h.events), nil
}

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.ScreenFocusMsg:
		h.refresh()
		return h, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.selected > 0 {
				h.selected--
			}
		case "down", "j":
			if h.selected < len(h.items)-1 {
				h.selected++
			}
		case "enter":
			item := h.items[h.selected]
			if item.action == nil {
				return h, tea.Quit
			}
			next, cmd := item.action(h)
			if next == nil {
				return h, cmd
			}
			return h, tea.Batch(cmd, func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			})
		case "q":
			return h, tea.Quit
		}
	}
	return h, nil
}

func (h *HomeScreen) Title() string { return "Helpdesk" }

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Q", Description: "Quit"},
	}
}
