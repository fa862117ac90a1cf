package session

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"supportsim/internal/coach"
	"supportsim/internal/engine"
	"supportsim/internal/profile"
	"supportsim/internal/router"
	"supportsim/internal/scenario"
	"supportsim/internal/screen"
	"supportsim/internal/screens/summary"
	"supportsim/internal/store"
	"supportsim/internal/terminal"
	"supportsim/internal/ui/components"
	"supportsim/internal/ui/layout"

	"github.com/google/uuid"
)

type phase int

const (
	phaseBriefing phase = iota
	phaseChoosing
	phaseFeedback
	phaseTool
	phaseTerminal
	phaseQuitConfirm
)

// transcriptEntry is one line of the call transcript.
type transcriptEntry struct {
	speaker string // "client", "you" or "system"
	text    string
}

// SessionScreen drives one scenario attempt: briefing, the action loop,
// tool access, and completion.
type SessionScreen struct {
	scn          *scenario.Scenario
	eng          *engine.Engine
	events       store.EventRepo
	saves        store.SaveRepo
	debriefCoach *coach.Coach

	attemptID  string
	phase      phase
	choice     components.ActionChoice
	termInput  components.TextInput
	transcript []transcriptEntry
	toolView   string
	lastResult engine.ActionResult
	convIndex  int
	elapsed    time.Duration
	pathDone   bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New starts a fresh attempt at the given scenario.
func New(scn *scenario.Scenario, events store.EventRepo, saves store.SaveRepo, debriefCoach *coach.Coach) *SessionScreen {
	s := &SessionScreen{
		scn:          scn,
		eng:          engine.New(scn),
		events:       events,
		saves:        saves,
		debriefCoach: debriefCoach,
		attemptID:    uuid.New().String(),
		phase:        phaseBriefing,
		termInput:    components.NewTextInput("ping 8.8.8.8", 60),
	}
	s.transcript = append(s.transcript, transcriptEntry{speaker: "system", text: scn.Description})
	return s
}

// Resume restores a previously saved attempt.
func Resume(scn *scenario.Scenario, state engine.SessionState, attemptID string, events store.EventRepo, saves store.SaveRepo, debriefCoach *coach.Coach) *SessionScreen {
	s := New(scn, events, saves, debriefCoach)
	s.eng.Restore(state)
	if attemptID != "" {
		s.attemptID = attemptID
	}
	s.phase = phaseChoosing
	s.choice = newActionChoice(s.eng)
	s.convIndex = len(state.DecisionHistory)
	if s.convIndex > len(scn.Conversation) {
		s.convIndex = len(scn.Conversation)
	}
	s.transcript = append(s.transcript, transcriptEntry{speaker: "system", text: "Call resumed where you left off."})
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *SessionScreen) Title() string {
	return s.scn.Title
}

// Status feeds the live header: running score and client mood.
func (s *SessionScreen) Status() (int, string) {
	st := s.eng.Snapshot()
	return st.Score.Total, st.ClientMood.String()
}

// InterceptEsc keeps escape inside the screen once the call is live so
// hanging up always goes through the hold-confirm prompt.
func (s *SessionScreen) InterceptEsc() bool {
	return s.phase != phaseBriefing
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseBriefing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer the call"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseChoosing:
		return []layout.KeyHint{
			{Key: "↑↓ Enter", Description: "Act"},
			{Key: "M", Description: "Monitoring"},
			{Key: "T", Description: "Terminal"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Save and hang up"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseTerminal:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Run command"},
			{Key: "Esc", Description: "Close terminal"},
		}
	default:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		st := s.eng.Snapshot()
		if !st.CompletionStatus.IsCompleted {
			s.elapsed = time.Since(st.StartTime)
			return s, tickCmd()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseTerminal {
		var cmd tea.Cmd
		s.termInput, cmd = s.termInput.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseBriefing:
		switch key {
		case "enter":
			s.phase = phaseChoosing
			s.choice = newActionChoice(s.eng)
			s.advanceConversation()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			s.saveSession()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.phase = phaseChoosing
		}
		return s, nil

	case phaseFeedback:
		if s.pathDone {
			return s.finalize()
		}
		s.phase = phaseChoosing
		s.choice = newActionChoice(s.eng)
		return s, nil

	case phaseTool:
		if s.pathDone {
			return s.finalize()
		}
		s.phase = phaseChoosing
		s.choice = newActionChoice(s.eng)
		return s, nil

	case phaseTerminal:
		switch key {
		case "esc":
			if s.pathDone {
				return s.finalize()
			}
			s.phase = phaseChoosing
			s.choice = newActionChoice(s.eng)
			return s, nil
		case "enter":
			s.runTerminalCommand()
			return s, nil
		}
		var cmd tea.Cmd
		s.termInput, cmd = s.termInput.Update(msg)
		return s, cmd

	case phaseChoosing:
		switch key {
		case "esc":
			s.phase = phaseQuitConfirm
			return s, nil
		case "m", "M":
			if s.eng.CanAccessTool(scenario.ToolMonitoring) {
				s.accessMonitoring()
			}
			return s, nil
		case "t", "T":
			if s.eng.CanAccessTool(scenario.ToolTerminal) {
				s.phase = phaseTerminal
				s.termInput.Reset()
				return s, s.termInput.Init()
			}
			return s, nil
		}

		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			s.applyAction(actionTypes()[s.choice.ChosenIndex])
		}
		return s, cmd
	}

	return s, nil
}

// actionTypes returns the selectable action types in menu order.
func actionTypes() []scenario.ActionType {
	return scenario.AllActionTypes()
}

// newActionChoice builds the action selector for the current point of
// the incident, marking the option the optimal path expects.
func newActionChoice(eng *engine.Engine) components.ActionChoice {
	types := actionTypes()
	options := make([]string, len(types))
	expected := -1
	next := eng.NextOptimalStep()
	for i, t := range types {
		options[i] = t.DisplayName()
		if next != nil && next.Type == t {
			options[i] += "  —  " + next.Action
			expected = i
		}
	}
	return components.NewActionChoice("What do you do next?", options, expected)
}

// applyAction routes the chosen action type through the engine and
// records the outcome.
func (s *SessionScreen) applyAction(t scenario.ActionType) {
	desc := "Attempted " + strings.ToLower(t.DisplayName())
	if next := s.eng.NextOptimalStep(); next != nil && next.Type == t {
		desc = next.Action
	}

	res := s.eng.ProcessAction(desc, t)
	s.afterAction(desc, t, res)
	s.phase = phaseFeedback
}

// accessMonitoring opens the monitoring dashboard view.
func (s *SessionScreen) accessMonitoring() {
	res := s.eng.AccessTool(scenario.ToolMonitoring)
	s.afterAction("Check network monitoring dashboard", scenario.ActionToolAccess, res)
	s.toolView = renderDiagnostics(terminal.NetworkDiagnostics(s.scn.ID))
	s.phase = phaseTool
}

// runTerminalCommand executes the typed command against the simulated
// terminal and records the tool access.
func (s *SessionScreen) runTerminalCommand() {
	cmdLine := strings.TrimSpace(s.termInput.Value())
	if cmdLine == "" {
		return
	}

	out := terminal.Generate(cmdLine, s.scn.ID)
	res := s.eng.AccessTool(scenario.ToolTerminal, cmdLine)
	s.afterAction("Run diagnostic command: "+cmdLine, scenario.ActionToolAccess, res)

	s.termInput.Submit(out.ExitCode == 0)
	s.toolView = renderTerminalOutput(out)
	s.phase = phaseTool
}

// afterAction appends the transcript entries, persists the decision
// event, saves the session slot and advances the scripted conversation.
func (s *SessionScreen) afterAction(desc string, t scenario.ActionType, res engine.ActionResult) {
	s.lastResult = res
	s.transcript = append(s.transcript, transcriptEntry{speaker: "you", text: desc})
	if res.Feedback != "" {
		s.transcript = append(s.transcript, transcriptEntry{speaker: "system", text: res.Feedback})
	}
	if res.AdvancedPath {
		s.advanceConversation()
	}

	st := s.eng.Snapshot()
	if len(st.DecisionHistory) > 0 && s.events != nil {
		last := st.DecisionHistory[len(st.DecisionHistory)-1]
		_ = s.events.AppendDecision(context.Background(), store.DecisionEventData{
			AttemptID:  s.attemptID,
			ScenarioID: s.scn.ID,
			StepID:     last.StepID,
			Action:     last.Action,
			ActionType: string(t),
			WasOptimal: last.WasOptimal,
			ScoreDelta: res.ScoreDelta,
			MoodAfter:  res.Mood.String(),
		})
	}
	s.saveSession()

	if s.eng.Progress() >= 100 {
		s.pathDone = true
	}
}

// advanceConversation surfaces the next scripted client line, if any.
func (s *SessionScreen) advanceConversation() {
	if s.convIndex < len(s.scn.Conversation) {
		step := s.scn.Conversation[s.convIndex]
		s.transcript = append(s.transcript, transcriptEntry{speaker: "client", text: step.ClientLine})
		s.convIndex++
	}
}

// SavedCall is the JSON document stored in the session save slot: a
// call put on hold, resumable from the home screen.
type SavedCall struct {
	AttemptID  string              `json:"attemptId"`
	ScenarioID string              `json:"scenarioId"`
	State      engine.SessionState `json:"state"`
}

// LoadSaved returns the held call, if any.
func LoadSaved(ctx context.Context, saves store.SaveRepo) (*SavedCall, bool) {
	if saves == nil {
		return nil, false
	}
	var sc SavedCall
	found, err := saves.Load(ctx, store.SlotSession, &sc)
	if err != nil || !found {
		return nil, false
	}
	return &sc, true
}

func (s *SessionScreen) saveSession() {
	if s.saves == nil {
		return
	}
	_ = s.saves.Save(context.Background(), store.SlotSession, SavedCall{
		AttemptID:  s.attemptID,
		ScenarioID: s.scn.ID,
		State:      s.eng.Snapshot(),
	})
}

// finalize completes the session, persists the completion event, folds
// the result into the learner profile and navigates to the summary.
func (s *SessionScreen) finalize() (screen.Screen, tea.Cmd) {
	s.eng.SetResolutionStatus(engine.ResolutionResolved)
	status, err := s.eng.Complete()
	if err != nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	ctx := context.Background()
	state := s.eng.Snapshot()

	if s.events != nil {
		badgeIDs := make([]string, 0, len(status.BadgesEarned))
		for _, b := range status.BadgesEarned {
			badgeIDs = append(badgeIDs, b.ID)
		}
		_ = s.events.AppendCompletion(ctx, store.CompletionEventData{
			AttemptID:    s.attemptID,
			ScenarioID:   s.scn.ID,
			FinalScore:   status.FinalScore,
			TimeMinutes:  state.Score.TimeToResolution,
			Satisfaction: state.Score.SatisfactionRating,
			BadgeIDs:     badgeIDs,
		})
	}

	if s.saves != nil {
		var p profile.LearnerProfile
		found, loadErr := s.saves.Load(ctx, store.SlotProfile, &p)
		if loadErr != nil || !found {
			p = profile.New()
		}
		p = profile.FoldCompletion(p, s.scn, state)
		_ = s.saves.Save(ctx, store.SlotProfile, p)
		_ = s.saves.Clear(ctx, store.SlotSession)
	}

	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: summary.New(s.scn, state, s.debriefCoach),
		}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
