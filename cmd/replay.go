package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"supportsim/internal/engine"
	"supportsim/internal/scenario"
	"supportsim/internal/store"

	"github.com/spf13/cobra"
)

var replayScriptPath string

var replayCmd = &cobra.Command{
	Use:   "replay [attempt-id]",
	Short: "Replay the decision log of a completed call",
	Long: `Print the decision-by-decision record of an attempt: what was done,
whether it matched the optimal path, and how the client mood moved.

Without an attempt ID, the most recent completion is replayed.

With --script, no database is touched: the engine is driven headlessly
from a JSON action list and the resulting report is printed. The script
file holds a scenario ID and an ordered action list:

  {"scenario": "network-outage",
   "actions": [{"type": "response", "action": "greet_client"}]}`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayScriptPath != "" {
			return runScriptedReplay(replayScriptPath)
		}
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		events := st.Events()

		var attemptID string
		if len(args) > 0 {
			attemptID = args[0]
		} else {
			completions, err := events.ListCompletions(ctx, store.QueryOpts{})
			if err != nil {
				return fmt.Errorf("list completions: %w", err)
			}
			if len(completions) == 0 {
				fmt.Println("No completed calls to replay.")
				return nil
			}
			attemptID = completions[len(completions)-1].AttemptID
		}

		decisions, err := events.ListDecisions(ctx, attemptID)
		if err != nil {
			return fmt.Errorf("list decisions: %w", err)
		}
		if len(decisions) == 0 {
			return fmt.Errorf("no decisions recorded for attempt %q", attemptID)
		}

		fmt.Printf("Attempt %s  (scenario: %s)\n", attemptID, decisions[0].ScenarioID)
		fmt.Println(strings.Repeat("─", 90))

		total := 0
		for i, d := range decisions {
			mark := "✗"
			if d.WasOptimal {
				mark = "✓"
			}
			total += d.ScoreDelta
			fmt.Printf("%2d. %s %-52s  %+4d  %s\n", i+1, mark, d.Action, d.ScoreDelta, d.MoodAfter)
		}

		fmt.Println(strings.Repeat("─", 90))
		fmt.Printf("Running score: %d\n", total)

		completions, err := events.ListCompletions(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("list completions: %w", err)
		}
		for _, c := range completions {
			if c.AttemptID != attemptID {
				continue
			}
			fmt.Printf("Final: %d points (%s), %.1f min, satisfaction %.1f/5.0\n",
				c.FinalScore, engine.Rate(c.FinalScore), c.TimeMinutes, c.Satisfaction)
			if len(c.BadgeIDs) > 0 {
				fmt.Printf("Badges: %s\n", strings.Join(c.BadgeIDs, ", "))
			}
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayScriptPath, "script", "", "drive the engine from a JSON action script instead of the event log")
}

type replayScript struct {
	Scenario string `json:"scenario"`
	Actions  []struct {
		Type   string `json:"type"`
		Action string `json:"action"`
	} `json:"actions"`
}

func runScriptedReplay(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	var script replayScript
	if err := json.Unmarshal(raw, &script); err != nil {
		return fmt.Errorf("parse script: %w", err)
	}
	if len(script.Actions) == 0 {
		return fmt.Errorf("script %q has no actions", path)
	}

	catalog, err := scenario.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load scenario catalog: %w", err)
	}
	scn, err := catalog.ByID(script.Scenario)
	if err != nil {
		return err
	}

	valid := make(map[scenario.ActionType]bool)
	for _, t := range scenario.AllActionTypes() {
		valid[t] = true
	}

	e := engine.New(scn)
	fmt.Printf("Scripted run  (scenario: %s)\n", scn.ID)
	fmt.Println(strings.Repeat("─", 90))

	for i, a := range script.Actions {
		at := scenario.ActionType(a.Type)
		if !valid[at] {
			return fmt.Errorf("action %d: unknown action type %q", i+1, a.Type)
		}
		res := e.ProcessAction(a.Action, at)
		mark := "✗"
		if res.AdvancedPath {
			mark = "✓"
		}
		fmt.Printf("%2d. %s %-52s  %+4d  %s\n", i+1, mark, a.Action, res.ScoreDelta, res.Mood)
	}

	fmt.Println(strings.Repeat("─", 90))
	if e.Progress() < 100 {
		fmt.Printf("Call incomplete: %.0f%% of the optimal path covered.\n", e.Progress())
		fmt.Printf("Running score: %d\n", e.Snapshot().Score.Total)
		return nil
	}

	e.SetResolutionStatus(engine.ResolutionResolved)
	status, err := e.Complete()
	if err != nil {
		return fmt.Errorf("complete call: %w", err)
	}
	fmt.Printf("Final: %d points (%s)\n", status.FinalScore, engine.Rate(status.FinalScore))
	if len(status.BadgesEarned) > 0 {
		names := make([]string, len(status.BadgesEarned))
		for i, b := range status.BadgesEarned {
			names[i] = b.Name
		}
		fmt.Printf("Badges: %s\n", strings.Join(names, ", "))
	}
	fmt.Println(status.Feedback.Summary)
	return nil
}
