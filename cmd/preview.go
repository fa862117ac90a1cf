package cmd

import (
	"fmt"
	"strings"

	"supportsim/internal/scenario"
	"supportsim/internal/terminal"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a scenario's briefing, script and diagnostics (no database)",
	Long: `Print everything a scenario will throw at the trainee: the briefing,
the scripted conversation, the optimal path and the simulated tool output.

This is a stateless authoring tool — no database, no scoring, no events.
Useful for reviewing scenario quality and testing new incident definitions.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("scenario", "", "Scenario ID (required)")
	previewCmd.Flags().Bool("solution", false, "Include the optimal path and root cause")
	_ = previewCmd.MarkFlagRequired("scenario")
}

func runPreview(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("scenario")
	solution, _ := cmd.Flags().GetBool("solution")

	catalog, err := scenario.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load scenarios: %w", err)
	}
	scn, err := catalog.ByID(id)
	if err != nil {
		return err
	}

	sep := strings.Repeat("─", 72)

	fmt.Printf("%s  [%s / %s / %s]\n", scn.Title, scn.Category, scn.Difficulty, scn.Severity)
	fmt.Println(sep)
	fmt.Println(scn.Description)
	if scn.UsersAffected != "" {
		fmt.Printf("\nImpact: %s\n", scn.UsersAffected)
	}
	fmt.Printf("Estimated time: %s\n", scn.EstimatedTime)

	if len(scn.Objectives) > 0 {
		fmt.Println("\nObjectives:")
		for _, o := range scn.Objectives {
			fmt.Println("  •", o)
		}
	}

	if len(scn.Conversation) > 0 {
		fmt.Println()
		fmt.Println(sep)
		fmt.Println("CONVERSATION SCRIPT")
		fmt.Println(sep)
		for _, c := range scn.Conversation {
			fmt.Printf("%2d. client: %s\n", c.ID, c.ClientLine)
			if c.ExpectedAction != "" {
				fmt.Printf("    expects: %s\n", c.ExpectedAction)
			}
		}
	}

	fmt.Println()
	fmt.Println(sep)
	fmt.Println("MONITORING DIAGNOSTICS")
	fmt.Println(sep)
	for _, d := range terminal.NetworkDiagnostics(scn.ID) {
		fmt.Printf("[%s] %-28s %s\n", strings.ToUpper(string(d.Status)), d.Test, d.Details)
	}

	if solution {
		fmt.Println()
		fmt.Println(sep)
		fmt.Println("SOLUTION")
		fmt.Println(sep)
		if scn.RootCause != "" {
			fmt.Println("Root cause:", scn.RootCause)
			fmt.Println()
		}
		for _, step := range scn.OptimalPath {
			req := " "
			if step.Required {
				req = "*"
			}
			fmt.Printf("%2d.%s [%s] %s  (%+d)\n", step.Order, req, step.Type, step.Action, step.ScoreImpact)
		}
	}

	return nil
}
