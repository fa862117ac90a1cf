package cmd

import (
	"fmt"
	"strings"

	"supportsim/internal/scenario"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the incident scenarios in the call queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		catalog, err := scenario.LoadCatalog()
		if err != nil {
			return fmt.Errorf("load scenarios: %w", err)
		}

		var scenarios []scenario.Scenario
		for _, s := range catalog.All() {
			if category != "" && string(s.Category) != category {
				continue
			}
			if difficulty != "" && string(s.Difficulty) != difficulty {
				continue
			}
			scenarios = append(scenarios, s)
		}
		if len(scenarios) == 0 {
			return fmt.Errorf("no scenarios match the given filters")
		}

		fmt.Printf("%-22s  %-28s  %-14s  %-12s  %-10s  %s\n",
			"ID", "Title", "Category", "Difficulty", "Severity", "Est. Time")
		fmt.Println(strings.Repeat("─", 100))

		for _, s := range scenarios {
			title := s.Title
			if len(title) > 28 {
				title = title[:25] + "..."
			}
			fmt.Printf("%-22s  %-28s  %-14s  %-12s  %-10s  %s\n",
				s.ID, title, s.Category, s.Difficulty, s.Severity, s.EstimatedTime)
		}

		fmt.Printf("\n%d scenarios\n", len(scenarios))
		return nil
	},
}

func init() {
	scenariosCmd.Flags().String("category", "", "Filter by category (e.g. network, email, hardware)")
	scenariosCmd.Flags().String("difficulty", "", "Filter by difficulty (beginner, intermediate, advanced)")
}
