package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"supportsim/internal/engine"
	"supportsim/internal/store"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completed-call statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		completions, err := st.Events().ListCompletions(context.Background(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("list completions: %w", err)
		}
		if len(completions) == 0 {
			fmt.Println("No completed calls yet. Run: supportsim play")
			return nil
		}

		type agg struct {
			calls     int
			best      int
			scoreSum  int
			timeSum   float64
			satisfSum float64
		}
		perScenario := map[string]*agg{}
		totals := agg{}
		for _, c := range completions {
			a := perScenario[c.ScenarioID]
			if a == nil {
				a = &agg{}
				perScenario[c.ScenarioID] = a
			}
			for _, x := range []*agg{a, &totals} {
				x.calls++
				x.scoreSum += c.FinalScore
				x.timeSum += c.TimeMinutes
				x.satisfSum += c.Satisfaction
				if c.FinalScore > x.best {
					x.best = c.FinalScore
				}
			}
		}

		fmt.Printf("%-24s  %6s  %6s  %6s  %9s  %7s\n",
			"Scenario", "Calls", "Best", "Avg", "Avg Time", "Satisf")
		fmt.Println(strings.Repeat("─", 70))

		ids := make([]string, 0, len(perScenario))
		for id := range perScenario {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			a := perScenario[id]
			fmt.Printf("%-24s  %6d  %6d  %6d  %7.1fm  %6.1f\n",
				id, a.calls, a.best, a.scoreSum/a.calls, a.timeSum/float64(a.calls), a.satisfSum/float64(a.calls))
		}

		fmt.Println(strings.Repeat("─", 70))
		avg := totals.scoreSum / totals.calls
		fmt.Printf("%-24s  %6d  %6d  %6d  %7.1fm  %6.1f\n",
			"TOTAL", totals.calls, totals.best, avg, totals.timeSum/float64(totals.calls), totals.satisfSum/float64(totals.calls))
		fmt.Printf("\nOverall rating at average score: %s\n", engine.Rate(avg))
		return nil
	},
}
