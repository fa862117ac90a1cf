package cmd

import (
	"fmt"
	"os"

	"supportsim/internal/app"
	"supportsim/internal/coach"
	"supportsim/internal/llm"
	"supportsim/internal/scenario"
	"supportsim/internal/store"

	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A non-empty scenarioID skips the dashboard and starts that call.
func runApp(cmd *cobra.Command, scenarioID string) error {
	ctx := cmd.Context()

	catalog, err := scenario.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load scenarios: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Catalog: catalog,
		Events:  st.Events(),
		Saves:   st.Saves(),
	}
	if scenarioID != "" {
		scn, err := catalog.ByID(scenarioID)
		if err != nil {
			return err
		}
		opts.StartScenario = scn
	}

	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI debriefs will be unavailable.")
	} else {
		opts.Coach = coach.New(provider, coach.DefaultConfig())
	}

	return app.Run(opts)
}
