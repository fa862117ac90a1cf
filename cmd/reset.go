package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"supportsim/internal/store"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the learner profile and any held call",
	Long: `Clear the saved learner profile and any call on hold. The decision
and completion history is kept; pass --all to wipe the whole database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if !force {
			what := "profile and held call"
			if all {
				what = "ENTIRE database at " + dbPath
			}
			fmt.Printf("This will erase the %s. Type 'yes' to continue: ", what)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if all {
			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove database: %w", err)
			}
			fmt.Println("Database removed.")
			return nil
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		if err := st.Saves().Clear(ctx, store.SlotProfile); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		if err := st.Saves().Clear(ctx, store.SlotSession); err != nil {
			return fmt.Errorf("clear held call: %w", err)
		}
		fmt.Println("Profile and held call cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Remove the database file entirely")
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
