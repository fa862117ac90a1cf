package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [scenario-id]",
	Short: "Take an incident call",
	Long: `Launch the trainer. With a scenario ID the call starts immediately,
skipping the dashboard; run "supportsim scenarios" to list the IDs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id string
		if len(args) > 0 {
			id = args[0]
		}
		return runApp(cmd, id)
	},
}
