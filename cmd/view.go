package cmd

import (
	"github.com/mouse-blink/turtle/internal/domain"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved run reports",
		Long:  "View previously saved run reports from a reports directory, newest first.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: reportsDir()})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
