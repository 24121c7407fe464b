package cmd

import (
	"github.com/spf13/cobra"
)

// samplesCmd represents the samples command.
var samplesCmd = newSamplesCmd()

func newSamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample programs",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Samples()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}
