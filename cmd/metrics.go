package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/turtle/internal/domain"
)

var metricsSampleFlag string
var metricsTextFlag bool

// metricsCmd represents the metrics command.
var metricsCmd = newMetricsCmd()

func newMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics [program-file]",
		Short: "Show command count, nesting depth and repeat count of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Metrics(domain.MetricsArgs{
				Source:   programSource(args, metricsSampleFlag),
				ShowText: metricsTextFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&metricsSampleFlag, "sample", "s", "", "use a built-in sample program")
	cmd.Flags().BoolVarP(&metricsTextFlag, "text", "t", false, "also print the program")

	return cmd
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
