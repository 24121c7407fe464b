package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/turtle/internal/adapter"
	"github.com/mouse-blink/turtle/internal/domain"
	m "github.com/mouse-blink/turtle/internal/model"
)

var exportSampleFlag string
var exportFormatFlag string
var exportOutputFlag string

// exportCmd represents the export command.
var exportCmd = newExportCmd()

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [program-file]",
		Short: "Export a program as text, JSON, YAML or HTML",
		Long: `Export a program as text, JSON, YAML or HTML.

Without --format the format is taken from the extension of --output,
and plain text is used when writing to stdout. JSON and YAML exports can
be read back by 'turtle run'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var format adapter.Format

			if exportFormatFlag != "" {
				parsed, err := adapter.ParseFormat(exportFormatFlag)
				if err != nil {
					return err
				}

				format = parsed
			}

			return workflow.Export(domain.ExportArgs{
				Source: programSource(args, exportSampleFlag),
				Format: format,
				Output: m.Path(exportOutputFlag),
				Out:    cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringVarP(&exportSampleFlag, "sample", "s", "", "export a built-in sample program")
	cmd.Flags().StringVarP(&exportFormatFlag, "format", "f", "", "output format: "+formatNames())
	cmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "output file (default stdout)")

	return cmd
}

func formatNames() string {
	names := make([]string, 0, len(adapter.Formats()))
	for _, f := range adapter.Formats() {
		names = append(names, string(f))
	}

	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
