package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/turtle/internal/domain"
	m "github.com/mouse-blink/turtle/internal/model"
)

const runLongDescription = `Run a program and show its trace and end state.

Without --grid the character moves on an unbounded plane starting at (0,0)
facing east. Each --grid file is a pathfinding exercise: the program is run
once per grid and succeeds when the character ends on the cell marked 'x'.

Grid files use one line per row, top row first:
  o  open cell
  +  blocked cell
  x  end position`

var runSampleFlag string
var runGridFlags []string
var runParallelFlag int
var runSaveFlag bool
var runWatchFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [program-file]",
		Short: "Run a program, optionally against grid exercises",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parallel := runParallelFlag
			if !cmd.Flags().Changed("parallel") {
				parallel = cfg.General.Parallel
			}

			save := runSaveFlag
			if !cmd.Flags().Changed("save") {
				save = cfg.General.SaveReports
			}

			grids := make([]m.Path, 0, len(runGridFlags))
			for _, grid := range runGridFlags {
				grids = append(grids, m.Path(grid))
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{
				Source:   programSource(args, runSampleFlag),
				Grids:    grids,
				Parallel: parallel,
				Save:     save,
				Reports:  reportsDir(),
				Watch:    runWatchFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&runSampleFlag, "sample", "s", "", "run a built-in sample program (see 'turtle samples')")
	cmd.Flags().StringArrayVarP(&runGridFlags, "grid", "g", nil, "grid file to solve (can be repeated)")
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of grids run at the same time")
	cmd.Flags().BoolVar(&runSaveFlag, "save", false, "save a JSON report of every run")
	cmd.Flags().BoolVarP(&runWatchFlag, "watch", "w", false, "run again whenever the program or a grid file changes")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
