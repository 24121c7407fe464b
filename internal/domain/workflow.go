package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mouse-blink/turtle/internal/adapter"
	"github.com/mouse-blink/turtle/internal/controller"
	m "github.com/mouse-blink/turtle/internal/model"
	"golang.org/x/sync/errgroup"
)

const exportFileMode = 0o644

// ErrRunFailed is returned by Run when at least one execution did not succeed.
var ErrRunFailed = errors.New("run failed")

// RunArgs holds the arguments for Run.
type RunArgs struct {
	Source   m.ProgramSource
	Grids    []m.Path
	Parallel int
	Save     bool
	Reports  m.Path
	Watch    bool
}

// MetricsArgs holds the arguments for Metrics.
type MetricsArgs struct {
	Source m.ProgramSource
	// ShowText also prints the rendered program.
	ShowText bool
}

// ExportArgs holds the arguments for Export. When Output is empty the
// document is written to Out.
type ExportArgs struct {
	Source m.ProgramSource
	Format adapter.Format
	Output m.Path
	Out    io.Writer
}

// ViewArgs holds the arguments for View.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the operations offered by the command line.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Metrics(args MetricsArgs) error
	Export(args ExportArgs) error
	Samples() error
	View(args ViewArgs) error
}

type workflow struct {
	fs       adapter.FSAdapter
	store    adapter.ReportStore
	watcher  adapter.FileWatcher
	ui       controller.UI
	importer *ProgramImporter
	grids    *GridFileParser
	logger   *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fs adapter.FSAdapter,
	store adapter.ReportStore,
	watcher adapter.FileWatcher,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = discardLogger()
	}

	return &workflow{
		fs:       fs,
		store:    store,
		watcher:  watcher,
		ui:       ui,
		importer: NewProgramImporter(fs),
		grids:    NewGridFileParser(fs),
		logger:   logger,
	}
}

// Run executes the program once per grid file, or once unbound when no grid
// is given. Runs are parallel up to args.Parallel and are displayed in input
// order. With Watch set, Run re-executes whenever one of the files changes
// and only returns when ctx is cancelled.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	runErr := w.runOnce(ctx, args)
	if !args.Watch {
		return runErr
	}

	if runErr != nil && !errors.Is(runErr, ErrRunFailed) {
		w.ui.DisplayMessage("Error: %v", runErr)
	}

	return w.watch(ctx, args)
}

func (w *workflow) runOnce(ctx context.Context, args RunArgs) error {
	program, err := w.loadProgram(args.Source)
	if err != nil {
		return err
	}

	reports, err := w.execute(ctx, program, args)
	if err != nil {
		return err
	}

	if args.Save {
		if err := w.saveReports(args.Reports, reports); err != nil {
			return err
		}
	}

	return w.display(reports)
}

func (w *workflow) execute(ctx context.Context, program *Program, args RunArgs) ([]m.RunReport, error) {
	grids := args.Grids
	if len(grids) == 0 {
		grids = []m.Path{""}
	}

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	reports := make([]m.RunReport, len(grids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, grid := range grids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			report, err := w.runProgram(program, args.Source, grid)
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// runProgram executes program against the exercise parsed from grid, or
// unbound when grid is empty, and records every step.
func (w *workflow) runProgram(program *Program, source m.ProgramSource, grid m.Path) (m.RunReport, error) {
	var exercise *PathfindingExercise

	if grid != "" {
		var err error

		exercise, err = w.grids.ParseFile(grid)
		if err != nil {
			return m.RunReport{}, err
		}
	}

	runner, err := NewProgramRunner(program, exercise, WithLogger(w.logger))
	if err != nil {
		return m.RunReport{}, err
	}

	started := time.Now()
	result := runner.Execute()

	report := m.RunReport{
		ID:        uuid.NewString(),
		Program:   program.Name(),
		Source:    source.Path,
		GridFile:  grid,
		Metrics:   program.CalculateMetrics(),
		Result:    result,
		Steps:     runner.Steps(),
		StartedAt: started,
		Duration:  time.Since(started),
	}

	if exercise != nil {
		view := exercise.View()
		report.Exercise = exercise.Name()
		report.Grid = &view
	}

	return report, nil
}

func (w *workflow) saveReports(dir m.Path, reports []m.RunReport) error {
	for i := range reports {
		path, err := w.store.SaveReport(dir, reports[i])
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}

		w.logger.Debug("report saved", "path", path)
	}

	w.ui.DisplayMessage("Saved %d report(s) to %s", len(reports), dir)

	return nil
}

func (w *workflow) display(reports []m.RunReport) error {
	failed := 0

	for _, report := range reports {
		if err := w.ui.DisplayRun(report); err != nil {
			return err
		}

		if !report.Result.IsSuccess() {
			failed++
		}
	}

	if len(reports) > 1 {
		if err := w.ui.DisplaySummary(reports); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d run(s) did not succeed", ErrRunFailed, failed, len(reports))
	}

	return nil
}

func (w *workflow) watch(ctx context.Context, args RunArgs) error {
	paths := make([]m.Path, 0, len(args.Grids)+1)
	if args.Source.Path != "" {
		paths = append(paths, args.Source.Path)
	}

	paths = append(paths, args.Grids...)

	if len(paths) == 0 {
		return invalidArgument("watch needs a program file or a grid file")
	}

	w.ui.DisplayMessage("Watching %d file(s) for changes", len(paths))

	var mu sync.Mutex

	return w.watcher.Watch(ctx, paths, func(changed m.Path) {
		mu.Lock()
		defer mu.Unlock()

		w.logger.Info("file changed", "path", changed)

		if err := w.runOnce(ctx, args); err != nil && !errors.Is(err, ErrRunFailed) {
			w.logger.Warn("run after change failed", "path", changed, "error", err)
			w.ui.DisplayMessage("Error: %v", err)
		}
	})
}

// Metrics displays the metrics of a program.
func (w *workflow) Metrics(args MetricsArgs) error {
	program, err := w.loadProgram(args.Source)
	if err != nil {
		return err
	}

	if args.ShowText {
		doc := program.Document()

		return w.ui.DisplayProgram(doc, program.CalculateMetrics())
	}

	return w.ui.DisplayMetrics(program.Name(), program.CalculateMetrics())
}

// Export writes a program in one of the export formats.
func (w *workflow) Export(args ExportArgs) error {
	program, err := w.loadProgram(args.Source)
	if err != nil {
		return err
	}

	format := args.Format
	if format == "" {
		format = adapter.FormatForPath(args.Output)
	}

	exporter, err := adapter.NewExporter(format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, program.Document()); err != nil {
		return fmt.Errorf("failed to export %s: %w", program.Name(), err)
	}

	if args.Output == "" {
		if args.Out == nil {
			return invalidArgument("export needs an output file or writer")
		}

		_, err := args.Out.Write(buf.Bytes())

		return err
	}

	if err := w.fs.WriteFile(args.Output, buf.Bytes(), exportFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", args.Output, err)
	}

	w.ui.DisplayMessage("Exported %s as %s to %s", program.Name(), exporter.FormatName(), args.Output)

	return nil
}

// Samples lists the built-in programs.
func (w *workflow) Samples() error {
	names := SampleNames()
	summaries := make([]m.ProgramSummary, 0, len(names))

	for _, name := range names {
		program, err := Sample(name)
		if err != nil {
			return err
		}

		summaries = append(summaries, m.ProgramSummary{
			Key:     name,
			Name:    program.Name(),
			Metrics: program.CalculateMetrics(),
			Text:    program.TextRepresentation(),
		})
	}

	return w.ui.DisplaySamples(summaries)
}

// View lists the saved run reports, newest first.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplayReports(reports)
}

func (w *workflow) loadProgram(source m.ProgramSource) (*Program, error) {
	switch {
	case source.Path != "" && source.Sample != "":
		return nil, invalidArgument("use either a program file or a sample, not both")
	case source.Sample != "":
		return Sample(source.Sample)
	case source.Path != "":
		return w.importer.ImportFile(source.Path)
	default:
		return nil, invalidArgument("a program file or a sample name is required")
	}
}
