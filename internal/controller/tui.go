package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	m "github.com/mouse-blink/turtle/internal/model"
	"golang.org/x/term"
)

// TUI implements UI with lipgloss styled output. Runs with more than one
// step are animated with Bubble Tea when the output is a terminal.
type TUI struct {
	output      io.Writer
	config      UIConfig
	styles      tuiStyles
	interactive bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, options ...UIOption) *TUI {
	return &TUI{
		output:      output,
		config:      newUIConfig(options...),
		styles:      defaultTUIStyles(),
		interactive: IsTTY(output),
	}
}

// DisplayProgram prints the program text followed by its metrics.
func (t *TUI) DisplayProgram(doc m.ProgramDocument, metrics m.Metrics) error {
	t.printf("%s\n\n%s\n\n%s\n", t.styles.title.Render(doc.Name), doc.Text, t.styles.muted.Render(metrics.String()))

	return nil
}

// DisplayMetrics prints the metrics of a program.
func (t *TUI) DisplayMetrics(program string, metrics m.Metrics) error {
	t.printf("%s\n", t.styles.title.Render(program))
	t.printf("  Commands     %d\n", metrics.CommandCount)
	t.printf("  Max nesting  %d\n", metrics.MaxNestingLevel)
	t.printf("  Repeats      %d\n", metrics.RepeatCount)

	return nil
}

// DisplaySamples lists the built-in sample programs.
func (t *TUI) DisplaySamples(samples []m.ProgramSummary) error {
	for _, sample := range samples {
		t.printf("%s %s\n", t.styles.title.Render(sample.Key), t.styles.muted.Render(sample.Name))
		t.printf("  %s\n", sample.Metrics)
	}

	return nil
}

// DisplayRun shows one run. On a terminal the steps are played back first.
func (t *TUI) DisplayRun(report m.RunReport) error {
	if t.interactive && len(report.Steps) > 1 {
		model := newPlaybackModel(report, t.config.stepDelay, t.styles)
		if width, height, ok := terminalSize(t.output); ok {
			next, _ := model.Update(tea.WindowSizeMsg{Width: width, Height: height})
			model = next.(playbackModel)
		}

		program := tea.NewProgram(
			model,
			tea.WithOutput(t.output),
			tea.WithAltScreen(),
		)

		if _, err := program.Run(); err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
	}

	t.printf("%s\n", t.styles.title.Render(runTitle(report)))

	if board := renderBoard(report.Grid, report.Steps, len(report.Steps)-1, t.styles.paint); board != "" {
		t.printf("%s\n", t.styles.board.Render(board))
	}

	t.printf("%s\n", report.Result.String())
	t.printf("%s\n", t.styles.status(report.Result.Status).Render(resultLine(report.Result)))
	t.printf("%s\n", t.styles.muted.Render(fmt.Sprintf("%s, %s steps in %s",
		report.Metrics, humanize.Comma(int64(len(report.Steps))), report.Duration)))

	return nil
}

// DisplaySummary prints one line per run followed by a pass count.
func (t *TUI) DisplaySummary(reports []m.RunReport) error {
	passed := 0

	for _, report := range reports {
		if report.Result.IsSuccess() {
			passed++
		}

		t.printf("%s %s %s\n",
			t.styles.status(report.Result.Status).Render(fmt.Sprintf("%-13s", report.Result.Status)),
			report.Program,
			t.styles.muted.Render(exerciseLabel(report)))
	}

	t.printf("%s\n", t.styles.title.Render(fmt.Sprintf("%d/%d runs passed", passed, len(reports))))

	return nil
}

// DisplayReports lists saved reports.
func (t *TUI) DisplayReports(reports []m.RunReport) error {
	if len(reports) == 0 {
		t.printf("%s\n", t.styles.muted.Render("No reports found"))

		return nil
	}

	lines := make([]string, 0, len(reports))
	for _, report := range reports {
		lines = append(lines, fmt.Sprintf("%s %s %s %s %s",
			t.styles.muted.Render(shortID(report.ID)),
			t.styles.status(report.Result.Status).Render(string(report.Result.Status)),
			report.Program,
			exerciseLabel(report),
			t.styles.muted.Render(humanize.Time(report.StartedAt))))
	}

	t.printf("%s\n", strings.Join(lines, "\n"))

	return nil
}

// DisplayMessage prints a formatted line.
func (t *TUI) DisplayMessage(format string, args ...any) {
	t.printf(format+"\n", args...)
}

func terminalSize(w io.Writer) (int, int, bool) {
	file, ok := w.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

func (t *TUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}
