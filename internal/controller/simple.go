package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	m "github.com/mouse-blink/turtle/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// shortIDLength is how many characters of a report ID are shown in tables.
const shortIDLength = 8

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	config UIConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, options ...UIOption) *SimpleUI {
	return &SimpleUI{cmd: cmd, config: newUIConfig(options...)}
}

// DisplayProgram prints the program text followed by its metrics.
func (s *SimpleUI) DisplayProgram(doc m.ProgramDocument, metrics m.Metrics) error {
	s.printf("Program: %s\n\n%s\n\n%s\n", doc.Name, doc.Text, metrics)

	return nil
}

// DisplayMetrics prints the metrics of a program as a table.
func (s *SimpleUI) DisplayMetrics(program string, metrics m.Metrics) error {
	table, buf := newTable([]string{"Metric", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.Append([]string{"Commands", strconv.Itoa(metrics.CommandCount)})
	table.Append([]string{"Max nesting", strconv.Itoa(metrics.MaxNestingLevel)})
	table.Append([]string{"Repeats", strconv.Itoa(metrics.RepeatCount)})
	table.Render()

	s.printf("Program: %s\n\n%s", program, buf.String())

	return nil
}

// DisplaySamples lists the built-in sample programs.
func (s *SimpleUI) DisplaySamples(samples []m.ProgramSummary) error {
	table, buf := newTable([]string{"Key", "Name", "Commands", "Nesting", "Repeats"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	for _, sample := range samples {
		table.Append([]string{
			sample.Key,
			sample.Name,
			strconv.Itoa(sample.Metrics.CommandCount),
			strconv.Itoa(sample.Metrics.MaxNestingLevel),
			strconv.Itoa(sample.Metrics.RepeatCount),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(samples)), "", "", "", ""})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayRun prints the trace, the end state and the board of one run.
func (s *SimpleUI) DisplayRun(report m.RunReport) error {
	s.printf("%s\n", runTitle(report))
	s.printf("%s\n", report.Result.String())
	s.printf("Status: %s\n", report.Result.Status)

	if report.Result.ErrorMessage != "" {
		s.printf("Error: %s\n", report.Result.ErrorMessage)
	}

	if report.Grid != nil {
		s.printf("\n%s\n", renderBoard(report.Grid, report.Steps, len(report.Steps)-1, plainPainter))
	}

	s.printf("\n%s, %s steps in %s\n", report.Metrics, humanize.Comma(int64(len(report.Steps))), report.Duration)

	return nil
}

// DisplaySummary prints one row per run.
func (s *SimpleUI) DisplaySummary(reports []m.RunReport) error {
	table, buf := newTable([]string{"Program", "Exercise", "Status", "Final", "Steps"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})

	passed := 0

	for _, report := range reports {
		if report.Result.IsSuccess() {
			passed++
		}

		table.Append([]string{
			report.Program,
			exerciseLabel(report),
			string(report.Result.Status),
			fmt.Sprintf("%s %s", report.Result.FinalPosition, report.Result.FinalDirection.Lower()),
			humanize.Comma(int64(len(report.Steps))),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Runs %d", len(reports)), fmt.Sprintf("Passed %d", passed), "", "", ""})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayReports lists saved reports.
func (s *SimpleUI) DisplayReports(reports []m.RunReport) error {
	if len(reports) == 0 {
		s.printf("No reports found\n")

		return nil
	}

	table, buf := newTable([]string{"ID", "Program", "Exercise", "Status", "When"})

	for _, report := range reports {
		table.Append([]string{
			shortID(report.ID),
			report.Program,
			exerciseLabel(report),
			string(report.Result.Status),
			humanize.Time(report.StartedAt),
		})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayMessage prints a formatted line.
func (s *SimpleUI) DisplayMessage(format string, args ...any) {
	s.printf(format+"\n", args...)
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table, &buf
}

func runTitle(report m.RunReport) string {
	if report.Exercise == "" {
		return fmt.Sprintf("Program: %s", report.Program)
	}

	return fmt.Sprintf("Program: %s, Exercise: %s", report.Program, report.Exercise)
}

func exerciseLabel(report m.RunReport) string {
	if report.Exercise == "" {
		return "-"
	}

	return report.Exercise
}

func shortID(id string) string {
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}

	return id
}
