package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/turtle/internal/model"
)

const (
	traceHeight     = 8
	defaultBarWidth = 40
)

// playbackModel animates the steps of one run.
type playbackModel struct {
	report   m.RunReport
	index    int
	paused   bool
	tickID   int
	delay    time.Duration
	keys     playbackKeyMap
	help     help.Model
	progress progress.Model
	trace    viewport.Model
	styles   tuiStyles
}

func newPlaybackModel(report m.RunReport, delay time.Duration, styles tuiStyles) playbackModel {
	model := playbackModel{
		report: report,
		delay:  delay,
		keys:   newPlaybackKeyMap(),
		help:   help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(defaultBarWidth),
			progress.WithoutPercentage(),
		),
		trace:  viewport.New(defaultBarWidth*2, traceHeight),
		styles: styles,
	}
	model.refreshTrace()

	return model
}

func (p playbackModel) Init() tea.Cmd {
	return p.tick()
}

func (p playbackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.trace.Width = msg.Width
		p.progress.Width = max(10, min(msg.Width-4, defaultBarWidth*2))
		p.help.Width = msg.Width

		return p, nil

	case stepTickMsg:
		if msg.id != p.tickID || p.paused || p.finished() {
			return p, nil
		}

		p.index++
		p.refreshTrace()

		if p.finished() {
			return p, nil
		}

		return p, p.tick()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p playbackModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Quit):
		return p, tea.Quit

	case key.Matches(msg, p.keys.Pause):
		p.paused = !p.paused
		if p.paused {
			return p, nil
		}

		p.tickID++

		return p, p.tick()

	case key.Matches(msg, p.keys.Next):
		p.paused = true
		if !p.finished() {
			p.index++
		}

	case key.Matches(msg, p.keys.Prev):
		p.paused = true
		if p.index > 0 {
			p.index--
		}

	case key.Matches(msg, p.keys.Restart):
		p.index = 0
		p.paused = false
		p.tickID++
		p.refreshTrace()

		return p, p.tick()

	case key.Matches(msg, p.keys.End):
		p.index = p.lastIndex()
	}

	p.refreshTrace()

	return p, nil
}

func (p playbackModel) View() string {
	var sb strings.Builder

	sb.WriteString(p.styles.title.Render(runTitle(p.report)))
	sb.WriteString("\n\n")

	board := renderBoard(p.report.Grid, p.report.Steps, p.index, p.styles.paint)
	if board != "" {
		sb.WriteString(p.styles.board.Render(board))
		sb.WriteString("\n\n")
	}

	sb.WriteString(p.statusLine())
	sb.WriteString("\n")
	sb.WriteString(p.progress.ViewAs(p.percent()))
	sb.WriteString("\n\n")
	sb.WriteString(p.trace.View())
	sb.WriteString("\n\n")

	if p.finished() {
		sb.WriteString(p.styles.status(p.report.Result.Status).Render(resultLine(p.report.Result)))
		sb.WriteString("\n")
	}

	sb.WriteString(p.help.View(p.keys))

	return sb.String()
}

func (p playbackModel) statusLine() string {
	if len(p.report.Steps) == 0 {
		return p.styles.muted.Render("No steps")
	}

	step := p.report.Steps[p.index]
	state := ""

	if p.paused {
		state = " " + p.styles.muted.Render("(paused)")
	}

	return fmt.Sprintf("Step %d/%d: %s at %s facing %s%s",
		p.index, p.lastIndex(), step.Description, step.Position, step.Direction.Lower(), state)
}

func (p *playbackModel) refreshTrace() {
	if len(p.report.Steps) == 0 {
		p.trace.SetContent("")

		return
	}

	lines := make([]string, 0, p.index+1)
	for _, step := range p.report.Steps[:p.index+1] {
		lines = append(lines, fmt.Sprintf("%4d  %-22s %s", step.Index, step.Description, step.Position))
	}

	p.trace.SetContent(strings.Join(lines, "\n"))
	p.trace.GotoBottom()
}

func (p playbackModel) tick() tea.Cmd {
	if p.finished() {
		return nil
	}

	id := p.tickID

	return tea.Tick(p.delay, func(time.Time) tea.Msg {
		return stepTickMsg{id: id}
	})
}

func (p playbackModel) lastIndex() int {
	return max(len(p.report.Steps)-1, 0)
}

func (p playbackModel) finished() bool {
	return p.index >= p.lastIndex()
}

func (p playbackModel) percent() float64 {
	last := p.lastIndex()
	if last == 0 {
		return 1
	}

	return float64(p.index) / float64(last)
}

// tuiStyles groups the lipgloss styles used by the TUI.
type tuiStyles struct {
	title     lipgloss.Style
	muted     lipgloss.Style
	board     lipgloss.Style
	success   lipgloss.Style
	failure   lipgloss.Style
	errored   lipgloss.Style
	character lipgloss.Style
	visited   lipgloss.Style
	blocked   lipgloss.Style
	end       lipgloss.Style
	start     lipgloss.Style
}

func defaultTUIStyles() tuiStyles {
	return tuiStyles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		board:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failure:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		errored:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		character: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		visited:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		blocked:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		end:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		start:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	}
}

func (s tuiStyles) paint(kind cellKind, glyph string) string {
	switch kind {
	case kindCharacter:
		return s.character.Render(glyph)
	case kindVisited:
		return s.visited.Render(glyph)
	case kindBlocked:
		return s.blocked.Render(glyph)
	case kindEnd:
		return s.end.Render(glyph)
	case kindStart:
		return s.start.Render(glyph)
	default:
		return s.muted.Render(glyph)
	}
}

func (s tuiStyles) status(status m.ExecutionStatus) lipgloss.Style {
	switch status {
	case m.StatusSuccess:
		return s.success
	case m.StatusFailure:
		return s.failure
	default:
		return s.errored
	}
}

func resultLine(result m.ExecutionResult) string {
	if result.ErrorMessage == "" {
		return string(result.Status)
	}

	return fmt.Sprintf("%s: %s", result.Status, result.ErrorMessage)
}
