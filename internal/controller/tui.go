package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

const (
	barPadding  = 2
	barMaxWidth = 60
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// TUI implements UI using Bubble Tea. Batch runs get a live progress bar,
// everything else is printed through SimpleUI with styled headings.
type TUI struct {
	cmd    *cobra.Command
	simple *SimpleUI

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd, simple: NewSimpleUI(cmd)}
}

// Start launches the progress program in batch mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeBatch || cfg.total == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	program := tea.NewProgram(newBatchModel(cfg.total),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithContext(ctx),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			slog.Error("Failed to run progress view", "error", err)
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close asks the progress program to finish.
func (t *TUI) Close(_ context.Context) {
	if program := t.current(); program != nil {
		program.Send(batchFinishedMsg{})
	}
}

// Wait blocks until the progress program has exited.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}

	t.mu.Lock()
	t.program, t.done = nil, nil
	t.mu.Unlock()
}

// DisplayObfuscation prints a colored diff and the size line.
func (t *TUI) DisplayObfuscation(ctx context.Context, report m.Report, diff string) error {
	if diff != "" {
		t.printf("%s\n%s\n", titleStyle.Render("Transformed source"), colorDiff(diff))
	}

	return t.simple.DisplayObfuscation(ctx, report, "")
}

// DisplayRecovery prints the recovery outcome.
func (t *TUI) DisplayRecovery(ctx context.Context, report m.Report, recovery m.Recovery) error {
	return t.simple.DisplayRecovery(ctx, report, recovery)
}

// DisplayFileDone advances the progress bar.
func (t *TUI) DisplayFileDone(ctx context.Context, report m.Report) {
	program := t.current()
	if program == nil {
		t.simple.DisplayFileDone(ctx, report)
		return
	}

	program.Send(fileDoneMsg{report: report})
}

// DisplaySummary prints the batch table under a title.
func (t *TUI) DisplaySummary(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("\n%s\n%s", titleStyle.Render("pyobf summary"), renderSummaryTable(reports))

	return nil
}

func (t *TUI) current() *tea.Program {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.cmd.OutOrStdout(), format, args...)
}

func colorDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			lines[i] = mutedStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

type fileDoneMsg struct {
	report m.Report
}

type batchFinishedMsg struct{}

// batchModel is the Bubble Tea model behind the batch progress view.
type batchModel struct {
	bar     progress.Model
	total   int
	done    int
	failed  []m.Report
	current m.Path
}

func newBatchModel(total int) batchModel {
	return batchModel{
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(barMaxWidth)),
		total: total,
	}
}

func (bm batchModel) Init() tea.Cmd {
	return nil
}

func (bm batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileDoneMsg:
		bm.done++
		bm.current = msg.report.Source

		if msg.report.Failed() {
			bm.failed = append(bm.failed, msg.report)
		}

		return bm, nil

	case batchFinishedMsg:
		return bm, tea.Quit

	case tea.WindowSizeMsg:
		bm.bar.Width = min(msg.Width-barPadding*2, barMaxWidth)

		return bm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return bm, tea.Quit
		}
	}

	return bm, nil
}

func (bm batchModel) percent() float64 {
	if bm.total == 0 {
		return 0
	}

	return float64(bm.done) / float64(bm.total)
}

func (bm batchModel) View() string {
	var b strings.Builder

	pad := strings.Repeat(" ", barPadding)

	b.WriteString(pad + titleStyle.Render("pyobf batch") + "\n\n")
	b.WriteString(pad + bm.bar.ViewAs(bm.percent()) + "\n\n")
	fmt.Fprintf(&b, "%s%d/%d files", pad, bm.done, bm.total)

	if len(bm.failed) > 0 {
		b.WriteString(" " + failStyle.Render(fmt.Sprintf("%d failed", len(bm.failed))))
	}

	b.WriteString("\n")

	if bm.current != "" {
		b.WriteString(pad + mutedStyle.Render(string(bm.current)) + "\n")
	}

	for _, report := range bm.failed {
		b.WriteString(pad + failStyle.Render(fmt.Sprintf("✗ %s: %s", report.Source, report.Error)) + "\n")
	}

	return b.String()
}
