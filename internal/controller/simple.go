package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

var (
	okLabel   = color.New(color.FgGreen).SprintFunc()
	failLabel = color.New(color.FgRed).SprintFunc()
	noteLabel = color.New(color.FgYellow).SprintFunc()
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command

	mu    sync.Mutex
	total int
	done  int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	s.mu.Lock()
	s.total = cfg.total
	s.done = 0
	s.mu.Unlock()

	if cfg.mode == ModeBatch {
		s.printf("Processing %d file(s)\n", cfg.total)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayObfuscation prints the diff, when there is one, and a size line.
func (s *SimpleUI) DisplayObfuscation(ctx context.Context, report m.Report, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff != "" {
		s.printf("%s\n", diff)
	}

	s.printf("%s %s -> %s (%s, %s)\n", okLabel("✓"), report.Source, report.Output, report.Mode, report.Scheme)
	s.printf("  original %d bytes, artifact %d bytes, size change %s\n",
		report.OriginalSize, report.ArtifactSize, formatPercent(report.SizeChange()))

	if ratio, ok := report.Compression(); ok {
		s.printf("  compression %s\n", formatRatio(ratio))
	}

	if report.Renamed > 0 || report.Literals > 0 {
		s.printf("  renamed %d identifier(s), encoded %d literal(s)\n", report.Renamed, report.Literals)
	}

	return nil
}

// DisplayRecovery prints what recovery produced or why it failed.
func (s *SimpleUI) DisplayRecovery(ctx context.Context, report m.Report, recovery m.Recovery) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !recovery.OK() {
		s.printf("%s %s: %s\n", failLabel("✗"), report.Source, recovery.Failure.Error())
		return nil
	}

	s.printf("%s %s -> %s (%s, %d bytes)\n", okLabel("✓"), report.Source, report.Output, recovery.Scheme, len(recovery.Data))

	if !recovery.Readable {
		s.printf("  %s payload is compiled code, written as raw bytes\n", noteLabel("!"))
	}

	return nil
}

// DisplayFileDone prints one progress line for a finished batch file.
func (s *SimpleUI) DisplayFileDone(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	s.done++
	done, total := s.done, s.total
	s.mu.Unlock()

	if report.Failed() {
		s.printf("[%d/%d] %s %s: %s\n", done, total, failLabel("✗"), report.Source, report.Error)
		return
	}

	s.printf("[%d/%d] %s %s\n", done, total, okLabel("✓"), report.Source)
}

// DisplaySummary prints the batch table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(reports))

	return nil
}

func renderSummaryTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Mode", "Original", "Artifact", "Size change", "Compression", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	var original, artifact, failed int

	for _, report := range reports {
		status := "ok"
		change, compression := formatPercent(report.SizeChange()), "-"

		if ratio, ok := report.Compression(); ok {
			compression = formatRatio(ratio)
		}

		if report.Failed() {
			status = "failed"
			change = "-"
			failed++
		} else {
			original += report.OriginalSize
			artifact += report.ArtifactSize
		}

		table.Append([]string{
			string(report.Source),
			modeLabel(report),
			strconv.Itoa(report.OriginalSize),
			strconv.Itoa(report.ArtifactSize),
			change,
			compression,
			status,
		})
	}

	total := m.Report{OriginalSize: original, ArtifactSize: artifact}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		"",
		strconv.Itoa(original),
		strconv.Itoa(artifact),
		formatPercent(total.SizeChange()),
		"",
		fmt.Sprintf("%d failed", failed),
	})

	table.Render()

	return tableBuffer.String()
}

// modeLabel names what produced a row. Recovered files have no mode.
func modeLabel(report m.Report) string {
	if report.Mode == "" {
		return string(report.Scheme)
	}

	return string(report.Mode)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

func formatRatio(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
