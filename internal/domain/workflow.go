package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"pyobf.dev/pkg/pyobf/internal/adapter"
	"pyobf.dev/pkg/pyobf/internal/controller"
	m "pyobf.dev/pkg/pyobf/internal/model"
)

const (
	obfuscatedSuffix = "_obfuscated"
	recoveredSuffix  = "_recovered"
	outputPerm       = 0o644
)

// ObfuscateArgs contains the arguments for obfuscating a single file.
type ObfuscateArgs struct {
	Input   m.Path
	Output  m.Path
	Options ObfuscateOptions
	// ReservedFile is an optional YAML or TOML reserved-name profile.
	ReservedFile m.Path
	Diff         bool
	Verify       bool
}

// DeobfuscateArgs contains the arguments for recovering a single loader.
type DeobfuscateArgs struct {
	Input m.Path
	// Output defaults to <name>_recovered.py, or .bin for compiled payloads.
	Output m.Path
}

// BatchArgs contains the arguments for processing many files.
type BatchArgs struct {
	Paths        []m.Path
	Exclude      []string
	OutputDir    m.Path
	Options      ObfuscateOptions
	ReservedFile m.Path
	Parallel     int
	// Reverse recovers loaders instead of obfuscating sources.
	Reverse bool
	// Report is where the YAML batch report is saved. Empty skips it.
	Report m.Path
	Verify bool
}

// ViewArgs contains the arguments for displaying a saved batch report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the interface for the obfuscation workflow.
type Workflow interface {
	Obfuscate(ctx context.Context, args ObfuscateArgs) error
	Deobfuscate(ctx context.Context, args DeobfuscateArgs) error
	Batch(ctx context.Context, args BatchArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	adapter.PythonRuntimeAdapter
	controller.UI

	obfuscator *Obfuscator
	recoverer  *Recoverer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	runtime adapter.PythonRuntimeAdapter,
	ui controller.UI,
	obfuscator *Obfuscator,
	recoverer *Recoverer,
) Workflow {
	return &workflow{
		SourceFSAdapter:      fsAdapter,
		ReportStore:          reportStore,
		PythonRuntimeAdapter: runtime,
		UI:                   ui,
		obfuscator:           obfuscator,
		recoverer:            recoverer,
	}
}

// obfuscation is what one forward run of a file produced.
type obfuscation struct {
	report m.Report
	source []byte
	result Result
}

func (w *workflow) Obfuscate(ctx context.Context, args ObfuscateArgs) error {
	if err := w.Start(ctx, controller.WithSingleMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	opts, err := w.withReserved(ctx, args.Options, args.ReservedFile)
	if err != nil {
		return err
	}

	output := args.Output
	if output == "" {
		output = siblingName(args.Input, obfuscatedSuffix, ".py")
	}

	out, err := w.obfuscateFile(ctx, args.Input, output, opts, args.Verify)
	if err != nil {
		slog.Error("Failed to obfuscate source", "path", args.Input, "error", err)
		return err
	}

	var diff string

	if args.Diff {
		diff, err = UnifiedDiff(args.Input, string(out.source), out.result.Transformed)
		if err != nil {
			return fmt.Errorf("diff: %w", err)
		}
	}

	if err := w.DisplayObfuscation(ctx, out.report, diff); err != nil {
		slog.Error("Failed to display obfuscation", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Deobfuscate(ctx context.Context, args DeobfuscateArgs) error {
	if err := w.Start(ctx, controller.WithSingleMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	report, recovery, err := w.recoverFile(ctx, args.Input, args.Output, "")
	if report.Source == "" {
		return err
	}

	if displayErr := w.DisplayRecovery(ctx, report, recovery); displayErr != nil {
		slog.Error("Failed to display recovery", "error", displayErr)
		return fmt.Errorf("display: %w", displayErr)
	}

	return err
}

func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	opts, err := w.withReserved(ctx, args.Options, args.ReservedFile)
	if err != nil {
		return err
	}

	sources, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		slog.Error("Failed to collect sources", "error", err)
		return fmt.Errorf("get sources: %w", err)
	}

	sources = skipOwnOutputs(sources, args.Reverse)
	if len(sources) == 0 {
		return errors.New("no python sources found")
	}

	if err := w.Start(ctx, controller.WithBatchMode(len(sources))); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	reports := make([]m.Report, len(sources))
	failures := make([]error, len(sources))

	var group errgroup.Group
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for i, source := range sources {
		group.Go(func() error {
			// Files still queued when the run is interrupted are not started.
			if err := ctx.Err(); err != nil {
				reports[i] = m.Report{Source: source.Origin.ShortPath, Error: err.Error()}
				return err
			}

			reports[i], failures[i] = w.batchFile(ctx, i, source, args, opts)
			w.DisplayFileDone(ctx, reports[i])

			return nil
		})
	}

	interrupted := group.Wait()

	w.Close(ctx)
	w.Wait(ctx)

	if interrupted != nil {
		slog.Warn("Batch interrupted", "error", interrupted)

		if args.Report != "" {
			if err := w.SaveReports(args.Report, reports); err != nil {
				slog.Error("Failed to save reports", "path", args.Report, "error", err)
			}
		}

		return fmt.Errorf("batch interrupted: %w", interrupted)
	}

	if err := w.DisplaySummary(ctx, reports); err != nil {
		slog.Error("Failed to display summary", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if args.Report != "" {
		if err := w.SaveReports(args.Report, reports); err != nil {
			slog.Error("Failed to save reports", "path", args.Report, "error", err)
			return fmt.Errorf("save reports: %w", err)
		}
	}

	return errors.Join(failures...)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		slog.Error("Failed to load reports", "path", args.Reports, "error", err)
		return fmt.Errorf("load reports: %w", err)
	}

	return w.DisplaySummary(ctx, reports)
}

func (w *workflow) batchFile(ctx context.Context, index int, source m.Source, args BatchArgs, opts ObfuscateOptions) (m.Report, error) {
	input := source.Origin.ShortPath

	if args.Reverse {
		report, _, err := w.recoverFile(ctx, input, "", args.OutputDir)
		if err != nil {
			report.Source = input
			report.Error = err.Error()
		}

		return report, err
	}

	if opts.Seed != 0 {
		opts.Seed += int64(index)
	}

	output := w.outputPath(input, args.OutputDir, siblingName(input, obfuscatedSuffix, ".py"))

	out, err := w.obfuscateFile(ctx, input, output, opts, args.Verify)
	if err != nil {
		slog.Error("Failed to obfuscate source", "path", input, "error", err)

		return m.Report{Source: input, Mode: opts.Mode, Error: err.Error()}, err
	}

	return out.report, nil
}

func (w *workflow) obfuscateFile(ctx context.Context, input, output m.Path, opts ObfuscateOptions, verify bool) (obfuscation, error) {
	src, err := w.ReadFile(ctx, input)
	if err != nil {
		return obfuscation{}, newError(m.InputError, input, err)
	}

	result, err := w.obfuscator.Obfuscate(ctx, input, src, opts)
	if err != nil {
		return obfuscation{}, err
	}

	if verify {
		if err := w.verify(ctx, input, src, result.Loader.Text); err != nil {
			return obfuscation{}, err
		}
	}

	if err := w.write(ctx, output, []byte(result.Loader.Text)); err != nil {
		return obfuscation{}, err
	}

	report := m.Report{
		Source:       input,
		Output:       output,
		Mode:         opts.Mode,
		Scheme:       result.Artifact.Scheme,
		Style:        result.Loader.Style,
		OriginalSize: len(src),
		ArtifactSize: len(result.Loader.Text),
		Renamed:      result.Renamed,
		Literals:     result.Literals,
	}

	if result.Artifact.Scheme == m.SchemeCompress {
		report.CompressedSize = len(result.Artifact.Blob)
	}

	return obfuscation{report: report, source: src, result: result}, nil
}

// recoverFile decodes the loader at input. A zero report means the input
// could not be read at all.
func (w *workflow) recoverFile(ctx context.Context, input, output, outputDir m.Path) (m.Report, m.Recovery, error) {
	text, err := w.ReadFile(ctx, input)
	if err != nil {
		slog.Error("Failed to read loader", "path", input, "error", err)
		return m.Report{}, m.Recovery{}, newError(m.InputError, input, err)
	}

	recovery := w.recoverer.Recover(string(text))
	report := m.Report{Source: input, Scheme: recovery.Scheme, OriginalSize: len(text)}

	if !recovery.OK() {
		report.Error = recovery.Failure.Error()
		return report, recovery, newError(recovery.Failure.Kind, input, errors.New(recovery.Failure.Message))
	}

	if output == "" {
		ext := ".py"
		if !recovery.Readable {
			ext = ".bin"
		}

		output = w.outputPath(input, outputDir, siblingName(input, recoveredSuffix, ext))
	}

	if err := w.write(ctx, output, recovery.Data); err != nil {
		report.Error = err.Error()
		return report, recovery, err
	}

	report.Output = output
	report.ArtifactSize = len(recovery.Data)

	return report, recovery, nil
}

// verify runs the loader and, when the source itself runs, checks both
// print the same output.
func (w *workflow) verify(ctx context.Context, input m.Path, src []byte, loader string) error {
	got, err := w.Run(ctx, []byte(loader))
	if err != nil {
		return newError(m.ExecutionError, input, fmt.Errorf("run loader: %w", err))
	}

	want, err := w.Run(ctx, src)
	if err != nil {
		slog.Warn("Source does not run on its own, skipping output check", "path", input, "error", err)
		return nil
	}

	if got != want {
		return newError(m.ExecutionError, input, errors.New("loader output differs from source output"))
	}

	return nil
}

func (w *workflow) write(ctx context.Context, output m.Path, content []byte) error {
	if dir := filepath.Dir(string(output)); dir != "." {
		if err := w.MkdirAll(ctx, m.Path(dir)); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := w.WriteFileAtomic(ctx, output, content, outputPerm); err != nil {
		slog.Error("Failed to write output", "path", output, "error", err)
		return fmt.Errorf("write %s: %w", output, err)
	}

	return nil
}

func (w *workflow) withReserved(ctx context.Context, opts ObfuscateOptions, file m.Path) (ObfuscateOptions, error) {
	if file == "" {
		return opts, nil
	}

	data, err := w.ReadFile(ctx, file)
	if err != nil {
		return opts, newError(m.InputError, file, err)
	}

	reserved, err := ParseReservedSet(string(file), data)
	if err != nil {
		return opts, newError(m.InputError, file, err)
	}

	opts.Reserved = reserved

	return opts, nil
}

// outputPath places name next to input, or under dir keeping the input's
// relative directory when it has one.
func (w *workflow) outputPath(input, dir, name m.Path) m.Path {
	if dir == "" {
		return name
	}

	base := filepath.Base(string(name))

	if filepath.IsLocal(string(input)) {
		return w.JoinPath(string(dir), filepath.Dir(string(input)), base)
	}

	return w.JoinPath(string(dir), base)
}

// siblingName turns dir/name.py into dir/name<suffix><ext>.
func siblingName(input m.Path, suffix, ext string) m.Path {
	path := string(input)
	stem := strings.TrimSuffix(path, filepath.Ext(path))

	return m.Path(stem + suffix + ext)
}

func skipOwnOutputs(sources []m.Source, reverse bool) []m.Source {
	suffix := obfuscatedSuffix + ".py"
	if reverse {
		suffix = recoveredSuffix + ".py"
	}

	kept := make([]m.Source, 0, len(sources))

	for _, source := range sources {
		if source.Origin == nil || strings.HasSuffix(string(source.Origin.ShortPath), suffix) {
			continue
		}

		kept = append(kept, source)
	}

	return kept
}
