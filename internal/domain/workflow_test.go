package domain_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "pyobf.dev/pkg/pyobf/internal/adapter/mocks"
	controllermocks "pyobf.dev/pkg/pyobf/internal/controller/mocks"
	"pyobf.dev/pkg/pyobf/internal/domain"
	m "pyobf.dev/pkg/pyobf/internal/model"
)

const addProgram = "def add(a, b):\n    return a + b\n\nprint(add(2, 3))\n"

type workflowMocks struct {
	fs      *adaptermocks.MockSourceFSAdapter
	store   *adaptermocks.MockReportStore
	runtime *adaptermocks.MockPythonRuntimeAdapter
	ui      *controllermocks.MockUI
}

func newWorkflowMocks(t *testing.T) (workflowMocks, domain.Workflow) {
	t.Helper()

	mocks := workflowMocks{
		fs:      adaptermocks.NewMockSourceFSAdapter(t),
		store:   adaptermocks.NewMockReportStore(t),
		runtime: adaptermocks.NewMockPythonRuntimeAdapter(t),
		ui:      controllermocks.NewMockUI(t),
	}

	wf := domain.NewWorkflow(mocks.fs, mocks.store, mocks.runtime, mocks.ui,
		domain.NewObfuscator(mocks.runtime), domain.NewRecoverer())

	return mocks, wf
}

func seeded(mode m.Mode) domain.ObfuscateOptions {
	opts := domain.DefaultOptions(mode)
	opts.Seed = 11

	return opts
}

func source(path string) m.Source {
	return m.Source{Origin: &m.File{FullPath: m.Path("/work/" + path), ShortPath: m.Path(path)}}
}

func loaderFor(t *testing.T, src string) string {
	t.Helper()

	result, err := domain.NewObfuscator(nil).Obfuscate(context.Background(), "a.py", []byte(src), seeded(m.ModeSimple))
	require.NoError(t, err)

	return result.Loader.Text
}

func TestWorkflow_Obfuscate_Success(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	ctx := context.Background()

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("add.py")).Return([]byte(addProgram), nil).Once()
	mocks.fs.EXPECT().MkdirAll(mock.Anything, m.Path("out")).Return(nil).Once()
	mocks.fs.EXPECT().WriteFileAtomic(mock.Anything, m.Path("out/add.py"), mock.MatchedBy(func(content []byte) bool {
		return strings.HasPrefix(string(content), "# obfuscated by pyobf (compress_encode)")
	}), fs.FileMode(0o644)).Return(nil).Once()
	mocks.ui.EXPECT().DisplayObfuscation(mock.Anything, mock.MatchedBy(func(report m.Report) bool {
		return report.Source == "add.py" &&
			report.Output == "out/add.py" &&
			report.Mode == m.ModeSimple &&
			report.Scheme == m.SchemeCompress &&
			report.OriginalSize == len(addProgram) &&
			report.ArtifactSize > 0 &&
			report.CompressedSize > 0
	}), "").Return(nil).Once()

	err := wf.Obfuscate(ctx, domain.ObfuscateArgs{Input: "add.py", Output: "out/add.py", Options: seeded(m.ModeSimple)})
	require.NoError(t, err)
}

func TestWorkflow_Obfuscate_DefaultOutputName(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("pkg/add.py")).Return([]byte(addProgram), nil).Once()
	mocks.fs.EXPECT().MkdirAll(mock.Anything, m.Path("pkg")).Return(nil).Once()
	mocks.fs.EXPECT().WriteFileAtomic(mock.Anything, m.Path("pkg/add_obfuscated.py"), mock.Anything, fs.FileMode(0o644)).
		Return(nil).Once()
	mocks.ui.EXPECT().DisplayObfuscation(mock.Anything, mock.Anything, "").Return(nil).Once()

	err := wf.Obfuscate(context.Background(), domain.ObfuscateArgs{Input: "pkg/add.py", Options: seeded(m.ModeSimple)})
	require.NoError(t, err)
}

func TestWorkflow_Obfuscate_Diff(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("add.py")).Return([]byte(addProgram), nil).Once()
	mocks.fs.EXPECT().WriteFileAtomic(mock.Anything, m.Path("add_out.py"), mock.Anything, fs.FileMode(0o644)).Return(nil).Once()
	mocks.ui.EXPECT().DisplayObfuscation(mock.Anything, mock.MatchedBy(func(report m.Report) bool {
		return report.Renamed > 0
	}), mock.MatchedBy(func(diff string) bool {
		return strings.Contains(diff, "--- add.py") &&
			strings.Contains(diff, "+++ add.py (transformed)") &&
			strings.Contains(diff, "-def add(a, b):")
	})).Return(nil).Once()

	err := wf.Obfuscate(context.Background(), domain.ObfuscateArgs{
		Input: "add.py", Output: "add_out.py", Options: seeded(m.ModeASTRename), Diff: true,
	})
	require.NoError(t, err)
}

func TestWorkflow_Obfuscate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		readErr  error
		src      string
		wantKind m.ErrorKind
	}{
		{"unreadable input", errors.New("permission denied"), "", m.InputError},
		{"invalid syntax", nil, "def f(:\n    pass\n", m.ParseError},
		{"invalid utf-8", nil, "x = '\xff'\n", m.InputError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, wf := newWorkflowMocks(t)

			mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
			mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
			mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("bad.py")).Return([]byte(tt.src), tt.readErr).Once()

			err := wf.Obfuscate(context.Background(), domain.ObfuscateArgs{Input: "bad.py", Output: "out.py", Options: seeded(m.ModeSimple)})
			require.Error(t, err)

			kind, ok := domain.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, kind)
			mocks.fs.AssertNotCalled(t, "WriteFileAtomic", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestWorkflow_Obfuscate_StartError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(errors.New("no terminal")).Once()

	err := wf.Obfuscate(context.Background(), domain.ObfuscateArgs{Input: "add.py", Options: seeded(m.ModeSimple)})
	require.EqualError(t, err, "no terminal")
}

func TestWorkflow_Obfuscate_ReservedFile(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	profile := "extra:\n  - add\n"

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("keep.yaml")).Return([]byte(profile), nil).Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("add.py")).Return([]byte(addProgram), nil).Once()
	mocks.fs.EXPECT().WriteFileAtomic(mock.Anything, m.Path("out.py"), mock.Anything, fs.FileMode(0o644)).Return(nil).Once()
	mocks.ui.EXPECT().DisplayObfuscation(mock.Anything, mock.Anything, mock.MatchedBy(func(diff string) bool {
		return strings.Contains(diff, "+def add(")
	})).Return(nil).Once()

	err := wf.Obfuscate(context.Background(), domain.ObfuscateArgs{
		Input: "add.py", Output: "out.py", Options: seeded(m.ModeASTRename), ReservedFile: "keep.yaml", Diff: true,
	})
	require.NoError(t, err)
}

func TestWorkflow_Obfuscate_Verify(t *testing.T) {
	tests := []struct {
		name       string
		loaderOut  string
		loaderErr  error
		sourceOut  string
		sourceErr  error
		wantKind   m.ErrorKind
		wantSource bool
	}{
		{name: "same output", loaderOut: "5\n", sourceOut: "5\n", wantSource: true},
		{name: "loader fails", loaderErr: errors.New("SystemExit: Decoding failed"), wantKind: m.ExecutionError},
		{name: "output differs", loaderOut: "5\n", sourceOut: "6\n", wantKind: m.ExecutionError, wantSource: true},
		{name: "source does not run", loaderOut: "5\n", sourceErr: errors.New("ImportError"), wantSource: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, wf := newWorkflowMocks(t)

			mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
			mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
			mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("add.py")).Return([]byte(addProgram), nil).Once()
			mocks.runtime.EXPECT().Run(mock.Anything, mock.MatchedBy(func(script []byte) bool {
				return strings.HasPrefix(string(script), "# obfuscated by pyobf")
			})).Return(tt.loaderOut, tt.loaderErr).Once()

			if tt.wantSource {
				mocks.runtime.EXPECT().Run(mock.Anything, []byte(addProgram)).Return(tt.sourceOut, tt.sourceErr).Once()
			}

			if tt.wantKind == "" {
				mocks.fs.EXPECT().WriteFileAtomic(mock.Anything, m.Path("out.py"), mock.Anything, fs.FileMode(0o644)).Return(nil).Once()
				mocks.ui.EXPECT().DisplayObfuscation(mock.Anything, mock.Anything, "").Return(nil).Once()
			}

			err := wf.Obfuscate(context.Background(), domain.ObfuscateArgs{
				Input: "add.py", Output: "out.py", Options: seeded(m.ModeSimple), Verify: true,
			})

			if tt.wantKind == "" {
				require.NoError(t, err)
				return
			}

			kind, ok := domain.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestWorkflow_Deobfuscate_RoundTrip(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	loader := loaderFor(t, addProgram)

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("pkg/add_obfuscated.py")).Return([]byte(loader), nil).Once()
	mocks.fs.EXPECT().MkdirAll(mock.Anything, m.Path("pkg")).Return(nil).Once()
	mocks.fs.EXPECT().WriteFileAtomic(mock.Anything, m.Path("pkg/add_obfuscated_recovered.py"), []byte(addProgram), fs.FileMode(0o644)).
		Return(nil).Once()
	mocks.ui.EXPECT().DisplayRecovery(mock.Anything, mock.MatchedBy(func(report m.Report) bool {
		return report.Output == "pkg/add_obfuscated_recovered.py" && report.ArtifactSize == len(addProgram)
	}), mock.MatchedBy(func(recovery m.Recovery) bool {
		return recovery.OK() && recovery.Readable && recovery.Scheme == m.SchemeCompress
	})).Return(nil).Once()

	err := wf.Deobfuscate(context.Background(), domain.DeobfuscateArgs{Input: "pkg/add_obfuscated.py"})
	require.NoError(t, err)
}

func TestWorkflow_Deobfuscate_Corrupted(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	loader := loaderFor(t, addProgram)
	corrupted := strings.Replace(loader, `b"""`, `b"""AAAA`, 1)

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("broken.py")).Return([]byte(corrupted), nil).Once()
	mocks.ui.EXPECT().DisplayRecovery(mock.Anything, mock.MatchedBy(func(report m.Report) bool {
		return report.Failed()
	}), mock.MatchedBy(func(recovery m.Recovery) bool {
		return !recovery.OK() && recovery.Failure.Kind == m.DecodeError
	})).Return(nil).Once()

	err := wf.Deobfuscate(context.Background(), domain.DeobfuscateArgs{Input: "broken.py", Output: "fixed.py"})

	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, m.DecodeError, kind)
	mocks.fs.AssertNotCalled(t, "WriteFileAtomic", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Deobfuscate_ReadError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("missing.py")).Return(nil, fs.ErrNotExist).Once()

	err := wf.Deobfuscate(context.Background(), domain.DeobfuscateArgs{Input: "missing.py"})
	require.ErrorIs(t, err, fs.ErrNotExist)

	kind, _ := domain.KindOf(err)
	assert.Equal(t, m.InputError, kind)
}

func TestWorkflow_Batch(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	sources := []m.Source{source("a.py"), source("a_obfuscated.py"), source("bad.py")}

	mocks.fs.EXPECT().Get(mock.Anything, []m.Path{"./..."}, "^skip_").Return(sources, nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("a.py")).Return([]byte(addProgram), nil).Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("bad.py")).Return([]byte("if True\n"), nil).Once()
	mocks.fs.EXPECT().WriteFileAtomic(mock.Anything, m.Path("a_obfuscated.py"), mock.Anything, fs.FileMode(0o644)).Return(nil).Once()
	mocks.ui.EXPECT().DisplayFileDone(mock.Anything, mock.Anything).Return().Twice()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 2 &&
			reports[0].Source == "a.py" && !reports[0].Failed() &&
			reports[1].Source == "bad.py" && reports[1].Failed()
	})).Return(nil).Once()
	mocks.store.EXPECT().SaveReports(m.Path("report.yaml"), mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 2
	})).Return(nil).Once()

	err := wf.Batch(context.Background(), domain.BatchArgs{
		Paths:    []m.Path{"./..."},
		Exclude:  []string{"^skip_"},
		Options:  seeded(m.ModeSimple),
		Parallel: 2,
		Report:   "report.yaml",
	})
	require.Error(t, err)

	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, m.ParseError, kind)
}

func TestWorkflow_Batch_ReverseIntoOutputDir(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	loader := loaderFor(t, addProgram)

	mocks.fs.EXPECT().Get(mock.Anything, []m.Path{"dist"}).
		Return([]m.Source{source("dist/a.py"), source("dist/a_recovered.py")}, nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("dist/a.py")).Return([]byte(loader), nil).Once()
	mocks.fs.EXPECT().JoinPath(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(elem ...string) m.Path { return m.Path(filepath.Join(elem...)) }).Once()
	mocks.fs.EXPECT().MkdirAll(mock.Anything, m.Path("src/dist")).Return(nil).Once()
	mocks.fs.EXPECT().WriteFileAtomic(mock.Anything, m.Path("src/dist/a_recovered.py"), []byte(addProgram), fs.FileMode(0o644)).
		Return(nil).Once()
	mocks.ui.EXPECT().DisplayFileDone(mock.Anything, mock.MatchedBy(func(report m.Report) bool {
		return report.Scheme == m.SchemeCompress && !report.Failed()
	})).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return(nil).Once()

	err := wf.Batch(context.Background(), domain.BatchArgs{
		Paths:     []m.Path{"dist"},
		OutputDir: "src",
		Reverse:   true,
		Options:   seeded(m.ModeSimple),
	})
	require.NoError(t, err)
}

func TestWorkflow_Batch_Interrupted(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mocks.fs.EXPECT().Get(mock.Anything, []m.Path{"."}).
		Return([]m.Source{source("a.py"), source("b.py")}, nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.fs.EXPECT().ReadFile(mock.Anything, m.Path("a.py")).Return([]byte(addProgram), nil).Once()
	mocks.fs.EXPECT().WriteFileAtomic(mock.Anything, m.Path("a_obfuscated.py"), mock.Anything, fs.FileMode(0o644)).Return(nil).Once()
	mocks.ui.EXPECT().DisplayFileDone(mock.Anything, mock.Anything).
		Run(func(context.Context, m.Report) { cancel() }).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.store.EXPECT().SaveReports(m.Path("report.yaml"), mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 2 && !reports[0].Failed() &&
			reports[1].Source == "b.py" && reports[1].Failed()
	})).Return(nil).Once()

	err := wf.Batch(ctx, domain.BatchArgs{
		Paths:    []m.Path{"."},
		Options:  seeded(m.ModeSimple),
		Parallel: 1,
		Report:   "report.yaml",
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "batch interrupted")
}

func TestWorkflow_Batch_NoSources(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.fs.EXPECT().Get(mock.Anything, []m.Path{"empty"}).Return(nil, nil).Once()

	err := wf.Batch(context.Background(), domain.BatchArgs{Paths: []m.Path{"empty"}, Options: seeded(m.ModeSimple)})
	require.EqualError(t, err, "no python sources found")
}

func TestWorkflow_Batch_GetError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.fs.EXPECT().Get(mock.Anything, []m.Path{"nowhere"}).Return(nil, errors.New("root path error")).Once()

	err := wf.Batch(context.Background(), domain.BatchArgs{Paths: []m.Path{"nowhere"}, Options: seeded(m.ModeSimple)})
	require.ErrorContains(t, err, "get sources: root path error")
}

func TestWorkflow_View(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	reports := []m.Report{{Source: "a.py", OriginalSize: 10, ArtifactSize: 30}}

	mocks.store.EXPECT().LoadReports(m.Path("report.yaml")).Return(reports, nil).Once()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, reports).Return(nil).Once()

	require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: "report.yaml"}))
}

func TestWorkflow_View_LoadError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.store.EXPECT().LoadReports(m.Path("missing.yaml")).Return(nil, fs.ErrNotExist).Once()

	err := wf.View(context.Background(), domain.ViewArgs{Reports: "missing.yaml"})
	require.ErrorIs(t, err, fs.ErrNotExist)
}
