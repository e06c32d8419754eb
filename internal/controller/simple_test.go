package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func TestSimpleUI_DisplayObfuscation(t *testing.T) {
	tests := []struct {
		name         string
		report       m.Report
		diff         string
		wantContains []string
		wantMissing  []string
	}{
		{
			name: "compressed payload",
			report: m.Report{
				Source: "add.py", Output: "add_obfuscated.py", Mode: m.ModeSimple, Scheme: m.SchemeCompress,
				OriginalSize: 100, ArtifactSize: 150, CompressedSize: 60,
			},
			wantContains: []string{"add.py -> add_obfuscated.py", "(simple, compress_encode)", "original 100 bytes", "+50.0%", "compression 40.0%"},
			wantMissing:  []string{"renamed"},
		},
		{
			name: "tree passes and diff",
			report: m.Report{
				Source: "shadow.py", Output: "out.py", Mode: m.ModeASTRename, Scheme: m.SchemeCompress,
				OriginalSize: 200, ArtifactSize: 100, Renamed: 4, Literals: 2,
			},
			diff:         "--- shadow.py\n+++ shadow.py (transformed)\n-x = 1\n+_a = 1\n",
			wantContains: []string{"-x = 1", "+_a = 1", "-50.0%", "renamed 4 identifier(s), encoded 2 literal(s)"},
			wantMissing:  []string{"compression"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCmd()

			ui := NewSimpleUI(cmd)
			err := ui.DisplayObfuscation(context.Background(), tt.report, tt.diff)
			require.NoError(t, err)

			got := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}

			for _, missing := range tt.wantMissing {
				assert.NotContains(t, got, missing)
			}
		})
	}
}

func TestSimpleUI_DisplayRecovery(t *testing.T) {
	t.Run("readable", func(t *testing.T) {
		cmd, buf := newTestCmd()

		err := NewSimpleUI(cmd).DisplayRecovery(context.Background(),
			m.Report{Source: "a_obfuscated.py", Output: "a_obfuscated_recovered.py"},
			m.Recovery{Scheme: m.SchemeCompress, Data: []byte("print(1)\n"), Readable: true})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "a_obfuscated.py -> a_obfuscated_recovered.py (compress_encode, 9 bytes)")
		assert.NotContains(t, buf.String(), "compiled code")
	})

	t.Run("compiled bytes", func(t *testing.T) {
		cmd, buf := newTestCmd()

		err := NewSimpleUI(cmd).DisplayRecovery(context.Background(),
			m.Report{Source: "b.py", Output: "b_recovered.bin"},
			m.Recovery{Scheme: m.SchemeCompiled, Data: []byte{0xe3, 0x00}})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "payload is compiled code")
	})

	t.Run("failure", func(t *testing.T) {
		cmd, buf := newTestCmd()

		err := NewSimpleUI(cmd).DisplayRecovery(context.Background(),
			m.Report{Source: "broken.py"},
			m.Recovery{Failure: &m.Failure{Kind: m.DecodeError, Message: "no payload block found"}})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "broken.py: DecodeError: no payload block found")
	})
}

func TestSimpleUI_BatchProgress(t *testing.T) {
	cmd, buf := newTestCmd()
	ctx := context.Background()

	ui := NewSimpleUI(cmd)
	require.NoError(t, ui.Start(ctx, WithBatchMode(2)))

	ui.DisplayFileDone(ctx, m.Report{Source: "a.py"})
	ui.DisplayFileDone(ctx, m.Report{Source: "b.py", Error: "ParseError: b.py:3:1: unexpected indent"})
	ui.Close(ctx)
	ui.Wait(ctx)

	got := buf.String()
	assert.Contains(t, got, "Processing 2 file(s)")
	assert.Contains(t, got, "[1/2]")
	assert.Contains(t, got, "[2/2]")
	assert.Contains(t, got, "unexpected indent")
}

func TestSimpleUI_SingleModeIsQuiet(t *testing.T) {
	cmd, buf := newTestCmd()

	require.NoError(t, NewSimpleUI(cmd).Start(context.Background(), WithSingleMode()))
	assert.Empty(t, buf.String())
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	cmd, buf := newTestCmd()

	reports := []m.Report{
		{Source: "a.py", Mode: m.ModeSimple, OriginalSize: 100, ArtifactSize: 120, CompressedSize: 50},
		{Source: "b.py", Mode: m.ModeChunkShuffle, OriginalSize: 100, ArtifactSize: 180},
		{Source: "c.py", Mode: m.ModeSimple, OriginalSize: 10, Error: "ParseError: c.py:1:1: invalid syntax"},
	}

	require.NoError(t, NewSimpleUI(cmd).DisplaySummary(context.Background(), reports))

	got := buf.String()
	for _, want := range []string{"PATH", "a.py", "b.py", "c.py", "+20.0%", "+80.0%", "50.0%", "FAILED", "TOTAL FILES 3", "+50.0%", "1 FAILED"} {
		assert.Contains(t, strings.ToUpper(got), strings.ToUpper(want))
	}
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, buf := newTestCmd()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewSimpleUI(cmd)
	require.Error(t, ui.Start(ctx))
	require.Error(t, ui.DisplaySummary(ctx, nil))
	ui.DisplayFileDone(ctx, m.Report{Source: "a.py"})

	assert.Empty(t, buf.String())
}
