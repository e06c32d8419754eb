// Package controller provides output adapters for displaying obfuscation results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSingle StartMode = iota
	ModeBatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithSingleMode sets the UI to single file mode.
func WithSingleMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSingle
	}
}

// WithBatchMode sets the UI to batch mode over total files.
func WithBatchMode(total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBatch
		c.total = total
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying obfuscation and recovery results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish
	DisplayObfuscation(ctx context.Context, report m.Report, diff string) error
	DisplayRecovery(ctx context.Context, report m.Report, recovery m.Recovery) error
	DisplayFileDone(ctx context.Context, report m.Report)
	DisplaySummary(ctx context.Context, reports []m.Report) error
}

// NewUI picks the interactive UI on a terminal and plain output otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
