package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultInterpreter is the python executable looked up on PATH.
const DefaultInterpreter = "python3"

const compileScript = "import marshal,sys;" +
	"sys.stdout.buffer.write(marshal.dumps(compile(sys.stdin.buffer.read(),sys.argv[1],'exec')))"

// ErrInterpreterNotFound is returned when the configured interpreter is not installed.
var ErrInterpreterNotFound = errors.New("python interpreter not found")

// PythonRuntimeAdapter abstracts the python interpreter the pipeline needs for
// compiled payloads and for running generated loaders.
type PythonRuntimeAdapter interface {
	// Compile returns marshal.dumps(compile(src, filename, 'exec')).
	Compile(ctx context.Context, src []byte, filename string) ([]byte, error)

	// Run executes a script and returns its combined stdout/stderr output.
	Run(ctx context.Context, script []byte) (output string, err error)

	// Available reports whether the interpreter can be found.
	Available() bool
}

// LocalPythonRuntimeAdapter provides a concrete implementation using os/exec.
type LocalPythonRuntimeAdapter struct {
	interpreter string
	timeout     time.Duration
}

// NewLocalPythonRuntimeAdapter constructs an adapter for interpreter. An
// empty interpreter falls back to python3, a zero timeout to 30s.
func NewLocalPythonRuntimeAdapter(interpreter string, timeout time.Duration) *LocalPythonRuntimeAdapter {
	if strings.TrimSpace(interpreter) == "" {
		interpreter = DefaultInterpreter
	}

	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &LocalPythonRuntimeAdapter{interpreter: interpreter, timeout: timeout}
}

// Available reports whether the interpreter is on PATH.
func (a *LocalPythonRuntimeAdapter) Available() bool {
	_, err := exec.LookPath(a.interpreter)
	return err == nil
}

// Compile runs the interpreter's own compiler over src.
func (a *LocalPythonRuntimeAdapter) Compile(ctx context.Context, src []byte, filename string) ([]byte, error) {
	if !a.Available() {
		return nil, fmt.Errorf("%w: %s", ErrInterpreterNotFound, a.interpreter)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.interpreter, "-c", compileScript, filename)
	cmd.Stdin = bytes.NewReader(src)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("compile %s: %w: %s", filename, err, strings.TrimSpace(lastLine(stderr.String())))
	}

	return stdout.Bytes(), nil
}

// Run writes script to a temporary file and executes it.
func (a *LocalPythonRuntimeAdapter) Run(ctx context.Context, script []byte) (string, error) {
	if !a.Available() {
		return "", fmt.Errorf("%w: %s", ErrInterpreterNotFound, a.interpreter)
	}

	tmp, err := os.CreateTemp("", "pyobf-*.py")
	if err != nil {
		return "", err
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(script); err != nil {
		_ = tmp.Close()
		return "", err
	}

	if err := tmp.Close(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.interpreter, tmp.Name())

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	output := stdout.String() + stderr.String()

	return output, err
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\n")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}

	return s
}
