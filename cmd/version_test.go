package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptermocks "pyobf.dev/pkg/pyobf/internal/adapter/mocks"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "python")

	if strings.Contains(output, "version: unknown") {
		return
	}

	assert.Contains(t, output, "pyobf version")
	assert.Contains(t, output, "go version")
}

func TestVersionCmd_PythonStatus(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		want      string
	}{
		{"available", true, "(available)"},
		{"missing", false, "(not found)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runtime := adaptermocks.NewMockPythonRuntimeAdapter(t)
			runtime.EXPECT().Available().Return(tt.available)

			original := pythonRuntime
			pythonRuntime = runtime
			defer func() { pythonRuntime = original }()

			cmd := newVersionCmd()
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetArgs([]string{})

			require.NoError(t, cmd.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}
