package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)

	cmd, _, out := newTestCmd(t, newInitCmd())
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Wrote")

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "obfuscate:")
	assert.Contains(t, string(contents), "python:")
}

func TestInitCmd_ExistingFile(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"kept without force", []string{"init"}, true},
		{"replaced with force", []string{"init", "--force"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := chdirTemp(t)

			targetPath := filepath.Join(tempDir, configFileName)
			require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

			cmd, _, _ := newTestCmd(t, newInitCmd())
			cmd.SetArgs(tt.args)

			err := cmd.Execute()

			contents, readErr := os.ReadFile(targetPath)
			require.NoError(t, readErr)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "existing: true\n", string(contents))

				return
			}

			require.NoError(t, err)
			assert.Contains(t, string(contents), "obfuscate:")
		})
	}
}
