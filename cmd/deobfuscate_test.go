package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pyobf.dev/pkg/pyobf/internal/domain"
	m "pyobf.dev/pkg/pyobf/internal/model"
)

func TestDeobfuscateCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.DeobfuscateArgs
	}{
		{
			name: "default output",
			args: []string{"deobfuscate", "app_obfuscated.py"},
			want: domain.DeobfuscateArgs{Input: "app_obfuscated.py"},
		},
		{
			name: "explicit output",
			args: []string{"deobfuscate", "app_obfuscated.py", "app.py"},
			want: domain.DeobfuscateArgs{Input: "app_obfuscated.py", Output: "app.py"},
		},
		{
			name: "recover alias",
			args: []string{"recover", "loader.py"},
			want: domain.DeobfuscateArgs{Input: m.Path("loader.py")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, mockWorkflow, _ := newTestCmd(t, newDeobfuscateCmd())

			mockWorkflow.On("Deobfuscate", mock.Anything, tt.want).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestDeobfuscateCmd_RequiresInput(t *testing.T) {
	cmd, _, _ := newTestCmd(t, newDeobfuscateCmd())

	cmd.SetArgs([]string{"deobfuscate"})
	require.Error(t, cmd.Execute())
}
