package cmd

import (
	"github.com/spf13/cobra"

	"pyobf.dev/pkg/pyobf/internal/domain"
	m "pyobf.dev/pkg/pyobf/internal/model"
)

// deobfuscateCmd represents the deobfuscate command.
var deobfuscateCmd = newDeobfuscateCmd()

func newDeobfuscateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "deobfuscate <input> [output]",
		Aliases: []string{"recover"},
		Short:   "Recover the program embedded in a loader",
		Long: `Recover the program embedded in a loader produced by pyobf. Readable
payloads are written to <name>_recovered.py, compiled code objects to
<name>_recovered.bin, unless output is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deobfuscateArgs := domain.DeobfuscateArgs{Input: m.Path(args[0])}
			if len(args) > 1 {
				deobfuscateArgs.Output = m.Path(args[1])
			}

			return workflow.Deobfuscate(cmd.Context(), deobfuscateArgs)
		},
	}
}

func init() {
	rootCmd.AddCommand(deobfuscateCmd)
}
