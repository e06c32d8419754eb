package cmd

import (
	"github.com/spf13/cobra"
)

// obfuscateCmd represents the obfuscate command.
var obfuscateCmd = newObfuscateCmd()

func newObfuscateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "obfuscate <input> [output]",
		Short: "Turn a Python program into a self-decoding loader",
		Long: `Obfuscate a single Python file. The loader is written to output, or next
to the input as <name>_obfuscated.py when output is omitted.

` + modesHelp,
		Args: cobra.RangeArgs(1, 2),
		RunE: runObfuscate,
	}
}

func init() {
	rootCmd.AddCommand(obfuscateCmd)
}
