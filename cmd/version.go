package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the build version, the Go version used to build pyobf and the
python interpreter used for marshal_xor and --verify.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
			} else {
				cmd.Println("pyobf version\t", info.Main.Version)
				cmd.Println("go version\t", info.GoVersion)
			}

			status := "not found"
			if pythonRuntime != nil && pythonRuntime.Available() {
				status = "available"
			}

			cmd.Printf("python\t\t %s (%s)\n", viper.GetString(interpreterKey), status)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
