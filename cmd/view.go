package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pyobf.dev/pkg/pyobf/internal/domain"
	m "pyobf.dev/pkg/pyobf/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved batch report",
		Long:  "View the summary table of a batch report written by `pyobf batch` (see --report).",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportPath := m.Path(viper.GetString(reportConfigKey))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
