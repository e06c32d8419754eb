package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pyobf.dev/pkg/pyobf/internal/domain"
	m "pyobf.dev/pkg/pyobf/internal/model"
)

var batchParallelFlag int
var batchReverseFlag bool
var batchOutputDirFlag string
var excludePatterns []string

const batchLongDescription = `Obfuscate every Python file under the given paths (default: ./...), or
recover every loader with --reverse. Files already named *_obfuscated.py
(or *_recovered.py when reversing) are skipped. A YAML report of the run
is written to --report unless it is empty.

` + pathPatternsHelp

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [paths...]",
		Short: "Obfuscate or recover many files",
		Long:  batchLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := obfuscateOptions(cmd)
			if err != nil {
				return err
			}

			return workflow.Batch(cmd.Context(), domain.BatchArgs{
				Paths:        parsePaths(args),
				Exclude:      viper.GetStringSlice(excludeConfigKey),
				OutputDir:    m.Path(viper.GetString(outputDirConfigKey)),
				Options:      opts,
				ReservedFile: m.Path(viper.GetString(reservedFileConfigKey)),
				Parallel:     max(1, viper.GetInt(parallelConfigKey)),
				Reverse:      batchReverseFlag,
				Report:       m.Path(viper.GetString(reportConfigKey)),
				Verify:       viper.GetBool(verifyConfigKey),
			})
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func configureBatchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&batchParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files processed in parallel")
	cmd.Flags().StringVarP(&batchOutputDirFlag, outputDirFlagName, "o", viper.GetString(outputDirConfigKey), "write outputs under this directory instead of next to the inputs")
	cmd.Flags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&batchReverseFlag, reverseFlagName, false, "recover loaders instead of obfuscating sources")

	bindFlagsToConfig(cmd.Flags(), batchConfigKeys)
}

var batchConfigKeys = map[string]string{
	parallelFlagName:  parallelConfigKey,
	outputDirFlagName: outputDirConfigKey,
	excludeFlagName:   excludeConfigKey,
}
