// Package cmd provides the root command and CLI setup for pyobf.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pyobf.dev/pkg/pyobf/internal/adapter"
	"pyobf.dev/pkg/pyobf/internal/controller"
	"pyobf.dev/pkg/pyobf/internal/domain"
	m "pyobf.dev/pkg/pyobf/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var pythonRuntime adapter.PythonRuntimeAdapter
var obfuscator *domain.Obfuscator
var recoverer *domain.Recoverer
var workflow domain.Workflow
var ui controller.UI

// Obfuscation flags are persistent so the root command, obfuscate and
// batch read the same values.
var (
	modeFlag           string
	styleFlag          string
	keyLenFlag         int
	chunksFlag         int
	thresholdFlag      int
	seedFlag           int64
	wrapFlag           int
	renameFlag         bool
	encodeLiteralsFlag bool
	keepCommentsFlag   bool
	diffFlag           bool
	reservedFileFlag   string
	verifyFlag         bool
)

// reportFlag is shared by batch (writes) and view (reads).
var reportFlag string

var (
	verboseFlag bool
	logFileFlag string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	pythonRuntime = adapter.NewLocalPythonRuntimeAdapter(viper.GetString(interpreterKey), pythonTimeout())
	obfuscator = domain.NewObfuscator(pythonRuntime)
	recoverer = domain.NewRecoverer()
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		pythonRuntime,
		ui,
		obfuscator,
		recoverer,
	)
}

const modesHelp = `Modes:
  simple         compress and base64 encode the program as is
  ast_rename     rename identifiers and encode string literals first
  marshal_xor    compile with python and XOR the code object
  chunk_shuffle  cut the program into shuffled base64 pieces`

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./app ./lib    scan the top level of multiple directories`

const rootLongDescription = `pyobf turns a Python program into a self-decoding loader that runs the
same way as the original, and recovers the embedded program from such
loaders.

With two arguments it obfuscates <input> into <output>.

` + modesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pyobf [input] [output]",
		Short: "Python source obfuscator",
		Long:  rootLongDescription,
		Args:  cobra.MaximumNArgs(2),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return runObfuscate(cmd, args)
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&modeFlag, modeFlagName, "m", viper.GetString(modeConfigKey), "obfuscation mode: simple, ast_rename, marshal_xor or chunk_shuffle")
	flags.StringVar(&styleFlag, styleFlagName, viper.GetString(styleConfigKey), "loader style: standard, compact or obfuscated")
	flags.IntVar(&keyLenFlag, keyLenFlagName, viper.GetInt(keyLenConfigKey), "XOR key length for marshal_xor")
	flags.IntVar(&chunksFlag, chunksFlagName, viper.GetInt(chunksConfigKey), "number of pieces for chunk_shuffle")
	flags.IntVar(&thresholdFlag, thresholdFlagName, viper.GetInt(thresholdConfigKey), "shortest string literal to encode, in characters")
	flags.Int64Var(&seedFlag, seedFlagName, viper.GetInt64(seedConfigKey), "random seed for reproducible output (0 = random)")
	flags.IntVar(&wrapFlag, wrapFlagName, viper.GetInt(wrapConfigKey), "wrap base64 blocks at this column (0 = no wrapping)")
	flags.BoolVar(&keepCommentsFlag, keepCommentsFlagName, viper.GetBool(keepCommentsConfigKey), "keep comments in the transformed program")
	flags.StringVar(&reservedFileFlag, reservedFileFlagName, viper.GetString(reservedFileConfigKey), "YAML or TOML file with extra names that must not be renamed")
	flags.BoolVar(&verifyFlag, verifyFlagName, viper.GetBool(verifyConfigKey), "run the loader with python and compare its output to the original")
	flags.StringVar(&reportFlag, reportFlagName, viper.GetString(reportConfigKey), "path of the YAML batch report")

	// These follow the mode unless given explicitly.
	flags.BoolVar(&renameFlag, renameFlagName, false, "rename identifiers (default: on for ast_rename)")
	flags.BoolVar(&encodeLiteralsFlag, encodeLiteralsFlagName, false, "encode string literals (default: on for ast_rename)")
	flags.BoolVar(&diffFlag, diffFlagName, false, "print a diff of the transformed program")
	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	flags.StringVar(&logFileFlag, logFileFlagName, "", "log file (default from log.filename)")

	bindFlagsToConfig(flags, rootConfigKeys)
}

// rootConfigKeys maps persistent flags to the config keys they override.
var rootConfigKeys = map[string]string{
	modeFlagName:         modeConfigKey,
	styleFlagName:        styleConfigKey,
	keyLenFlagName:       keyLenConfigKey,
	chunksFlagName:       chunksConfigKey,
	thresholdFlagName:    thresholdConfigKey,
	seedFlagName:         seedConfigKey,
	wrapFlagName:         wrapConfigKey,
	keepCommentsFlagName: keepCommentsConfigKey,
	reservedFileFlagName: reservedFileConfigKey,
	verifyFlagName:       verifyConfigKey,
	reportFlagName:       reportConfigKey,
}

func bindFlagsToConfig(flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		bindFlagToConfig(flags.Lookup(name), key)
	}
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// obfuscateOptions builds the run options from config, env and flags.
func obfuscateOptions(cmd *cobra.Command) (domain.ObfuscateOptions, error) {
	mode := m.Mode(viper.GetString(modeConfigKey))
	if !mode.Valid() {
		return domain.ObfuscateOptions{}, fmt.Errorf("unknown mode %q", mode)
	}

	style := m.LoaderStyle(viper.GetString(styleConfigKey))
	if !style.Valid() {
		return domain.ObfuscateOptions{}, fmt.Errorf("unknown loader style %q", style)
	}

	opts := domain.DefaultOptions(mode)
	opts.Style = style
	opts.KeyLen = viper.GetInt(keyLenConfigKey)
	opts.Chunks = viper.GetInt(chunksConfigKey)
	opts.Threshold = viper.GetInt(thresholdConfigKey)
	opts.Seed = viper.GetInt64(seedConfigKey)
	opts.Wrap = viper.GetInt(wrapConfigKey)
	opts.KeepComments = viper.GetBool(keepCommentsConfigKey)
	opts.PreserveKeywordParams = viper.GetBool(keywordParamsKey)

	if cmd.Flags().Changed(renameFlagName) {
		opts.Rename = renameFlag
	}

	if cmd.Flags().Changed(encodeLiteralsFlagName) {
		opts.EncodeLiterals = encodeLiteralsFlag
	}

	return opts, nil
}

// runObfuscate handles `pyobf <input> [output]` and `pyobf obfuscate`.
func runObfuscate(cmd *cobra.Command, args []string) error {
	opts, err := obfuscateOptions(cmd)
	if err != nil {
		return err
	}

	obfuscateArgs := domain.ObfuscateArgs{
		Input:        m.Path(args[0]),
		Options:      opts,
		ReservedFile: m.Path(viper.GetString(reservedFileConfigKey)),
		Diff:         diffFlag,
		Verify:       viper.GetBool(verifyConfigKey),
	}

	if len(args) > 1 {
		obfuscateArgs.Output = m.Path(args[1])
	}

	return workflow.Obfuscate(cmd.Context(), obfuscateArgs)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
