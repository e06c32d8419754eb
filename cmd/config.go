package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"pyobf.dev/pkg/pyobf/internal/domain"
	"pyobf.dev/pkg/pyobf/internal/domain/encoders"
	m "pyobf.dev/pkg/pyobf/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "pyobf"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	modeFlagName           = "mode"
	styleFlagName          = "style"
	keyLenFlagName         = "keylen"
	chunksFlagName         = "chunks"
	thresholdFlagName      = "threshold"
	seedFlagName           = "seed"
	wrapFlagName           = "wrap"
	renameFlagName         = "rename"
	encodeLiteralsFlagName = "encode-literals"
	keepCommentsFlagName   = "keep-comments"
	diffFlagName           = "diff"
	reservedFileFlagName   = "reserved-file"
	verifyFlagName         = "verify"
	reportFlagName         = "report"
	verboseFlagName        = "verbose"
	logFileFlagName        = "log-file"
	excludeFlagName        = "exclude"
	parallelFlagName       = "parallel"
	reverseFlagName        = "reverse"
	outputDirFlagName      = "output-dir"

	modeConfigKey         = "obfuscate.mode"
	styleConfigKey        = "obfuscate.style"
	keyLenConfigKey       = "obfuscate.keylen"
	chunksConfigKey       = "obfuscate.chunks"
	thresholdConfigKey    = "obfuscate.threshold"
	seedConfigKey         = "obfuscate.seed"
	wrapConfigKey         = "obfuscate.wrap"
	keepCommentsConfigKey = "obfuscate.keep_comments"
	keywordParamsKey      = "obfuscate.preserve_keyword_params"
	reservedFileConfigKey = "obfuscate.reserved_file"
	verifyConfigKey       = "obfuscate.verify"
	reportConfigKey       = "batch.report"
	parallelConfigKey     = "batch.parallel"
	outputDirConfigKey    = "batch.output_dir"
	excludeConfigKey      = "paths.exclude"
	interpreterKey        = "python.interpreter"
	pythonTimeoutKey      = "python.timeout"

	defaultMode          = m.ModeSimple
	defaultStyle         = m.StyleStandard
	defaultReport        = "pyobf-report.yaml"
	defaultParallel      = 4
	defaultPythonTimeout = 30 * time.Second

	envPrefix = "PYOBF"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".pyobf.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(modeConfigKey, string(defaultMode))
	viper.SetDefault(styleConfigKey, string(defaultStyle))
	viper.SetDefault(keyLenConfigKey, encoders.DefaultKeyLen)
	viper.SetDefault(chunksConfigKey, encoders.DefaultChunks)
	viper.SetDefault(thresholdConfigKey, domain.DefaultLiteralThreshold)
	viper.SetDefault(seedConfigKey, 0)
	viper.SetDefault(wrapConfigKey, domain.DefaultWrap)
	viper.SetDefault(keepCommentsConfigKey, false)
	viper.SetDefault(keywordParamsKey, true)
	viper.SetDefault(reservedFileConfigKey, "")
	viper.SetDefault(verifyConfigKey, false)

	viper.SetDefault(reportConfigKey, defaultReport)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(outputDirConfigKey, "")
	viper.SetDefault(excludeConfigKey, []string{})

	viper.SetDefault(interpreterKey, "python3")
	viper.SetDefault(pythonTimeoutKey, int64(defaultPythonTimeout.Seconds()))

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("Config file not loaded", "error", err)
		}
	}
}

// pythonTimeout returns the configured interpreter timeout.
func pythonTimeout() time.Duration {
	return time.Duration(viper.GetInt64(pythonTimeoutKey)) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
