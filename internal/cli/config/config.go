// --- START OF FINAL REVISED FILE internal/cli/config/config.go ---
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/net/html/charset"

	"github.com/stackvity/sovereign-doc/pkg/converter"
)

const (
	EnvPrefix         = "SOVEREIGNDOC"
	DefaultConfigName = "sovereign-doc"
)

// flagKeys maps command-line flag names to the configuration keys they override.
var flagKeys = map[string]string{
	"to":               "to",
	"verbose":          "verbose",
	"log-file":         "log.file",
	"default-encoding": "defaultEncoding",
	"ignore":           "ignore",
	"report":           "report",
}

// LoadAndValidate loads configuration from all sources (defaults, file, env, flags),
// validates the merged configuration and sets up the logger. inputPath is the
// positional argument (a file or a batch directory).
// Returns the populated Options struct, the logger, or an error wrapping
// converter.ErrConfigValidation for semantic problems.
func LoadAndValidate(cfgFile, inputPath string, flags *pflag.FlagSet) (converter.Options, *slog.Logger, error) {
	var opts converter.Options
	v := viper.New()

	// Initialize a temporary basic logger for early loading errors
	tempLogHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	tempLogger := slog.New(tempLogHandler)

	setDefaults(v)

	// --- Load Config File ---
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		} else {
			tempLogger.Debug("No home directory; skipping user config location", slog.Any("error", err))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) && cfgFile == "" {
			tempLogger.Debug("No configuration file found, using defaults/env/flags.")
		} else {
			configFileUsed := cfgFile
			if configFileUsed == "" {
				configFileUsed = fmt.Sprintf("searched locations for %s.yaml", DefaultConfigName)
			}
			tempLogger.Error("Error reading configuration file", slog.String("path", configFileUsed), slog.Any("error", err))
			return opts, tempLogger, fmt.Errorf("error reading config file '%s': %w", configFileUsed, err)
		}
	} else {
		opts.ConfigFilePath = v.ConfigFileUsed()
		tempLogger.Debug("Using configuration file", slog.String("path", opts.ConfigFilePath))
	}

	// --- Bind Environment Variables ---
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Bind Flags (Highest Priority) ---
	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				tempLogger.Debug("Flag lookup failed during binding", slog.String("flag", name))
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				tempLogger.Error("Error binding flag", slog.String("flag", name), slog.Any("error", err))
				return opts, tempLogger, fmt.Errorf("error binding flag '--%s': %w", name, err)
			}
		}
	}

	// --- Unmarshal Final Configuration ---
	if err := v.Unmarshal(&opts); err != nil {
		tempLogger.Error("Error unmarshalling configuration", slog.Any("error", err))
		return opts, tempLogger, fmt.Errorf("error unmarshalling configuration: %w", err)
	}
	opts.InputPath = inputPath

	// --- Explicitly Handle Flag Overrides for Booleans ---
	if flags != nil {
		if flags.Changed("verbose") {
			opts.Verbose, _ = flags.GetBool("verbose")
		}
		if flags.Changed("no-log") {
			if noLog, _ := flags.GetBool("no-log"); noLog {
				opts.Log.Enabled = false
			}
		}
	}

	// --- Setup Final Logger ---
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(logHandler)
	opts.Logger = logHandler

	if err := validateAndDeriveOptions(&opts, logger); err != nil {
		return opts, logger, err
	}

	logger.Debug("Configuration loaded",
		slog.String("input", opts.InputPath),
		slog.String("to", opts.DestinationFormat),
		slog.Bool("log", opts.Log.Enabled),
		slog.String("logFile", opts.Log.File),
		slog.String("report", string(opts.ReportFormat)),
		slog.String("configFile", opts.ConfigFilePath))
	return opts, logger, nil
}

// setDefaults establishes the default values for configuration options in Viper.
func setDefaults(v *viper.Viper) {
	// --- Behavior & Control ---
	v.SetDefault("to", "")
	v.SetDefault("verbose", converter.DefaultVerbose)
	v.SetDefault("report", string(converter.DefaultReportFormat))
	v.SetDefault("log.enabled", converter.DefaultLogEnabled)
	v.SetDefault("log.file", "")

	// --- File Handling ---
	v.SetDefault("ignore", []string{})
	v.SetDefault("defaultEncoding", converter.DefaultEncoding)
}

// isValidEnumValue checks if a given string value is present in a slice of allowed enum values.
// Case-sensitive comparison.
func isValidEnumValue[T ~string](value T, allowedValues []T) bool {
	return slices.Contains(allowedValues, value)
}

// validateAndDeriveOptions performs semantic validation on the populated Options
// struct and normalizes paths and tokens. It wraps errors with converter.ErrConfigValidation.
func validateAndDeriveOptions(opts *converter.Options, logger *slog.Logger) error {
	// === Path Validations ===
	if opts.InputPath == "" {
		err := fmt.Errorf("%w: input path is required", converter.ErrConfigValidation)
		logger.Error(err.Error(), slog.String("key", "InputPath"))
		return err
	}
	absInput, err := filepath.Abs(opts.InputPath)
	if err != nil {
		err = fmt.Errorf("%w: cannot resolve absolute input path '%s': %w", converter.ErrConfigValidation, opts.InputPath, err)
		logger.Error(err.Error(), slog.String("key", "InputPath"), slog.String("value", opts.InputPath))
		return err
	}
	opts.InputPath = absInput

	if opts.Log.File != "" {
		absLog, err := filepath.Abs(opts.Log.File)
		if err != nil {
			err = fmt.Errorf("%w: cannot resolve absolute log file path '%s': %w", converter.ErrConfigValidation, opts.Log.File, err)
			logger.Error(err.Error(), slog.String("key", "log.file"), slog.String("value", opts.Log.File))
			return err
		}
		opts.Log.File = absLog
	}

	// === Enum String Validations ===
	if opts.DestinationFormat == "" {
		err := fmt.Errorf("%w: destination format is required (--to)", converter.ErrConfigValidation)
		logger.Error(err.Error(), slog.String("key", "to"))
		return err
	}
	dst, err := converter.ParseFormat(opts.DestinationFormat)
	if err != nil {
		allowed := converter.DestinationFormats()
		err = fmt.Errorf("%w: invalid value '%s' for key 'to' (flag --to). Allowed: %v", converter.ErrConfigValidation, opts.DestinationFormat, allowed)
		logger.Error(err.Error(), slog.String("key", "to"), slog.String("value", opts.DestinationFormat))
		return err
	}
	opts.DestinationFormat = string(dst)

	allowedReport := []converter.ReportFormat{
		converter.ReportFormatText,
		converter.ReportFormatJSON,
		converter.ReportFormatYAML,
		converter.ReportFormatMarkdown,
	}
	opts.ReportFormat = converter.ReportFormat(strings.ToLower(string(opts.ReportFormat)))
	if !isValidEnumValue(opts.ReportFormat, allowedReport) {
		err := fmt.Errorf("%w: invalid value '%s' for key 'report' (flag --report). Allowed: %v", converter.ErrConfigValidation, opts.ReportFormat, allowedReport)
		logger.Error(err.Error(), slog.String("key", "report"), slog.String("value", string(opts.ReportFormat)))
		return err
	}

	// === Encoding Validation ===
	if opts.DefaultEncoding != "" {
		if enc, _ := charset.Lookup(opts.DefaultEncoding); enc == nil {
			err := fmt.Errorf("%w: unknown encoding '%s' for key 'defaultEncoding' (flag --default-encoding)", converter.ErrConfigValidation, opts.DefaultEncoding)
			logger.Error(err.Error(), slog.String("key", "defaultEncoding"), slog.String("value", opts.DefaultEncoding))
			return err
		}
	}

	// === Ignore Patterns ===
	patterns := opts.IgnorePatterns[:0]
	for _, p := range opts.IgnorePatterns {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	opts.IgnorePatterns = patterns

	return nil
}

// --- END OF FINAL REVISED FILE internal/cli/config/config.go ---
