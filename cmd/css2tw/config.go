package main

import (
	"fmt"
	"os"
	"strings"

	csstw "github.com/jsdev/css-to-tailwind-classes"
	"github.com/jsdev/css-to-tailwind-classes/internal/report"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	defaultConfigFile = ".css2tw.yaml"
	envPrefix         = "CSS2TW_"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set).
	// Without a koanf instance posflag skips flags left at their default.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSS2TW_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. The first segment is
// the section and the rest is the key inside it:
//
//	CSS2TW_VERBOSE -> verbose
//	CSS2TW_CHECK_STRICT -> check.strict
//	CSS2TW_CONVERT_OUTPUT_FORMAT -> convert.output-format
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// buildSettings constructs the conversion settings from koanf state.
func buildSettings() (csstw.Settings, error) {
	settings := csstw.DefaultSettings()
	if err := k.Unmarshal("settings", &settings); err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	if k.Exists("size") {
		settings.SizeOptimization = k.Bool("size")
	}
	if k.Exists("repeater") {
		settings.RepeaterOptimization = k.Bool("repeater")
	}
	if k.Exists("repeater-threshold") {
		settings.RepeaterThreshold = k.Int("repeater-threshold")
	}
	if k.Exists("arbitrary") {
		settings.ArbitraryValues = k.Bool("arbitrary")
	}
	if k.Exists("short") {
		settings.PreferShortClassNames = k.Bool("short")
	}

	return settings, settings.Validate()
}

// buildConvertConfig constructs the library's Config struct from koanf state.
// Positional patterns win over the configured inputs; with neither, the
// current directory is scanned.
func buildConvertConfig(args []string, logger *zap.Logger) (csstw.Config, error) {
	settings, err := buildSettings()
	if err != nil {
		return csstw.Config{}, err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = k.Strings("convert.inputs")
	}
	if len(inputs) == 0 {
		inputs = []string{"."}
	}

	return csstw.Config{
		Inputs:   inputs,
		Settings: settings,
		Limits: report.Limits{
			MaxIssues:     getIntWithFallback("max-issues", "convert.max-issues", 0),
			MaxSameIssues: getIntWithFallback("max-same-issues", "convert.max-same-issues", 0),
		},
		Logger: logger,
	}, nil
}

// buildOutputOptions constructs the reporter options from koanf state.
func buildOutputOptions() report.Options {
	return report.Options{
		UseColors:        report.ShouldUseColors(getBoolWithFallback("color", "color", false)),
		PrintIssuedLines: getBoolWithFallback("print-lines", "convert.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "convert.print-linter-name", true),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
