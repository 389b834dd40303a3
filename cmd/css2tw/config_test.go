package main

import (
	"os"
	"path/filepath"
	"testing"

	csstw "github.com/jsdev/css-to-tailwind-classes"
	"github.com/jsdev/css-to-tailwind-classes/internal/report"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".css2tw.yaml")
	configContent := `
verbose: true

settings:
  size: false
  threshold: 4

convert:
  inputs:
    - "web/**/*.css"
  output-format: json
  max-issues: 10

check:
  strict: true
  threshold: 80.0
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.False(t, k.Bool("settings.size"))
	assert.Equal(t, 4, k.Int("settings.threshold"))
	assert.Equal(t, []string{"web/**/*.css"}, k.Strings("convert.inputs"))
	assert.Equal(t, "json", k.String("convert.output-format"))
	assert.Equal(t, 10, k.Int("convert.max-issues"))
	assert.True(t, k.Bool("check.strict"))
	assert.InDelta(t, 80.0, k.Float64("check.threshold"), 0.01)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.css2tw.yaml"))

	config, err := buildConvertConfig(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"."}, config.Inputs)
	assert.Equal(t, csstw.DefaultSettings(), config.Settings)
	assert.Equal(t, report.Limits{}, config.Limits)
}

func TestConfigFileInvalid(t *testing.T) {
	resetKoanf()

	configPath := filepath.Join(t.TempDir(), ".css2tw.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("settings: [unclosed"), 0644))

	err := loadConfigFromPath(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".css2tw.yaml")
	configContent := `
convert:
  output-format: classes
check:
  strict: false
settings:
  threshold: 4
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("CSS2TW_CONVERT_OUTPUT_FORMAT", "markdown")
	t.Setenv("CSS2TW_CHECK_STRICT", "true")
	t.Setenv("CSS2TW_SETTINGS_THRESHOLD", "5")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "markdown", k.String("convert.output-format"))
	assert.True(t, k.Bool("check.strict"))

	settings, err := buildSettings()
	require.NoError(t, err)
	assert.Equal(t, 5, settings.RepeaterThreshold)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{"CSS2TW_VERBOSE", "verbose"},
		{"CSS2TW_CHECK_STRICT", "check.strict"},
		{"CSS2TW_CONVERT_OUTPUT_FORMAT", "convert.output-format"},
		{"CSS2TW_CONVERT_MAX_SAME_ISSUES", "convert.max-same-issues"},
		{"CSS2TW_SETTINGS_SHORT", "settings.short"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.expected, envKey(tt.env))
		})
	}
}

func TestBuildSettings(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]interface{}
		expected func(*csstw.Settings)
		wantErr  error
	}{
		{
			name:     "defaults",
			expected: func(*csstw.Settings) {},
		},
		{
			name:   "config keys",
			values: map[string]interface{}{"settings.size": false, "settings.short": false},
			expected: func(s *csstw.Settings) {
				s.SizeOptimization = false
				s.PreferShortClassNames = false
			},
		},
		{
			name:   "flag wins over config",
			values: map[string]interface{}{"settings.threshold": 5, "repeater-threshold": 2},
			expected: func(s *csstw.Settings) {
				s.RepeaterThreshold = 2
			},
		},
		{
			name:   "flags",
			values: map[string]interface{}{"arbitrary": false, "repeater": false, "size": false},
			expected: func(s *csstw.Settings) {
				s.ArbitraryValues = false
				s.RepeaterOptimization = false
				s.SizeOptimization = false
			},
		},
		{
			name:    "invalid threshold",
			values:  map[string]interface{}{"repeater-threshold": 1},
			wantErr: csstw.ErrInvalidThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			for key, v := range tt.values {
				require.NoError(t, k.Set(key, v))
			}

			settings, err := buildSettings()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			expected := csstw.DefaultSettings()
			tt.expected(&expected)
			assert.Equal(t, expected, settings)
		})
	}
}

func TestBuildConvertConfig(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("convert.inputs", []string{"styles/"}))
	require.NoError(t, k.Set("convert.max-same-issues", 2))
	require.NoError(t, k.Set("max-issues", 7))

	logger := zap.NewNop()
	config, err := buildConvertConfig(nil, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"styles/"}, config.Inputs)
	assert.Equal(t, report.Limits{MaxIssues: 7, MaxSameIssues: 2}, config.Limits)
	assert.Same(t, logger, config.Logger)

	// Positional patterns win over configured inputs
	config, err = buildConvertConfig([]string{"a.css", "b.css"}, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.css", "b.css"}, config.Inputs)

	require.NoError(t, k.Set("repeater-threshold", 0))
	_, err = buildConvertConfig(nil, logger)
	require.ErrorIs(t, err, csstw.ErrInvalidThreshold)
}

func TestBuildOutputOptions(t *testing.T) {
	resetKoanf()

	opts := buildOutputOptions()
	assert.True(t, opts.PrintIssuedLines)
	assert.True(t, opts.PrintLinterName)

	require.NoError(t, k.Set("convert.print-lines", false))
	require.NoError(t, k.Set("print-linter-name", false))
	require.NoError(t, k.Set("color", true))

	opts = buildOutputOptions()
	assert.False(t, opts.PrintIssuedLines)
	assert.False(t, opts.PrintLinterName)
	assert.True(t, opts.UseColors)
}

func TestFallbackHelpers(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("check.threshold", 75.5))
	require.NoError(t, k.Set("output-format", "json"))
	require.NoError(t, k.Set("convert.output-format", "full"))

	assert.InDelta(t, 75.5, getFloat64WithFallback("threshold", "check.threshold", 0), 0.01)
	assert.InDelta(t, 90.0, getFloat64WithFallback("missing", "also.missing", 90), 0.01)
	assert.Equal(t, "json", getStringWithFallback("output-format", "convert.output-format", "classes"))
	assert.Equal(t, "classes", getStringWithFallback("missing", "also.missing", "classes"))
	assert.Equal(t, 3, getIntWithFallback("missing", "also.missing", 3))
	assert.True(t, getBoolWithFallback("missing", "also.missing", true))
}
