package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".turtle-reports", cfg.General.ReportsDir)
	assert.Equal(t, 1, cfg.General.Parallel)
	assert.False(t, cfg.General.SaveReports)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, UIModeAuto, cfg.UI.Mode)
	assert.Equal(t, 150, cfg.UI.StepDelayMS)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := writeConfig(t, `
[general]
reports_dir = "~/turtle/reports"
save_reports = true
parallel = 4

[log]
level = "debug"
format = "json"

[ui]
mode = "simple"
step_delay_ms = 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "turtle/reports"), cfg.General.ReportsDir)
	assert.True(t, cfg.General.SaveReports)
	assert.Equal(t, 4, cfg.General.Parallel)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, UIModeSimple, cfg.UI.Mode)
	assert.Equal(t, 0, cfg.UI.StepDelayMS)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[ui]\nmode = \"tui\"\n"))
	require.NoError(t, err)

	assert.Equal(t, UIModeTUI, cfg.UI.Mode)
	assert.Equal(t, 1, cfg.General.Parallel)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"malformed", "[general\nparallel = ", "parsing config"},
		{"bad ui mode", "[ui]\nmode = \"gui\"", "ui.mode must be one of auto, simple, tui"},
		{"bad log level", "[log]\nlevel = \"verbose\"", "log.level must be one of debug, info, warn, error"},
		{"bad log format", "[log]\nformat = \"xml\"", "log.format must be text or json"},
		{"zero parallel", "[general]\nparallel = 0", "general.parallel must be at least 1"},
		{"negative delay", "[ui]\nstep_delay_ms = -5", "ui.step_delay_ms must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_LogLevelIsCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "DEBUG"

	assert.NoError(t, cfg.Validate())
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative", "relative"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.input), "ExpandPath(%q)", tt.input)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	assert.True(t, strings.HasSuffix(DefaultConfigPath(), filepath.Join(".config", "turtle", "config.toml")))
}
