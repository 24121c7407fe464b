package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/turtle/internal/config"
	"github.com/mouse-blink/turtle/internal/domain"
	domainmocks "github.com/mouse-blink/turtle/internal/domain/mocks"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeWithMock runs args against a fresh root command whose workflow is
// replaced by mockWorkflow. The config file points into a temp dir so the
// user's own configuration never leaks into tests.
func executeWithMock(t *testing.T, mockWorkflow domain.Workflow, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	if sub != nil {
		cmd.AddCommand(sub)
	}

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	hasConfig := false
	for _, arg := range args {
		if arg == "--config" {
			hasConfig = true
		}
	}

	if !hasConfig {
		args = append(args, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	}

	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRootCmd_LoadsDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Samples().Return(nil).Once()

	_, err := executeWithMock(t, mockWorkflow, newSamplesCmd(), "samples")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
}

func TestRootCmd_ConfigFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[general]
reports_dir = "saved"
parallel = 3

[log]
level = "error"
`), 0o600))

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: "elsewhere"}).Return(nil).Once()

	_, err := executeWithMock(t, mockWorkflow, newViewCmd(),
		"view", "--config", path, "--log-level", "debug", "--reports", "elsewhere")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.General.Parallel)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "elsewhere", cfg.General.ReportsDir)
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nmode = \"fancy\"\n"), 0o600))

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeWithMock(t, mockWorkflow, newSamplesCmd(), "samples", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.mode")
}

func TestRootCmd_InvalidLogLevelFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeWithMock(t, mockWorkflow, newSamplesCmd(), "samples", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `log.level must be one of debug, info, warn, error; got "loud"`)
}

func TestUseTTY(t *testing.T) {
	original := cfg
	t.Cleanup(func() {
		cfg = original
		noTTYFlag = false
	})

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	tests := []struct {
		name  string
		mode  string
		noTTY bool
		want  bool
	}{
		{name: "auto with buffer", mode: config.UIModeAuto, want: false},
		{name: "forced tui", mode: config.UIModeTUI, want: true},
		{name: "forced simple", mode: config.UIModeSimple, want: false},
		{name: "no-tty wins over tui", mode: config.UIModeTUI, noTTY: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg = config.Default()
			cfg.UI.Mode = tt.mode
			noTTYFlag = tt.noTTY

			assert.Equal(t, tt.want, useTTY(cmd))
		})
	}
}

func TestProgramSource(t *testing.T) {
	source := programSource([]string{"prog.txt"}, "")
	assert.Equal(t, "prog.txt", string(source.Path))
	assert.Empty(t, source.Sample)

	source = programSource(nil, "basic")
	assert.Empty(t, source.Path)
	assert.Equal(t, "basic", source.Sample)
}
