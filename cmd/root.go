// Package cmd provides the root command and CLI setup for turtle.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mouse-blink/turtle/internal/adapter"
	"github.com/mouse-blink/turtle/internal/config"
	"github.com/mouse-blink/turtle/internal/controller"
	"github.com/mouse-blink/turtle/internal/domain"
	"github.com/mouse-blink/turtle/internal/logging"
	m "github.com/mouse-blink/turtle/internal/model"
	"github.com/spf13/cobra"
)

var cfg *config.Config
var logger *slog.Logger
var logCloser io.Closer
var workflow domain.Workflow
var ui controller.UI

var configPathFlag string
var logLevelFlag string
var noTTYFlag bool
var reportsDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "turtle",
		Short: "Turtle graphics command interpreter and grid pathfinding tutor",
		Long: `Turtle runs small command programs (Move, Turn, Repeat, RepeatUntil) that
steer a character across an unbounded plane or through a grid maze, and
reports the trace, the final position and whether the end cell was reached.

Programs come from text, JSON or YAML files or from the built-in samples:
  turtle run program.txt --grid maze.txt
  turtle run --sample expert
  turtle export program.txt --format html -o program.html`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", "", "config file (default ~/.config/turtle/config.toml)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&noTTYFlag, "no-tty", false, "disable the interactive terminal UI")
	cmd.PersistentFlags().StringVarP(&reportsDirFlag, "reports", "r", "", "directory for run reports (default from config)")

	return cmd
}

// setup loads the configuration and wires the workflow. A workflow that is
// already set is kept, which lets tests inject mocks.
func setup(cmd *cobra.Command) error {
	configPath := configPathFlag
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if logLevelFlag != "" {
		loaded.Log.Level = logLevelFlag
	}

	if reportsDirFlag != "" {
		loaded.General.ReportsDir = config.ExpandPath(reportsDirFlag)
	}

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	cfg = loaded

	if workflow != nil {
		return nil
	}

	logger, logCloser, err = logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ui = controller.NewUI(cmd, useTTY(cmd),
		controller.WithStepDelay(time.Duration(cfg.UI.StepDelayMS)*time.Millisecond))

	fs := adapter.NewLocalFSAdapter()
	workflow = domain.NewWorkflow(
		fs,
		adapter.NewReportStore(fs),
		adapter.NewFSNotifyWatcher(0),
		ui,
		logger,
	)

	logger.Debug("turtle configured", "config", configPath, "ui", cfg.UI.Mode)

	return nil
}

func useTTY(cmd *cobra.Command) bool {
	if noTTYFlag {
		return false
	}

	switch cfg.UI.Mode {
	case config.UIModeSimple:
		return false
	case config.UIModeTUI:
		return true
	default:
		return controller.IsTTY(cmd.OutOrStdout())
	}
}

func reportsDir() m.Path {
	return m.Path(cfg.General.ReportsDir)
}

func programSource(args []string, sample string) m.ProgramSource {
	source := m.ProgramSource{Sample: sample}
	if len(args) > 0 {
		source.Path = m.Path(args[0])
	}

	return source
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if logCloser != nil {
		_ = logCloser.Close()
	}

	if err != nil {
		os.Exit(1)
	}
}
