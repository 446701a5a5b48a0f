// Package main provides the CLI entrypoint for banner.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jquag/banner/internal/config"
	"github.com/jquag/banner/internal/demo"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		watch      bool
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "banner [script.yaml]",
	Short: "Transient notification banner presenter for terminals",
	Long: `banner shows short-lived notification banners in the terminal: a title
with an optional icon, animated image sequence, or loading spinner,
animated into and out of view with queued transitions between
successive notifications.

Running banner plays a scripted sequence of notifications. Pass a YAML
script file to play your own sequence, or run without arguments for the
built-in demo.

Script steps look like:

  - op: show            # present, show, change, or hide
    title: "Searching..."
    color: "#FA6459"
    kind: searching     # default or searching
    wait: 2s            # delay before the next step`,
	Args:    cobra.MaximumNArgs(1),
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.Load(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	RunE: runDemo,
}

// runDemo plays the script through a banner on the terminal host.
func runDemo(cmd *cobra.Command, args []string) error {
	steps := demo.DefaultScript()
	if len(args) == 1 {
		var err error
		steps, err = demo.LoadScript(args[0])
		if err != nil {
			return err
		}
	}

	var configCh <-chan *config.Config
	if globalOpts.watch {
		watcher, err := config.NewWatcher(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to create config watcher: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to start config watcher: %w", err)
		}
		defer watcher.Stop()
		configCh = watcher.Changes()
	}

	m, err := demo.NewModel(cfg, steps, configCh, logger)
	if err != nil {
		return err
	}

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/banner/config.toml)")
	rootCmd.Flags().BoolVar(&globalOpts.watch, "watch", false,
		"Reload the config file on change and apply new timings live")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for the TUI
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
