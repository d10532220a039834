package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ctxmenu/ctxmenu/internal/config"
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
		menuFile   string
		themeName  string
	}
	logger *slog.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "ctxmenu-demo",
	Short: "Interactive demo for ctxmenu pop-up menus",
	Long: `ctxmenu-demo hosts a small document of target boxes in the terminal.

Right-click a target to open its context menu; left-click, scroll, or
resize to dismiss it. Menu definitions can be supplied from a YAML file.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if globalOpts.themeName != "" {
			cfg.Theme.Name = globalOpts.themeName
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/ctxmenu/config.toml)")
	rootCmd.Flags().StringVar(&globalOpts.menuFile, "menu", "",
		"Path to a YAML menu definition (default: built-in demo menu)")
	rootCmd.Flags().StringVar(&globalOpts.themeName, "theme", "",
		"Theme name or bundled theme (default: from config)")
}

func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
