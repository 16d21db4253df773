package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kerbaras/anitrack/pkg/app"
	"github.com/kerbaras/anitrack/pkg/config"
	"github.com/kerbaras/anitrack/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "anitrack",
	Short: "A terminal client for AnimeTracker",
	Long:  "Browse anime, manage your watch progress and favorites, and search, all from the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return a.Run()
	},
}

// newApp loads config, sets up logging, and builds the dependency graph.
// Shared by the TUI and every subcommand.
func newApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}
	return app.New(cfg), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
