// Package root contains the root command for the application
package root

import (
	"fmt"
	"time"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/budget"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/config"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/store"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg is the resolved application configuration
	Cfg *config.Config

	// Svc is the budget service wired to the persistent store
	Svc *budget.Service

	kvStore store.Store

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-manager",
		Short: "A CLI tool to manage a household envelope budget.",
		Long: `budget-manager tracks monthly income and spending envelopes,
imports bank and savings-account CSV exports, and computes the
besoins/dettes/epargne/envies cascade for each month of a year.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budget-manager!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			Cfg = cfg

			Log = config.NewLogger(cfg)
			logging.SetDefault(Log)

			s, err := store.NewSQLiteStore(cfg.StorePath())
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			kvStore = s

			repo := store.NewRepository(s, Log)
			year := repo.SelectedYear(time.Now().Year())
			if Year != 0 {
				year = Year
				if err := repo.SaveSelectedYear(year); err != nil {
					Log.WithError(err).Warn("Failed to persist selected year")
				}
			}
			Svc = budget.NewService(repo, year, Log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if kvStore == nil {
				return
			}
			if err := kvStore.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close store")
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Year is the working year; zero means the persisted selection
	Year int
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().IntVarP(&Year, "year", "y", 0, "Working year (defaults to the last selected year)")
}
