package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/harborbank/teller/internal/api"
	"github.com/harborbank/teller/internal/config"
	"github.com/harborbank/teller/internal/events"
	"github.com/harborbank/teller/internal/log"
	"github.com/harborbank/teller/internal/session"
	"github.com/harborbank/teller/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "teller",
	Short: "Terminal client for the Harbor Bank backend",
	Long: `teller is a terminal client for the Harbor Bank backend.
It signs customers and employees in against the bank API, keeps the
session on disk, and opens a full-screen UI where every screen change
passes through the same authorization rules the bank enforces.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("dir", "", "teller directory (default is $HOME/.teller)")
	rootCmd.PersistentFlags().String("api-url", "", "bank API base URL (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (overrides config)")
}

// env bundles everything a command needs: configuration, logging, the
// on-disk session, the event bus, and an API client that reads its
// bearer token from the session on every request.
type env struct {
	dir      string
	cfg      config.Config
	logger   *log.Logger
	store    *storage.FileStore
	bus      *events.Bus
	sessions *session.Manager
	client   *api.Client
}

// newEnv loads config and wires the shared components. Flags win over
// the config file, the config file wins over defaults.
func newEnv(cmd *cobra.Command) (*env, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = config.DefaultDir()
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.LogLevel)
	logCfg.Format = log.ParseFormat(cfg.LogFormat)
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	store := storage.NewFileStore(dir)
	bus := events.NewBus(logger)
	sessions := session.NewManager(store, bus, logger)
	client := api.NewClient(cfg.APIBaseURL).WithTokenSource(sessions.Token)

	return &env{
		dir:      dir,
		cfg:      cfg,
		logger:   logger,
		store:    store,
		bus:      bus,
		sessions: sessions,
		client:   client,
	}, nil
}
