package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/masajidusa/pipeline/internal/api"
	"github.com/masajidusa/pipeline/internal/config"
	"github.com/masajidusa/pipeline/internal/home"
	"github.com/masajidusa/pipeline/internal/overpass"
	"github.com/masajidusa/pipeline/internal/pipeline"
	"github.com/masajidusa/pipeline/internal/store"
	"github.com/masajidusa/pipeline/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "masajid",
	Short: "Masajid dataset pipeline backed by OpenStreetMap",
	Long: `Masajid collects places of worship from the OpenStreetMap Overpass API
and maintains a per-region JSON dataset plus an aggregate index used to
build the static site.

The pipeline includes:
  - Region-partitioned fetching with retry and rate-limiting courtesy
  - Normalization of nodes, ways and relations into uniform records
  - Cleanup of placeholder-named records with index reconciliation
  - Hugo content page generation from the aggregate index`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.masajid/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "masajid home directory (default: ~/.masajid)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

// services holds everything a pipeline command needs.
type services struct {
	cfg      *config.Config
	home     *home.Dir
	store    *store.Store
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
}

// newServices builds the service graph the way every data command uses
// it: logger, home dir, config manager, client, store, pipeline.
func newServices() (*services, error) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	h, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}
	if err := h.EnsureExists(); err != nil {
		return nil, err
	}

	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg := cm.Get()

	clientCfg := cfg.OverpassClientConfig()
	clientCfg.Logger = logger
	client := overpass.New(clientCfg)

	// A full fetch run lasts long enough for a config edit to matter;
	// hot reload adjusts the client's retry and pause tunables in place.
	cm.OnChange(func(next *config.Config) {
		client.Reconfigure(next.OverpassClientConfig())
		logger.Info("config reloaded", "pause_seconds", next.Overpass.RequestPauseSeconds)
	})
	cm.WatchConfig()

	st := store.New(h)
	p := pipeline.New(cfg.Catalog(), client, st, logger)

	return &services{
		cfg:      cfg,
		home:     h,
		store:    st,
		pipeline: p,
		logger:   logger,
	}, nil
}
