// Package main provides the charsheet command line tool for managing
// character records and inspecting their derived values.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/charsheet/internal/catalog"
	"github.com/cory-johannsen/charsheet/internal/config"
	"github.com/cory-johannsen/charsheet/internal/observability"
	"github.com/cory-johannsen/charsheet/internal/sheet"
	"github.com/cory-johannsen/charsheet/internal/storage"
	"github.com/cory-johannsen/charsheet/internal/storage/file"
	"github.com/cory-johannsen/charsheet/internal/storage/postgres"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "charsheet",
	Short: "D&D 5e character sheet manager",
	Long:  `charsheet manages character records and computes their derived values: armor class, attacks, skills, carried weight, and spellcasting figures.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/dev.yaml", "path to configuration file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// bootstrap builds the object graph the subcommands share: config, logger,
// catalog, store, and a manager with the roster loaded.
func bootstrap(ctx context.Context) (*sheet.Manager, *zap.Logger, error) {
	cfg := config.Default()
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	reg, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}

	var store storage.Store
	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		store = postgres.NewCharacterStore(pool.DB(), logger)
	default:
		store, err = file.NewStore(cfg.Storage.SaveDir, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("opening save dir: %w", err)
		}
	}

	mgr := sheet.NewManager(store, reg, logger)
	if err := mgr.Init(ctx); err != nil {
		return nil, nil, fmt.Errorf("loading roster: %w", err)
	}
	return mgr, logger, nil
}
