package cmd

import (
	"log"

	"itac-api/core/config"
	"itac-api/core/dataset"
	"itac-api/core/logger"
	"itac-api/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download the latest dataset artifacts",
	Long: `Downloads the ITAC database and the hierarchy documents from the
artifact bucket published by the parser pipeline. Run it before start
or whenever a fresh dataset is released.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		artifacts := []dataset.Artifact{
			{Object: "itac_database.db", Path: cfg.Database.Path},
			{Object: "naics_hierarchy.json", Path: cfg.Naics.Path},
			{Object: "arc_hierarchy.json", Path: cfg.Arc.Path},
		}

		if err := dataset.Sync(cmd.Context(), store, cfg.Storage.Bucket, artifacts, logg); err != nil {
			return err
		}

		logg.Info("Dataset synced",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.Int("artifacts", len(artifacts)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
