package main

import (
	"context"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/config"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/infrastructure/storage"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/repository"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/logger"

	"github.com/spf13/cobra"
)

func newBootstrapCmd() *cobra.Command {
	var skipBucket bool
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the image bucket and MongoDB indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init("catalog-service", cfg.Log.Level)
			return bootstrap(cmd.Context(), cfg, skipBucket)
		},
	}
	cmd.Flags().BoolVar(&skipBucket, "skip-bucket", false, "Do not create the S3 bucket")
	return cmd
}

func bootstrap(ctx context.Context, cfg *config.Config, skipBucket bool) error {
	if !skipBucket {
		images, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			return err
		}
		if err := images.EnsureBucket(ctx); err != nil {
			return err
		}
		logger.Info().Str("bucket", cfg.S3.Bucket).Msg("bucket ready")
	}

	if cfg.StoreDriver != config.StoreMongo {
		logger.Info().Str("store", cfg.StoreDriver).Msg("no indexes to create")
		return nil
	}

	client, err := connectMongo(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := repository.EnsureMongoIndexes(ctx, client.Database(cfg.Mongo.Database)); err != nil {
		return err
	}
	logger.Info().Str("database", cfg.Mongo.Database).Msg("indexes ready")
	return nil
}
