package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/config"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/infrastructure"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/infrastructure/messaging"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/repository"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectAttempts = 10

// stores bundles the repositories of the configured driver with a close hook.
type stores struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	close      func(ctx context.Context) error
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreRedis:
		client, err := repository.NewRedisClient(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("addr", cfg.Redis.Address()).Msg("connected to Redis")
		return &stores{
			categories: repository.NewRedisCategoryRepository(client),
			products:   repository.NewRedisProductRepository(client),
			close:      func(context.Context) error { return client.Close() },
		}, nil
	default:
		client, err := connectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			logger.Warn().Err(err).Msg("failed to ensure MongoDB indexes")
		}
		logger.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")
		return &stores{
			categories: repository.NewMongoCategoryRepository(db),
			products:   repository.NewMongoProductRepository(db),
			close:      client.Disconnect,
		}, nil
	}
}

// connectMongo retries while the database container is still starting.
func connectMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	for i := 0; i < connectAttempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = client.Ping(pingCtx, readpref.Primary())
		cancel()
		if err == nil {
			return client, nil
		}

		logger.Warn().Err(err).Int("attempt", i+1).Int("max_attempts", connectAttempts).Msg("MongoDB not ready")
		select {
		case <-ctx.Done():
			_ = client.Disconnect(context.Background())
			return nil, ctx.Err()
		case <-time.After(3 * time.Second):
		}
	}

	_ = client.Disconnect(context.Background())
	return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", connectAttempts, err)
}

func newPublisher(cfg config.KafkaConfig) infrastructure.MessagePublisher {
	if !cfg.Enabled {
		logger.Info().Msg("Kafka disabled, catalog events are dropped")
		return messaging.NoopPublisher{}
	}
	logger.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("Kafka producer initialized")
	return messaging.NewKafkaProducer(cfg.Brokers, cfg.Topic)
}
