package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

type redisProductRepository struct {
	client *redis.Client
}

func NewRedisProductRepository(client *redis.Client) ProductRepository {
	return &redisProductRepository{client: client}
}

func (r *redisProductRepository) Create(ctx context.Context, product *entity.Product) error {
	timer := metrics.NewStoreTimer(metricsService, redisBackend, metrics.StoreOpInsert, productsCollection)
	defer timer.ObserveDuration()

	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, productKey(product.ID), data, 0)
		pipe.SAdd(ctx, productsSetKey, product.ID)
		pipe.SAdd(ctx, productsByCategoryKey(product.CategoryID), product.ID)
		return nil
	})
	if err != nil {
		metrics.RecordStoreError(metricsService, redisBackend, metrics.StoreOpInsert)
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *redisProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	timer := metrics.NewStoreTimer(metricsService, redisBackend, metrics.StoreOpGet, productsCollection)
	defer timer.ObserveDuration()

	product, err := getDoc[entity.Product](ctx, r.client, productKey(id), ErrProductNotFound)
	if err != nil && !errors.Is(err, ErrProductNotFound) {
		metrics.RecordStoreError(metricsService, redisBackend, metrics.StoreOpGet)
	}
	return product, err
}

func (r *redisProductRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	return r.scan(ctx, productsSetKey)
}

func (r *redisProductRepository) GetByCategory(ctx context.Context, categoryID string) ([]entity.Product, error) {
	return r.scan(ctx, productsByCategoryKey(categoryID))
}

func (r *redisProductRepository) scan(ctx context.Context, setKey string) ([]entity.Product, error) {
	timer := metrics.NewStoreTimer(metricsService, redisBackend, metrics.StoreOpScan, productsCollection)
	defer timer.ObserveDuration()

	products, err := loadDocs[entity.Product](ctx, r.client, setKey, productKey)
	if err != nil {
		metrics.RecordStoreError(metricsService, redisBackend, metrics.StoreOpScan)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
