package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

type redisCategoryRepository struct {
	client *redis.Client
}

// NewRedisCategoryRepository stores categories as JSON documents with set indexes.
func NewRedisCategoryRepository(client *redis.Client) CategoryRepository {
	return &redisCategoryRepository{client: client}
}

func nameKey(name string) string {
	return strings.ToLower(name)
}

func (r *redisCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	timer := metrics.NewStoreTimer(metricsService, redisBackend, metrics.StoreOpInsert, categoriesCollection)
	defer timer.ObserveDuration()

	data, err := json.Marshal(category)
	if err != nil {
		return fmt.Errorf("failed to marshal category: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, categoryKey(category.ID), data, 0)
		pipe.SAdd(ctx, categoriesSetKey, category.ID)
		pipe.HSetNX(ctx, categoryNamesKey, nameKey(category.Name), category.ID)
		if category.ImageUploadStatus != "" {
			pipe.SAdd(ctx, categoryStatusKey(string(category.ImageUploadStatus)), category.ID)
		}
		return nil
	})
	if err != nil {
		metrics.RecordStoreError(metricsService, redisBackend, metrics.StoreOpInsert)
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *redisCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	timer := metrics.NewStoreTimer(metricsService, redisBackend, metrics.StoreOpGet, categoriesCollection)
	defer timer.ObserveDuration()

	category, err := getDoc[entity.Category](ctx, r.client, categoryKey(id), ErrCategoryNotFound)
	if err != nil && !errors.Is(err, ErrCategoryNotFound) {
		metrics.RecordStoreError(metricsService, redisBackend, metrics.StoreOpGet)
	}
	return category, err
}

func (r *redisCategoryRepository) GetAll(ctx context.Context) ([]entity.Category, error) {
	return r.scan(ctx, categoriesSetKey)
}

func (r *redisCategoryRepository) GetByStatus(ctx context.Context, status entity.ImageUploadStatus) ([]entity.Category, error) {
	return r.scan(ctx, categoryStatusKey(string(status)))
}

func (r *redisCategoryRepository) scan(ctx context.Context, setKey string) ([]entity.Category, error) {
	timer := metrics.NewStoreTimer(metricsService, redisBackend, metrics.StoreOpScan, categoriesCollection)
	defer timer.ObserveDuration()

	categories, err := loadDocs[entity.Category](ctx, r.client, setKey, categoryKey)
	if err != nil {
		metrics.RecordStoreError(metricsService, redisBackend, metrics.StoreOpScan)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *redisCategoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	timer := metrics.NewStoreTimer(metricsService, redisBackend, metrics.StoreOpGet, categoriesCollection)
	defer timer.ObserveDuration()

	id, err := r.client.HGet(ctx, categoryNamesKey, nameKey(name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCategoryNotFound
		}
		metrics.RecordStoreError(metricsService, redisBackend, metrics.StoreOpGet)
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}

	return getDoc[entity.Category](ctx, r.client, categoryKey(id), ErrCategoryNotFound)
}

// UpdateImageUploadStatus rewrites the document under WATCH so a concurrent
// writer aborts the transaction instead of being overwritten.
func (r *redisCategoryRepository) UpdateImageUploadStatus(ctx context.Context, id string, status entity.ImageUploadStatus) (*entity.Category, error) {
	timer := metrics.NewStoreTimer(metricsService, redisBackend, metrics.StoreOpUpdate, categoriesCollection)
	defer timer.ObserveDuration()

	key := categoryKey(id)
	var updated *entity.Category

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		category, err := getDoc[entity.Category](ctx, tx, key, ErrCategoryNotFound)
		if err != nil {
			return err
		}

		previous := category.ImageUploadStatus
		category.ImageUploadStatus = status

		data, err := json.Marshal(category)
		if err != nil {
			return fmt.Errorf("failed to marshal category: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			if previous != "" && previous != status {
				pipe.SRem(ctx, categoryStatusKey(string(previous)), id)
			}
			pipe.SAdd(ctx, categoryStatusKey(string(status)), id)
			return nil
		})
		if err != nil {
			return err
		}

		updated = category
		return nil
	}, key)

	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		metrics.RecordStoreError(metricsService, redisBackend, metrics.StoreOpUpdate)
		return nil, fmt.Errorf("failed to update image upload status: %w", err)
	}
	return updated, nil
}
