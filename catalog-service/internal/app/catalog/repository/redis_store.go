package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	redisBackend = "redis"
	keyPrefix    = "catalog:"
)

// Key layout:
//
//	catalog:category:<id>                    JSON document
//	catalog:categories                       set of all category ids
//	catalog:categories:status:<status>       set of ids per image upload status
//	catalog:categories:names                 hash lower(name) -> id
//	catalog:product:<id>                     JSON document
//	catalog:products                         set of all product ids
//	catalog:products:category:<categoryId>   set of product ids per category
func categoryKey(id string) string {
	return keyPrefix + "category:" + id
}

func categoryStatusKey(status string) string {
	return keyPrefix + "categories:status:" + status
}

func productKey(id string) string {
	return keyPrefix + "product:" + id
}

func productsByCategoryKey(categoryID string) string {
	return keyPrefix + "products:category:" + categoryID
}

const (
	categoriesSetKey = keyPrefix + "categories"
	categoryNamesKey = keyPrefix + "categories:names"
	productsSetKey   = keyPrefix + "products"
)

// NewRedisClient connects and pings with a short timeout.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// loadDocs resolves the members of an index set into decoded documents.
// Ids whose document has vanished are skipped.
func loadDocs[T any](ctx context.Context, client redis.Cmdable, setKey string, docKey func(string) string) ([]T, error) {
	timer := metrics.NewRedisTimer(metricsService, "smembers_mget")
	defer timer.ObserveDuration()

	ids, err := client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read index %s: %w", setKey, err)
	}

	out := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(id)
	}

	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load documents for %s: %w", setKey, err)
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var doc T
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document from %s: %w", setKey, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getDoc[T any](ctx context.Context, client stringGetter, key string, notFound error) (*T, error) {
	timer := metrics.NewRedisTimer(metricsService, "get")
	defer timer.ObserveDuration()

	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return &doc, nil
}
