package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{collection: db.Collection(productsCollection)}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *entity.Product) error {
	timer := metrics.NewStoreTimer(metricsService, mongoBackend, metrics.StoreOpInsert, productsCollection)
	defer timer.ObserveDuration()

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpInsert)
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	timer := metrics.NewStoreTimer(metricsService, mongoBackend, metrics.StoreOpGet, productsCollection)
	defer timer.ObserveDuration()

	var product entity.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpGet)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *mongoProductRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	return r.find(ctx, bson.M{})
}

// GetByCategory uses the productCategory index.
func (r *mongoProductRepository) GetByCategory(ctx context.Context, categoryID string) ([]entity.Product, error) {
	return r.find(ctx, bson.M{"productCategory": categoryID})
}

func (r *mongoProductRepository) find(ctx context.Context, filter bson.M) ([]entity.Product, error) {
	timer := metrics.NewStoreTimer(metricsService, mongoBackend, metrics.StoreOpScan, productsCollection)
	defer timer.ObserveDuration()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpScan)
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []entity.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpScan)
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}
