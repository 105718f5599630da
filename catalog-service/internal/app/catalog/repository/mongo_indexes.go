package repository

import (
	"context"
	"fmt"

	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the secondary indexes both collections rely on.
// CreateMany is a no-op for indexes that already exist with the same keys and options.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	timer := metrics.NewStoreTimer(metricsService, mongoBackend, metrics.StoreOpIndex, "*")
	defer timer.ObserveDuration()

	categoryIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "categoryName", Value: 1}},
			Options: options.Index().SetName("category_name_ci_idx").SetCollation(caseInsensitive),
		},
		{
			Keys:    bson.D{{Key: "imageUploadStatus", Value: 1}},
			Options: options.Index().SetName("image_upload_status_idx"),
		},
	}
	if _, err := db.Collection(categoriesCollection).Indexes().CreateMany(ctx, categoryIndexes); err != nil {
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpIndex)
		return fmt.Errorf("failed to create category indexes: %w", err)
	}

	productIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "productCategory", Value: 1}},
		Options: options.Index().SetName("product_category_idx"),
	}
	if _, err := db.Collection(productsCollection).Indexes().CreateOne(ctx, productIndex); err != nil {
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpIndex)
		return fmt.Errorf("failed to create product indexes: %w", err)
	}
	return nil
}
