package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoBackend = "mongo"

// caseInsensitive compares ignoring case but not diacritics.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

type mongoCategoryRepository struct {
	collection *mongo.Collection
}

// NewMongoCategoryRepository returns a CategoryRepository over the categories collection.
// Indexes are created separately by EnsureMongoIndexes.
func NewMongoCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepository{collection: db.Collection(categoriesCollection)}
}

func (r *mongoCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	timer := metrics.NewStoreTimer(metricsService, mongoBackend, metrics.StoreOpInsert, categoriesCollection)
	defer timer.ObserveDuration()

	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpInsert)
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *mongoCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	timer := metrics.NewStoreTimer(metricsService, mongoBackend, metrics.StoreOpGet, categoriesCollection)
	defer timer.ObserveDuration()

	var category entity.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpGet)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (r *mongoCategoryRepository) GetAll(ctx context.Context) ([]entity.Category, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoCategoryRepository) GetByStatus(ctx context.Context, status entity.ImageUploadStatus) ([]entity.Category, error) {
	return r.find(ctx, bson.M{"imageUploadStatus": status})
}

func (r *mongoCategoryRepository) find(ctx context.Context, filter bson.M) ([]entity.Category, error) {
	timer := metrics.NewStoreTimer(metricsService, mongoBackend, metrics.StoreOpScan, categoriesCollection)
	defer timer.ObserveDuration()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpScan)
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []entity.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpScan)
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (r *mongoCategoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	timer := metrics.NewStoreTimer(metricsService, mongoBackend, metrics.StoreOpGet, categoriesCollection)
	defer timer.ObserveDuration()

	opts := options.FindOne().SetCollation(caseInsensitive)

	var category entity.Category
	err := r.collection.FindOne(ctx, bson.M{"categoryName": name}, opts).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpGet)
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}
	return &category, nil
}

func (r *mongoCategoryRepository) UpdateImageUploadStatus(ctx context.Context, id string, status entity.ImageUploadStatus) (*entity.Category, error) {
	timer := metrics.NewStoreTimer(metricsService, mongoBackend, metrics.StoreOpUpdate, categoriesCollection)
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"imageUploadStatus": status}}

	var category entity.Category
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		metrics.RecordStoreError(metricsService, mongoBackend, metrics.StoreOpUpdate)
		return nil, fmt.Errorf("failed to update image upload status: %w", err)
	}
	return &category, nil
}
