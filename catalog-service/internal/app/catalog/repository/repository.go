package repository

import (
	"context"
	"errors"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

const (
	metricsService = "catalog"

	categoriesCollection = "categories"
	productsCollection   = "products"
)

// CategoryRepository persists categories. Name lookups are case-insensitive.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetAll(ctx context.Context) ([]entity.Category, error)
	GetByStatus(ctx context.Context, status entity.ImageUploadStatus) ([]entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	// UpdateImageUploadStatus only touches an existing record and returns it as stored afterwards.
	UpdateImageUploadStatus(ctx context.Context, id string, status entity.ImageUploadStatus) (*entity.Category, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetAll(ctx context.Context) ([]entity.Product, error)
	GetByCategory(ctx context.Context, categoryID string) ([]entity.Product, error)
}
