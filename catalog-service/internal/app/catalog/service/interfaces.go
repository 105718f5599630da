package service

import (
	"context"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
)

// Every error returned by these interfaces is a *Error; use KindOf to classify.

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, req *entity.CreateCategoryRequest) (*entity.Category, error)
	GetAllCategories(ctx context.Context) ([]entity.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*entity.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*entity.Category, error)
	UpdateImageUploadStatus(ctx context.Context, id string, status string) (*entity.Category, error)
}

type ProductServiceInterface interface {
	CreateProduct(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error)
	GetAllProducts(ctx context.Context) ([]entity.Product, error)
	GetProductByID(ctx context.Context, id string) (*entity.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID string) ([]entity.Product, error)
}
