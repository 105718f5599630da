package service

import (
	"context"
	"errors"
	"time"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/infrastructure"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/repository"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/metrics"

	"github.com/google/uuid"
)

const msgCategoryReferenceInvalid = "productCategory is incorrect. Category ID does not exist"

type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	events       eventPublisher
}

// NewProductService wires the service. publisher may be nil.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	publisher infrastructure.MessagePublisher,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		events:       newEventPublisher(publisher),
	}
}

// CreateProduct resolves productCategory (creating the embedded category for
// NewCategory) and persists the product.
func (s *ProductService) CreateProduct(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error) {
	if err := ValidateProductInput(req); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, req)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.NewString(),
		Name:        req.ProductName,
		Description: req.ProductDescription,
		Price:       req.ProductPrice,
		CategoryID:  categoryID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, upstreamError("failed to create product", err)
	}

	metrics.ProductsCreated.Inc()
	s.events.publish(ctx, entity.EventProductCreated, product.ID, product.CategoryID, product.Name)

	return product, nil
}

func (s *ProductService) resolveCategory(ctx context.Context, req *entity.CreateProductRequest) (string, error) {
	if req.ProductCategory == entity.NewCategorySentinel {
		return s.createInlineCategory(ctx, req.Category)
	}

	_, err := s.categoryRepo.GetByID(ctx, req.ProductCategory)
	switch {
	case err == nil:
		return req.ProductCategory, nil
	case errors.Is(err, repository.ErrCategoryNotFound):
		return "", referenceError(msgCategoryReferenceInvalid)
	default:
		return "", upstreamError("failed to check product category", err)
	}
}

// createInlineCategory persists a bare category: no images, no upload status.
func (s *ProductService) createInlineCategory(ctx context.Context, in *entity.InlineCategory) (string, error) {
	_, err := s.categoryRepo.FindByName(ctx, in.CategoryName)
	switch {
	case err == nil:
		return "", duplicateCategoryError(in.CategoryName)
	case !errors.Is(err, repository.ErrCategoryNotFound):
		return "", upstreamError("failed to check category name", err)
	}

	category := &entity.Category{
		ID:          uuid.NewString(),
		Name:        in.CategoryName,
		SubText:     in.CategorySubText,
		Description: in.CategoryDescription,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return "", upstreamError("failed to create category", err)
	}

	metrics.CategoriesCreated.WithLabelValues("inline").Inc()
	s.events.publish(ctx, entity.EventCategoryCreated, category.ID, category.ID, category.Name)

	return category.ID, nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, upstreamError("failed to list products", err)
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	if id == "" {
		return nil, validationError(msgProductIDRequired)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, notFoundError(msgProductNotFound, err)
		}
		return nil, upstreamError("failed to get product", err)
	}
	return product, nil
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryID string) ([]entity.Product, error) {
	if categoryID == "" {
		return nil, validationError(msgCategoryIDRequired)
	}

	products, err := s.productRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, upstreamError("failed to list products by category", err)
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products, nil
}
