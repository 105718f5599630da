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

// CategoryService owns category validation, the duplicate-name rule and the
// pending -> completed image upload workflow.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	storage      infrastructure.ImageStorage
	events       eventPublisher
}

// NewCategoryService wires the service. publisher may be nil.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	storage infrastructure.ImageStorage,
	publisher infrastructure.MessagePublisher,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		storage:      storage,
		events:       newEventPublisher(publisher),
	}
}

// CreateCategory validates the request, rejects duplicate names, issues one
// upload URL per image and persists the category as pending. Nothing is
// persisted if any URL cannot be issued.
func (s *CategoryService) CreateCategory(ctx context.Context, req *entity.CreateCategoryRequest) (*entity.Category, error) {
	if err := ValidateCategoryInput(req); err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, req.CategoryName); err != nil {
		return nil, err
	}

	id := uuid.NewString()

	urls := make(map[string]string, len(req.CategoryImageNames))
	for _, imageName := range req.CategoryImageNames {
		u, err := s.storage.PresignUploadURL(ctx, id, imageName)
		if err != nil {
			return nil, upstreamError("failed to generate pre-signed URL", err)
		}
		urls[imageName] = u
	}

	category := &entity.Category{
		ID:                id,
		Name:              req.CategoryName,
		SubText:           req.CategorySubText,
		Description:       req.CategoryDescription,
		ImageNames:        append([]string(nil), req.CategoryImageNames...),
		PresignedURLs:     urls,
		ImagesPath:        s.storage.ImagesPath(id),
		ImageUploadStatus: entity.ImageUploadPending,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, upstreamError("failed to create category", err)
	}

	metrics.CategoriesCreated.WithLabelValues("direct").Inc()
	metrics.PresignedURLsIssued.Add(float64(len(urls)))
	s.events.publish(ctx, entity.EventCategoryCreated, category.ID, category.ID, category.Name)

	return category, nil
}

// ensureNameAvailable fails with a duplicate error if any category, in any
// upload state, already uses name (case-insensitive).
func (s *CategoryService) ensureNameAvailable(ctx context.Context, name string) error {
	_, err := s.categoryRepo.FindByName(ctx, name)
	switch {
	case err == nil:
		return duplicateCategoryError(name)
	case errors.Is(err, repository.ErrCategoryNotFound):
		return nil
	default:
		return upstreamError("failed to check category name", err)
	}
}

// GetAllCategories lists completed categories with imagesPath resolved to a public URL.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categoryRepo.GetByStatus(ctx, entity.ImageUploadCompleted)
	if err != nil {
		return nil, upstreamError("failed to list categories", err)
	}
	if categories == nil {
		return []entity.Category{}, nil
	}

	for i := range categories {
		if categories[i].ImagesPath != "" {
			categories[i].ImagesPath = s.storage.PublicURL(categories[i].ImagesPath)
		}
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (*entity.Category, error) {
	if id == "" {
		return nil, validationError(msgCategoryIDRequired)
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, notFoundError(msgCategoryNotFound, err)
		}
		return nil, upstreamError("failed to get category", err)
	}
	return category, nil
}

// FindCategoryByName ignores upload status, unlike GetAllCategories.
func (s *CategoryService) FindCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, notFoundError(msgCategoryNotFound, err)
		}
		return nil, upstreamError("failed to find category", err)
	}
	return category, nil
}

// UpdateImageUploadStatus marks a category's images as uploaded. Repeating
// the call on a completed category succeeds and publishes again, but only the
// first transition is counted.
func (s *CategoryService) UpdateImageUploadStatus(ctx context.Context, id string, status string) (*entity.Category, error) {
	if id == "" {
		return nil, validationError(msgCategoryIDRequired)
	}
	if err := ValidateImageUploadStatus(status); err != nil {
		return nil, err
	}

	current, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.UpdateImageUploadStatus(ctx, id, entity.ImageUploadStatus(status))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, notFoundError(msgCategoryNotFound, err)
		}
		return nil, upstreamError("failed to update image upload status", err)
	}

	if current.ImageUploadStatus != entity.ImageUploadCompleted {
		metrics.CategoryImagesCompleted.Inc()
	}
	s.events.publish(ctx, entity.EventCategoryImagesUploaded, category.ID, category.ID, category.Name)

	return category, nil
}
