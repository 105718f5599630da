package handler

import (
	"net/http"
	"strings"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryServiceInterface
	requestValidator
}

func NewCategoryHandler(categoryService service.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService:  categoryService,
		requestValidator: requestValidator{validate: newValidator()},
	}
}

func categoryTypeMessage(field string) string {
	switch {
	case strings.HasPrefix(field, "categoryImageNames"):
		return "categoryImageNames must be an array of strings"
	case field == "imageUploadStatus":
		return "imageUploadStatus must be a string"
	case field == "":
		return msgBodyNotObject
	default:
		return "categoryName, categorySubText, and categoryDescription must be strings"
	}
}

var createCategoryRules = bindRules{
	required:    []string{"categoryName", "categorySubText", "categoryDescription", "categoryImageNames"},
	missingMsg:  service.MsgCategoryFieldsRequired,
	typeMessage: categoryTypeMessage,
}

// The status value itself is checked by the service.
var imageUploadStatusRules = bindRules{
	typeMessage: categoryTypeMessage,
}

// CreateCategory POST /api/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req entity.CreateCategoryRequest
	if err := h.bindJSON(c, &req, createCategoryRules); err != nil {
		respondError(c, err, "Error creating category")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Error creating category")
		return
	}

	respondCreated(c, "Category created successfully", category)
}

// GetAllCategories GET /api/categories
func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching categories")
		return
	}

	respondOK(c, categories)
}

// GetCategory GET /api/categories/:categoryId
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err, "Error fetching category")
		return
	}

	respondOK(c, category)
}

// UpdateImageUploadStatus PUT /api/categories/:categoryId/image-upload-status
func (h *CategoryHandler) UpdateImageUploadStatus(c *gin.Context) {
	var req entity.UpdateImageUploadStatusRequest
	if err := h.bindJSON(c, &req, imageUploadStatusRules); err != nil {
		respondError(c, err, "Error updating image upload status")
		return
	}

	category, err := h.categoryService.UpdateImageUploadStatus(c.Request.Context(), c.Param("categoryId"), req.ImageUploadStatus)
	if err != nil {
		respondError(c, err, "Error updating image upload status")
		return
	}

	c.JSON(http.StatusOK, entity.APIResponse{
		Success: true,
		Message: "Image upload status updated successfully",
		Data:    category,
	})
}
