package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateCategoryBody() map[string]any {
	return map[string]any{
		"categoryName":        "Roller Blinds",
		"categorySubText":     "Made to measure",
		"categoryDescription": "Blackout and sheer roller blinds",
		"categoryImageNames":  []string{"front.jpg", "side.jpg"},
	}
}

// ==================== POST /api/categories ====================

func TestCategoryHandler_CreateCategory_Success(t *testing.T) {
	// Arrange
	env := setupTestEnv(RouterOptions{})
	env.categories.On("FindByName", mock.Anything, "Roller Blinds").Return(nil, repository.ErrCategoryNotFound)
	env.storage.On("PresignUploadURL", mock.Anything, mock.Anything, "front.jpg").Return("https://upload/front", nil)
	env.storage.On("PresignUploadURL", mock.Anything, mock.Anything, "side.jpg").Return("https://upload/side", nil)
	env.storage.On("ImagesPath", mock.Anything).Return("images/new")
	env.categories.On("Create", mock.Anything, mock.AnythingOfType("*entity.Category")).Return(nil)

	// Act
	w := env.do(t, http.MethodPost, "/api/categories", validCreateCategoryBody())

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Category created successfully", resp.Message)

	var category entity.Category
	require.NoError(t, json.Unmarshal(resp.Data, &category))
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, entity.ImageUploadPending, category.ImageUploadStatus)
	assert.Len(t, category.PresignedURLs, 2)
	assert.Equal(t, "images/new", category.ImagesPath)
}

func TestCategoryHandler_CreateCategory_ClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    any
		setup   func(env *testEnv)
		wantMsg string
	}{
		{
			name:    "empty body",
			body:    nil,
			wantMsg: "categoryName, categorySubText, categoryDescription, and categoryImageNames are required",
		},
		{
			name:    "malformed json",
			body:    `{"categoryName": `,
			wantMsg: "Invalid request body",
		},
		{
			name: "name is not a string",
			body: map[string]any{
				"categoryName":        42,
				"categorySubText":     "s",
				"categoryDescription": "d",
				"categoryImageNames":  []string{"a.jpg"},
			},
			wantMsg: "categoryName, categorySubText, and categoryDescription must be strings",
		},
		{
			name:    "mistyped name with other fields missing",
			body:    map[string]any{"categoryName": 5},
			wantMsg: "categoryName, categorySubText, categoryDescription, and categoryImageNames are required",
		},
		{
			name: "falsy mistyped name",
			body: func() map[string]any {
				b := validCreateCategoryBody()
				b["categoryName"] = false
				return b
			}(),
			wantMsg: "categoryName, categorySubText, categoryDescription, and categoryImageNames are required",
		},
		{
			name:    "body is an array",
			body:    []int{1},
			wantMsg: "categoryName, categorySubText, categoryDescription, and categoryImageNames are required",
		},
		{
			name: "image names not strings",
			body: map[string]any{
				"categoryName":        "n",
				"categorySubText":     "s",
				"categoryDescription": "d",
				"categoryImageNames":  []any{1, 2},
			},
			wantMsg: "categoryImageNames must be an array of strings",
		},
		{
			name: "blank subtext",
			body: func() map[string]any {
				b := validCreateCategoryBody()
				b["categorySubText"] = "   "
				return b
			}(),
			wantMsg: "categorySubText cannot be empty",
		},
		{
			name: "empty image list",
			body: func() map[string]any {
				b := validCreateCategoryBody()
				b["categoryImageNames"] = []string{}
				return b
			}(),
			wantMsg: "categoryImageNames cannot be empty",
		},
		{
			name: "name too long",
			body: func() map[string]any {
				b := validCreateCategoryBody()
				b["categoryName"] = strings.Repeat("x", 101)
				return b
			}(),
			wantMsg: "categoryName must be at most 100 characters",
		},
		{
			name: "image name with path separator",
			body: func() map[string]any {
				b := validCreateCategoryBody()
				b["categoryImageNames"] = []string{"ok.jpg", "../escape.jpg"}
				return b
			}(),
			wantMsg: "categoryImageNames[1] must not contain path separators",
		},
		{
			name: "duplicate name",
			body: validCreateCategoryBody(),
			setup: func(env *testEnv) {
				env.categories.On("FindByName", mock.Anything, "Roller Blinds").
					Return(testCategory("existing", entity.ImageUploadCompleted), nil)
			},
			wantMsg: "Category with name 'Roller Blinds' already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(RouterOptions{})
			if tt.setup != nil {
				tt.setup(env)
			}

			w := env.do(t, http.MethodPost, "/api/categories", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeEnvelope(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Empty(t, resp.Error)
			env.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCategoryHandler_CreateCategory_UpstreamFailure(t *testing.T) {
	// Arrange
	env := setupTestEnv(RouterOptions{})
	env.categories.On("FindByName", mock.Anything, "Roller Blinds").Return(nil, repository.ErrCategoryNotFound)
	env.storage.On("PresignUploadURL", mock.Anything, mock.Anything, "front.jpg").Return("", errors.New("credentials expired"))

	// Act
	w := env.do(t, http.MethodPost, "/api/categories", validCreateCategoryBody())

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Error creating category", resp.Message)
	assert.Contains(t, resp.Error, "credentials expired")
}

// ==================== GET /api/categories ====================

func TestCategoryHandler_GetAllCategories(t *testing.T) {
	env := setupTestEnv(RouterOptions{})
	env.categories.On("GetByStatus", mock.Anything, entity.ImageUploadCompleted).
		Return([]entity.Category{*testCategory("c1", entity.ImageUploadCompleted)}, nil)
	env.storage.On("PublicURL", "images/c1").Return("https://cdn.example.com/images/c1")

	w := env.do(t, http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)

	var categories []entity.Category
	require.NoError(t, json.Unmarshal(resp.Data, &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "https://cdn.example.com/images/c1", categories[0].ImagesPath)
}

func TestCategoryHandler_GetAllCategories_EmptyArray(t *testing.T) {
	env := setupTestEnv(RouterOptions{})
	env.categories.On("GetByStatus", mock.Anything, entity.ImageUploadCompleted).Return([]entity.Category{}, nil)

	w := env.do(t, http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
}

func TestCategoryHandler_GetAllCategories_StoreError(t *testing.T) {
	env := setupTestEnv(RouterOptions{})
	env.categories.On("GetByStatus", mock.Anything, entity.ImageUploadCompleted).Return(nil, errors.New("timeout"))

	w := env.do(t, http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Error fetching categories", resp.Message)
	assert.Contains(t, resp.Error, "timeout")
}

// ==================== GET /api/categories/:categoryId ====================

func TestCategoryHandler_GetCategory(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := setupTestEnv(RouterOptions{})
		env.categories.On("GetByID", mock.Anything, "c1").Return(testCategory("c1", entity.ImageUploadPending), nil)

		w := env.do(t, http.MethodGet, "/api/categories/c1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var category entity.Category
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &category))
		assert.Equal(t, "c1", category.ID)
	})

	t.Run("not found", func(t *testing.T) {
		env := setupTestEnv(RouterOptions{})
		env.categories.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrCategoryNotFound)

		w := env.do(t, http.MethodGet, "/api/categories/missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Category not found"}`, w.Body.String())
	})
}

// ==================== PUT /api/categories/:categoryId/image-upload-status ====================

func TestCategoryHandler_UpdateImageUploadStatus(t *testing.T) {
	t.Run("completes", func(t *testing.T) {
		env := setupTestEnv(RouterOptions{})
		env.categories.On("GetByID", mock.Anything, "c1").Return(testCategory("c1", entity.ImageUploadPending), nil)
		env.categories.On("UpdateImageUploadStatus", mock.Anything, "c1", entity.ImageUploadCompleted).
			Return(testCategory("c1", entity.ImageUploadCompleted), nil)

		w := env.do(t, http.MethodPut, "/api/categories/c1/image-upload-status", map[string]string{"imageUploadStatus": "completed"})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Equal(t, "Image upload status updated successfully", resp.Message)
		var category entity.Category
		require.NoError(t, json.Unmarshal(resp.Data, &category))
		assert.Equal(t, entity.ImageUploadCompleted, category.ImageUploadStatus)
	})

	t.Run("rejects other statuses", func(t *testing.T) {
		env := setupTestEnv(RouterOptions{})

		w := env.do(t, http.MethodPut, "/api/categories/c1/image-upload-status", map[string]string{"imageUploadStatus": "pending"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "imageUploadStatus must be 'completed'", decodeEnvelope(t, w).Message)
		env.categories.AssertNotCalled(t, "UpdateImageUploadStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("status is not a string", func(t *testing.T) {
		env := setupTestEnv(RouterOptions{})

		w := env.do(t, http.MethodPut, "/api/categories/c1/image-upload-status", map[string]any{"imageUploadStatus": 5})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "imageUploadStatus must be a string", decodeEnvelope(t, w).Message)
	})

	t.Run("unknown category", func(t *testing.T) {
		env := setupTestEnv(RouterOptions{})
		env.categories.On("GetByID", mock.Anything, "ghost").Return(nil, repository.ErrCategoryNotFound)

		w := env.do(t, http.MethodPut, "/api/categories/ghost/image-upload-status", map[string]string{"imageUploadStatus": "completed"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Category not found", decodeEnvelope(t, w).Message)
	})
}
