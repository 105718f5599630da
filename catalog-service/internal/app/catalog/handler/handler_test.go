package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/repository/mocks"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router     *gin.Engine
	categories *mocks.MockCategoryRepository
	products   *mocks.MockProductRepository
	storage    *mocks.MockImageStorage
	publisher  *mocks.MockMessagePublisher
}

func setupTestEnv(opts RouterOptions) *testEnv {
	env := &testEnv{
		categories: new(mocks.MockCategoryRepository),
		products:   new(mocks.MockProductRepository),
		storage:    new(mocks.MockImageStorage),
		publisher:  new(mocks.MockMessagePublisher),
	}
	env.publisher.On("PublishMessage", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	categoryService := service.NewCategoryService(env.categories, env.storage, env.publisher)
	productService := service.NewProductService(env.products, env.categories, env.publisher)

	env.router = SetupRoutes(NewCategoryHandler(categoryService), NewProductHandler(productService), opts)
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func testCategory(id string, status entity.ImageUploadStatus) *entity.Category {
	return &entity.Category{
		ID:                id,
		Name:              "Roller Blinds",
		SubText:           "Made to measure",
		Description:       "Blackout and sheer roller blinds",
		ImageNames:        []string{"front.jpg"},
		ImagesPath:        "images/" + id,
		ImageUploadStatus: status,
		CreatedAt:         time.Now().UTC(),
	}
}
