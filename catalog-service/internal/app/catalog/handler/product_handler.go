package handler

import (
	"encoding/json"
	"errors"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService service.ProductServiceInterface
	requestValidator
}

func NewProductHandler(productService service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService:   productService,
		requestValidator: requestValidator{validate: newValidator()},
	}
}

func productTypeMessage(field string) string {
	if field == "" {
		return msgBodyNotObject
	}
	return "productName, productDescription, productPrice, and productCategory must be strings"
}

var createProductRules = bindRules{
	required:    []string{"productName", "productDescription", "productPrice", "productCategory"},
	missingMsg:  service.MsgProductFieldsRequired,
	typeMessage: productTypeMessage,
}

var inlineCategoryFields = []string{"categoryName", "categorySubText", "categoryDescription"}

// decodeInlineCategory fills req.Category from the raw category field when
// productCategory is NewCategory. A value that is not a JSON object leaves
// Category nil; an array counts as an object without fields.
func (h *ProductHandler) decodeInlineCategory(req *entity.CreateProductRequest) error {
	req.Category = nil
	if req.ProductCategory != entity.NewCategorySentinel || len(req.RawCategory) == 0 {
		return nil
	}

	var raw any
	if err := json.Unmarshal(req.RawCategory, &raw); err != nil {
		return service.NewValidationError(msgInvalidBody)
	}

	var fields map[string]any
	switch v := raw.(type) {
	case map[string]any:
		fields = v
	case []any:
		req.Category = &entity.InlineCategory{}
		return nil
	default:
		return nil
	}

	category := &entity.InlineCategory{}
	if err := json.Unmarshal(req.RawCategory, category); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return service.NewValidationError(msgInvalidBody)
		}
		// A falsy field leaves a zero value behind, which the service reports as missing.
		if allTruthy(fields, inlineCategoryFields...) {
			if err := service.ValidateProductFields(req); err != nil {
				return err
			}
			return service.NewValidationError("Category fields must be strings")
		}
	}

	if err := h.validate.Struct(category); err != nil {
		return service.NewValidationError("category." + formatValidationError(err))
	}

	req.Category = category
	return nil
}

// CreateProduct POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req entity.CreateProductRequest
	if err := h.bindJSON(c, &req, createProductRules); err != nil {
		respondError(c, err, "Error creating product")
		return
	}

	if err := h.decodeInlineCategory(&req); err != nil {
		respondError(c, err, "Error creating product")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Error creating product")
		return
	}

	respondCreated(c, "Product created successfully", product)
}

// GetAllProducts GET /api/products
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.GetAllProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching products")
		return
	}

	respondOK(c, products)
}

// GetProduct GET /api/products/:productId
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err, "Error fetching product")
		return
	}

	respondOK(c, product)
}

// GetProductsByCategory GET /api/products/category/:categoryId
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	products, err := h.productService.GetProductsByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err, "Error fetching products")
		return
	}

	respondOK(c, products)
}
