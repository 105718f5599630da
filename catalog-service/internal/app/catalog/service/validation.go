package service

import (
	"strings"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
)

// Presence messages, shared with the HTTP layer so a missing field is reported
// ahead of a mistyped one.
const (
	MsgCategoryFieldsRequired = "categoryName, categorySubText, categoryDescription, and categoryImageNames are required"
	MsgProductFieldsRequired  = "productName, productDescription, productPrice, and productCategory are required"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateCategoryInput checks a create-category request. The first failing
// rule wins. A nil image list counts as missing, an empty one as empty.
func ValidateCategoryInput(req *entity.CreateCategoryRequest) error {
	if req == nil || req.CategoryName == "" || req.CategorySubText == "" ||
		req.CategoryDescription == "" || req.CategoryImageNames == nil {
		return validationError(MsgCategoryFieldsRequired)
	}

	switch {
	case blank(req.CategoryName):
		return validationError("categoryName cannot be empty")
	case blank(req.CategoryDescription):
		return validationError("categoryDescription cannot be empty")
	case blank(req.CategorySubText):
		return validationError("categorySubText cannot be empty")
	case len(req.CategoryImageNames) == 0:
		return validationError("categoryImageNames cannot be empty")
	}

	seen := make(map[string]struct{}, len(req.CategoryImageNames))
	for _, name := range req.CategoryImageNames {
		if blank(name) {
			return validationError("categoryImageNames cannot contain blank names")
		}
		if _, dup := seen[name]; dup {
			return validationError("categoryImageNames must be unique")
		}
		seen[name] = struct{}{}
	}
	return nil
}

// ValidateProductFields checks the four product fields only.
func ValidateProductFields(req *entity.CreateProductRequest) error {
	if req == nil || req.ProductName == "" || req.ProductDescription == "" ||
		req.ProductPrice == "" || req.ProductCategory == "" {
		return validationError(MsgProductFieldsRequired)
	}

	if blank(req.ProductName) || blank(req.ProductDescription) ||
		blank(req.ProductPrice) || blank(req.ProductCategory) {
		return validationError("Product fields cannot be empty")
	}
	return nil
}

// ValidateProductInput checks a create-product request, including the
// embedded category when productCategory is NewCategory.
func ValidateProductInput(req *entity.CreateProductRequest) error {
	if err := ValidateProductFields(req); err != nil {
		return err
	}

	if req.ProductCategory != entity.NewCategorySentinel {
		return nil
	}

	c := req.Category
	if c == nil {
		return validationError(`category object is required when productCategory is "NewCategory"`)
	}
	if c.CategoryName == "" || c.CategorySubText == "" || c.CategoryDescription == "" {
		return validationError("categoryName, categorySubText, and categoryDescription are required in category object")
	}
	if blank(c.CategoryName) || blank(c.CategorySubText) || blank(c.CategoryDescription) {
		return validationError("Category fields cannot be empty")
	}
	return nil
}

// ValidateImageUploadStatus accepts only the completed target state.
func ValidateImageUploadStatus(status string) error {
	if entity.ImageUploadStatus(status) != entity.ImageUploadCompleted {
		return validationError("imageUploadStatus must be 'completed'")
	}
	return nil
}
