package entity

import "encoding/json"

// Presence and blankness are checked by the service layer; the validate tags
// only bound sizes so oversized payloads are rejected at the edge.

type CreateCategoryRequest struct {
	CategoryName        string   `json:"categoryName" validate:"max=100"`
	CategorySubText     string   `json:"categorySubText" validate:"max=200"`
	CategoryDescription string   `json:"categoryDescription" validate:"max=2000"`
	CategoryImageNames  []string `json:"categoryImageNames" validate:"max=20,dive,max=255,excludesall=/\\"`
}

type UpdateImageUploadStatusRequest struct {
	ImageUploadStatus string `json:"imageUploadStatus" validate:"max=32"`
}

// InlineCategory is the category embedded in a product request when
// productCategory is NewCategory.
type InlineCategory struct {
	CategoryName        string `json:"categoryName" validate:"max=100"`
	CategorySubText     string `json:"categorySubText" validate:"max=200"`
	CategoryDescription string `json:"categoryDescription" validate:"max=2000"`
}

// CreateProductRequest keeps the category field raw: it is only decoded into
// Category when ProductCategory is NewCategory, otherwise it is ignored.
type CreateProductRequest struct {
	ProductName        string          `json:"productName" validate:"max=200"`
	ProductDescription string          `json:"productDescription" validate:"max=2000"`
	ProductPrice       string          `json:"productPrice" validate:"max=32"`
	ProductCategory    string          `json:"productCategory" validate:"max=64"`
	RawCategory        json.RawMessage `json:"category,omitempty"`
	Category           *InlineCategory `json:"-"`
}

// APIResponse is the envelope for every /api response.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
