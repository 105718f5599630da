package entity

import "time"

// ImageUploadStatus tracks the two-phase category image upload.
type ImageUploadStatus string

const (
	ImageUploadPending   ImageUploadStatus = "pending"
	ImageUploadCompleted ImageUploadStatus = "completed"
)

// NewCategorySentinel as productCategory asks for the embedded category to be created first.
const NewCategorySentinel = "NewCategory"

// Category is a product grouping with an optional set of uploaded images.
// Categories created inline with a product carry no image fields at all.
type Category struct {
	ID                string            `json:"categoryId" bson:"_id"`
	Name              string            `json:"categoryName" bson:"categoryName"`
	SubText           string            `json:"categorySubText" bson:"categorySubText"`
	Description       string            `json:"categoryDescription" bson:"categoryDescription"`
	ImageNames        []string          `json:"categoryImageNames,omitempty" bson:"categoryImageNames,omitempty"`
	PresignedURLs     map[string]string `json:"presignedUrls,omitempty" bson:"presignedUrls,omitempty"`
	ImagesPath        string            `json:"imagesPath,omitempty" bson:"imagesPath,omitempty"`
	ImageUploadStatus ImageUploadStatus `json:"imageUploadStatus,omitempty" bson:"imageUploadStatus,omitempty"`
	CreatedAt         time.Time         `json:"createdAt" bson:"createdAt"`
}

// Product belongs to exactly one category. Price is kept verbatim as supplied.
type Product struct {
	ID          string    `json:"productId" bson:"_id"`
	Name        string    `json:"productName" bson:"productName"`
	Description string    `json:"productDescription" bson:"productDescription"`
	Price       string    `json:"productPrice" bson:"productPrice"`
	CategoryID  string    `json:"productCategory" bson:"productCategory"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

const (
	EventCategoryCreated        = "CATEGORY_CREATED"
	EventCategoryImagesUploaded = "CATEGORY_IMAGES_UPLOADED"
	EventProductCreated         = "PRODUCT_CREATED"
)

// CatalogEvent is published to Kafka after a successful write.
type CatalogEvent struct {
	EventType  string    `json:"eventType"`
	EntityID   string    `json:"entityId"`
	CategoryID string    `json:"categoryId"`
	Name       string    `json:"name"`
	Timestamp  time.Time `json:"timestamp"`
}
