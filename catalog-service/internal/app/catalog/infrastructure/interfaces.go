package infrastructure

import "context"

// ImageStorage issues upload URLs for category images and resolves where they
// can be read from once uploaded.
type ImageStorage interface {
	// PresignUploadURL returns a time-limited PUT URL for images/<categoryID>/<imageName>.
	PresignUploadURL(ctx context.Context, categoryID, imageName string) (string, error)
	// ImagesPath is the bucket-relative prefix holding a category's images.
	ImagesPath(categoryID string) string
	// PublicURL maps a bucket-relative path to its public read URL.
	PublicURL(path string) string
}

// MessagePublisher sends catalog events to the message bus.
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}
