package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/config"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/metrics"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	metricsService = "catalog"
	imagesPrefix   = "images"
)

// S3Storage issues pre-signed uploads into a single bucket.
type S3Storage struct {
	client        *minio.Client
	bucket        string
	region        string
	expiry        time.Duration
	contentType   string
	publicBaseURL string
}

// NewS3Storage builds the client only; no request is made until a bucket call.
// Region must be set so presigning does not need a bucket location lookup.
func NewS3Storage(cfg config.S3Config) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}

	return &S3Storage{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		expiry:        cfg.UploadExpiry,
		contentType:   cfg.ContentType,
		publicBaseURL: publicBaseURL(cfg),
	}, nil
}

// publicBaseURL returns the read URL root for the bucket: the configured
// override, the AWS virtual-hosted form, or path style for other endpoints.
func publicBaseURL(cfg config.S3Config) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if strings.HasSuffix(cfg.Endpoint, "amazonaws.com") {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *S3Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		metrics.RecordBlobError(metricsService, "bucket_exists")
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		metrics.RecordBlobError(metricsService, "make_bucket")
		return fmt.Errorf("make bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *S3Storage) ImagesPath(categoryID string) string {
	return imagesPrefix + "/" + categoryID
}

func (s *S3Storage) PublicURL(path string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(path, "/")
}

// PresignUploadURL signs a PUT for images/<categoryID>/<imageName>. The
// Content-Type header is part of the signature, so clients must send it verbatim.
func (s *S3Storage) PresignUploadURL(ctx context.Context, categoryID, imageName string) (string, error) {
	if categoryID == "" {
		return "", fmt.Errorf("categoryId is required to generate pre-signed URL")
	}

	start := time.Now()
	objectKey := s.ImagesPath(categoryID) + "/" + imageName

	headers := http.Header{}
	if s.contentType != "" {
		headers.Set("Content-Type", s.contentType)
	}

	u, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, objectKey, s.expiry, url.Values{}, headers)
	if err != nil {
		metrics.RecordBlobError(metricsService, "presign")
		return "", fmt.Errorf("presign upload %s: %w", objectKey, err)
	}

	metrics.ObservePresign(metricsService, time.Since(start))
	return u.String(), nil
}
