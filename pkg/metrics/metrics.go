package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// HTTP
// =============================================================================

// HttpRequestsTotal counts handled requests.
// Labels: service, method, route, status
var HttpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"service", "method", "route", "status"},
)

// HttpRequestDuration e.g. histogram_quantile(0.95, rate(http_request_duration_seconds_bucket[5m]))
var HttpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"service", "method", "route"},
)

var HttpRequestsInFlight = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being processed",
	},
	[]string{"service"},
)

// =============================================================================
// Document store (mongo or redis backend)
// =============================================================================

var StoreOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Duration of document store operations in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	},
	[]string{"service", "backend", "operation", "collection"},
)

var StoreErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "store_errors_total",
		Help: "Total number of document store errors",
	},
	[]string{"service", "backend", "operation"},
)

// RedisCommandDuration covers raw redis round trips, including pipelines.
var RedisCommandDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "redis_operation_duration_seconds",
		Help:    "Duration of Redis operations in seconds",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	},
	[]string{"service", "operation"},
)

// =============================================================================
// Object storage
// =============================================================================

var BlobPresignDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "blob_presign_duration_seconds",
		Help:    "Duration of pre-signed URL generation",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	},
	[]string{"service"},
)

var BlobErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "blob_errors_total",
		Help: "Total number of object storage errors",
	},
	[]string{"service", "operation"},
)

// =============================================================================
// Kafka
// =============================================================================

var KafkaMessagesProduced = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_messages_produced_total",
		Help: "Total number of Kafka messages produced",
	},
	[]string{"service", "topic"},
)

var KafkaProduceDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kafka_produce_duration_seconds",
		Help:    "Duration of Kafka produce operations",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	},
	[]string{"service", "topic"},
)

var KafkaErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_errors_total",
		Help: "Total number of Kafka errors",
	},
	[]string{"service", "topic", "operation"},
)

// =============================================================================
// Catalog
// =============================================================================

var CategoriesCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_categories_created_total",
		Help: "Total number of categories created",
	},
	[]string{"origin"}, // direct, inline
)

var ProductsCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "catalog_products_created_total",
		Help: "Total number of products created",
	},
)

var PresignedURLsIssued = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "catalog_presigned_urls_issued_total",
		Help: "Total number of image upload URLs issued",
	},
)

var CategoryImagesCompleted = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "catalog_category_images_completed_total",
		Help: "Total number of categories moved from pending to completed image upload",
	},
)

var EventPublishFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_event_publish_failures_total",
		Help: "Total number of catalog events dropped because they could not be encoded or published",
	},
	[]string{"event_type"},
)
