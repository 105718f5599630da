package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreMongo = "mongo"
	StoreRedis = "redis"
)

// Config holds every setting of the catalog service. Values come from the
// environment, optionally seeded from a .env file in the working directory.
type Config struct {
	Server      ServerConfig   `envconfig:"SERVER"`
	StoreDriver string         `envconfig:"STORE_DRIVER" default:"mongo"`
	Mongo       MongoConfig    `envconfig:"MONGODB"`
	Redis       RedisConfig    `envconfig:"REDIS"`
	S3          S3Config       `envconfig:"S3"`
	Kafka       KafkaConfig    `envconfig:"KAFKA"`
	JWT         JWTConfig      `envconfig:"JWT"`
	CORS        CORSConfig     `envconfig:"CORS"`
	Log         LogConfig      `envconfig:"LOG"`
	Logstash    LogstashConfig `envconfig:"LOGSTASH"`
}

type ServerConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"8081"`
}

type MongoConfig struct {
	URI      string `envconfig:"URI" default:"mongodb://localhost:27017"`
	Database string `envconfig:"DATABASE" default:"catalog"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// S3Config points at any S3 compatible endpoint (AWS, MinIO). PublicBaseURL
// overrides the derived public read URL, e.g. a CDN in front of the bucket.
type S3Config struct {
	Endpoint      string        `envconfig:"ENDPOINT" default:"s3.amazonaws.com"`
	Region        string        `envconfig:"REGION" default:"us-east-1"`
	Bucket        string        `envconfig:"BUCKET"`
	AccessKey     string        `envconfig:"ACCESS_KEY"`
	SecretKey     string        `envconfig:"SECRET_KEY"`
	UseSSL        bool          `envconfig:"USE_SSL" default:"true"`
	PublicBaseURL string        `envconfig:"PUBLIC_BASE_URL"`
	UploadExpiry  time.Duration `envconfig:"UPLOAD_EXPIRY" default:"1h"`
	ContentType   string        `envconfig:"CONTENT_TYPE" default:"image/jpeg"`
}

type KafkaConfig struct {
	Enabled bool     `envconfig:"ENABLED" default:"false"`
	Brokers []string `envconfig:"BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"TOPIC" default:"catalog_events"`
}

// JWTConfig enables bearer auth on write routes when Secret is set.
type JWTConfig struct {
	Secret string `envconfig:"SECRET"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
}

type LogConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

type LogstashConfig struct {
	Addr string `envconfig:"ADDR"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.StoreDriver != StoreMongo && c.StoreDriver != StoreRedis {
		return fmt.Errorf("invalid STORE_DRIVER %q: must be %q or %q", c.StoreDriver, StoreMongo, StoreRedis)
	}
	if c.S3.Bucket == "" {
		return errors.New("S3_BUCKET is required")
	}
	if c.S3.UploadExpiry <= 0 || c.S3.UploadExpiry > 7*24*time.Hour {
		return fmt.Errorf("invalid S3_UPLOAD_EXPIRY %s: must be between 1s and 7 days", c.S3.UploadExpiry)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
	}
	return nil
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}
