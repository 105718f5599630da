package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("S3_BUCKET", "catalog-images")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.Address())
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address())
	assert.Equal(t, time.Hour, cfg.S3.UploadExpiry)
	assert.Equal(t, "image/jpeg", cfg.S3.ContentType)
	assert.True(t, cfg.S3.UseSSL)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "catalog_events", cfg.Kafka.Topic)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.JWT.Secret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("S3_BUCKET", "b")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("S3_UPLOAD_EXPIRY", "15m")
	t.Setenv("S3_USE_SSL", "false")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StoreRedis, cfg.StoreDriver)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 15*time.Minute, cfg.S3.UploadExpiry)
	assert.False(t, cfg.S3.UseSSL)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing bucket",
			env:     map[string]string{},
			wantErr: "S3_BUCKET is required",
		},
		{
			name:    "unknown store driver",
			env:     map[string]string{"S3_BUCKET": "b", "STORE_DRIVER": "dynamo"},
			wantErr: "invalid STORE_DRIVER",
		},
		{
			name:    "expiry too long",
			env:     map[string]string{"S3_BUCKET": "b", "S3_UPLOAD_EXPIRY": "200h"},
			wantErr: "invalid S3_UPLOAD_EXPIRY",
		},
		{
			name:    "malformed redis db",
			env:     map[string]string{"S3_BUCKET": "b", "REDIS_DB": "zero"},
			wantErr: "failed to process environment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("S3_BUCKET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
