package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/config"
)

func TestProductImageKey(t *testing.T) {
	key := ProductImageKey("p-1", "Cover.JPG")

	require.True(t, strings.HasPrefix(key, "products/p-1/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	id := strings.TrimSuffix(strings.TrimPrefix(key, "products/p-1/"), ".jpg")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	assert.NotEqual(t, key, ProductImageKey("p-1", "Cover.JPG"))
}

func TestProductImageKey_NoExtension(t *testing.T) {
	key := ProductImageKey("p-1", "blob")
	_, err := uuid.Parse(strings.TrimPrefix(key, "products/p-1/"))
	assert.NoError(t, err)
}

func TestNewMinIO_Validation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"missing endpoint", config.MinIOConfig{AccessKey: "a", SecretKey: "s", Bucket: "b"}, "endpoint"},
		{"missing credentials", config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b"}, "credentials"},
		{"missing bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, "bucket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMinIO(ctx, tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
