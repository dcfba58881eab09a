package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3ImageStorage_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing bucket returns error", func(t *testing.T) {
		_, err := NewS3ImageStorage(ctx, S3Config{
			AccessKey: "test-key",
			SecretKey: "test-secret",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("missing credentials return error", func(t *testing.T) {
		_, err := NewS3ImageStorage(ctx, S3Config{
			Bucket:    "test-bucket",
			AccessKey: "test-key",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "credentials are required")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		s, err := NewS3ImageStorage(ctx, S3Config{
			Endpoint:     "http://localhost:9000",
			Bucket:       "test-bucket",
			AccessKey:    "test-key",
			SecretKey:    "test-secret",
			UsePathStyle: true,
			KeyPrefix:    "articles/",
		})
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "test-bucket", s.bucket)
	})
}

func TestS3ImageStorage_Key(t *testing.T) {
	s := &S3ImageStorage{keyPrefix: "articles/"}
	assert.Equal(t, "articles/article_1_cover.png", s.key("article_1_cover.png"))

	noPrefix := &S3ImageStorage{}
	assert.Equal(t, "cover.png", noPrefix.key("cover.png"))
}

func TestS3ImageStorage_EmptyNameRejected(t *testing.T) {
	ctx := context.Background()
	s, err := NewS3ImageStorage(ctx, S3Config{
		Endpoint:  "http://localhost:9000",
		Bucket:    "test-bucket",
		AccessKey: "k",
		SecretKey: "s",
	})
	require.NoError(t, err)

	assert.Error(t, s.Upload(ctx, "", nil, "image/png"))
	assert.Error(t, s.Delete(ctx, ""))

	_, err = s.Exists(ctx, "")
	assert.Error(t, err)

	_, err = s.SignedURL(ctx, "", 0)
	assert.Error(t, err)
}
