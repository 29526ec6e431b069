package s3

import (
	"testing"

	"chaseplus/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL_AWS(t *testing.T) {
	client, err := newClient(&config.Config{
		AWSRegion:    "eu-west-1",
		S3BucketName: "chaseplus-assets",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"https://chaseplus-assets.s3.eu-west-1.amazonaws.com/course-images/a.png",
		client.PublicURL("course-images/a.png"),
	)
}

func TestPublicURL_MinIO(t *testing.T) {
	client, err := newClient(&config.Config{
		AWSRegion:    "us-east-1",
		AWSEndpoint:  "http://localhost:9000",
		S3BucketName: "assets",
		S3UseSSL:     "false",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/assets/blog-images/b.jpg", client.PublicURL("blog-images/b.jpg"))
}

func TestPublicURL_MinIOWithSSL(t *testing.T) {
	client, err := newClient(&config.Config{
		AWSRegion:    "us-east-1",
		AWSEndpoint:  "minio.internal:9000",
		S3BucketName: "assets",
		S3UseSSL:     "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://minio.internal:9000/assets/k.png", client.PublicURL("k.png"))
}
