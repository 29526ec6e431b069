package gcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://storage.googleapis.com/chaseplus-assets/blog-images/a.jpg",
		publicURL("", "chaseplus-assets", "blog-images/a.jpg"),
	)
	assert.Equal(t,
		"https://cdn.chaseplus.example/blog-images/a.jpg",
		publicURL("https://cdn.chaseplus.example", "chaseplus-assets", "blog-images/a.jpg"),
	)
}
