package entity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetIDFromURL(t *testing.T) {
	cases := map[string]string{
		"https://host/blog-images/abc123.jpg":                "abc123",
		"https://res.cloudinary.com/x/image/upload/v1/k.png": "k",
		"https://host/blog-images/abc123.tar.gz":             "abc123",
		"https://host/blog-images/abc123.jpg?v=2":            "abc123",
		"abc123.jpg":                                         "abc123",
		"https://host/":                                      "",
		"":                                                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, AssetIDFromURL(in), in)
	}
}

func TestApplyMetaDefaults(t *testing.T) {
	b := &Blog{Title: "Go tips", Description: strings.Repeat("é", 200)}
	b.ApplyMetaDefaults()

	assert.Equal(t, "Go tips", b.MetaTitle)
	assert.Equal(t, 160, len([]rune(b.MetaDescription)))

	explicit := &Blog{Title: "T", Description: "D", MetaTitle: "X", MetaDescription: "Y"}
	explicit.ApplyMetaDefaults()
	assert.Equal(t, "X", explicit.MetaTitle)
	assert.Equal(t, "Y", explicit.MetaDescription)
}

func TestPagination(t *testing.T) {
	assert.Equal(t, 9, Offset(2, 9))
	assert.Equal(t, 0, Offset(0, 9))
	assert.Equal(t, 3, TotalPages(20, 9))
	assert.Equal(t, 0, TotalPages(0, 9))
	assert.Equal(t, 2, TotalPages(18, 9))

	page := NewPage[int](nil, 2, 9, 20)
	assert.Equal(t, []int{}, page.Items)
	assert.Equal(t, 3, page.TotalPages)
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = NewValidationError("highlights", "must have at least one item")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "highlights must have at least one item", err.Error())

	var verr *ValidationError
	wrapped := fmt.Errorf("create course: %w", err)
	assert.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, "highlights", verr.Field)

	assert.True(t, errors.Is(&CategoryError{Name: "Web Dev"}, ErrInvalidCategory))

	assetErr := &AssetError{Op: "upload", Err: errors.New("boom")}
	assert.True(t, errors.Is(assetErr, ErrAssetStore))
	assert.EqualError(t, errors.Unwrap(assetErr), "boom")

	assert.True(t, errors.Is(NotFound("course", "c1"), ErrNotFound))
}

func TestPrincipalContext(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithPrincipal(context.Background(), Principal{AdminID: "a1", Email: "a@x"})
	p, ok := PrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "a1", p.AdminID)

	_, ok = PrincipalFromContext(WithPrincipal(context.Background(), Principal{}))
	assert.False(t, ok)
}
