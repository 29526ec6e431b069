package usecase

import (
	"context"
	"io"
)

// AssetStore is the remote object store that hosts course and blog images.
// Upload returns the public URL of the stored object.
type AssetStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

// EventPublisher delivers content events. A nil publisher disables events.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// ViewTracker de-duplicates blog views per visitor.
type ViewTracker interface {
	FirstView(ctx context.Context, blogID, visitor string) (bool, error)
}

// TokenIssuer signs admin session tokens.
type TokenIssuer interface {
	GenerateToken(adminID, email string) (string, error)
}
