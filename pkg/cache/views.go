package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultViewWindow = 24 * time.Hour

// ViewTracker remembers which visitors have already been counted for a blog.
type ViewTracker struct {
	client *redis.Client
	window time.Duration
}

func NewViewTracker(client *redis.Client, window time.Duration) *ViewTracker {
	if window <= 0 {
		window = defaultViewWindow
	}
	return &ViewTracker{client: client, window: window}
}

// FirstView reports true the first time visitor views blogID within the window.
func (t *ViewTracker) FirstView(ctx context.Context, blogID, visitor string) (bool, error) {
	key := fmt.Sprintf("blog_view:%s:%s", blogID, visitor)
	set, err := t.client.SetNX(ctx, key, "1", t.window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record view: %w", err)
	}
	return set, nil
}
