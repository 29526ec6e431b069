package usecase

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"chaseplus/internal/entity"
	"chaseplus/pkg/logger"

	"github.com/google/uuid"
)

const defaultImageContentType = "image/jpeg"

// uploadImage stores image under prefix with a fresh key. Failures come back as *entity.AssetError.
func uploadImage(ctx context.Context, store AssetStore, prefix string, image *entity.ImageFile) (*entity.Asset, error) {
	ext := strings.ToLower(path.Ext(image.Filename))
	key := fmt.Sprintf("%s/%s%s", strings.TrimSuffix(prefix, "/"), uuid.New().String(), ext)

	contentType := image.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = defaultImageContentType
	}

	url, err := store.Upload(ctx, key, image.Body, contentType)
	if err != nil {
		return nil, &entity.AssetError{Op: "upload", Key: key, Err: err}
	}
	return &entity.Asset{Key: key, URL: url}, nil
}

// assetKey returns the stored key, or the identifier derived from the URL for rows
// written before keys were stored.
func assetKey(key, url string) string {
	if key != "" {
		return key
	}
	return entity.AssetIDFromURL(url)
}

func hasImage(image *entity.ImageFile) bool {
	return image != nil && image.Body != nil
}

func publishEvent(ctx context.Context, events EventPublisher, log *logger.Logger, event entity.ContentEvent) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, event.Type, event); err != nil {
		log.Error("[EVENTS] Failed to publish %s (entity_id=%s, asset_key=%s): %v", event.Type, event.EntityID, event.AssetKey, err)
	}
}

func orphanedAsset(entityID, key, url, reason string) entity.ContentEvent {
	event := entity.NewContentEvent(entity.EventAssetOrphaned, entityID)
	event.AssetKey = key
	event.AssetURL = url
	event.Reason = reason
	return event
}
