package entity

import "time"

// Routing keys for content events.
const (
	EventCourseCreated = "course.created"
	EventCourseUpdated = "course.updated"
	EventCourseDeleted = "course.deleted"
	EventBlogCreated   = "blog.created"
	EventBlogUpdated   = "blog.updated"
	EventBlogDeleted   = "blog.deleted"
	EventAssetOrphaned = "asset.orphaned"
)

// ContentEvent announces a change to a course, blog or stored asset.
type ContentEvent struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id,omitempty"`
	AssetKey   string    `json:"asset_key,omitempty"`
	AssetURL   string    `json:"asset_url,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewContentEvent(eventType, entityID string) ContentEvent {
	return ContentEvent{Type: eventType, EntityID: entityID, OccurredAt: time.Now().UTC()}
}
