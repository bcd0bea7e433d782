package post

import "context"

type EventType string

const (
	EventPostCreated = EventType("post-created")
	EventPostUpdated = EventType("post-updated")
	EventPostDeleted = EventType("post-deleted")
)

type Event struct {
	Type EventType
	Post PostWithAuthor
}

// Feed broadcasts post events to live subscribers. Delivery is best effort.
type Feed interface {
	Publish(ctx context.Context, event Event) error
}
