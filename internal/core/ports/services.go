package ports

import (
	"context"

	"github.com/stridemap/stridemap/internal/core/domain"
)

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishPathsChanged(ctx context.Context, change *domain.PathsChanged) error
}

// EventSubscriber consumes drawing-tool gestures from a message broker.
// Implementations must deliver events to the handler in arrival order.
type EventSubscriber interface {
	SubscribeDrawEvents(ctx context.Context, handler func(ctx context.Context, event *domain.DrawEvent) error) error
}

// LabelRenderer places positioned text markers on the map surface and
// removes them again by handle. The map surface itself is an external
// collaborator; the core only tracks the handles it was issued.
type LabelRenderer interface {
	Place(ctx context.Context, pos domain.GeoPoint, text, color string) (handle string, err error)
	Remove(ctx context.Context, handle string) error
}
