package messaging

import (
	"context"

	"taskhub/domain/ports"
)

// NoopPublisher stands in when no broker is configured. Events are dropped
// silently so the API runs the same way with or without NATS.
type NoopPublisher struct{}

func NewNoopPublisher() ports.EventPublisher {
	return &NoopPublisher{}
}

func (n *NoopPublisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	return nil
}

func (n *NoopPublisher) Close() {}
