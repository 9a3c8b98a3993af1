package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"taskhub/domain/ports"
	"taskhub/pkg/logger"
)

// Publisher publishes task lifecycle events to JetStream.
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) ports.EventPublisher {
	return &Publisher{client: client}
}

func (p *Publisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := SubjectPrefix + "." + event.Type
	ack, err := p.client.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.DebugContext(ctx, "Task event published",
		"subject", subject,
		"task_id", event.TaskID,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)

	return nil
}

func (p *Publisher) Close() {
	p.client.Close()
}
