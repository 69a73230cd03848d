package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/stridemap/stridemap/internal/core/domain"
)

// Subjects used on the broker. Draw gestures arrive under draw.path.>,
// registry changes go out on paths.changed, and label rendering
// commands for the map surface go out under map.labels.>.
const (
	SubjectPathFinished = "draw.path.finished"
	SubjectPathEdited   = "draw.path.edited"
	SubjectPathRemoved  = "draw.path.removed"
	SubjectDrawWildcard = "draw.path.>"
	SubjectPathsChanged = "paths.changed"
	SubjectLabelPlace   = "map.labels.place"
	SubjectLabelRemove  = "map.labels.remove"
)

// Connect opens a NATS connection with the reconnect policy shared by
// every process in the system.
func Connect(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return conn, nil
}

// Publisher implements ports.EventPublisher over core NATS. Draw
// traffic is ephemeral UI state, so no JetStream persistence is used.
type Publisher struct {
	conn *nats.Conn
}

// NewPublisher wraps an existing connection.
func NewPublisher(conn *nats.Conn) *Publisher {
	return &Publisher{conn: conn}
}

func (p *Publisher) PublishPathsChanged(ctx context.Context, change *domain.PathsChanged) error {
	data, err := json.Marshal(change)
	if err != nil {
		return err
	}
	return p.conn.Publish(SubjectPathsChanged, data)
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}
