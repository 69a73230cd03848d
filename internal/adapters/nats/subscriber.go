package natsadapter

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/pkg/metrics"
)

// Subscriber implements ports.EventSubscriber over core NATS. A single
// wildcard subscription covers every draw.path.> subject, so events
// reach the handler strictly in arrival order: NATS dispatches one
// message at a time per subscription.
type Subscriber struct {
	conn *nats.Conn
	subs []*nats.Subscription
}

// NewSubscriber wraps an existing connection.
func NewSubscriber(conn *nats.Conn) *Subscriber {
	return &Subscriber{conn: conn}
}

func (s *Subscriber) SubscribeDrawEvents(ctx context.Context, handler func(ctx context.Context, event *domain.DrawEvent) error) error {
	sub, err := s.conn.Subscribe(SubjectDrawWildcard, func(msg *nats.Msg) {
		var event domain.DrawEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			slog.Warn("discarding malformed draw event", "subject", msg.Subject, "error", err)
			return
		}
		if event.Type == "" {
			event.Type = typeFromSubject(msg.Subject)
		}
		metrics.DrawEventsConsumed.WithLabelValues(string(event.Type)).Inc()
		if err := handler(ctx, &event); err != nil {
			slog.Error("draw event handler failed", "type", string(event.Type), "error", err)
		}
	})
	if err != nil {
		return err
	}
	s.subs = append(s.subs, sub)
	return nil
}

// typeFromSubject recovers the event type when the payload omits it.
func typeFromSubject(subject string) domain.DrawEventType {
	switch subject {
	case SubjectPathFinished:
		return domain.DrawPathFinished
	case SubjectPathEdited:
		return domain.DrawPathEdited
	case SubjectPathRemoved:
		return domain.DrawPathRemoved
	}
	return ""
}

// Close unsubscribes and drains.
func (s *Subscriber) Close() {
	for _, sub := range s.subs {
		_ = sub.Unsubscribe()
	}
	_ = s.conn.Drain()
}
