package natsadapter

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/pkg/metrics"
)

// labelCommand is the wire format for map.labels.* commands consumed
// by the map frontend.
type labelCommand struct {
	Handle   string           `json:"handle"`
	Position *domain.GeoPoint `json:"position,omitempty"`
	Text     string           `json:"text,omitempty"`
	Color    string           `json:"color,omitempty"`
}

// LabelRenderer implements ports.LabelRenderer by publishing marker
// commands to the map surface. Handles are issued here so removal
// works even when no frontend is listening yet.
type LabelRenderer struct {
	conn *nats.Conn
}

// NewLabelRenderer wraps an existing connection.
func NewLabelRenderer(conn *nats.Conn) *LabelRenderer {
	return &LabelRenderer{conn: conn}
}

func (r *LabelRenderer) Place(ctx context.Context, pos domain.GeoPoint, text, color string) (string, error) {
	cmd := labelCommand{
		Handle:   "marker-" + uuid.NewString(),
		Position: &pos,
		Text:     text,
		Color:    color,
	}
	data, err := json.Marshal(cmd)
	if err != nil {
		return "", err
	}
	if err := r.conn.Publish(SubjectLabelPlace, data); err != nil {
		return "", err
	}
	metrics.LabelsPlaced.Inc()
	return cmd.Handle, nil
}

func (r *LabelRenderer) Remove(ctx context.Context, handle string) error {
	data, err := json.Marshal(labelCommand{Handle: handle})
	if err != nil {
		return err
	}
	return r.conn.Publish(SubjectLabelRemove, data)
}
