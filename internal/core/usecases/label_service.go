package usecases

import (
	"context"
	"log/slog"

	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/core/ports"
	"github.com/stridemap/stridemap/internal/pkg/geospatial"
	"github.com/stridemap/stridemap/internal/pkg/walktime"
)

// BuildLabels derives the label set for a path: one walking-time label
// at each segment midpoint plus a total at the last vertex. A path
// with fewer than 2 vertices has no labels.
func BuildLabels(vertices []domain.GeoPoint) []domain.Label {
	if len(vertices) < 2 {
		return nil
	}

	labels := make([]domain.Label, 0, len(vertices))
	for i := 1; i < len(vertices); i++ {
		feet := geospatial.MetersToFeet(geospatial.Distance(vertices[i-1], vertices[i]))
		labels = append(labels, domain.Label{
			Position: geospatial.SegmentMidpoint(vertices[i-1], vertices[i]),
			Text:     walktime.FormatShort(walktime.SecondsFor(feet)),
		})
	}

	total := geospatial.PathLengthFeet(vertices)
	labels = append(labels, domain.Label{
		Position: vertices[len(vertices)-1],
		Text:     "Total: " + walktime.FormatLong(walktime.SecondsFor(total)),
	})
	return labels
}

// LabelService renders path labels through the map-surface collaborator
// and tracks the marker handles it was issued so they can be removed
// again. Every recompute tears down and re-places all of a path's
// markers; edits can change the vertex count, so incremental updates
// would need bookkeeping this O(vertex count) rebuild avoids.
type LabelService struct {
	renderer ports.LabelRenderer
	handles  map[string][]string // path id -> rendered marker handles
}

// NewLabelService creates a LabelService. The renderer may be nil when
// no map surface is attached; labels are still computed, just not drawn.
func NewLabelService(renderer ports.LabelRenderer) *LabelService {
	return &LabelService{renderer: renderer, handles: make(map[string][]string)}
}

// Render recomputes a path's labels and replaces its rendered markers.
func (s *LabelService) Render(ctx context.Context, p *domain.Path) {
	s.Clear(ctx, p.ID)

	p.Labels = BuildLabels(p.Vertices)
	if s.renderer == nil {
		return
	}

	handles := make([]string, 0, len(p.Labels))
	for _, l := range p.Labels {
		h, err := s.renderer.Place(ctx, l.Position, l.Text, p.Color)
		if err != nil {
			slog.Warn("label place failed", "path_id", p.ID, "error", err)
			continue
		}
		handles = append(handles, h)
	}
	if len(handles) > 0 {
		s.handles[p.ID] = handles
	}
}

// Clear removes a path's rendered markers. Unknown ids are a no-op.
func (s *LabelService) Clear(ctx context.Context, pathID string) {
	handles := s.handles[pathID]
	delete(s.handles, pathID)
	if s.renderer == nil {
		return
	}
	for _, h := range handles {
		if err := s.renderer.Remove(ctx, h); err != nil {
			slog.Warn("label remove failed", "path_id", pathID, "error", err)
		}
	}
}
