package usecases

import (
	"context"
	"log/slog"
	"sync"

	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/core/ports"
	"github.com/stridemap/stridemap/internal/pkg/geospatial"
	"github.com/stridemap/stridemap/internal/pkg/walktime"
)

// AnnotationService coordinates the path registry, the undo log, and
// label rendering. A single mutex serializes every operation so each
// event is fully applied — registry updated, labels recomputed, change
// published — before the next one is processed. Observers therefore
// never see a half-applied update.
type AnnotationService struct {
	mu        sync.Mutex
	registry  *Registry
	undo      *UndoLog
	labels    *LabelService
	publisher ports.EventPublisher
}

// NewAnnotationService creates a new AnnotationService. The publisher
// may be nil when no broker is attached.
func NewAnnotationService(registry *Registry, undo *UndoLog, labels *LabelService, publisher ports.EventPublisher) *AnnotationService {
	return &AnnotationService{
		registry:  registry,
		undo:      undo,
		labels:    labels,
		publisher: publisher,
	}
}

// HandlePathFinished registers a newly drawn path and records it in
// the undo log. It always succeeds: an empty vertex list is a valid
// path with zero labels.
func (s *AnnotationService) HandlePathFinished(ctx context.Context, vertices []domain.GeoPoint) *domain.Path {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.registry.Create(vertices)
	s.undo.RecordCreate(p.ID)
	s.labels.Render(ctx, p)
	s.publish(ctx)
	return p
}

// HandlePathEdited replaces a path's vertices after an edit gesture.
// An unknown id is treated as a stale notification and ignored.
func (s *AnnotationService) HandlePathEdited(ctx context.Context, id string, vertices []domain.GeoPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.registry.UpdateVertices(id, vertices)
	if p == nil {
		return
	}
	s.labels.Render(ctx, p)
	s.publish(ctx)
}

// HandlePathRemoved removes a path deleted through the drawing tool's
// own control. The tool's removal flow is a distinct, already-confirmed
// user action, so no undo entry is recorded.
func (s *AnnotationService) HandlePathRemoved(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.Remove(id) == nil {
		return
	}
	s.labels.Clear(ctx, id)
	s.publish(ctx)
}

// DeletePath removes a path on behalf of the sidebar delete control,
// snapshotting it into the undo log first. Returns false for an
// unknown id.
func (s *AnnotationService) DeletePath(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.registry.Get(id)
	if p == nil {
		return false
	}
	s.undo.RecordDelete(p)
	s.registry.Remove(id)
	s.labels.Clear(ctx, id)
	s.publish(ctx)
	return true
}

// ClearAll removes every path and its labels. Clearing does not touch
// the undo log, so a subsequent undo replays whatever single action
// preceded the clear.
func (s *AnnotationService) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.registry.Clear()
	for _, p := range removed {
		s.labels.Clear(ctx, p.ID)
	}
	s.publish(ctx)
}

// Undo reverses the most recent recorded action. Undoing a create
// removes the path; undoing a delete restores it from its snapshot
// with regenerated labels. The applied action is returned; ok is false
// when the log was empty.
func (s *AnnotationService) Undo(ctx context.Context) (domain.UndoAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action, ok := s.undo.Pop()
	if !ok {
		return domain.UndoAction{}, false
	}

	switch action.Kind {
	case domain.UndoCreate:
		if s.registry.Remove(action.PathID) != nil {
			s.labels.Clear(ctx, action.PathID)
			s.publish(ctx)
		}
	case domain.UndoDelete:
		p := s.registry.Restore(action.Vertices, action.Color, action.SequenceNumber)
		s.labels.Render(ctx, p)
		s.publish(ctx)
	default:
		// Unreachable given the closed variant set.
		slog.Warn("unknown undo action kind", "kind", string(action.Kind))
	}
	return action, true
}

// ListPaths returns the sidebar rows, ordered by sequence number.
func (s *AnnotationService) ListPaths() []domain.PathRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows()
}

// GetPath returns a copy of a path, or nil for an unknown id.
func (s *AnnotationService) GetPath(id string) *domain.Path {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.registry.Get(id)
	if p == nil {
		return nil
	}
	cp := *p
	cp.Vertices = append([]domain.GeoPoint(nil), p.Vertices...)
	cp.Labels = append([]domain.Label(nil), p.Labels...)
	return &cp
}

// Summary returns the totals panel read model across all paths.
func (s *AnnotationService) Summary() domain.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(TotalDistanceFeet(s.registry.List()))
}

// PathCount returns the number of registered paths.
func (s *AnnotationService) PathCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Len()
}

// UndoDepth returns the number of actions currently in the undo log.
func (s *AnnotationService) UndoDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undo.Len()
}

// rows builds the sidebar read model. Callers must hold mu.
func (s *AnnotationService) rows() []domain.PathRow {
	paths := s.registry.List()
	rows := make([]domain.PathRow, 0, len(paths))
	for _, p := range paths {
		feet := geospatial.PathLengthFeet(p.Vertices)
		rows = append(rows, domain.PathRow{
			ID:             p.ID,
			SequenceNumber: p.SequenceNumber,
			Color:          p.Color,
			LengthFeet:     feet,
			TimeLabel:      walktime.FormatLong(walktime.SecondsFor(feet)),
		})
	}
	return rows
}

// publish emits a PathsChanged event. Callers must hold mu.
func (s *AnnotationService) publish(ctx context.Context) {
	if s.publisher == nil {
		return
	}
	rows := s.rows()
	change := &domain.PathsChanged{
		Paths:   rows,
		Summary: Summarize(TotalDistanceFeet(s.registry.List())),
	}
	if err := s.publisher.PublishPathsChanged(ctx, change); err != nil {
		slog.Warn("publish paths changed", "error", err)
	}
}
