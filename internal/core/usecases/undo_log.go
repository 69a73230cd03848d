package usecases

import "github.com/stridemap/stridemap/internal/core/domain"

// undoCapacity bounds the history; the oldest entry is dropped first.
const undoCapacity = 10

// UndoLog is a bounded history of reversible path lifecycle actions.
// Push evicts from the front once full; Pop takes from the back. There
// is no redo: a popped action is gone. Not safe for concurrent use;
// AnnotationService serializes access.
type UndoLog struct {
	actions []domain.UndoAction
}

// NewUndoLog creates an empty undo log.
func NewUndoLog() *UndoLog {
	return &UndoLog{}
}

func (l *UndoLog) push(a domain.UndoAction) {
	l.actions = append(l.actions, a)
	if len(l.actions) > undoCapacity {
		l.actions = l.actions[len(l.actions)-undoCapacity:]
	}
}

// RecordCreate records that a path was created.
func (l *UndoLog) RecordCreate(pathID string) {
	l.push(domain.UndoAction{Kind: domain.UndoCreate, PathID: pathID})
}

// RecordDelete snapshots a path at the moment of user deletion.
// Labels are derived state and are deliberately not captured.
func (l *UndoLog) RecordDelete(p *domain.Path) {
	vertices := make([]domain.GeoPoint, len(p.Vertices))
	copy(vertices, p.Vertices)
	l.push(domain.UndoAction{
		Kind:           domain.UndoDelete,
		PathID:         p.ID,
		Vertices:       vertices,
		Color:          p.Color,
		SequenceNumber: p.SequenceNumber,
	})
}

// Pop removes and returns the most recent action. The second return
// is false when the log is empty.
func (l *UndoLog) Pop() (domain.UndoAction, bool) {
	if len(l.actions) == 0 {
		return domain.UndoAction{}, false
	}
	a := l.actions[len(l.actions)-1]
	l.actions = l.actions[:len(l.actions)-1]
	return a, true
}

// Len returns the number of recorded actions.
func (l *UndoLog) Len() int {
	return len(l.actions)
}
