package usecases_test

import (
	"strconv"
	"testing"

	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/core/usecases"
)

func TestUndoLog_PopEmpty(t *testing.T) {
	l := usecases.NewUndoLog()
	if _, ok := l.Pop(); ok {
		t.Error("pop on an empty log must report ok=false")
	}
}

func TestUndoLog_LIFOOrder(t *testing.T) {
	l := usecases.NewUndoLog()
	l.RecordCreate("path-1")
	l.RecordCreate("path-2")

	a, ok := l.Pop()
	if !ok || a.PathID != "path-2" {
		t.Errorf("expected path-2 first, got %+v ok=%v", a, ok)
	}
	a, _ = l.Pop()
	if a.PathID != "path-1" {
		t.Errorf("expected path-1 second, got %s", a.PathID)
	}
}

func TestUndoLog_CapacityEvictsOldest(t *testing.T) {
	l := usecases.NewUndoLog()
	for i := 1; i <= 11; i++ {
		l.RecordCreate("path-" + strconv.Itoa(i))
	}

	if l.Len() != 10 {
		t.Fatalf("expected 10 entries after 11 pushes, got %d", l.Len())
	}

	// Drain: path-1 must be gone, path-2..path-11 present, newest first.
	for want := 11; want >= 2; want-- {
		a, ok := l.Pop()
		if !ok {
			t.Fatalf("log drained early at %d", want)
		}
		if a.PathID != "path-"+strconv.Itoa(want) {
			t.Errorf("expected path-%d, got %s", want, a.PathID)
		}
	}
	if _, ok := l.Pop(); ok {
		t.Error("the oldest entry must be unrecoverable")
	}
}

func TestUndoLog_RecordDelete_SnapshotsVertices(t *testing.T) {
	l := usecases.NewUndoLog()
	p := &domain.Path{
		ID:             "path-3",
		SequenceNumber: 3,
		Color:          "#4363d8",
		Vertices:       []domain.GeoPoint{{Lat: 33.64, Lon: -84.43}},
		Labels:         []domain.Label{{Text: "Total: <1 min"}},
	}
	l.RecordDelete(p)

	// Mutating the live path after the snapshot must not leak in.
	p.Vertices[0].Lat = 0

	a, _ := l.Pop()
	if a.Kind != domain.UndoDelete {
		t.Fatalf("expected delete action, got %s", a.Kind)
	}
	if a.Vertices[0].Lat != 33.64 {
		t.Error("snapshot must copy vertices, not alias them")
	}
	if a.Color != "#4363d8" || a.SequenceNumber != 3 || a.PathID != "path-3" {
		t.Errorf("snapshot incomplete: %+v", a)
	}
}
