package usecases_test

import (
	"testing"

	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/core/usecases"
)

func TestRegistry_Create_AssignsIdentity(t *testing.T) {
	r := usecases.NewRegistry()

	p1 := r.Create([]domain.GeoPoint{{Lat: 33.64, Lon: -84.43}, {Lat: 33.641, Lon: -84.429}})
	p2 := r.Create(nil)

	if p1.ID != "path-1" || p1.SequenceNumber != 1 {
		t.Errorf("first path: got id=%s seq=%d", p1.ID, p1.SequenceNumber)
	}
	if p2.ID != "path-2" || p2.SequenceNumber != 2 {
		t.Errorf("second path: got id=%s seq=%d", p2.ID, p2.SequenceNumber)
	}
	if r.Len() != 2 {
		t.Errorf("expected 2 paths, got %d", r.Len())
	}
}

func TestRegistry_Create_EmptyVerticesIsValid(t *testing.T) {
	r := usecases.NewRegistry()
	p := r.Create([]domain.GeoPoint{})
	if p == nil || r.Get(p.ID) == nil {
		t.Fatal("empty vertex list must still yield a registered path")
	}
}

func TestRegistry_ColorCycle_IndependentOfDeletions(t *testing.T) {
	r := usecases.NewRegistry()

	var colors []string
	for i := 0; i < 10; i++ {
		p := r.Create(nil)
		colors = append(colors, p.Color)
		// Deleting in between must not affect later color assignment.
		if i%2 == 0 {
			r.Remove(p.ID)
		}
	}

	if colors[0] == colors[1] {
		t.Error("consecutive paths must get different palette entries")
	}
	for i := 8; i < len(colors); i++ {
		if colors[i] != colors[i-8] {
			t.Errorf("palette must cycle with its own period: colors[%d]=%s, colors[%d]=%s",
				i, colors[i], i-8, colors[i-8])
		}
	}
}

func TestRegistry_UpdateVertices_UnknownIDIsNoop(t *testing.T) {
	r := usecases.NewRegistry()
	if p := r.UpdateVertices("path-99", []domain.GeoPoint{{Lat: 1, Lon: 1}}); p != nil {
		t.Errorf("expected nil for stale edit, got %+v", p)
	}
}

func TestRegistry_UpdateVertices_ReplacesInPlace(t *testing.T) {
	r := usecases.NewRegistry()
	p := r.Create([]domain.GeoPoint{{Lat: 0, Lon: 0}})

	updated := r.UpdateVertices(p.ID, []domain.GeoPoint{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}})
	if updated == nil {
		t.Fatal("expected the updated path")
	}
	if len(r.Get(p.ID).Vertices) != 2 {
		t.Errorf("expected 2 vertices after update, got %d", len(r.Get(p.ID).Vertices))
	}
}

func TestRegistry_Remove_UnknownIDIsNoop(t *testing.T) {
	r := usecases.NewRegistry()
	if p := r.Remove("path-1"); p != nil {
		t.Errorf("expected nil, got %+v", p)
	}
}

func TestRegistry_Restore_ReissuesIdentity(t *testing.T) {
	r := usecases.NewRegistry()
	p := r.Create([]domain.GeoPoint{{Lat: 33.64, Lon: -84.43}, {Lat: 33.641, Lon: -84.429}})
	removed := r.Remove(p.ID)

	restored := r.Restore(removed.Vertices, removed.Color, removed.SequenceNumber)
	if restored.ID != p.ID {
		t.Errorf("restored id %s, want %s", restored.ID, p.ID)
	}
	if restored.Color != p.Color || restored.SequenceNumber != p.SequenceNumber {
		t.Errorf("restored path must keep snapshot color and sequence number")
	}
}

func TestRegistry_Restore_AdvancesCounterPastSnapshot(t *testing.T) {
	r := usecases.NewRegistry()
	for i := 0; i < 3; i++ {
		r.Create(nil)
	}

	// Restore into a fresh registry whose counter is behind the snapshot.
	fresh := usecases.NewRegistry()
	fresh.Restore(nil, "#e6194b", 3)
	next := fresh.Create(nil)
	if next.ID == "path-3" {
		t.Error("a freshly created path must never collide with a restored id")
	}
	if next.SequenceNumber != 4 {
		t.Errorf("expected sequence 4 after restoring 3, got %d", next.SequenceNumber)
	}
	_ = r
}

func TestRegistry_Clear_RemovesEverything(t *testing.T) {
	r := usecases.NewRegistry()
	r.Create(nil)
	r.Create(nil)

	removed := r.Clear()
	if len(removed) != 2 || r.Len() != 0 {
		t.Errorf("expected 2 removed and empty registry, got %d removed len=%d", len(removed), r.Len())
	}
}

func TestRegistry_List_OrderedBySequence(t *testing.T) {
	r := usecases.NewRegistry()
	r.Create(nil)
	p2 := r.Create(nil)
	r.Create(nil)
	r.Remove(p2.ID)
	r.Restore(nil, p2.Color, p2.SequenceNumber)

	list := r.List()
	for i := 1; i < len(list); i++ {
		if list[i-1].SequenceNumber >= list[i].SequenceNumber {
			t.Fatalf("list not ordered by sequence: %d before %d",
				list[i-1].SequenceNumber, list[i].SequenceNumber)
		}
	}
}
