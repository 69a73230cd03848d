package usecases_test

import (
	"testing"

	"github.com/stridemap/stridemap/internal/core/usecases"
)

func TestLocationService_List(t *testing.T) {
	svc := usecases.NewLocationService()
	if len(svc.List()) == 0 {
		t.Fatal("the built-in table must not be empty")
	}
}

func TestLocationService_Get(t *testing.T) {
	svc := usecases.NewLocationService()
	loc := svc.Get("concourse-b")
	if loc == nil {
		t.Fatal("expected concourse-b")
	}
	if loc.Name != "Concourse B" || loc.Zoom == 0 {
		t.Errorf("unexpected location: %+v", loc)
	}
	if svc.Get("nowhere") != nil {
		t.Error("unknown slug must return nil")
	}
}

func TestLocationService_Search(t *testing.T) {
	svc := usecases.NewLocationService()

	hits := svc.Search("concourse")
	if len(hits) != 6 {
		t.Errorf("expected 6 concourses, got %d", len(hits))
	}

	hits = svc.Search("TERMINAL")
	if len(hits) != 2 {
		t.Errorf("search must be case-insensitive, got %d hits", len(hits))
	}

	if got := svc.Search(""); len(got) != len(svc.List()) {
		t.Errorf("empty query must return the full table")
	}
}
