package usecases_test

import (
	"strings"
	"testing"

	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/core/usecases"
	"github.com/stridemap/stridemap/internal/pkg/geospatial"
)

func TestTotalDistanceFeet(t *testing.T) {
	a := []domain.GeoPoint{{Lat: 33.64, Lon: -84.43}, {Lat: 33.641, Lon: -84.429}}
	b := []domain.GeoPoint{{Lat: 33.65, Lon: -84.44}, {Lat: 33.651, Lon: -84.439}}

	paths := []*domain.Path{
		{ID: "path-1", Vertices: a},
		{ID: "path-2", Vertices: b},
		{ID: "path-3"}, // no vertices, zero length
	}

	want := geospatial.PathLengthFeet(a) + geospatial.PathLengthFeet(b)
	got := usecases.TotalDistanceFeet(paths)
	if got != want {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestSummarize_ZeroIsPlaceholder(t *testing.T) {
	s := usecases.Summarize(0)
	if s.Distance != "--" || s.Time != "--" {
		t.Errorf("expected placeholders, got %+v", s)
	}
}

func TestSummarize_FormatsDistanceAndTime(t *testing.T) {
	s := usecases.Summarize(5280)
	if !strings.HasPrefix(s.Distance, "5,280 ft") {
		t.Errorf("distance = %q, want thousands separator", s.Distance)
	}
	if !strings.Contains(s.Distance, "(1.00 mi)") {
		t.Errorf("distance = %q, want miles to two decimals", s.Distance)
	}
	// 5280 ft at 3 ft/s is 1760 s, which rounds to 29 minutes.
	if s.Time != "29 min" {
		t.Errorf("time = %q, want \"29 min\"", s.Time)
	}
}

func TestSummarize_SmallTotal(t *testing.T) {
	s := usecases.Summarize(42)
	if !strings.HasPrefix(s.Distance, "42 ft") {
		t.Errorf("distance = %q", s.Distance)
	}
	if s.Time != "<1 min" {
		t.Errorf("time = %q, want \"<1 min\"", s.Time)
	}
}

func TestSummarize_RoundsFeet(t *testing.T) {
	s := usecases.Summarize(1234567.4)
	if !strings.HasPrefix(s.Distance, "1,234,567 ft") {
		t.Errorf("distance = %q", s.Distance)
	}
}
