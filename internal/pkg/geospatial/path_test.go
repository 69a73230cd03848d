package geospatial_test

import (
	"math"
	"testing"

	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/pkg/geospatial"
)

func TestHaversine_KnownDistance(t *testing.T) {
	// Bilbao Abando to Moyua is roughly 350m.
	d := geospatial.Haversine(43.2609, -2.9334, 43.2632, -2.9349)
	if d < 250 || d > 450 {
		t.Errorf("expected ~350m, got %.1f", d)
	}
}

func TestMetersToFeet(t *testing.T) {
	if got := geospatial.MetersToFeet(100); math.Abs(got-328.084) > 0.001 {
		t.Errorf("expected 328.084, got %f", got)
	}
}

func TestPathLengthFeet_DegenerateInputs(t *testing.T) {
	if got := geospatial.PathLengthFeet(nil); got != 0 {
		t.Errorf("empty path: expected 0, got %f", got)
	}
	one := []domain.GeoPoint{{Lat: 33.64, Lon: -84.43}}
	if got := geospatial.PathLengthFeet(one); got != 0 {
		t.Errorf("single vertex: expected 0, got %f", got)
	}
}

func TestPathLengthFeet_SumsSegments(t *testing.T) {
	a := domain.GeoPoint{Lat: 33.64, Lon: -84.43}
	b := domain.GeoPoint{Lat: 33.641, Lon: -84.429}
	c := domain.GeoPoint{Lat: 33.642, Lon: -84.428}

	want := geospatial.MetersToFeet(geospatial.Distance(a, b) + geospatial.Distance(b, c))
	got := geospatial.PathLengthFeet([]domain.GeoPoint{a, b, c})
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestSegmentMidpoint(t *testing.T) {
	mid := geospatial.SegmentMidpoint(
		domain.GeoPoint{Lat: 0, Lon: 0},
		domain.GeoPoint{Lat: 2, Lon: 4},
	)
	if mid.Lat != 1 || mid.Lon != 2 {
		t.Errorf("expected (1,2), got (%f,%f)", mid.Lat, mid.Lon)
	}
}

func TestPathMidpointByArcLength(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, ok := geospatial.PathMidpointByArcLength(nil)
		if ok {
			t.Error("expected ok=false for empty path")
		}
	})

	t.Run("single vertex", func(t *testing.T) {
		p := domain.GeoPoint{Lat: 33.64, Lon: -84.43}
		mid, ok := geospatial.PathMidpointByArcLength([]domain.GeoPoint{p})
		if !ok || mid != p {
			t.Errorf("expected the vertex itself, got %+v ok=%v", mid, ok)
		}
	})

	t.Run("two vertices on the equator", func(t *testing.T) {
		mid, ok := geospatial.PathMidpointByArcLength([]domain.GeoPoint{
			{Lat: 0, Lon: 0},
			{Lat: 0, Lon: 2},
		})
		if !ok {
			t.Fatal("expected ok=true")
		}
		if math.Abs(mid.Lat) > 1e-9 || math.Abs(mid.Lon-1) > 1e-9 {
			t.Errorf("expected (0,1), got (%f,%f)", mid.Lat, mid.Lon)
		}
	})

	t.Run("midpoint falls inside long segment", func(t *testing.T) {
		// First segment is 1 degree, second is 3 degrees; the half-length
		// mark (2 degrees in) lands one third into the second segment.
		mid, ok := geospatial.PathMidpointByArcLength([]domain.GeoPoint{
			{Lat: 0, Lon: 0},
			{Lat: 0, Lon: 1},
			{Lat: 0, Lon: 4},
		})
		if !ok {
			t.Fatal("expected ok=true")
		}
		if math.Abs(mid.Lon-2) > 1e-6 {
			t.Errorf("expected lon ~2, got %f", mid.Lon)
		}
	})

	t.Run("coincident vertices", func(t *testing.T) {
		p := domain.GeoPoint{Lat: 33.64, Lon: -84.43}
		mid, ok := geospatial.PathMidpointByArcLength([]domain.GeoPoint{p, p, p})
		if !ok || mid != p {
			t.Errorf("expected the shared vertex, got %+v ok=%v", mid, ok)
		}
	})
}
