package usecases

import (
	"strings"

	"github.com/stridemap/stridemap/internal/core/domain"
)

// LocationService serves the static table of named places used to
// recenter the map view. The table is reference data compiled into the
// binary; it is never written at runtime.
type LocationService struct {
	locations []domain.Location
}

// NewLocationService creates a LocationService over the built-in table.
func NewLocationService() *LocationService {
	return &LocationService{locations: defaultLocations}
}

// List returns every named location.
func (s *LocationService) List() []domain.Location {
	out := make([]domain.Location, len(s.locations))
	copy(out, s.locations)
	return out
}

// Get returns a location by slug, or nil.
func (s *LocationService) Get(slug string) *domain.Location {
	for i := range s.locations {
		if s.locations[i].Slug == slug {
			loc := s.locations[i]
			return &loc
		}
	}
	return nil
}

// Search returns locations whose name or slug contains the query,
// case-insensitively. An empty query returns the full table.
func (s *LocationService) Search(query string) []domain.Location {
	if query == "" {
		return s.List()
	}
	q := strings.ToLower(query)
	var out []domain.Location
	for _, loc := range s.locations {
		if strings.Contains(strings.ToLower(loc.Name), q) || strings.Contains(loc.Slug, q) {
			out = append(out, loc)
		}
	}
	return out
}

var defaultLocations = []domain.Location{
	{Slug: "domestic-terminal", Name: "Domestic Terminal", Location: domain.GeoPoint{Lat: 33.6404, Lon: -84.4467}, Zoom: 17},
	{Slug: "international-terminal", Name: "International Terminal", Location: domain.GeoPoint{Lat: 33.6407, Lon: -84.4132}, Zoom: 17},
	{Slug: "concourse-a", Name: "Concourse A", Location: domain.GeoPoint{Lat: 33.6407, Lon: -84.4386}, Zoom: 18},
	{Slug: "concourse-b", Name: "Concourse B", Location: domain.GeoPoint{Lat: 33.6406, Lon: -84.4345}, Zoom: 18},
	{Slug: "concourse-c", Name: "Concourse C", Location: domain.GeoPoint{Lat: 33.6405, Lon: -84.4305}, Zoom: 18},
	{Slug: "concourse-d", Name: "Concourse D", Location: domain.GeoPoint{Lat: 33.6404, Lon: -84.4265}, Zoom: 18},
	{Slug: "concourse-e", Name: "Concourse E", Location: domain.GeoPoint{Lat: 33.6403, Lon: -84.4225}, Zoom: 18},
	{Slug: "concourse-f", Name: "Concourse F", Location: domain.GeoPoint{Lat: 33.6402, Lon: -84.4185}, Zoom: 18},
	{Slug: "rental-car-center", Name: "Rental Car Center", Location: domain.GeoPoint{Lat: 33.6518, Lon: -84.4480}, Zoom: 16},
	{Slug: "airport-station", Name: "Airport Station", Location: domain.GeoPoint{Lat: 33.6407, Lon: -84.4489}, Zoom: 17},
}
