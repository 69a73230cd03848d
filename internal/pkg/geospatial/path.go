package geospatial

import "github.com/stridemap/stridemap/internal/core/domain"

// MetersToFeet converts meters to feet.
func MetersToFeet(m float64) float64 {
	return m * 3.28084
}

// Distance returns the distance in meters between two points.
func Distance(a, b domain.GeoPoint) float64 {
	return Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

// PathLengthFeet sums the consecutive-pair distances along a path,
// in feet. A path with fewer than 2 vertices has zero length.
func PathLengthFeet(vertices []domain.GeoPoint) float64 {
	var meters float64
	for i := 1; i < len(vertices); i++ {
		meters += Distance(vertices[i-1], vertices[i])
	}
	return MetersToFeet(meters)
}

// SegmentMidpoint returns the arithmetic mean of latitude and of
// longitude. This is a planar approximation, not the geodesic
// midpoint; paths are local enough that the error is invisible.
func SegmentMidpoint(a, b domain.GeoPoint) domain.GeoPoint {
	return domain.GeoPoint{
		Lat: (a.Lat + b.Lat) / 2,
		Lon: (a.Lon + b.Lon) / 2,
	}
}

// PathMidpointByArcLength returns the point at 50% of a path's total
// length, interpolating linearly within the segment that contains it.
// The second return is false only for an empty path.
func PathMidpointByArcLength(vertices []domain.GeoPoint) (domain.GeoPoint, bool) {
	switch len(vertices) {
	case 0:
		return domain.GeoPoint{}, false
	case 1:
		return vertices[0], true
	}

	var total float64
	for i := 1; i < len(vertices); i++ {
		total += Distance(vertices[i-1], vertices[i])
	}
	if total == 0 {
		// All vertices coincide.
		return vertices[0], true
	}

	half := total / 2
	var walked float64
	for i := 1; i < len(vertices); i++ {
		seg := Distance(vertices[i-1], vertices[i])
		if walked+seg >= half {
			frac := (half - walked) / seg
			a, b := vertices[i-1], vertices[i]
			return domain.GeoPoint{
				Lat: a.Lat + (b.Lat-a.Lat)*frac,
				Lon: a.Lon + (b.Lon-a.Lon)*frac,
			}, true
		}
		walked += seg
	}

	// Unreachable for well-formed input; fall back to the middle vertex.
	return vertices[len(vertices)/2], true
}
