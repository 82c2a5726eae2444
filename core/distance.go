// Package core: distance functions used as edge-weight input and as search
// heuristics. All three are symmetric, non-negative, and zero for identical
// coordinates, which is what admissibility of the derived heuristics rests on.
package core

import "math"

// earthRadiusKm is the mean Earth radius used by Haversine.
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two geographic
// coordinates (degrees) in kilometers.
func Haversine(a, b Coord) float64 {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// Manhattan returns the L1 distance between two planar coordinates.
func Manhattan(a, b Coord) float64 {
	return math.Abs(a.Lat-b.Lat) + math.Abs(a.Lon-b.Lon)
}

// Euclidean returns the L2 distance between two planar coordinates.
func Euclidean(a, b Coord) float64 {
	dLat := a.Lat - b.Lat
	dLon := a.Lon - b.Lon

	return math.Sqrt(dLat*dLat + dLon*dLon)
}
