package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Average urban driving speed used for arrival estimates
const averageSpeedKmh = 30.0

// EncodeLocation converts a point to a geohash string
func EncodeLocation(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// GeohashNeighbors returns the neighboring geohashes of a given geohash.
// Used to widen bucket lookups so drivers near a cell edge are not missed.
func GeohashNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// CalculateDistance calculates the distance between two points in
// kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// EstimateEtaMinutes converts a road distance into a coarse arrival
// estimate at average urban speed, never reporting zero for a real trip
func EstimateEtaMinutes(distanceKm float64) int {
	if distanceKm <= 0 {
		return 0
	}
	minutes := int(math.Ceil(distanceKm / averageSpeedKmh * 60.0))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// ValidCoordinates reports whether the pair is a plausible WGS84 position
func ValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
