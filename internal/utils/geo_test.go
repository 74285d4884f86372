package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	kemang := GeoPoint{Latitude: -6.2607, Longitude: 106.8105}
	sudirman := GeoPoint{Latitude: -6.2246, Longitude: 106.8222}

	d := CalculateDistance(kemang, sudirman)
	assert.InDelta(t, 4.2, d, 0.5)

	assert.Zero(t, CalculateDistance(kemang, kemang))
}

func TestEstimateEtaMinutes(t *testing.T) {
	assert.Equal(t, 0, EstimateEtaMinutes(0))
	// Anything real rounds up to at least one minute
	assert.Equal(t, 1, EstimateEtaMinutes(0.1))
	assert.Equal(t, 10, EstimateEtaMinutes(5))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(-6.26, 106.81))
	assert.True(t, ValidCoordinates(90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.1))
}

func TestEncodeLocationNeighbors(t *testing.T) {
	hash := EncodeLocation(GeoPoint{Latitude: -6.26, Longitude: 106.81}, 6)
	assert.Len(t, hash, 6)
	assert.Len(t, GeohashNeighbors(hash), 8)
}
