package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

// HistoryGeohashPrecision is the geohash length stored with every history row (~150 m cells)
const HistoryGeohashPrecision uint = 7

const earthRadiusMeters = 6371000.0

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash returns the centre of a geohash cell
func DecodeGeohash(hash string) models.Coordinate {
	lat, lng := geohash.Decode(hash)
	return models.Coordinate{Latitude: lat, Longitude: lng}
}

// DistanceMeters is the haversine great-circle distance between two coordinates
func DistanceMeters(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	dLat := lat2 - lat1
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
