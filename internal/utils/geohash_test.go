package utils

import (
	"testing"

	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEncodeCoordinate(t *testing.T) {
	monas := models.Coordinate{Latitude: -6.175392, Longitude: 106.827153}

	hash := EncodeCoordinate(monas, HistoryGeohashPrecision)
	assert.Len(t, hash, int(HistoryGeohashPrecision))
	assert.Equal(t, "qqguy", hash[:5])

	centre := DecodeGeohash(hash)
	assert.InDelta(t, monas.Latitude, centre.Latitude, 0.001)
	assert.InDelta(t, monas.Longitude, centre.Longitude, 0.001)
}

func TestDistanceMeters(t *testing.T) {
	tests := []struct {
		name  string
		a, b  models.Coordinate
		want  float64
		delta float64
	}{
		{
			name: "same point",
			a:    models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
			b:    models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
			want: 0, delta: 0.001,
		},
		{
			name: "new york to los angeles",
			a:    models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
			b:    models.Coordinate{Latitude: 34.0522, Longitude: -118.2437},
			want: 3935746, delta: 5000,
		},
		{
			name: "one thousandth of a degree of latitude",
			a:    models.Coordinate{Latitude: 0, Longitude: 0},
			b:    models.Coordinate{Latitude: 0.001, Longitude: 0},
			want: 111.19, delta: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DistanceMeters(tt.a, tt.b), tt.delta)
		})
	}
}
