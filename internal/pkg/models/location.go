package models

import "time"

// Coordinate is a bare latitude/longitude pair
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// LocationSample is a single fix reported by the driver's device
type LocationSample struct {
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Heading   *float64  `json:"heading,omitempty" validate:"omitempty,gte=0,lte=360"`
	Speed     *float64  `json:"speed,omitempty" validate:"omitempty,gte=0"`
	Accuracy  *float64  `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	Timestamp time.Time `json:"timestamp"`
}

// Coordinate returns the position part of the sample
func (s LocationSample) Coordinate() Coordinate {
	return Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
}

// ProfilePosition is the current position written to the driver's profile row
type ProfilePosition struct {
	UserID    string    `json:"user_id" db:"user_id"`
	Latitude  float64   `json:"latitude" db:"current_latitude"`
	Longitude float64   `json:"longitude" db:"current_longitude"`
	Heading   *float64  `json:"heading,omitempty" db:"current_heading"`
	Speed     *float64  `json:"speed,omitempty" db:"current_speed"`
	Timestamp time.Time `json:"timestamp" db:"location_updated_at"`
}

// HistoryRecord is one row of the append-only location trail
type HistoryRecord struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Heading    *float64  `json:"heading,omitempty" db:"heading"`
	Speed      *float64  `json:"speed,omitempty" db:"speed"`
	Accuracy   *float64  `json:"accuracy,omitempty" db:"accuracy"`
	Geohash    string    `json:"geohash" db:"geohash"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// LocationEvent is published whenever the profile position is flushed
type LocationEvent struct {
	DriverID  string    `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Heading   *float64  `json:"heading,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackingStatus is the driver-facing view of the tracker
type TrackingStatus struct {
	Tracking bool            `json:"tracking"`
	Error    string          `json:"error,omitempty"`
	Latest   *LocationSample `json:"latest,omitempty"`
}
