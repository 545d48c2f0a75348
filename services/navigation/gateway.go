package navigation

import (
	"context"

	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nebengjek-nav/services/navigation GeocodingGW,DirectionsGW,SpeechGW,DeviceGW,NavigationEventGW,PlatformInfo,PositionProvider

// GeocodingGW resolves free-text addresses
type GeocodingGW interface {
	// Geocode returns nil when nothing matches
	Geocode(ctx context.Context, address string) (*models.Coordinate, error)
}

// DirectionsGW computes driving routes
type DirectionsGW interface {
	// Directions returns nil when no route exists
	Directions(ctx context.Context, req models.DirectionsRequest) (*models.Route, error)
}

// SpeechGW drives the speech output of the device
type SpeechGW interface {
	Speak(ctx context.Context, utterance models.Utterance) error
	Cancel(ctx context.Context) error
}

// DeviceGW opens URLs and shows notices on the device
type DeviceGW interface {
	OpenURL(ctx context.Context, url string) error
	Notify(ctx context.Context, notice models.Notice) error
}

// NavigationEventGW publishes session lifecycle events
type NavigationEventGW interface {
	PublishSessionEvent(ctx context.Context, event models.NavigationEvent) error
}

// PlatformInfo answers capability questions about the driver's device
type PlatformInfo interface {
	IsIOS() bool
	SpeechSupported() bool
}

// PositionProvider is the read side of the driver's location tracker
type PositionProvider interface {
	Latest() (models.LocationSample, bool)
}
