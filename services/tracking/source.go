package tracking

import (
	"context"
	"time"

	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks github.com/piresc/nebengjek-nav/services/tracking PositionSource,Watch

// Watch is an open continuous position subscription
type Watch interface {
	Stop()
}

// PositionSource is the driver device's geolocation capability
type PositionSource interface {
	// RequestPermission returns nil once location access is granted
	RequestPermission(ctx context.Context) error
	// CurrentPosition asks for a single fix and waits up to timeout
	CurrentPosition(ctx context.Context, timeout time.Duration) (models.LocationSample, error)
	// Watch subscribes to every fix and classified error until stopped
	Watch(onPosition func(models.LocationSample), onError func(*PositionError)) Watch
}
