package tracking

import (
	"context"

	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nebengjek-nav/services/tracking TrackingGW,Notifier

// TrackingGW publishes location events to other services
type TrackingGW interface {
	PublishLocationUpdated(ctx context.Context, event models.LocationEvent) error
}

// Notifier shows a notice on the driver's device
type Notifier interface {
	Notify(ctx context.Context, notice models.Notice) error
}
