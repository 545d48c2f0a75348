package tracking

import (
	"context"
	"time"

	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nebengjek-nav/services/tracking LocationTracker,LocationQueryUC

// LocationTracker owns one driver's live position feed
type LocationTracker interface {
	StartTracking(ctx context.Context) error
	StopTracking()
	Latest() (models.LocationSample, bool)
	IsTracking() bool
	Err() string
}

// LocationQueryUC serves stored positions to other services
type LocationQueryUC interface {
	GetLiveLocation(ctx context.Context, driverID string) (*models.LocationSample, error)
	GetHistory(ctx context.Context, driverID string, from, to time.Time, limit int) ([]models.HistoryRecord, error)
}
