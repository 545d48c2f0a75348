package tracking

import (
	"context"
	"time"

	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nebengjek-nav/services/tracking ProfileRepo,HistoryRepo

// ProfileRepo stores the driver's current position on the profile row
type ProfileRepo interface {
	UpsertPosition(ctx context.Context, position models.ProfilePosition) error
}

// HistoryRepo is the append-only location trail and its live mirror
type HistoryRepo interface {
	Append(ctx context.Context, userID string, sample models.LocationSample) error
	GetLive(ctx context.Context, userID string) (*models.LocationSample, error)
	GetHistory(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.HistoryRecord, error)
}
