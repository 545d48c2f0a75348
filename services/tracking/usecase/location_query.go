package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/services/tracking"
)

const (
	defaultHistoryLimit = 500
	maxHistoryLimit     = 5000
	defaultHistorySpan  = time.Hour
)

// LocationQueryUC implements read access to stored driver positions
type LocationQueryUC struct {
	history tracking.HistoryRepo
	now     func() time.Time
}

// NewLocationQueryUC creates the read-side use case
func NewLocationQueryUC(history tracking.HistoryRepo) *LocationQueryUC {
	return &LocationQueryUC{history: history, now: time.Now}
}

// GetLiveLocation returns the driver's last mirrored position
func (uc *LocationQueryUC) GetLiveLocation(ctx context.Context, driverID string) (*models.LocationSample, error) {
	sample, err := uc.history.GetLive(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get live location: %w", err)
	}
	if sample == nil {
		return nil, tracking.ErrLocationNotFound
	}
	return sample, nil
}

// GetHistory returns the trail between from and to, oldest first. Zero
// bounds default to the last hour and the limit is clamped.
func (uc *LocationQueryUC) GetHistory(ctx context.Context, driverID string, from, to time.Time, limit int) ([]models.HistoryRecord, error) {
	if to.IsZero() {
		to = uc.now()
	}
	if from.IsZero() {
		from = to.Add(-defaultHistorySpan)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: from %s is after to %s", tracking.ErrInvalidRange, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	records, err := uc.history.GetHistory(ctx, driverID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}
	return records, nil
}
