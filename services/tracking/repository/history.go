package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/database"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	nrpkg "github.com/piresc/nebengjek-nav/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-nav/internal/utils"
)

// HistoryRepo appends to driver_location_history and mirrors the newest
// sample of each driver into Redis
type HistoryRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sqlx.DB, redisClient *database.RedisClient) *HistoryRepo {
	return &HistoryRepo{db: db, redisClient: redisClient}
}

// Append inserts one history row and refreshes the live mirror. Both writes
// are attempted; their failures are joined.
func (r *HistoryRepo) Append(ctx context.Context, userID string, sample models.LocationSample) error {
	var errs []error
	if err := r.insert(ctx, userID, sample); err != nil {
		errs = append(errs, err)
	}
	if err := r.mirror(ctx, userID, sample); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (r *HistoryRepo) insert(ctx context.Context, userID string, sample models.LocationSample) error {
	query := `
		INSERT INTO driver_location_history (
			id, user_id, latitude, longitude, heading, speed, accuracy, geohash, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	hash := utils.EncodeCoordinate(sample.Coordinate(), utils.HistoryGeohashPrecision)
	_, err := r.db.ExecContext(ctx, query,
		uuid.New(),
		userID,
		sample.Latitude,
		sample.Longitude,
		sample.Heading,
		sample.Speed,
		sample.Accuracy,
		hash,
		sample.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert location history: %w", err)
	}
	return nil
}

func (r *HistoryRepo) mirror(ctx context.Context, userID string, sample models.LocationSample) error {
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(sample.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(sample.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(sample.Timestamp.UnixMilli(), 10),
	}
	optional := map[string]*float64{
		constants.FieldHeading:  sample.Heading,
		constants.FieldSpeed:    sample.Speed,
		constants.FieldAccuracy: sample.Accuracy,
	}
	for field, value := range optional {
		if value != nil {
			fields[field] = strconv.FormatFloat(*value, 'f', -1, 64)
		}
	}

	key := fmt.Sprintf(constants.KeyDriverLocation, userID)
	if err := r.redisClient.ReplaceHashWithTTL(ctx, key, constants.LiveLocationTTL, fields); err != nil {
		return fmt.Errorf("failed to store live location: %w", err)
	}
	if err := r.redisClient.GeoAdd(ctx, constants.DriverLocationKey, sample.Longitude, sample.Latitude, userID); err != nil {
		return fmt.Errorf("failed to index live location: %w", err)
	}
	return nil
}

// GetLive returns the mirrored position of userID, nil when none is stored
func (r *HistoryRepo) GetLive(ctx context.Context, userID string) (*models.LocationSample, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, userID)
	var values map[string]string
	err := nrpkg.WithSegment(ctx, "redis.driver_location.get", func() (err error) {
		values, err = r.redisClient.HGetAll(ctx, key)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get live location: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	ts, err := strconv.ParseInt(values[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	sample := &models.LocationSample{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.UnixMilli(ts).UTC(),
	}
	sample.Heading = optionalFloat(values, constants.FieldHeading)
	sample.Speed = optionalFloat(values, constants.FieldSpeed)
	sample.Accuracy = optionalFloat(values, constants.FieldAccuracy)
	return sample, nil
}

func optionalFloat(values map[string]string, field string) *float64 {
	raw, ok := values[field]
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// GetHistory returns up to limit rows recorded in [from, to], oldest first
func (r *HistoryRepo) GetHistory(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.HistoryRecord, error) {
	query := `
		SELECT id, user_id, latitude, longitude, heading, speed, accuracy, geohash, recorded_at
		FROM driver_location_history
		WHERE user_id = $1 AND recorded_at BETWEEN $2 AND $3
		ORDER BY recorded_at ASC
		LIMIT $4
	`

	records := []models.HistoryRecord{}
	err := nrpkg.WithSegment(ctx, "postgres.driver_location_history.select", func() error {
		return r.db.SelectContext(ctx, &records, query, userID, from, to, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}
	return records, nil
}
