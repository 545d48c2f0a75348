package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

// ProfileRepo writes the driver's current position onto driver_profiles
type ProfileRepo struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// UpsertPosition stores position as the driver's current location
func (r *ProfileRepo) UpsertPosition(ctx context.Context, position models.ProfilePosition) error {
	query := `
		INSERT INTO driver_profiles (
			user_id, current_latitude, current_longitude, current_heading, current_speed, location_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			current_latitude = EXCLUDED.current_latitude,
			current_longitude = EXCLUDED.current_longitude,
			current_heading = EXCLUDED.current_heading,
			current_speed = EXCLUDED.current_speed,
			location_updated_at = EXCLUDED.location_updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		position.UserID,
		position.Latitude,
		position.Longitude,
		position.Heading,
		position.Speed,
		position.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert driver position: %w", err)
	}
	return nil
}
