package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	nrpkg "github.com/piresc/nebengjek-nav/internal/pkg/newrelic"
)

// SettingsRepo keeps navigation preferences under the "navigation" key of
// user_profiles.settings
type SettingsRepo struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sqlx.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// storedSettings mirrors the JSON blob without enforcing the provider set,
// so one bad field does not throw away the rest
type storedSettings struct {
	Provider      *string `json:"provider"`
	VoiceGuidance *bool   `json:"voiceGuidance"`
	AvoidTolls    *bool   `json:"avoidTolls"`
	AvoidHighways *bool   `json:"avoidHighways"`
}

// GetNavigationSettings returns the stored fields, or nil when the user has
// no profile or never saved navigation settings
func (r *SettingsRepo) GetNavigationSettings(ctx context.Context, userID string) (*models.SettingsPatch, error) {
	query := `SELECT settings->'navigation' FROM user_profiles WHERE user_id = $1`

	var raw []byte
	err := nrpkg.WithSegment(ctx, "postgres.user_profiles.select", func() error {
		return r.db.QueryRowxContext(ctx, query, userID).Scan(&raw)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get navigation settings: %w", err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var stored storedSettings
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode navigation settings: %w", err)
	}

	patch := &models.SettingsPatch{
		VoiceGuidance: stored.VoiceGuidance,
		AvoidTolls:    stored.AvoidTolls,
		AvoidHighways: stored.AvoidHighways,
	}
	if stored.Provider != nil {
		provider, err := models.ParseNavigationProvider(*stored.Provider)
		if err != nil {
			logger.WarnCtx(ctx, "Ignoring stored navigation provider",
				logger.String("user_id", userID),
				logger.String("provider", *stored.Provider))
		} else {
			patch.Provider = &provider
		}
	}
	return patch, nil
}

// SaveNavigationSettings replaces the "navigation" key and leaves every
// other key of the settings blob as it is
func (r *SettingsRepo) SaveNavigationSettings(ctx context.Context, userID string, settings models.NavigationSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode navigation settings: %w", err)
	}

	query := `
		INSERT INTO user_profiles (user_id, settings, updated_at)
		VALUES ($1, jsonb_build_object('navigation', $2::jsonb), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			settings = jsonb_set(COALESCE(user_profiles.settings, '{}'::jsonb), '{navigation}', $2::jsonb, true),
			updated_at = NOW()
	`

	err = nrpkg.WithSegment(ctx, "postgres.user_profiles.upsert", func() error {
		_, err := r.db.ExecContext(ctx, query, userID, string(payload))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save navigation settings: %w", err)
	}
	return nil
}
