package usecase

import (
	"context"
	"sync"

	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/services/navigation"
)

// SettingsStore keeps one user's navigation preferences in memory and
// writes every change through to the profile settings blob
type SettingsStore struct {
	userID string
	repo   navigation.SettingsRepo

	saveMu  sync.Mutex
	mu      sync.RWMutex
	current models.NavigationSettings
}

// NewSettingsStore creates a store holding the defaults until Load is called
func NewSettingsStore(userID string, repo navigation.SettingsRepo) *SettingsStore {
	return &SettingsStore{
		userID:  userID,
		repo:    repo,
		current: models.DefaultNavigationSettings(),
	}
}

// Load reads the saved settings over the defaults. Read failures fall back
// to the defaults.
func (s *SettingsStore) Load(ctx context.Context) models.NavigationSettings {
	settings := models.DefaultNavigationSettings()

	saved, err := s.repo.GetNavigationSettings(ctx, s.userID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load navigation settings, using defaults",
			logger.String("user_id", s.userID),
			logger.Err(err))
	} else if saved != nil {
		settings = saved.Apply(settings)
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()
	return settings
}

// Save merges patch into the current settings and persists the result.
// Persistence failures are logged; the merged settings are returned either way.
func (s *SettingsStore) Save(ctx context.Context, patch models.SettingsPatch) models.NavigationSettings {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	merged := patch.Apply(s.current)
	s.current = merged
	s.mu.Unlock()

	if err := s.repo.SaveNavigationSettings(ctx, s.userID, merged); err != nil {
		logger.ErrorCtx(ctx, "Failed to save navigation settings",
			logger.String("user_id", s.userID),
			logger.Err(err))
	}
	return merged
}

// Current returns the in-memory settings
func (s *SettingsStore) Current() models.NavigationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
