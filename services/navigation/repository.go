package navigation

import (
	"context"

	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nebengjek-nav/services/navigation SettingsRepo

// SettingsRepo reads and merges the navigation key of the user settings blob
type SettingsRepo interface {
	// GetNavigationSettings returns the stored fields, nil when nothing is stored
	GetNavigationSettings(ctx context.Context, userID string) (*models.SettingsPatch, error)
	SaveNavigationSettings(ctx context.Context, userID string, settings models.NavigationSettings) error
}
