package navigation

import (
	"context"

	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nebengjek-nav/services/navigation SettingsUC,VoiceUC,DispatcherUC,RouteEngineUC

// SettingsUC loads and saves one user's navigation preferences
type SettingsUC interface {
	Load(ctx context.Context) models.NavigationSettings
	Save(ctx context.Context, patch models.SettingsPatch) models.NavigationSettings
	Current() models.NavigationSettings
}

// VoiceUC speaks instructions on the driver's device
type VoiceUC interface {
	Speak(ctx context.Context, text string)
}

// DispatcherUC hands navigation off to an external map application
type DispatcherUC interface {
	OpenExternalNavigation(ctx context.Context, dest models.Destination) (string, error)
}

// RouteEngineUC runs in-app navigation for one driver
type RouteEngineUC interface {
	StartNavigation(ctx context.Context, dest models.Destination) (*models.NavigationStartResult, error)
	StopNavigation()
	Session() models.NavigationSession
}
