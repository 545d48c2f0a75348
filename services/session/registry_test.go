package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/pkg/scheduler/schedulertest"
	navmocks "github.com/piresc/nebengjek-nav/services/navigation/mocks"
	"github.com/piresc/nebengjek-nav/services/session"
	"github.com/piresc/nebengjek-nav/services/session/sessiontest"
	trackmocks "github.com/piresc/nebengjek-nav/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const driverID = "7b3a3f7e-1d2c-4a55-9d43-2f0c5f8e1a01"

type fixture struct {
	registry     *session.Registry
	phone        *sessiontest.Phone
	settingsRepo *navmocks.MockSettingsRepo
	sched        *schedulertest.Fake
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	profiles := trackmocks.NewMockProfileRepo(ctrl)
	profiles.EXPECT().UpsertPosition(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	history := trackmocks.NewMockHistoryRepo(ctrl)
	history.EXPECT().Append(gomock.Any(), driverID, gomock.Any()).Return(nil).AnyTimes()
	trackingEvents := trackmocks.NewMockTrackingGW(ctrl)
	trackingEvents.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	navEvents := navmocks.NewMockNavigationEventGW(ctrl)
	navEvents.EXPECT().PublishSessionEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f := &fixture{
		phone:        sessiontest.NewPhone(driverID),
		settingsRepo: navmocks.NewMockSettingsRepo(ctrl),
		sched:        schedulertest.New(),
	}
	f.registry = session.NewRegistry(session.Dependencies{
		Tracking:         models.TrackingConfig{ProfileFlushSeconds: 30, FixTimeoutSeconds: 1, InitialFixRetries: 3, WriteTimeoutSeconds: 1},
		Navigation:       models.NavigationConfig{ProgressIntervalSeconds: 5},
		Channels:         func(string) session.Channel { return f.phone },
		Profiles:         profiles,
		History:          history,
		TrackingEvents:   trackingEvents,
		SettingsRepo:     f.settingsRepo,
		Geocoder:         navmocks.NewMockGeocodingGW(ctrl),
		Directions:       navmocks.NewMockDirectionsGW(ctrl),
		NavigationEvents: navEvents,
		Scheduler:        f.sched,
	})
	f.phone.Attach(f.registry)
	return f
}

func waze() *models.SettingsPatch {
	p := models.ProviderWaze
	return &models.SettingsPatch{Provider: &p}
}

func TestRegistry_GetCreatesOnce(t *testing.T) {
	f := newFixture(t)
	f.settingsRepo.EXPECT().GetNavigationSettings(gomock.Any(), driverID).Return(waze(), nil).Times(1)

	first := f.registry.Get(context.Background(), driverID)
	second := f.registry.Get(context.Background(), driverID)

	assert.Same(t, first, second)
	assert.Equal(t, 1, f.registry.Count())
	assert.Equal(t, models.ProviderWaze, first.Settings.Current().Provider)

	found, ok := f.registry.Lookup(driverID)
	assert.True(t, ok)
	assert.Same(t, first, found)
}

func TestRegistry_SessionWiring(t *testing.T) {
	f := newFixture(t)
	f.settingsRepo.EXPECT().GetNavigationSettings(gomock.Any(), driverID).Return(waze(), nil)
	ctx := context.Background()

	s := f.registry.Get(ctx, driverID)
	s.Feed.SetCapabilities(models.DeviceCapabilities{Geolocation: true, Permission: "prompt", Speech: true, UserAgent: "Mozilla/5.0 (iPhone)"})
	f.phone.SetFix(models.LocationSample{Latitude: -6.2, Longitude: 106.8166, Timestamp: time.Now()})

	require.NoError(t, s.Tracker.StartTracking(ctx))
	status := s.Status()
	assert.True(t, status.Tracking)
	require.NotNil(t, status.Latest)
	assert.Equal(t, -6.2, status.Latest.Latitude)

	result, err := s.Engine.StartNavigation(ctx, models.Destination{Address: "Monas"})
	require.NoError(t, err)
	assert.Equal(t, models.StateDelegated, result.State)
	assert.Equal(t, "https://waze.com/ul?q=Monas&navigate=yes", result.ExternalURL)

	assert.Equal(t, []string{
		constants.EventRequestPermission,
		constants.EventWatchPosition,
		constants.EventGetPosition,
		constants.EventOpenURL,
		constants.EventNotice,
	}, f.phone.Events())
}

func TestRegistry_Close(t *testing.T) {
	f := newFixture(t)
	f.settingsRepo.EXPECT().GetNavigationSettings(gomock.Any(), driverID).Return(nil, nil)
	ctx := context.Background()

	s := f.registry.Get(ctx, driverID)
	s.Feed.SetCapabilities(models.DeviceCapabilities{Geolocation: true, Permission: "granted"})
	f.phone.SetFix(models.LocationSample{Latitude: -6.2, Longitude: 106.8166, Timestamp: time.Now()})
	require.NoError(t, s.Tracker.StartTracking(ctx))
	require.Equal(t, 1, f.sched.Pending())

	f.registry.Close(driverID)

	assert.False(t, s.Tracker.IsTracking())
	assert.Equal(t, 0, f.sched.Pending())
	assert.Equal(t, 0, s.Feed.OpenWatches())
	assert.Contains(t, f.phone.Events(), constants.EventClearWatch)
	_, ok := f.registry.Lookup(driverID)
	assert.False(t, ok)

	assert.NotPanics(t, func() { f.registry.Close(driverID) })
}

func TestRegistry_CloseAll(t *testing.T) {
	f := newFixture(t)
	f.settingsRepo.EXPECT().GetNavigationSettings(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	for _, id := range []string{driverID, "driver-2", "driver-3"} {
		f.registry.Get(context.Background(), id)
	}
	require.Equal(t, 3, f.registry.Count())

	require.NoError(t, f.registry.CloseAll(context.Background()))
	assert.Equal(t, 0, f.registry.Count())
}

func TestRegistry_SettingsWithoutSession(t *testing.T) {
	f := newFixture(t)
	f.settingsRepo.EXPECT().GetNavigationSettings(gomock.Any(), driverID).Return(waze(), nil)

	settings := f.registry.Settings(context.Background(), driverID)

	assert.Equal(t, models.ProviderWaze, settings.Current().Provider)
	assert.Equal(t, 0, f.registry.Count())
}
