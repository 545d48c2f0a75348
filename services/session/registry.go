// Package session assembles and owns the per-driver location and
// navigation components while the driver's device is connected.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/pkg/scheduler"
	"github.com/piresc/nebengjek-nav/services/navigation"
	navgw "github.com/piresc/nebengjek-nav/services/navigation/gateway"
	navuc "github.com/piresc/nebengjek-nav/services/navigation/usecase"
	"github.com/piresc/nebengjek-nav/services/tracking"
	trackgw "github.com/piresc/nebengjek-nav/services/tracking/gateway"
	"github.com/piresc/nebengjek-nav/services/tracking/source"
	trackuc "github.com/piresc/nebengjek-nav/services/tracking/usecase"
)

// Channel sends events to one driver's device
type Channel interface {
	Send(ctx context.Context, event string, data interface{}) error
}

// Dependencies are the shared collaborators every session is built from
type Dependencies struct {
	Tracking   models.TrackingConfig
	Navigation models.NavigationConfig

	Channels         func(driverID string) Channel
	Profiles         tracking.ProfileRepo
	History          tracking.HistoryRepo
	TrackingEvents   tracking.TrackingGW
	SettingsRepo     navigation.SettingsRepo
	Geocoder         navigation.GeocodingGW
	Directions       navigation.DirectionsGW
	NavigationEvents navigation.NavigationEventGW
	Scheduler        scheduler.Scheduler
}

// Session is the set of components serving one driver
type Session struct {
	DriverID   string
	Feed       *source.DeviceFeed
	Tracker    tracking.LocationTracker
	Settings   navigation.SettingsUC
	Dispatcher navigation.DispatcherUC
	Engine     navigation.RouteEngineUC

	loadOnce sync.Once
	drain    func(ctx context.Context) error
}

// Registry holds the live session of every connected driver
type Registry struct {
	deps Dependencies

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry
func NewRegistry(deps Dependencies) *Registry {
	if deps.Scheduler == nil {
		deps.Scheduler = scheduler.New()
	}
	return &Registry{deps: deps, sessions: make(map[string]*Session)}
}

// Get returns the driver's session, creating it and loading the driver's
// settings on first use
func (r *Registry) Get(ctx context.Context, driverID string) *Session {
	r.mu.Lock()
	s, ok := r.sessions[driverID]
	if !ok {
		s = r.build(driverID)
		r.sessions[driverID] = s
	}
	r.mu.Unlock()

	s.loadOnce.Do(func() { s.Settings.Load(ctx) })
	return s
}

// Lookup returns the driver's session without creating one
func (r *Registry) Lookup(driverID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[driverID]
	return s, ok
}

// Settings returns the live session's settings store, or a freshly loaded
// one when the driver has no session
func (r *Registry) Settings(ctx context.Context, driverID string) navigation.SettingsUC {
	if s, ok := r.Lookup(driverID); ok {
		s.loadOnce.Do(func() { s.Settings.Load(ctx) })
		return s.Settings
	}
	store := navuc.NewSettingsStore(driverID, r.deps.SettingsRepo)
	store.Load(ctx)
	return store
}

// Status summarises the tracker of s
func (s *Session) Status() models.TrackingStatus {
	status := models.TrackingStatus{
		Tracking: s.Tracker.IsTracking(),
		Error:    s.Tracker.Err(),
	}
	if latest, ok := s.Tracker.Latest(); ok {
		status.Latest = &latest
	}
	return status
}

// Close stops the driver's navigation and tracking and forgets the session
func (r *Registry) Close(driverID string) {
	r.mu.Lock()
	s, ok := r.sessions[driverID]
	delete(r.sessions, driverID)
	r.mu.Unlock()

	if !ok {
		return
	}
	s.Engine.StopNavigation()
	s.Tracker.StopTracking()
	logger.Info("Driver session closed", logger.String("driver_id", driverID))
}

// CloseAll closes every session and waits for their queued history rows
func (r *Registry) CloseAll(ctx context.Context) error {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	for _, s := range sessions {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Close(s.DriverID)
	}
	for _, s := range sessions {
		if s.drain == nil {
			continue
		}
		if err := s.drain(ctx); err != nil {
			return fmt.Errorf("failed to drain location history of %s: %w", s.DriverID, err)
		}
	}
	return nil
}

// Count is the number of open sessions
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) build(driverID string) *Session {
	d := r.deps
	channel := d.Channels(driverID)

	feed := source.NewDeviceFeed(channel)
	tracker := trackuc.NewTracker(driverID, d.Tracking, feed,
		d.Profiles, d.History, d.TrackingEvents,
		trackgw.NewDeviceNotifier(channel), d.Scheduler)

	device := navgw.NewDeviceGW(channel)
	platform := navgw.NewDevicePlatform(feed)
	settings := navuc.NewSettingsStore(driverID, d.SettingsRepo)
	voice := navuc.NewVoiceGuidance(settings, platform, device)
	dispatcher := navuc.NewDispatcher(settings, platform, device)

	engine := navuc.NewRouteEngine(driverID, d.Navigation, navuc.RouteEngineDeps{
		Positions:  tracker,
		Settings:   settings,
		Geocoder:   d.Geocoder,
		Directions: d.Directions,
		Voice:      voice,
		Dispatcher: dispatcher,
		Device:     device,
		Events:     d.NavigationEvents,
		Scheduler:  d.Scheduler,
		Advancer:   navuc.NewStepAdvancer(d.Navigation),
	})

	return &Session{
		DriverID:   driverID,
		Feed:       feed,
		Tracker:    tracker,
		Settings:   settings,
		Dispatcher: dispatcher,
		Engine:     engine,
		drain:      tracker.Drain,
	}
}
