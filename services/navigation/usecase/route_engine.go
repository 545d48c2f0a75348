package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/pkg/scheduler"
	"github.com/piresc/nebengjek-nav/internal/utils"
	"github.com/piresc/nebengjek-nav/services/navigation"
)

const (
	defaultProgressInterval = 5 * time.Second
	backgroundWriteTimeout  = 5 * time.Second

	arrivedPhrase = "You have arrived at your destination."
)

var errStoppedWhileStarting = fmt.Errorf("%w: stopped while starting", navigation.ErrNavigationFailed)

// RouteEngineDeps are the collaborators of a RouteEngine
type RouteEngineDeps struct {
	Positions  navigation.PositionProvider
	Settings   SettingsReader
	Geocoder   navigation.GeocodingGW
	Directions navigation.DirectionsGW
	Voice      navigation.VoiceUC
	Dispatcher navigation.DispatcherUC
	Device     navigation.DeviceGW
	Events     navigation.NavigationEventGW
	Scheduler  scheduler.Scheduler
	Advancer   StepAdvancer
}

// RouteEngine owns the navigation session of one driver. The progress
// handle is tied to a generation so a tick that races a stop or a restart
// never touches the newer session.
type RouteEngine struct {
	driverID string
	cfg      models.NavigationConfig
	deps     RouteEngineDeps
	now      func() time.Time

	startMu sync.Mutex

	mu            sync.Mutex
	gen           uint64
	session       models.NavigationSession
	stepIndex     int
	lastAnnounced string
	progress      scheduler.Handle
	cancelStart   context.CancelFunc
}

// NewRouteEngine creates an idle route engine
func NewRouteEngine(driverID string, cfg models.NavigationConfig, deps RouteEngineDeps) *RouteEngine {
	if deps.Advancer == nil {
		deps.Advancer = NoAdvance{}
	}
	return &RouteEngine{
		driverID: driverID,
		cfg:      cfg,
		deps:     deps,
		now:      time.Now,
		session:  models.NavigationSession{State: models.StateIdle},
	}
}

// StartNavigation hands off to an external app or computes an in-app route
// and starts the progress loop. Every failure is shown to the driver and
// returned; a failed start leaves no active session.
func (e *RouteEngine) StartNavigation(ctx context.Context, dest models.Destination) (result *models.NavigationStartResult, err error) {
	e.startMu.Lock()
	defer e.startMu.Unlock()

	var startGen uint64
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCtx(ctx, "Panic while starting navigation",
				logger.String("driver_id", e.driverID),
				logger.Any("panic", r))
			result = nil
			err = e.failStart(ctx, startGen, navigation.MessageNavigationFailed,
				fmt.Errorf("%w: %v", navigation.ErrNavigationFailed, r))
		}
	}()

	fix, ok := e.deps.Positions.Latest()
	if !ok {
		e.notify(ctx, models.NoticeError, navigation.MessageLocationUnavailable)
		return nil, navigation.ErrLocationUnavailable
	}

	settings := e.deps.Settings.Current()
	if settings.Provider != models.ProviderInApp {
		return e.delegate(ctx, settings.Provider, dest)
	}

	e.stopActive()
	var startCtx context.Context
	var cancel context.CancelFunc
	startCtx, cancel, startGen = e.beginStart(ctx)
	defer cancel()
	e.notify(ctx, models.NoticeInfo, navigation.MessageCalculatingRoute)

	target, ok := dest.Coordinate()
	if !ok {
		coord, gerr := e.deps.Geocoder.Geocode(startCtx, dest.Address)
		if gerr != nil {
			return nil, e.failStart(ctx, startGen, navigation.MessageNavigationFailed,
				fmt.Errorf("%w: geocoding: %w", navigation.ErrNavigationFailed, gerr))
		}
		if coord == nil {
			return nil, e.failStart(ctx, startGen, navigation.MessageDestinationNotFound, navigation.ErrDestinationNotFound)
		}
		target = *coord
	}

	if !e.advanceStart(startGen, models.StateRouteCalculating) {
		return nil, errStoppedWhileStarting
	}
	route, rerr := e.deps.Directions.Directions(startCtx, models.DirectionsRequest{
		Origin:        fix.Coordinate(),
		Destination:   target,
		AvoidTolls:    settings.AvoidTolls,
		AvoidHighways: settings.AvoidHighways,
	})
	if rerr != nil {
		return nil, e.failStart(ctx, startGen, navigation.MessageNavigationFailed,
			fmt.Errorf("%w: directions: %w", navigation.ErrNavigationFailed, rerr))
	}
	if route == nil {
		return nil, e.failStart(ctx, startGen, navigation.MessageRouteNotFound, navigation.ErrRouteNotFound)
	}

	session := newSession(route, e.now())

	e.mu.Lock()
	if e.gen != startGen {
		e.mu.Unlock()
		return nil, errStoppedWhileStarting
	}
	e.gen++
	gen := e.gen
	e.cancelStart = nil
	e.session = session
	e.stepIndex = 0
	e.lastAnnounced = ""
	e.mu.Unlock()

	handle := e.deps.Scheduler.Every(e.progressInterval(), func() { e.tick(gen) })

	e.mu.Lock()
	if e.gen != gen {
		e.mu.Unlock()
		handle.Stop()
		return nil, errStoppedWhileStarting
	}
	e.progress = handle
	snapshot := e.session
	e.mu.Unlock()

	logger.InfoCtx(ctx, "Navigation started",
		logger.String("driver_id", e.driverID),
		logger.Float64("distance_miles", route.DistanceMiles),
		logger.Float64("duration_minutes", route.DurationMinutes),
		logger.Int("steps", len(route.Steps)))

	e.notify(ctx, models.NoticeSuccess, navigation.MessageNavigationStarted)
	e.publish(ctx, models.StateNavigating, "")
	e.deps.Voice.Speak(ctx, constants.NavigationStartedPhrase)

	return &models.NavigationStartResult{
		State:    models.StateNavigating,
		Provider: models.ProviderInApp,
		Session:  &snapshot,
	}, nil
}

func (e *RouteEngine) delegate(ctx context.Context, provider models.NavigationProvider, dest models.Destination) (*models.NavigationStartResult, error) {
	url, err := e.deps.Dispatcher.OpenExternalNavigation(ctx, dest)
	if err != nil {
		e.notify(ctx, models.NoticeError, navigation.MessageNavigationFailed)
		return nil, fmt.Errorf("%w: %w", navigation.ErrNavigationFailed, err)
	}

	e.publish(ctx, models.StateDelegated, string(provider))
	return &models.NavigationStartResult{
		State:       models.StateDelegated,
		Provider:    provider,
		ExternalURL: url,
	}, nil
}

// failStart clears any half-built session, reports msg and returns err. A
// start that was already stopped or replaced fails quietly.
func (e *RouteEngine) failStart(ctx context.Context, startGen uint64, msg string, err error) error {
	e.mu.Lock()
	if startGen != 0 && e.gen != startGen {
		e.mu.Unlock()
		logger.DebugCtx(ctx, "Dropping result of a stopped navigation start",
			logger.String("driver_id", e.driverID),
			logger.Err(err))
		return errStoppedWhileStarting
	}
	handle := e.detachLocked()
	e.session = models.NavigationSession{State: models.StateFailed}
	e.mu.Unlock()
	if handle != nil {
		handle.Stop()
	}

	logger.WarnCtx(ctx, "Navigation start failed",
		logger.String("driver_id", e.driverID),
		logger.Err(err))
	e.notify(ctx, models.NoticeError, msg)
	e.publish(ctx, models.StateFailed, err.Error())
	return err
}

// StopNavigation ends the session and its progress loop. Safe in any state.
func (e *RouteEngine) StopNavigation() {
	if !e.stopActive() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), backgroundWriteTimeout)
	defer cancel()

	e.notify(ctx, models.NoticeInfo, navigation.MessageNavigationStopped)
	e.publish(ctx, models.StateCancelled, "")
}

// stopActive cancels a running or starting session and reports whether there was one
func (e *RouteEngine) stopActive() bool {
	e.mu.Lock()
	active := e.session.IsNavigating ||
		e.session.State == models.StateGeocoding ||
		e.session.State == models.StateRouteCalculating
	handle := e.detachLocked()
	if active {
		e.session = models.NavigationSession{State: models.StateCancelled}
	}
	e.mu.Unlock()

	if handle != nil {
		handle.Stop()
	}
	return active
}

// Session returns a snapshot of the current session
func (e *RouteEngine) Session() models.NavigationSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// tick is one run of the progress loop
func (e *RouteEngine) tick(gen uint64) {
	fix, ok := e.deps.Positions.Latest()
	if !ok {
		return
	}
	position := fix.Coordinate()

	e.mu.Lock()
	if e.gen != gen || !e.session.IsNavigating || e.session.CurrentRoute == nil {
		e.mu.Unlock()
		return
	}
	steps := e.session.CurrentRoute.Steps
	if len(steps) == 0 {
		e.mu.Unlock()
		return
	}

	idx := e.stepIndex
	for idx < len(steps) && e.deps.Advancer.Passed(position, steps[idx]) {
		idx++
	}

	if idx >= len(steps) {
		handle := e.detachLocked()
		e.session = models.NavigationSession{State: models.StateArrived}
		e.mu.Unlock()
		if handle != nil {
			handle.Stop()
		}
		e.arrive()
		return
	}

	step := steps[idx]
	e.stepIndex = idx
	e.session.NextInstruction = step.Instruction
	e.session.DistanceToNextManeuver = distanceToManeuver(position, step)

	announce := step.Instruction != "" && step.Instruction != e.lastAnnounced
	if announce {
		e.lastAnnounced = step.Instruction
	}
	e.mu.Unlock()

	if announce {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundWriteTimeout)
		defer cancel()
		e.deps.Voice.Speak(ctx, step.Instruction)
	}
}

func (e *RouteEngine) arrive() {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundWriteTimeout)
	defer cancel()

	logger.Info("Driver arrived at destination", logger.String("driver_id", e.driverID))
	e.notify(ctx, models.NoticeSuccess, navigation.MessageArrived)
	e.publish(ctx, models.StateArrived, "")
	e.deps.Voice.Speak(ctx, arrivedPhrase)
}

// detachLocked ends the current generation and hands back its progress handle
func (e *RouteEngine) detachLocked() scheduler.Handle {
	e.gen++
	if e.cancelStart != nil {
		e.cancelStart()
		e.cancelStart = nil
	}
	handle := e.progress
	e.progress = nil
	e.stepIndex = 0
	e.lastAnnounced = ""
	return handle
}

// beginStart moves to geocoding and returns the generation of this start
// with a context that a stop cancels
func (e *RouteEngine) beginStart(ctx context.Context) (context.Context, context.CancelFunc, uint64) {
	startCtx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gen++
	e.cancelStart = cancel
	e.session = models.NavigationSession{State: models.StateGeocoding}
	return startCtx, cancel, e.gen
}

// advanceStart records start progress and reports false if the start was
// stopped meanwhile
func (e *RouteEngine) advanceStart(gen uint64, state models.NavigationState) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen != gen {
		return false
	}
	e.session = models.NavigationSession{State: state}
	return true
}

func (e *RouteEngine) notify(ctx context.Context, level models.NoticeLevel, msg string) {
	if err := e.deps.Device.Notify(ctx, models.Notice{Level: level, Message: msg}); err != nil {
		logger.DebugCtx(ctx, "Failed to send navigation notice",
			logger.String("driver_id", e.driverID),
			logger.Err(err))
	}
}

func (e *RouteEngine) publish(ctx context.Context, state models.NavigationState, reason string) {
	event := models.NavigationEvent{
		DriverID:  e.driverID,
		State:     state,
		Reason:    reason,
		Timestamp: e.now(),
	}
	if err := e.deps.Events.PublishSessionEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish navigation event",
			logger.String("driver_id", e.driverID),
			logger.String("state", string(state)),
			logger.Err(err))
	}
}

func (e *RouteEngine) progressInterval() time.Duration {
	if e.cfg.ProgressIntervalSeconds <= 0 {
		return defaultProgressInterval
	}
	return time.Duration(e.cfg.ProgressIntervalSeconds) * time.Second
}

// newSession builds the navigating session for a fresh route
func newSession(route *models.Route, now time.Time) models.NavigationSession {
	eta := now.Add(time.Duration(route.DurationMinutes * float64(time.Minute)))
	duration := route.DurationMinutes
	distance := route.DistanceMiles

	session := models.NavigationSession{
		State:                models.StateNavigating,
		IsNavigating:         true,
		CurrentRoute:         route,
		EstimatedArrival:     &eta,
		RouteDurationMinutes: &duration,
		RouteDistanceMiles:   &distance,
	}
	if len(route.Steps) > 0 {
		first := route.Steps[0]
		session.NextInstruction = first.Instruction
		if first.DistanceMiles > 0 {
			d := first.DistanceMiles
			session.DistanceToNextManeuver = &d
		}
	}
	return session
}

// distanceToManeuver measures from the live position when the maneuver
// location is known, otherwise it is the step length
func distanceToManeuver(position models.Coordinate, step models.RouteStep) *float64 {
	var miles float64
	if step.ManeuverLocation != nil {
		miles = utils.DistanceMeters(position, *step.ManeuverLocation) * constants.MilesPerMeter
	} else {
		miles = step.DistanceMiles
	}
	if miles <= 0 {
		return nil
	}
	return &miles
}
