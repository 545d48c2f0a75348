package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/pkg/scheduler"
	"github.com/piresc/nebengjek-nav/services/tracking"
)

const (
	locationErrorTitle = "Location Error"
	historyQueueSize   = 64
)

// Tracker owns the live position feed of one driver.
//
// Every start opens a new generation; callbacks from the watch and the
// profile flush carry the generation they were opened under and are
// ignored once tracking has been stopped or restarted. History rows are
// written by one writer goroutine per generation so a slow store never
// blocks the device feed.
type Tracker struct {
	driverID string
	cfg      models.TrackingConfig
	source   tracking.PositionSource
	profiles tracking.ProfileRepo
	history  tracking.HistoryRepo
	gw       tracking.TrackingGW
	notifier tracking.Notifier
	sched    scheduler.Scheduler
	now      func() time.Time

	startMu sync.Mutex

	mu       sync.Mutex
	gen      uint64
	tracking bool
	latest   *models.LocationSample
	errMsg   string
	retries  int
	blocking bool
	watch    tracking.Watch
	flush    scheduler.Handle
	writes   chan models.LocationSample

	writers sync.WaitGroup
}

// NewTracker creates a stopped tracker for driverID
func NewTracker(
	driverID string,
	cfg models.TrackingConfig,
	source tracking.PositionSource,
	profiles tracking.ProfileRepo,
	history tracking.HistoryRepo,
	gw tracking.TrackingGW,
	notifier tracking.Notifier,
	sched scheduler.Scheduler,
) *Tracker {
	return &Tracker{
		driverID: driverID,
		cfg:      cfg,
		source:   source,
		profiles: profiles,
		history:  history,
		gw:       gw,
		notifier: notifier,
		sched:    sched,
		now:      time.Now,
	}
}

// StartTracking opens the device watch and the profile flush, then tries
// for an initial fix. Calling it while tracking only clears the error state.
func (t *Tracker) StartTracking(ctx context.Context) error {
	t.startMu.Lock()
	defer t.startMu.Unlock()

	t.mu.Lock()
	if t.tracking {
		t.errMsg = ""
		t.blocking = false
		t.mu.Unlock()
		return nil
	}
	t.gen++
	gen := t.gen
	t.tracking = true
	t.retries = 0
	t.errMsg = ""
	t.blocking = false
	t.writes = make(chan models.LocationSample, historyQueueSize)
	t.writers.Add(1)
	go t.writeHistory(t.writes)
	t.mu.Unlock()

	if err := t.source.RequestPermission(ctx); err != nil {
		t.fail(ctx, gen, tracking.FailureMessage(err))
		return fmt.Errorf("failed to start tracking: %w", err)
	}

	watch := t.source.Watch(
		func(sample models.LocationSample) { t.onPosition(gen, sample) },
		func(perr *tracking.PositionError) { t.onWatchError(gen, perr) },
	)
	flush := t.sched.Every(t.flushInterval(), func() { t.flushProfile(gen) })

	t.mu.Lock()
	if t.gen != gen {
		// stopped while the watch was being opened
		t.mu.Unlock()
		watch.Stop()
		flush.Stop()
		return nil
	}
	t.watch = watch
	t.flush = flush
	t.mu.Unlock()

	logger.Info("Location tracking started", logger.String("driver_id", t.driverID))

	return t.initialFix(ctx, gen)
}

// initialFix retries a single fix until one succeeds, the watch delivers a
// fix first, or the retry budget is spent
func (t *Tracker) initialFix(ctx context.Context, gen uint64) error {
	budget := t.cfg.InitialFixRetries
	if budget <= 0 {
		budget = 3
	}

	for {
		t.mu.Lock()
		done := t.gen != gen || t.latest != nil
		t.mu.Unlock()
		if done {
			return nil
		}

		sample, err := t.source.CurrentPosition(ctx, t.fixTimeout())
		if err == nil {
			t.onPosition(gen, sample)
			return nil
		}
		if errors.Is(err, context.Canceled) {
			// the caller went away; the watch keeps running
			return nil
		}

		t.mu.Lock()
		if t.gen != gen || t.latest != nil {
			// stopped, or the watch delivered a fix while this attempt failed
			t.mu.Unlock()
			return nil
		}
		t.retries++
		attempts := t.retries
		t.mu.Unlock()

		if attempts >= budget {
			t.fail(ctx, gen, tracking.FailureMessage(err))
			return fmt.Errorf("initial fix failed after %d attempts: %w", attempts, err)
		}

		logger.Warn("Initial location fix failed",
			logger.String("driver_id", t.driverID),
			logger.Int("attempt", attempts),
			logger.Err(err))
	}
}

// Drain waits until the history writers of stopped generations have written
// every queued row, or ctx ends
func (t *Tracker) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.writers.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StopTracking releases the watch and the flush and forgets all state
func (t *Tracker) StopTracking() {
	t.mu.Lock()
	watch, flush := t.detachLocked()
	t.latest = nil
	t.errMsg = ""
	t.retries = 0
	t.blocking = false
	t.mu.Unlock()

	stopHandles(watch, flush)
}

// Latest returns a copy of the most recent sample
func (t *Tracker) Latest() (models.LocationSample, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest == nil {
		return models.LocationSample{}, false
	}
	return *t.latest, true
}

// IsTracking reports whether the feed is open
func (t *Tracker) IsTracking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracking
}

// Err is the user-facing error of the last fatal episode, empty when none
func (t *Tracker) Err() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errMsg
}

func (t *Tracker) onPosition(gen uint64, sample models.LocationSample) {
	if sample.Timestamp.IsZero() {
		sample.Timestamp = t.now()
	}

	t.mu.Lock()
	if t.gen != gen || !t.tracking {
		t.mu.Unlock()
		return
	}
	latest := sample
	t.latest = &latest
	queued := true
	select {
	case t.writes <- sample:
	default:
		queued = false
	}
	t.mu.Unlock()

	if !queued {
		logger.Warn("Location history queue full, dropping sample",
			logger.String("driver_id", t.driverID))
	}
}

// writeHistory appends queued samples in order until the queue is closed
func (t *Tracker) writeHistory(writes <-chan models.LocationSample) {
	defer t.writers.Done()

	for sample := range writes {
		ctx, cancel := context.WithTimeout(context.Background(), t.writeTimeout())
		if err := t.history.Append(ctx, t.driverID, sample); err != nil {
			logger.Warn("Failed to append location history",
				logger.String("driver_id", t.driverID),
				logger.Err(err))
		}
		cancel()
	}
}

func (t *Tracker) onWatchError(gen uint64, perr *tracking.PositionError) {
	if perr == nil {
		return
	}
	if !perr.Fatal() {
		logger.Debug("Ignoring non-fatal watch error",
			logger.String("driver_id", t.driverID),
			logger.String("code", perr.Code.String()))
		return
	}
	t.fail(context.Background(), gen, tracking.FailureMessage(perr))
}

// fail records msg, stops the feed and notifies the driver once per episode
func (t *Tracker) fail(ctx context.Context, gen uint64, msg string) {
	t.mu.Lock()
	if t.gen != gen {
		t.mu.Unlock()
		return
	}
	t.errMsg = msg
	notify := !t.blocking
	t.blocking = true
	watch, flush := t.detachLocked()
	t.mu.Unlock()

	stopHandles(watch, flush)

	logger.Warn("Location tracking stopped",
		logger.String("driver_id", t.driverID),
		logger.String("reason", msg))

	if !notify {
		return
	}
	if ctx.Err() != nil {
		ctx = context.Background()
	}
	notice := models.Notice{Level: models.NoticeError, Title: locationErrorTitle, Message: msg}
	if err := t.notifier.Notify(ctx, notice); err != nil {
		logger.Warn("Failed to notify driver of location error",
			logger.String("driver_id", t.driverID),
			logger.Err(err))
	}
}

func (t *Tracker) flushProfile(gen uint64) {
	t.mu.Lock()
	if t.gen != gen || t.latest == nil {
		t.mu.Unlock()
		return
	}
	sample := *t.latest
	t.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), t.writeTimeout())
	defer cancel()

	position := models.ProfilePosition{
		UserID:    t.driverID,
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Heading:   sample.Heading,
		Speed:     sample.Speed,
		Timestamp: sample.Timestamp,
	}
	if err := t.profiles.UpsertPosition(ctx, position); err != nil {
		logger.Warn("Failed to update driver profile position",
			logger.String("driver_id", t.driverID),
			logger.Err(err))
	}

	event := models.LocationEvent{
		DriverID:  t.driverID,
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Heading:   sample.Heading,
		Speed:     sample.Speed,
		Timestamp: sample.Timestamp,
	}
	if err := t.gw.PublishLocationUpdated(ctx, event); err != nil {
		logger.Warn("Failed to publish location update",
			logger.String("driver_id", t.driverID),
			logger.Err(err))
	}
}

// detachLocked ends the current generation and hands back its handles
func (t *Tracker) detachLocked() (tracking.Watch, scheduler.Handle) {
	t.gen++
	t.tracking = false
	watch, flush := t.watch, t.flush
	t.watch = nil
	t.flush = nil
	if t.writes != nil {
		close(t.writes)
		t.writes = nil
	}
	return watch, flush
}

func stopHandles(watch tracking.Watch, flush scheduler.Handle) {
	if watch != nil {
		watch.Stop()
	}
	if flush != nil {
		flush.Stop()
	}
}

func (t *Tracker) flushInterval() time.Duration {
	return secondsOr(t.cfg.ProfileFlushSeconds, 30)
}

func (t *Tracker) fixTimeout() time.Duration {
	return secondsOr(t.cfg.FixTimeoutSeconds, 10)
}

func (t *Tracker) writeTimeout() time.Duration {
	return secondsOr(t.cfg.WriteTimeoutSeconds, 5)
}

func secondsOr(seconds, fallback int) time.Duration {
	if seconds <= 0 {
		seconds = fallback
	}
	return time.Duration(seconds) * time.Second
}
