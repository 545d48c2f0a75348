package source

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/services/tracking"
)

// Permission states declared by the device
const (
	PermissionGranted = "granted"
	PermissionDenied  = "denied"
	PermissionPrompt  = "prompt"
)

const defaultPermissionTimeout = 30 * time.Second

// Commander sends a command to the driver's device
type Commander interface {
	Send(ctx context.Context, event string, data interface{}) error
}

type fixResult struct {
	sample models.LocationSample
	err    *tracking.PositionError
}

// DeviceFeed is the position source of one connected device. The device
// channel handler pushes hello, permission, position and position_error
// messages in; the tracker pulls fixes and watches out. Replies to a
// get_position carry its request id and reach only that request; untagged
// messages belong to the watch stream.
type DeviceFeed struct {
	cmd               Commander
	validate          *validator.Validate
	permissionTimeout time.Duration

	mu          sync.Mutex
	caps        models.DeviceCapabilities
	hello       bool
	permWaiters []chan string
	fixWaiters  map[string]chan fixResult
	watches     map[uint64]*deviceWatch
	nextWatchID uint64
}

type deviceWatch struct {
	id         uint64
	feed       *DeviceFeed
	once       sync.Once
	onPosition func(models.LocationSample)
	onError    func(*tracking.PositionError)
}

// NewDeviceFeed creates a feed that sends its commands through cmd
func NewDeviceFeed(cmd Commander) *DeviceFeed {
	return &DeviceFeed{
		cmd:               cmd,
		validate:          validator.New(),
		permissionTimeout: defaultPermissionTimeout,
		fixWaiters:        make(map[string]chan fixResult),
		watches:           make(map[uint64]*deviceWatch),
	}
}

// SetCapabilities records what the device declared in its hello
func (f *DeviceFeed) SetCapabilities(caps models.DeviceCapabilities) {
	f.mu.Lock()
	f.caps = caps
	f.hello = true
	f.mu.Unlock()

	if caps.Permission == PermissionGranted || caps.Permission == PermissionDenied {
		f.HandlePermission(caps.Permission)
	}
}

// Capabilities returns the declared capabilities and whether a hello was received
func (f *DeviceFeed) Capabilities() (models.DeviceCapabilities, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.caps, f.hello
}

// HandlePermission resolves pending permission requests with state
func (f *DeviceFeed) HandlePermission(state string) {
	f.mu.Lock()
	f.caps.Permission = state
	waiters := f.permWaiters
	f.permWaiters = nil
	f.mu.Unlock()

	for _, w := range waiters {
		w <- state
	}
}

// HandlePosition validates a fix from the device and routes it to the
// single-fix request it answers, or to the open watches when untagged
func (f *DeviceFeed) HandlePosition(pos models.DevicePosition) error {
	if err := f.validate.Struct(pos.LocationSample); err != nil {
		return fmt.Errorf("invalid position sample: %w", err)
	}

	if pos.RequestID != "" {
		f.resolveFix(pos.RequestID, fixResult{sample: pos.LocationSample})
		return nil
	}
	for _, w := range f.openWatches() {
		w.onPosition(pos.LocationSample)
	}
	return nil
}

// HandlePositionError classifies a raw device error code and routes it the
// same way as HandlePosition
func (f *DeviceFeed) HandlePositionError(raw models.DevicePositionError) {
	perr := &tracking.PositionError{
		Code:    tracking.CodeFromDevice(raw.Code),
		Message: raw.Message,
	}

	if raw.RequestID != "" {
		f.resolveFix(raw.RequestID, fixResult{err: perr})
		return
	}
	for _, w := range f.openWatches() {
		w.onError(perr)
	}
}

func (f *DeviceFeed) resolveFix(requestID string, res fixResult) {
	f.mu.Lock()
	ch, ok := f.fixWaiters[requestID]
	delete(f.fixWaiters, requestID)
	f.mu.Unlock()

	if !ok {
		logger.Debug("Dropping reply to an expired position request",
			logger.String("request_id", requestID))
		return
	}
	ch <- res
}

// openWatches snapshots open watches in the order they were opened
func (f *DeviceFeed) openWatches() []*deviceWatch {
	f.mu.Lock()
	defer f.mu.Unlock()

	watches := make([]*deviceWatch, 0, len(f.watches))
	for _, w := range f.watches {
		watches = append(watches, w)
	}
	sort.Slice(watches, func(i, j int) bool { return watches[i].id < watches[j].id })
	return watches
}

// RequestPermission resolves from the declared permission state, prompting
// the device when the state is still undecided
func (f *DeviceFeed) RequestPermission(ctx context.Context) error {
	f.mu.Lock()
	if !f.hello {
		f.mu.Unlock()
		return tracking.ErrDeviceNotConnected
	}
	if !f.caps.Geolocation {
		f.mu.Unlock()
		return tracking.ErrGeolocationUnsupported
	}
	switch f.caps.Permission {
	case PermissionGranted:
		f.mu.Unlock()
		return nil
	case PermissionDenied:
		f.mu.Unlock()
		return tracking.ErrPermissionDenied
	}
	ch := make(chan string, 1)
	f.permWaiters = append(f.permWaiters, ch)
	f.mu.Unlock()

	if err := f.cmd.Send(ctx, constants.EventRequestPermission, struct{}{}); err != nil {
		f.dropPermissionWaiter(ch)
		return fmt.Errorf("%w: %v", tracking.ErrDeviceNotConnected, err)
	}

	timer := time.NewTimer(f.permissionTimeout)
	defer timer.Stop()

	select {
	case state := <-ch:
		if state == PermissionGranted {
			return nil
		}
		return tracking.ErrPermissionDenied
	case <-timer.C:
		f.dropPermissionWaiter(ch)
		return tracking.ErrPermissionDenied
	case <-ctx.Done():
		f.dropPermissionWaiter(ch)
		return ctx.Err()
	}
}

// CurrentPosition asks the device for one fix and waits for the position or
// position_error that answers it
func (f *DeviceFeed) CurrentPosition(ctx context.Context, timeout time.Duration) (models.LocationSample, error) {
	req := models.PositionRequest{RequestID: uuid.NewString(), TimeoutMs: timeout.Milliseconds()}
	ch := make(chan fixResult, 1)
	f.mu.Lock()
	f.fixWaiters[req.RequestID] = ch
	f.mu.Unlock()

	if err := f.cmd.Send(ctx, constants.EventGetPosition, req); err != nil {
		f.dropFixWaiter(req.RequestID)
		return models.LocationSample{}, fmt.Errorf("%w: %v", tracking.ErrDeviceNotConnected, err)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return models.LocationSample{}, res.err
		}
		return res.sample, nil
	case <-timer.C:
		f.dropFixWaiter(req.RequestID)
		return models.LocationSample{}, &tracking.PositionError{Code: tracking.Timeout, Message: "no fix before deadline"}
	case <-ctx.Done():
		f.dropFixWaiter(req.RequestID)
		return models.LocationSample{}, ctx.Err()
	}
}

// Watch subscribes to every position the device reports. The device is asked
// to start streaming when the first watch opens and to stop when the last closes.
func (f *DeviceFeed) Watch(onPosition func(models.LocationSample), onError func(*tracking.PositionError)) tracking.Watch {
	f.mu.Lock()
	f.nextWatchID++
	w := &deviceWatch{id: f.nextWatchID, feed: f, onPosition: onPosition, onError: onError}
	f.watches[w.id] = w
	first := len(f.watches) == 1
	f.mu.Unlock()

	if first {
		f.sendBestEffort(constants.EventWatchPosition)
	}
	return w
}

// Stop closes the watch; callbacks already in flight may still complete
func (w *deviceWatch) Stop() {
	w.once.Do(func() {
		f := w.feed
		f.mu.Lock()
		delete(f.watches, w.id)
		last := len(f.watches) == 0
		f.mu.Unlock()

		if last {
			f.sendBestEffort(constants.EventClearWatch)
		}
	})
}

// OpenWatches is the number of live watches
func (f *DeviceFeed) OpenWatches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.watches)
}

func (f *DeviceFeed) sendBestEffort(event string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.cmd.Send(ctx, event, struct{}{}); err != nil {
		logger.Debug("Device command not delivered",
			logger.String("event", event),
			logger.Err(err))
	}
}

func (f *DeviceFeed) dropFixWaiter(requestID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.fixWaiters, requestID)
}

func (f *DeviceFeed) dropPermissionWaiter(ch chan string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, w := range f.permWaiters {
		if w == ch {
			f.permWaiters = append(f.permWaiters[:i], f.permWaiters[i+1:]...)
			return
		}
	}
}
