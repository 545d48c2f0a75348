package source

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/services/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// recordingDevice captures commands and can answer them the way a phone would
type recordingDevice struct {
	mu      sync.Mutex
	events  []string
	sendErr error
	reply   func(event string, data interface{})
}

func (d *recordingDevice) Send(ctx context.Context, event string, data interface{}) error {
	d.mu.Lock()
	d.events = append(d.events, event)
	reply := d.reply
	err := d.sendErr
	d.mu.Unlock()

	if err == nil && reply != nil {
		go reply(event, data)
	}
	return err
}

func (d *recordingDevice) sent() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.events...)
}

func grantedCaps() models.DeviceCapabilities {
	return models.DeviceCapabilities{Geolocation: true, Permission: PermissionGranted, Speech: true, UserAgent: "Mozilla/5.0 (Linux; Android 14)"}
}

func TestDeviceFeed_RequestPermission(t *testing.T) {
	tests := []struct {
		name    string
		hello   bool
		caps    models.DeviceCapabilities
		wantErr error
	}{
		{name: "no hello yet", wantErr: tracking.ErrDeviceNotConnected},
		{name: "geolocation unsupported", hello: true, caps: models.DeviceCapabilities{Permission: PermissionGranted}, wantErr: tracking.ErrGeolocationUnsupported},
		{name: "granted", hello: true, caps: grantedCaps()},
		{name: "denied", hello: true, caps: models.DeviceCapabilities{Geolocation: true, Permission: PermissionDenied}, wantErr: tracking.ErrPermissionDenied},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dev := &recordingDevice{}
			feed := NewDeviceFeed(dev)
			if tc.hello {
				feed.SetCapabilities(tc.caps)
			}

			err := feed.RequestPermission(context.Background())
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			assert.Empty(t, dev.sent())
		})
	}
}

func TestDeviceFeed_RequestPermissionPrompts(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, answer := range []string{PermissionGranted, PermissionDenied} {
		t.Run(answer, func(t *testing.T) {
			dev := &recordingDevice{}
			feed := NewDeviceFeed(dev)
			dev.reply = func(event string, _ interface{}) {
				if event == constants.EventRequestPermission {
					feed.HandlePermission(answer)
				}
			}
			feed.SetCapabilities(models.DeviceCapabilities{Geolocation: true, Permission: PermissionPrompt})

			err := feed.RequestPermission(context.Background())

			if answer == PermissionGranted {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tracking.ErrPermissionDenied)
			}
			assert.Equal(t, []string{constants.EventRequestPermission}, dev.sent())
		})
	}
}

func TestDeviceFeed_RequestPermissionTimesOut(t *testing.T) {
	dev := &recordingDevice{}
	feed := NewDeviceFeed(dev)
	feed.permissionTimeout = 20 * time.Millisecond
	feed.SetCapabilities(models.DeviceCapabilities{Geolocation: true, Permission: PermissionPrompt})

	err := feed.RequestPermission(context.Background())

	assert.ErrorIs(t, err, tracking.ErrPermissionDenied)
	assert.Empty(t, feed.permWaiters)
}

func TestDeviceFeed_CurrentPosition(t *testing.T) {
	sample := models.LocationSample{Latitude: -6.2, Longitude: 106.8, Timestamp: time.Now()}

	t.Run("device answers with fix", func(t *testing.T) {
		dev := &recordingDevice{}
		feed := NewDeviceFeed(dev)
		dev.reply = func(event string, data interface{}) {
			if event == constants.EventGetPosition {
				req := data.(models.PositionRequest)
				_ = feed.HandlePosition(models.DevicePosition{LocationSample: sample, RequestID: req.RequestID})
			}
		}

		got, err := feed.CurrentPosition(context.Background(), time.Second)
		require.NoError(t, err)
		assert.Equal(t, sample, got)
	})

	t.Run("device answers with raw error code", func(t *testing.T) {
		dev := &recordingDevice{}
		feed := NewDeviceFeed(dev)
		dev.reply = func(event string, data interface{}) {
			req := data.(models.PositionRequest)
			feed.HandlePositionError(models.DevicePositionError{Code: 2, Message: "no gps", RequestID: req.RequestID})
		}

		_, err := feed.CurrentPosition(context.Background(), time.Second)
		var perr *tracking.PositionError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, tracking.PositionUnavailable, perr.Code)
		assert.ErrorIs(t, err, tracking.ErrPositionUnavailable)
	})

	t.Run("no answer times out", func(t *testing.T) {
		feed := NewDeviceFeed(&recordingDevice{})

		_, err := feed.CurrentPosition(context.Background(), 20*time.Millisecond)
		assert.ErrorIs(t, err, tracking.ErrPositionTimeout)
		assert.Empty(t, feed.fixWaiters)
	})

	t.Run("device disconnected", func(t *testing.T) {
		feed := NewDeviceFeed(&recordingDevice{sendErr: errors.New("closed")})

		_, err := feed.CurrentPosition(context.Background(), time.Second)
		assert.ErrorIs(t, err, tracking.ErrDeviceNotConnected)
		assert.Empty(t, feed.fixWaiters)
	})

	t.Run("caller cancels", func(t *testing.T) {
		feed := NewDeviceFeed(&recordingDevice{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := feed.CurrentPosition(ctx, time.Second)
		assert.Error(t, err)
	})
}

func TestDeviceFeed_WatchLifecycle(t *testing.T) {
	dev := &recordingDevice{}
	feed := NewDeviceFeed(dev)

	var got []models.LocationSample
	var codes []tracking.PositionErrorCode
	w1 := feed.Watch(
		func(s models.LocationSample) { got = append(got, s) },
		func(e *tracking.PositionError) { codes = append(codes, e.Code) },
	)
	w2 := feed.Watch(func(models.LocationSample) {}, func(*tracking.PositionError) {})
	assert.Equal(t, 2, feed.OpenWatches())

	require.NoError(t, feed.HandlePosition(models.DevicePosition{LocationSample: models.LocationSample{Latitude: 1, Longitude: 2}}))
	feed.HandlePositionError(models.DevicePositionError{Code: 1})
	feed.HandlePositionError(models.DevicePositionError{Code: 3})
	feed.HandlePositionError(models.DevicePositionError{Code: 42})

	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Latitude)
	assert.Equal(t, []tracking.PositionErrorCode{
		tracking.PermissionDenied,
		tracking.Timeout,
		tracking.PositionErrorUnknown,
	}, codes)

	w1.Stop()
	w1.Stop()
	require.NoError(t, feed.HandlePosition(models.DevicePosition{LocationSample: models.LocationSample{Latitude: 3, Longitude: 4}}))
	assert.Len(t, got, 1)

	w2.Stop()
	assert.Equal(t, 0, feed.OpenWatches())
	assert.Equal(t, []string{constants.EventWatchPosition, constants.EventClearWatch}, dev.sent())
}

func TestDeviceFeed_RejectsInvalidSample(t *testing.T) {
	feed := NewDeviceFeed(&recordingDevice{})
	called := false
	feed.Watch(func(models.LocationSample) { called = true }, func(*tracking.PositionError) {})

	err := feed.HandlePosition(models.DevicePosition{LocationSample: models.LocationSample{Latitude: 91, Longitude: 0}})
	assert.Error(t, err)

	err = feed.HandlePosition(models.DevicePosition{LocationSample: models.LocationSample{Latitude: 0, Longitude: -180.5}, RequestID: "r-1"})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestDeviceFeed_FixRepliesReachOnlyTheirRequest(t *testing.T) {
	sample := models.LocationSample{Latitude: -6.2, Longitude: 106.8, Timestamp: time.Now()}

	t.Run("fix reply skips the watch", func(t *testing.T) {
		dev := &recordingDevice{}
		feed := NewDeviceFeed(dev)
		var watched []models.LocationSample
		feed.Watch(func(s models.LocationSample) { watched = append(watched, s) }, func(*tracking.PositionError) {})
		dev.reply = func(event string, data interface{}) {
			if event == constants.EventGetPosition {
				req := data.(models.PositionRequest)
				_ = feed.HandlePosition(models.DevicePosition{LocationSample: sample, RequestID: req.RequestID})
			}
		}

		got, err := feed.CurrentPosition(context.Background(), time.Second)

		require.NoError(t, err)
		assert.Equal(t, sample, got)
		assert.Empty(t, watched)
		assert.Empty(t, feed.fixWaiters)
	})

	t.Run("fix error skips the watch", func(t *testing.T) {
		dev := &recordingDevice{}
		feed := NewDeviceFeed(dev)
		var watchErrs []*tracking.PositionError
		feed.Watch(func(models.LocationSample) {}, func(e *tracking.PositionError) { watchErrs = append(watchErrs, e) })
		dev.reply = func(event string, data interface{}) {
			if event == constants.EventGetPosition {
				req := data.(models.PositionRequest)
				feed.HandlePositionError(models.DevicePositionError{Code: 2, RequestID: req.RequestID})
			}
		}

		_, err := feed.CurrentPosition(context.Background(), time.Second)

		assert.ErrorIs(t, err, tracking.ErrPositionUnavailable)
		assert.Empty(t, watchErrs)
	})

	t.Run("watch updates do not answer a pending request", func(t *testing.T) {
		dev := &recordingDevice{}
		feed := NewDeviceFeed(dev)
		var watched atomic.Int32
		feed.Watch(func(models.LocationSample) { watched.Add(1) }, func(*tracking.PositionError) {})
		dev.reply = func(event string, _ interface{}) {
			if event == constants.EventGetPosition {
				_ = feed.HandlePosition(models.DevicePosition{LocationSample: sample})
				feed.HandlePositionError(models.DevicePositionError{Code: 3})
			}
		}

		_, err := feed.CurrentPosition(context.Background(), 50*time.Millisecond)

		var perr *tracking.PositionError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "no fix before deadline", perr.Message)
		assert.Equal(t, int32(1), watched.Load())
	})

	t.Run("late reply is dropped", func(t *testing.T) {
		feed := NewDeviceFeed(&recordingDevice{})
		var watched int
		feed.Watch(func(models.LocationSample) { watched++ }, func(*tracking.PositionError) {})

		assert.NoError(t, feed.HandlePosition(models.DevicePosition{LocationSample: sample, RequestID: "expired"}))
		feed.HandlePositionError(models.DevicePositionError{Code: 1, RequestID: "expired"})
		assert.Equal(t, 0, watched)
	})
}
