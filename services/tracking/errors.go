package tracking

import (
	"errors"
	"fmt"
)

var (
	// ErrGeolocationUnsupported means the device has no geolocation capability
	ErrGeolocationUnsupported = errors.New("geolocation is not supported by this device")
	// ErrPermissionDenied means the driver refused location access
	ErrPermissionDenied = errors.New("location permission denied")
	// ErrPositionUnavailable means the device could not determine a position
	ErrPositionUnavailable = errors.New("position unavailable")
	// ErrPositionTimeout means no fix arrived in time
	ErrPositionTimeout = errors.New("position request timed out")
	// ErrDeviceNotConnected means the driver's device channel is closed
	ErrDeviceNotConnected = errors.New("device not connected")
	// ErrLocationNotFound means no live position is stored for the driver
	ErrLocationNotFound = errors.New("location not found")
	// ErrInvalidRange means a history query has from after to
	ErrInvalidRange = errors.New("invalid time range")
)

// PositionErrorCode is the closed classification of position failures
type PositionErrorCode int

const (
	PositionErrorUnknown PositionErrorCode = iota
	PermissionDenied
	PositionUnavailable
	Timeout
)

func (c PositionErrorCode) String() string {
	switch c {
	case PermissionDenied:
		return "permission_denied"
	case PositionUnavailable:
		return "position_unavailable"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// CodeFromDevice maps the raw geolocation error code reported by a device
// (1 permission denied, 2 position unavailable, 3 timeout)
func CodeFromDevice(raw int) PositionErrorCode {
	switch raw {
	case 1:
		return PermissionDenied
	case 2:
		return PositionUnavailable
	case 3:
		return Timeout
	default:
		return PositionErrorUnknown
	}
}

// PositionError is a classified failure from a position source
type PositionError struct {
	Code    PositionErrorCode
	Message string
}

func (e *PositionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("position error: %s", e.Code)
	}
	return fmt.Sprintf("position error: %s: %s", e.Code, e.Message)
}

// Unwrap exposes the sentinel matching the code so callers can use errors.Is
func (e *PositionError) Unwrap() error {
	switch e.Code {
	case PermissionDenied:
		return ErrPermissionDenied
	case PositionUnavailable:
		return ErrPositionUnavailable
	case Timeout:
		return ErrPositionTimeout
	default:
		return nil
	}
}

// Fatal reports whether a watch error ends the tracking session
func (e *PositionError) Fatal() bool {
	return e.Code == PermissionDenied || e.Code == PositionUnavailable
}

// User-facing messages for terminal tracking failures
const (
	MessageUnsupported         = "Geolocation is not supported by this device. Some features may be limited."
	MessagePermissionDenied    = "Location access denied. Please enable location access to receive nearby orders."
	MessagePositionUnavailable = "Location information is unavailable. Check that GPS is turned on."
	MessageWeakSignal          = "Location request timed out. The GPS signal may be weak."
	MessageUnknown             = "Unable to get your location."
)

// FailureMessage classifies err into the message shown to the driver
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrGeolocationUnsupported):
		return MessageUnsupported
	case errors.Is(err, ErrPermissionDenied):
		return MessagePermissionDenied
	case errors.Is(err, ErrPositionUnavailable):
		return MessagePositionUnavailable
	case errors.Is(err, ErrPositionTimeout):
		return MessageWeakSignal
	default:
		return MessageUnknown
	}
}
