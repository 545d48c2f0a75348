package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Device -> service
	EventDeviceHello     = "device_hello"
	EventPermission      = "permission"
	EventPosition        = "position"
	EventPositionError   = "position_error"
	EventTrackingStart   = "tracking_start"
	EventTrackingStop    = "tracking_stop"
	EventNavigationStart = "navigation_start"
	EventNavigationStop  = "navigation_stop"

	// Service -> device
	EventRequestPermission = "geolocation.request_permission"
	EventGetPosition       = "geolocation.get_current_position"
	EventWatchPosition     = "geolocation.watch_position"
	EventClearWatch        = "geolocation.clear_watch"
	EventSpeechSpeak       = "speech.speak"
	EventSpeechCancel      = "speech.cancel"
	EventOpenURL           = "navigation.open_url"
	EventNotice            = "notice"
	EventTrackingState     = "tracking_state"
	EventNavigationState   = "navigation_state"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorInvalidLocation  = "invalid_location"
	ErrorNavigationFailed = "navigation_failed"
)

// ErrorSeverity decides how much of an error is shown to the device
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
	ErrorSeveritySecurity
)
