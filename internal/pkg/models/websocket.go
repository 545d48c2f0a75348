package models

import "encoding/json"

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeviceCapabilities is what the driver's device declares when it connects
type DeviceCapabilities struct {
	Geolocation bool   `json:"geolocation"`
	Permission  string `json:"permission"` // granted, denied or prompt
	Speech      bool   `json:"speech"`
	UserAgent   string `json:"user_agent"`
}

// PositionRequest asks the device for one fix. The device echoes RequestID
// in the position or position_error that answers it.
type PositionRequest struct {
	RequestID string `json:"request_id"`
	TimeoutMs int64  `json:"timeout_ms"`
}

// DevicePosition is a fix reported by the device. RequestID is set when the
// fix answers a PositionRequest and empty for watch updates.
type DevicePosition struct {
	LocationSample
	RequestID string `json:"request_id,omitempty"`
}

// DevicePositionError is a raw geolocation error as reported by the device
type DevicePositionError struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// OpenURLCommand asks the device to open a deep link in a new browsing context
type OpenURLCommand struct {
	URL    string `json:"url"`
	Target string `json:"target"`
}
