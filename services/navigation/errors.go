package navigation

import "errors"

var (
	// ErrLocationUnavailable means navigation was requested before any fix
	ErrLocationUnavailable = errors.New("current location not available")
	// ErrDestinationNotFound means geocoding returned no match
	ErrDestinationNotFound = errors.New("destination not found")
	// ErrRouteNotFound means the directions provider returned no route
	ErrRouteNotFound = errors.New("route not found")
	// ErrNavigationFailed wraps any other failure while starting navigation
	ErrNavigationFailed = errors.New("navigation failed")
	// ErrProviderUnavailable means the directions provider is not configured
	ErrProviderUnavailable = errors.New("directions provider unavailable")
)

// Driver-facing notices
const (
	MessageLocationUnavailable = "Current location not available"
	MessageCalculatingRoute    = "Calculating route..."
	MessageDestinationNotFound = "Could not find destination"
	MessageRouteNotFound       = "Could not calculate route"
	MessageNavigationStarted   = "Navigation started"
	MessageNavigationFailed    = "Failed to start navigation"
	MessageNavigationStopped   = "Navigation stopped"
	MessageArrived             = "You have arrived"
)
