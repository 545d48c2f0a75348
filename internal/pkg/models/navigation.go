package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

// NavigationProvider selects who performs turn-by-turn guidance
type NavigationProvider string

const (
	// ProviderInApp keeps guidance inside the app (Mapbox routing)
	ProviderInApp  NavigationProvider = "mapbox"
	ProviderGoogle NavigationProvider = "google"
	ProviderApple  NavigationProvider = "apple"
	ProviderWaze   NavigationProvider = "waze"
)

// ParseNavigationProvider maps a wire value onto the closed provider set
func ParseNavigationProvider(value string) (NavigationProvider, error) {
	switch p := NavigationProvider(value); p {
	case ProviderInApp, ProviderGoogle, ProviderApple, ProviderWaze:
		return p, nil
	default:
		return "", fmt.Errorf("unknown navigation provider %q", value)
	}
}

// DisplayName is the user-facing name of the provider
func (p NavigationProvider) DisplayName() string {
	switch p {
	case ProviderApple:
		return "Apple Maps"
	case ProviderWaze:
		return "Waze"
	case ProviderInApp:
		return "in-app navigation"
	default:
		return "Google Maps"
	}
}

// ExternalApp is the map application that handles a hand-off for p;
// in-app guidance hands off to Google Maps
func (p NavigationProvider) ExternalApp() NavigationProvider {
	switch p {
	case ProviderApple, ProviderWaze:
		return p
	default:
		return ProviderGoogle
	}
}

// UnmarshalJSON rejects providers outside the closed set
func (p *NavigationProvider) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseNavigationProvider(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// NavigationSettings are the per-user navigation preferences
type NavigationSettings struct {
	Provider      NavigationProvider `json:"provider"`
	VoiceGuidance bool               `json:"voiceGuidance"`
	AvoidTolls    bool               `json:"avoidTolls"`
	AvoidHighways bool               `json:"avoidHighways"`
}

// DefaultNavigationSettings returns the settings used when nothing is stored
func DefaultNavigationSettings() NavigationSettings {
	return NavigationSettings{
		Provider:      ProviderGoogle,
		VoiceGuidance: true,
		AvoidTolls:    false,
		AvoidHighways: false,
	}
}

// SettingsPatch is a partial settings update; nil fields are left untouched
type SettingsPatch struct {
	Provider      *NavigationProvider `json:"provider,omitempty"`
	VoiceGuidance *bool               `json:"voiceGuidance,omitempty"`
	AvoidTolls    *bool               `json:"avoidTolls,omitempty"`
	AvoidHighways *bool               `json:"avoidHighways,omitempty"`
}

// Apply returns a copy of s with the patch merged in
func (p SettingsPatch) Apply(s NavigationSettings) NavigationSettings {
	if p.Provider != nil {
		s.Provider = *p.Provider
	}
	if p.VoiceGuidance != nil {
		s.VoiceGuidance = *p.VoiceGuidance
	}
	if p.AvoidTolls != nil {
		s.AvoidTolls = *p.AvoidTolls
	}
	if p.AvoidHighways != nil {
		s.AvoidHighways = *p.AvoidHighways
	}
	return s
}

// Destination is where the driver is heading
type Destination struct {
	Address   string   `json:"address" validate:"required_without_all=Latitude Longitude"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Name      string   `json:"name,omitempty"`
}

// Coordinate returns the explicit coordinates of the destination, if both are set
func (d Destination) Coordinate() (Coordinate, bool) {
	if d.Latitude == nil || d.Longitude == nil {
		return Coordinate{}, false
	}
	return Coordinate{Latitude: *d.Latitude, Longitude: *d.Longitude}, true
}

// RouteStep is one maneuver of a route
type RouteStep struct {
	Instruction      string      `json:"instruction"`
	DistanceMiles    float64     `json:"distance_miles"`
	ManeuverLocation *Coordinate `json:"maneuver_location,omitempty"`
}

// Route is an immutable computed route
type Route struct {
	Geometry        orb.LineString `json:"geometry"`
	DurationMinutes float64        `json:"duration_minutes"`
	DistanceMiles   float64        `json:"distance_miles"`
	Steps           []RouteStep    `json:"steps"`
}

// NavigationState is the route engine lifecycle state
type NavigationState string

const (
	StateIdle             NavigationState = "idle"
	StateGeocoding        NavigationState = "geocoding"
	StateRouteCalculating NavigationState = "route_calculating"
	StateNavigating       NavigationState = "navigating"
	StateRecalculating    NavigationState = "recalculating"
	StateArrived          NavigationState = "arrived"
	StateCancelled        NavigationState = "cancelled"
	StateFailed           NavigationState = "failed"
	StateDelegated        NavigationState = "delegated"
)

// NavigationSession is the live guidance state of one driver
type NavigationSession struct {
	State                  NavigationState `json:"state"`
	IsNavigating           bool            `json:"is_navigating"`
	CurrentRoute           *Route          `json:"current_route,omitempty"`
	NextInstruction        string          `json:"next_instruction,omitempty"`
	DistanceToNextManeuver *float64        `json:"distance_to_next_maneuver,omitempty"`
	EstimatedArrival       *time.Time      `json:"estimated_arrival,omitempty"`
	RouteDurationMinutes   *float64        `json:"route_duration_minutes,omitempty"`
	RouteDistanceMiles     *float64        `json:"route_distance_miles,omitempty"`
}

// NavigationEvent is published on session lifecycle transitions
type NavigationEvent struct {
	DriverID  string          `json:"driver_id"`
	State     NavigationState `json:"state"`
	Reason    string          `json:"reason,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Utterance is one speech request sent to the device
type Utterance struct {
	Text   string  `json:"text"`
	Rate   float64 `json:"rate"`
	Pitch  float64 `json:"pitch"`
	Volume float64 `json:"volume"`
}

// NoticeLevel is the severity of a user-visible notice
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a user-visible toast shown on the driver's device
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Title   string      `json:"title,omitempty"`
	Message string      `json:"message"`
}

// DirectionsRequest is what the directions provider is asked for
type DirectionsRequest struct {
	Origin        Coordinate
	Destination   Coordinate
	AvoidTolls    bool
	AvoidHighways bool
}

// NavigationStartResult tells the caller how navigation was started
type NavigationStartResult struct {
	State       NavigationState    `json:"state"`
	Provider    NavigationProvider `json:"provider"`
	ExternalURL string             `json:"external_url,omitempty"`
	Session     *NavigationSession `json:"session,omitempty"`
}
