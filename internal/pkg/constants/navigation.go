package constants

// Mapbox directions profiles
const (
	ProfileDriving        = "driving"
	ProfileDrivingTraffic = "driving-traffic"
)

// Mapbox exclude classes
const (
	ExcludeToll     = "toll"
	ExcludeMotorway = "motorway"
)

// Unit conversions used when turning provider responses into driver-facing figures
const (
	MilesPerMeter    = 0.000621371
	SecondsPerMinute = 60.0
)

// Speech output configuration
const (
	SpeechRate   = 0.9
	SpeechPitch  = 1.0
	SpeechVolume = 0.8
)

// NavigationStartedPhrase is spoken when in-app guidance begins
const NavigationStartedPhrase = "Navigation started. Follow the route to your destination."
