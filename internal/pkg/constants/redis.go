package constants

import "time"

// Redis key formats
const (
	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
	DriverLocationKey = "drivers:locations"  // GEO set of the latest position of every tracked driver

	// LiveLocationTTL is how long a driver's last position stays readable after it stops reporting
	LiveLocationTTL = 10 * time.Minute
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldHeading   = "heading"
	FieldSpeed     = "speed"
	FieldAccuracy  = "accuracy"
	FieldTimestamp = "ts"
)
