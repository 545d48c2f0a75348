package constants

// NATS Subjects
const (
	// Tracking
	SubjectDriverLocationUpdated = "driver.location.updated"

	// Navigation session lifecycle, suffixed with the state
	SubjectNavigationSession = "navigation.session.%s"
)
