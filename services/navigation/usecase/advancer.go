package usecase

import (
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/utils"
)

// StepAdvancer decides whether the driver has completed the maneuver of step
type StepAdvancer interface {
	Passed(position models.Coordinate, step models.RouteStep) bool
}

// NoAdvance never consumes steps; the upcoming step stays the first one
type NoAdvance struct{}

// Passed always reports false
func (NoAdvance) Passed(models.Coordinate, models.RouteStep) bool {
	return false
}

// ProximityAdvancer consumes a step once the driver is within RadiusMeters
// of its maneuver location
type ProximityAdvancer struct {
	RadiusMeters float64
}

// Passed reports whether position is inside the maneuver radius
func (a ProximityAdvancer) Passed(position models.Coordinate, step models.RouteStep) bool {
	if step.ManeuverLocation == nil {
		return false
	}
	return utils.DistanceMeters(position, *step.ManeuverLocation) <= a.RadiusMeters
}

// NewStepAdvancer picks the advancer configured for navigation
func NewStepAdvancer(cfg models.NavigationConfig) StepAdvancer {
	if !cfg.ProximityAdvance {
		return NoAdvance{}
	}
	radius := cfg.ProximityRadiusMeters
	if radius <= 0 {
		radius = 30
	}
	return ProximityAdvancer{RadiusMeters: radius}
}
