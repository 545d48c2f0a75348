package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	natspkg "github.com/piresc/nebengjek-nav/internal/pkg/nats"
)

// TrackingGW publishes tracking events on NATS
type TrackingGW struct {
	producer *natspkg.Producer
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(producer *natspkg.Producer) *TrackingGW {
	return &TrackingGW{producer: producer}
}

// PublishLocationUpdated publishes the flushed driver position
func (g *TrackingGW) PublishLocationUpdated(ctx context.Context, event models.LocationEvent) error {
	if err := g.producer.Publish(constants.SubjectDriverLocationUpdated, event); err != nil {
		return fmt.Errorf("failed to publish location update: %w", err)
	}
	return nil
}
