package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	natspkg "github.com/piresc/nebengjek-nav/internal/pkg/nats"
)

// NavigationGW publishes navigation session events on NATS
type NavigationGW struct {
	producer *natspkg.Producer
}

// NewNavigationGW creates a new navigation gateway
func NewNavigationGW(producer *natspkg.Producer) *NavigationGW {
	return &NavigationGW{producer: producer}
}

// PublishSessionEvent publishes event on the subject of its state
func (g *NavigationGW) PublishSessionEvent(ctx context.Context, event models.NavigationEvent) error {
	subject := fmt.Sprintf(constants.SubjectNavigationSession, event.State)
	if err := g.producer.Publish(subject, event); err != nil {
		return fmt.Errorf("failed to publish navigation event: %w", err)
	}
	return nil
}
