package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

// DeviceChannel sends events to one driver's device
type DeviceChannel interface {
	Send(ctx context.Context, event string, data interface{}) error
}

// DeviceNotifier shows tracking notices on the driver's device
type DeviceNotifier struct {
	channel DeviceChannel
}

// NewDeviceNotifier creates a notifier on channel
func NewDeviceNotifier(channel DeviceChannel) *DeviceNotifier {
	return &DeviceNotifier{channel: channel}
}

// Notify sends notice to the device
func (n *DeviceNotifier) Notify(ctx context.Context, notice models.Notice) error {
	if err := n.channel.Send(ctx, constants.EventNotice, notice); err != nil {
		return fmt.Errorf("failed to send notice: %w", err)
	}
	return nil
}
