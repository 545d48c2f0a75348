package gateway

import (
	"context"
	"fmt"
	"regexp"

	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

// DeviceChannel sends events to one driver's device
type DeviceChannel interface {
	Send(ctx context.Context, event string, data interface{}) error
}

// DeviceGW drives speech, deep links and notices on the driver's device
type DeviceGW struct {
	channel DeviceChannel
}

// NewDeviceGW creates a device gateway on channel
func NewDeviceGW(channel DeviceChannel) *DeviceGW {
	return &DeviceGW{channel: channel}
}

// Speak queues utterance on the device's speech engine
func (g *DeviceGW) Speak(ctx context.Context, utterance models.Utterance) error {
	if err := g.channel.Send(ctx, constants.EventSpeechSpeak, utterance); err != nil {
		return fmt.Errorf("failed to send speech: %w", err)
	}
	return nil
}

// Cancel stops any speech in progress
func (g *DeviceGW) Cancel(ctx context.Context) error {
	if err := g.channel.Send(ctx, constants.EventSpeechCancel, struct{}{}); err != nil {
		return fmt.Errorf("failed to cancel speech: %w", err)
	}
	return nil
}

// OpenURL opens url in a new browsing context on the device
func (g *DeviceGW) OpenURL(ctx context.Context, url string) error {
	cmd := models.OpenURLCommand{URL: url, Target: "_blank"}
	if err := g.channel.Send(ctx, constants.EventOpenURL, cmd); err != nil {
		return fmt.Errorf("failed to open url: %w", err)
	}
	return nil
}

// Notify shows notice on the device
func (g *DeviceGW) Notify(ctx context.Context, notice models.Notice) error {
	if err := g.channel.Send(ctx, constants.EventNotice, notice); err != nil {
		return fmt.Errorf("failed to send notice: %w", err)
	}
	return nil
}

var iosUserAgent = regexp.MustCompile(`iPad|iPhone|iPod`)

// CapabilitySource reports what the connected device declared
type CapabilitySource interface {
	Capabilities() (models.DeviceCapabilities, bool)
}

// DevicePlatform answers platform questions from the device hello
type DevicePlatform struct {
	source CapabilitySource
}

// NewDevicePlatform creates platform info backed by source
func NewDevicePlatform(source CapabilitySource) *DevicePlatform {
	return &DevicePlatform{source: source}
}

// IsIOS reports whether the device user agent is an Apple handheld
func (p *DevicePlatform) IsIOS() bool {
	caps, ok := p.source.Capabilities()
	return ok && iosUserAgent.MatchString(caps.UserAgent)
}

// SpeechSupported reports whether the device declared speech synthesis
func (p *DevicePlatform) SpeechSupported() bool {
	caps, ok := p.source.Capabilities()
	return ok && caps.Speech
}
