package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/utils"
	"github.com/piresc/nebengjek-nav/services/navigation"
)

// Dispatcher hands navigation to an external map application
type Dispatcher struct {
	settings SettingsReader
	platform navigation.PlatformInfo
	device   navigation.DeviceGW
}

// NewDispatcher creates an external navigation dispatcher
func NewDispatcher(settings SettingsReader, platform navigation.PlatformInfo, device navigation.DeviceGW) *Dispatcher {
	return &Dispatcher{settings: settings, platform: platform, device: device}
}

// OpenExternalNavigation opens the deep link of the preferred provider on the
// device and returns it
func (d *Dispatcher) OpenExternalNavigation(ctx context.Context, dest models.Destination) (string, error) {
	provider := d.settings.Current().Provider.ExternalApp()
	url := ExternalNavigationURL(provider, destinationQuery(dest), d.platform.IsIOS())

	if err := d.device.OpenURL(ctx, url); err != nil {
		return url, fmt.Errorf("failed to open %s: %w", provider.DisplayName(), err)
	}

	notice := models.Notice{Level: models.NoticeInfo, Message: "Opening " + provider.DisplayName()}
	if err := d.device.Notify(ctx, notice); err != nil {
		logger.WarnCtx(ctx, "Failed to send hand-off notice", logger.Err(err))
	}
	return url, nil
}

// ExternalNavigationURL builds the deep link for provider; anything that is
// not Apple Maps or Waze opens Google Maps
func ExternalNavigationURL(provider models.NavigationProvider, address string, isIOS bool) string {
	encoded := utils.EncodeURIComponent(address)

	switch provider {
	case models.ProviderApple:
		if isIOS {
			return "maps://maps.apple.com/?daddr=" + encoded
		}
		return "https://maps.apple.com/?daddr=" + encoded
	case models.ProviderWaze:
		return "https://waze.com/ul?q=" + encoded + "&navigate=yes"
	default:
		return "https://www.google.com/maps/dir/?api=1&destination=" + encoded
	}
}

// destinationQuery prefers the address and falls back to "lat,lng"
func destinationQuery(dest models.Destination) string {
	if dest.Address != "" {
		return dest.Address
	}
	if c, ok := dest.Coordinate(); ok {
		return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
	}
	return ""
}
