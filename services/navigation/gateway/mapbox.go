package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	httpclient "github.com/piresc/nebengjek-nav/internal/pkg/http"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/utils"
	"github.com/piresc/nebengjek-nav/services/navigation"
)

// MapboxGW geocodes addresses and computes driving routes with the Mapbox APIs
type MapboxGW struct {
	client  *httpclient.EnhancedClient
	baseURL string
	token   string
}

// NewMapboxGW creates a Mapbox gateway
func NewMapboxGW(client *httpclient.EnhancedClient, cfg models.MapboxConfig) *MapboxGW {
	return &MapboxGW{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AccessToken,
	}
}

// Geocode returns the centre of the best match for address, or nil when
// Mapbox has none
func (g *MapboxGW) Geocode(ctx context.Context, address string) (*models.Coordinate, error) {
	if g.token == "" {
		return nil, navigation.ErrProviderUnavailable
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?limit=1&access_token=%s",
		g.baseURL, utils.EncodeURIComponent(address), url.QueryEscape(g.token))

	var fc geojson.FeatureCollection
	if err := g.client.GetJSON(ctx, endpoint, &fc); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		logger.ErrorCtx(ctx, "Mapbox geocoding failed",
			logger.String("address", address),
			logger.Err(err))
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}

	for _, f := range fc.Features {
		if p, ok := f.Geometry.(orb.Point); ok {
			return &models.Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}, nil
		}
	}
	return nil, nil
}

type directionsResponse struct {
	Code   string           `json:"code"`
	Routes []directionRoute `json:"routes"`
}

type directionRoute struct {
	Duration float64           `json:"duration"`
	Distance float64           `json:"distance"`
	Geometry *geojson.Geometry `json:"geometry"`
	Legs     []struct {
		Steps []directionStep `json:"steps"`
	} `json:"legs"`
}

type directionStep struct {
	Distance float64 `json:"distance"`
	Maneuver struct {
		Instruction string    `json:"instruction"`
		Location    []float64 `json:"location"`
	} `json:"maneuver"`
}

// Directions computes a driving route, or returns nil when Mapbox finds none
func (g *MapboxGW) Directions(ctx context.Context, req models.DirectionsRequest) (*models.Route, error) {
	if g.token == "" {
		return nil, navigation.ErrProviderUnavailable
	}

	var resp directionsResponse
	if err := g.client.GetJSON(ctx, g.directionsURL(req), &resp); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		logger.ErrorCtx(ctx, "Mapbox directions failed", logger.Err(err))
		return nil, fmt.Errorf("failed to get directions: %w", err)
	}

	if len(resp.Routes) == 0 {
		logger.InfoCtx(ctx, "Mapbox returned no route", logger.String("code", resp.Code))
		return nil, nil
	}
	return toRoute(resp.Routes[0]), nil
}

func (g *MapboxGW) directionsURL(req models.DirectionsRequest) string {
	profile := constants.ProfileDriving
	if req.AvoidHighways {
		profile = constants.ProfileDrivingTraffic
	}

	var exclude []string
	if req.AvoidTolls {
		exclude = append(exclude, constants.ExcludeToll)
	}
	if req.AvoidHighways {
		exclude = append(exclude, constants.ExcludeMotorway)
	}

	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/%s/%s;%s?steps=true&geometries=geojson&access_token=%s",
		g.baseURL, profile, lngLat(req.Origin), lngLat(req.Destination), url.QueryEscape(g.token))
	if len(exclude) > 0 {
		endpoint += "&exclude=" + strings.Join(exclude, ",")
	}
	return endpoint
}

func toRoute(r directionRoute) *models.Route {
	route := &models.Route{
		DurationMinutes: r.Duration / constants.SecondsPerMinute,
		DistanceMiles:   r.Distance * constants.MilesPerMeter,
	}
	if r.Geometry != nil {
		if line, ok := r.Geometry.Geometry().(orb.LineString); ok {
			route.Geometry = line
		}
	}
	if len(r.Legs) > 0 {
		for _, s := range r.Legs[0].Steps {
			step := models.RouteStep{
				Instruction:   s.Maneuver.Instruction,
				DistanceMiles: s.Distance * constants.MilesPerMeter,
			}
			if len(s.Maneuver.Location) == 2 {
				step.ManeuverLocation = &models.Coordinate{
					Latitude:  s.Maneuver.Location[1],
					Longitude: s.Maneuver.Location[0],
				}
			}
			route.Steps = append(route.Steps, step)
		}
	}
	return route
}

func lngLat(c models.Coordinate) string {
	return strconv.FormatFloat(c.Longitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Latitude, 'f', -1, 64)
}

// isNotFound reports a 404 or 422 from Mapbox, which it uses for unknown
// places and unroutable coordinates
func isNotFound(err error) bool {
	var herr *httpclient.HTTPError
	if !errors.As(err, &herr) {
		return false
	}
	return herr.StatusCode == 404 || herr.StatusCode == 422
}
