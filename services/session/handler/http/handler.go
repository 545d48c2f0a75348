package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/middleware"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	nrpkg "github.com/piresc/nebengjek-nav/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-nav/internal/pkg/websocket"
	"github.com/piresc/nebengjek-nav/internal/utils"
	"github.com/piresc/nebengjek-nav/services/navigation"
	"github.com/piresc/nebengjek-nav/services/session"
	"github.com/piresc/nebengjek-nav/services/tracking"
)

// SessionHandler exposes the driver's tracking and navigation over HTTP.
// Everything except settings needs the driver's device to be connected.
type SessionHandler struct {
	registry *session.Registry
	validate *validator.Validate
}

// NewSessionHandler creates a new session HTTP handler
func NewSessionHandler(registry *session.Registry) *SessionHandler {
	return &SessionHandler{registry: registry, validate: validator.New()}
}

// RegisterRoutes mounts the driver routes on g; startMiddleware guards
// navigation start
func (h *SessionHandler) RegisterRoutes(g *echo.Group, startMiddleware ...echo.MiddlewareFunc) {
	g.POST("/tracking/start", nrpkg.TraceHandler("session.StartTracking", h.StartTracking))
	g.POST("/tracking/stop", nrpkg.TraceHandler("session.StopTracking", h.StopTracking))
	g.GET("/tracking", nrpkg.TraceHandler("session.GetTracking", h.GetTracking))

	g.GET("/navigation/settings", nrpkg.TraceHandler("session.GetSettings", h.GetSettings))
	g.PATCH("/navigation/settings", nrpkg.TraceHandler("session.UpdateSettings", h.UpdateSettings))
	g.POST("/navigation/start", nrpkg.TraceHandler("session.StartNavigation", h.StartNavigation), startMiddleware...)
	g.POST("/navigation/stop", nrpkg.TraceHandler("session.StopNavigation", h.StopNavigation))
	g.GET("/navigation", nrpkg.TraceHandler("session.GetNavigation", h.GetNavigation))
	g.POST("/navigation/external", nrpkg.TraceHandler("session.OpenExternalNavigation", h.OpenExternalNavigation))
}

// liveSession returns the caller's session. Without one it writes the error
// response and returns a nil session with the write result.
func (h *SessionHandler) liveSession(c echo.Context) (*session.Session, error) {
	userID := middleware.UserID(c)
	if userID == "" {
		return nil, utils.UnauthorizedResponse(c, "")
	}
	s, ok := h.registry.Lookup(userID)
	if !ok {
		return nil, utils.ErrorResponseHandler(c, http.StatusConflict, "device not connected")
	}
	return s, nil
}

// StartTracking starts the driver's location feed
func (h *SessionHandler) StartTracking(c echo.Context) error {
	s, resp := h.liveSession(c)
	if s == nil {
		return resp
	}

	ctx := c.Request().Context()
	if err := s.Tracker.StartTracking(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to start tracking",
			logger.String("driver_id", s.DriverID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, trackingStatusCode(err), tracking.FailureMessage(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking started", s.Status())
}

// StopTracking stops the driver's location feed
func (h *SessionHandler) StopTracking(c echo.Context) error {
	s, resp := h.liveSession(c)
	if s == nil {
		return resp
	}

	s.Tracker.StopTracking()
	return utils.SuccessResponse(c, http.StatusOK, "Tracking stopped", s.Status())
}

// GetTracking returns the tracker status
func (h *SessionHandler) GetTracking(c echo.Context) error {
	s, resp := h.liveSession(c)
	if s == nil {
		return resp
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tracking status", s.Status())
}

// GetSettings returns the driver's navigation settings
func (h *SessionHandler) GetSettings(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	settings := h.registry.Settings(c.Request().Context(), userID).Current()
	return utils.SuccessResponse(c, http.StatusOK, "Navigation settings", settings)
}

// UpdateSettings merges the request body into the driver's settings
func (h *SessionHandler) UpdateSettings(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var patch models.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "invalid settings")
	}

	ctx := c.Request().Context()
	settings := h.registry.Settings(ctx, userID).Save(ctx, patch)
	return utils.SuccessResponse(c, http.StatusOK, "Navigation settings updated", settings)
}

// StartNavigation starts guidance to the destination in the request body
func (h *SessionHandler) StartNavigation(c echo.Context) error {
	s, resp := h.liveSession(c)
	if s == nil {
		return resp
	}

	var dest models.Destination
	if err := c.Bind(&dest); err != nil {
		return utils.BadRequestResponse(c, "invalid destination")
	}
	if err := h.validate.Struct(dest); err != nil {
		return utils.ValidationErrorResponse(c, err)
	}

	result, err := s.Engine.StartNavigation(c.Request().Context(), dest)
	if err != nil {
		return utils.ErrorResponseHandler(c, navigationStatusCode(err), navigationMessage(err))
	}
	return utils.SuccessResponse(c, http.StatusOK, "Navigation started", result)
}

// StopNavigation ends in-app guidance
func (h *SessionHandler) StopNavigation(c echo.Context) error {
	s, resp := h.liveSession(c)
	if s == nil {
		return resp
	}

	s.Engine.StopNavigation()
	return utils.SuccessResponse(c, http.StatusOK, "Navigation stopped", s.Engine.Session())
}

// GetNavigation returns the current navigation session
func (h *SessionHandler) GetNavigation(c echo.Context) error {
	s, resp := h.liveSession(c)
	if s == nil {
		return resp
	}
	return utils.SuccessResponse(c, http.StatusOK, "Navigation session", s.Engine.Session())
}

// OpenExternalNavigation opens the destination in the preferred map app
func (h *SessionHandler) OpenExternalNavigation(c echo.Context) error {
	s, resp := h.liveSession(c)
	if s == nil {
		return resp
	}

	var dest models.Destination
	if err := c.Bind(&dest); err != nil {
		return utils.BadRequestResponse(c, "invalid destination")
	}
	if err := h.validate.Struct(dest); err != nil {
		return utils.ValidationErrorResponse(c, err)
	}

	ctx := c.Request().Context()
	url, err := s.Dispatcher.OpenExternalNavigation(ctx, dest)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to open external navigation",
			logger.String("driver_id", s.DriverID),
			logger.Err(err))
		if errors.Is(err, websocket.ErrClientNotConnected) {
			return utils.ErrorResponseHandler(c, http.StatusConflict, "device not connected")
		}
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "failed to open navigation app")
	}
	return utils.SuccessResponse(c, http.StatusOK, "External navigation opened", map[string]string{"url": url})
}

func trackingStatusCode(err error) int {
	switch {
	case errors.Is(err, tracking.ErrDeviceNotConnected):
		return http.StatusConflict
	case errors.Is(err, tracking.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, tracking.ErrGeolocationUnsupported):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusServiceUnavailable
	}
}

func navigationStatusCode(err error) int {
	switch {
	case errors.Is(err, navigation.ErrLocationUnavailable):
		return http.StatusConflict
	case errors.Is(err, navigation.ErrDestinationNotFound):
		return http.StatusNotFound
	case errors.Is(err, navigation.ErrRouteNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func navigationMessage(err error) string {
	switch {
	case errors.Is(err, navigation.ErrLocationUnavailable):
		return navigation.MessageLocationUnavailable
	case errors.Is(err, navigation.ErrDestinationNotFound):
		return navigation.MessageDestinationNotFound
	case errors.Is(err, navigation.ErrRouteNotFound):
		return navigation.MessageRouteNotFound
	default:
		return navigation.MessageNavigationFailed
	}
}
