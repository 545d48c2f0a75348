package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	nrpkg "github.com/piresc/nebengjek-nav/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-nav/internal/utils"
	"github.com/piresc/nebengjek-nav/services/tracking"
)

// LocationHandler serves stored driver positions to other services
type LocationHandler struct {
	queryUC tracking.LocationQueryUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(queryUC tracking.LocationQueryUC) *LocationHandler {
	return &LocationHandler{queryUC: queryUC}
}

// RegisterRoutes mounts the internal read routes on g
func (h *LocationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/drivers/:id/location", nrpkg.TraceHandler("tracking.GetDriverLocation", h.GetDriverLocation))
	g.GET("/drivers/:id/history", nrpkg.TraceHandler("tracking.GetDriverHistory", h.GetDriverHistory))
}

// GetDriverLocation returns the driver's live position
func (h *LocationHandler) GetDriverLocation(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	sample, err := h.queryUC.GetLiveLocation(c.Request().Context(), driverID)
	if errors.Is(err, tracking.ErrLocationNotFound) {
		return utils.NotFoundResponse(c, "driver location not found")
	}
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to get driver location",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get driver location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver location retrieved", sample)
}

// GetDriverHistory returns the trail between the from and to query
// parameters (RFC 3339), capped by limit
func (h *LocationHandler) GetDriverHistory(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	from, err := parseTime(c.QueryParam("from"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid from")
	}
	to, err := parseTime(c.QueryParam("to"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid to")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return utils.BadRequestResponse(c, "invalid limit")
		}
	}

	records, err := h.queryUC.GetHistory(c.Request().Context(), driverID, from, to, limit)
	if errors.Is(err, tracking.ErrInvalidRange) {
		return utils.BadRequestResponse(c, err.Error())
	}
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to get driver history",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get driver history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver history retrieved", records)
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
