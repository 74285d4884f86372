// Package handler exposes GPS ingest and trajectory reads over HTTP
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hailgo/hailcore/internal/pkg/middleware"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/internal/utils"
	"github.com/hailgo/hailcore/services/location"
)

// LocationHandler handles GPS ingest and trajectory requests
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates the location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// RegisterRoutes mounts the location endpoints under the authenticated group
func (h *LocationHandler) RegisterRoutes(g *echo.Group) {
	g.PUT("/location", h.UpdateLocation)
	g.DELETE("/location", h.RemoveLocation)
	g.GET("/location/trajectories", h.GetTrajectories)
}

type updateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp,omitempty"` // unix seconds, optional
}

// UpdateLocation ingests one GPS sample from the calling driver
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	role, ok := middleware.ActorRole(c)
	if !ok || role != models.RoleDriver {
		return utils.ForbiddenResponse(c, "Only drivers report locations")
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	sample := &models.Location{Latitude: req.Latitude, Longitude: req.Longitude}
	if req.Timestamp > 0 {
		sample.Timestamp = time.Unix(req.Timestamp, 0).UTC()
	}

	if err := h.locationUC.UpdateLocation(c.Request().Context(), actorID, sample); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// RemoveLocation drops the calling driver from the live index
func (h *LocationHandler) RemoveLocation(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.locationUC.RemoveDriver(c.Request().Context(), actorID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location removed", nil)
}

// GetTrajectories lists the calling driver's compacted trajectories
func (h *LocationHandler) GetTrajectories(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	// Drivers read their own history; an explicit id is accepted for
	// support tooling.
	driverID := actorID
	if raw := c.QueryParam("driver_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid driver id")
		}
		driverID = parsed
	}

	list, err := h.locationUC.GetTrajectories(c.Request().Context(), driverID, limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trajectories retrieved", list)
}
