// Package handler exposes the ride lifecycle over HTTP
package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hailgo/hailcore/internal/pkg/middleware"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/internal/utils"
	"github.com/hailgo/hailcore/services/rides"
)

// RideHandler handles ride lifecycle requests
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates the ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

// RegisterRoutes mounts the ride endpoints under the authenticated group
func (h *RideHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/rides/current", h.GetCurrentRide)
	g.GET("/rides/history", h.GetHistory)
	g.GET("/rides/:id", h.GetRide)
	g.PUT("/rides/:id/status", h.UpdateStatus)
	g.GET("/rides/:id/partner-location", h.GetPartnerLocation)
}

type updateStatusRequest struct {
	State string `json:"state"`
}

// UpdateStatus applies one ride state transition for the calling party
func (h *RideHandler) UpdateStatus(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	target := models.RideState(req.State)
	switch target {
	case models.RideStateCreated, models.RideStateOngoing, models.RideStateCompleted, models.RideStateCancelled:
	default:
		return utils.BadRequestResponse(c, "Unknown ride state")
	}

	ride, err := h.rideUC.UpdateStatus(c.Request().Context(), rideID, actorID, target)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride status updated", ride)
}

// GetRide returns one ride to one of its parties
func (h *RideHandler) GetRide(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID, actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", ride)
}

// GetCurrentRide returns the calling driver's active ride
func (h *RideHandler) GetCurrentRide(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	ride, err := h.rideUC.GetCurrentRideForDriver(c.Request().Context(), actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Current ride retrieved", ride)
}

// GetHistory lists the caller's past rides
func (h *RideHandler) GetHistory(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	list, err := h.rideUC.GetHistoryForUser(c.Request().Context(), actorID, limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride history retrieved", list)
}

// GetPartnerLocation returns the counterpart's live position
func (h *RideHandler) GetPartnerLocation(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	loc, err := h.rideUC.GetPartnerLocation(c.Request().Context(), rideID, actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Partner location retrieved", loc)
}
