// Package handler exposes the offer lifecycle over HTTP. Handlers do
// binding and actor extraction only; every decision lives in the usecase.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hailgo/hailcore/internal/pkg/middleware"
	"github.com/hailgo/hailcore/internal/pkg/models"
	"github.com/hailgo/hailcore/internal/utils"
	"github.com/hailgo/hailcore/services/offers"
)

// OfferHandler handles offer lifecycle requests
type OfferHandler struct {
	offerUC offers.OfferUC
}

// NewOfferHandler creates the offer HTTP handler
func NewOfferHandler(offerUC offers.OfferUC) *OfferHandler {
	return &OfferHandler{offerUC: offerUC}
}

// RegisterRoutes mounts the offer endpoints under the authenticated group
func (h *OfferHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/offers", h.CreateOffer)
	g.GET("/offers/available", h.GetAvailableOffers)
	g.GET("/offers/:id", h.GetOffer)
	g.POST("/offers/:id/bids", h.SubmitBid)
	g.POST("/offers/:id/select/:driverID", h.SelectDriver)
	g.POST("/offers/:id/finalize/:driverID", h.FinalizeOffer)
	g.POST("/offers/:id/cancel", h.CancelOffer)
}

// CreateOffer opens a new transport offer for the authenticated passenger
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateOfferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), &req, actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Offer created", offer)
}

// GetOffer returns one offer with enriched bids
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid offer id")
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), offerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offer retrieved", offer)
}

// GetAvailableOffers lists open offers near the calling driver
func (h *OfferHandler) GetAvailableOffers(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.offerUC.GetAvailableOffers(c.Request().Context(), actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Available offers retrieved", list)
}

// SubmitBid records the calling driver's interest in the offer
func (h *OfferHandler) SubmitBid(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid offer id")
	}

	offer, err := h.offerUC.SubmitBid(c.Request().Context(), offerID, actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bid submitted", offer)
}

// SelectDriver records the passenger's choice among the bidders
func (h *OfferHandler) SelectDriver(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid offer id")
	}
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver id")
	}

	offer, err := h.offerUC.SelectDriver(c.Request().Context(), offerID, actorID, driverID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver selected", offer)
}

// FinalizeOffer validates the offer and creates its ride
func (h *OfferHandler) FinalizeOffer(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid offer id")
	}
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver id")
	}

	ride, err := h.offerUC.FinalizeOffer(c.Request().Context(), offerID, actorID, driverID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Offer finalized", ride)
}

// CancelOffer cancels an open or selected offer
func (h *OfferHandler) CancelOffer(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid offer id")
	}

	offer, err := h.offerUC.CancelOffer(c.Request().Context(), offerID, actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offer cancelled", offer)
}
