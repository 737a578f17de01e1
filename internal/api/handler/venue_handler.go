package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

type VenueHandler struct {
	venues ports.VenueService
}

func NewVenueHandler(venues ports.VenueService) *VenueHandler {
	return &VenueHandler{venues: venues}
}

// InsertComponents writes a venue's location hierarchy in one transaction.
//
// @Summary      Insert venue components
// @Tags         venues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      venueComponentsRequest  true  "Venue components"
// @Success      201   {object}  venueComponentsResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/insert-venue-components [post]
func (h *VenueHandler) InsertComponents(c echo.Context) error {
	var req venueComponentsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ref, err := h.venues.InsertComponents(c.Request().Context(), domain.VenueComponents{
		BuildingName:  req.BuildingName,
		Floor:         req.Floor,
		ZipCode:       req.ZipCode,
		StreetAddress: req.StreetAddress,
		District:      req.District,
		City:          req.City,
		Province:      req.Province,
		Country:       req.Country,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, venueComponentsResponse{
		Success:    true,
		AddressID:  ref.AddressID,
		BuildingID: ref.BuildingID,
	})
}
