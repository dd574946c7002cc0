package api

import (
	"net/http"

	resdto "apartment-booking/internal/handler/dto/response"
	"apartment-booking/internal/handler/httperr"
	"apartment-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApartmentHandler struct {
	q queries.ApartmentQueries
}

func NewApartmentHandler(q queries.ApartmentQueries) *ApartmentHandler {
	return &ApartmentHandler{q: q}
}

// @Summary List apartments
// @Description List every bookable apartment with its nightly rate
// @Tags apartments
// @Produce json
// @Success 200 {array} resdto.ApartmentResponse
// @Failure 503 {object} httperr.Response
// @Router /api/apartments [get]
func (h *ApartmentHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApartmentViews(views))
}

// @Summary Apartment availability
// @Description Booked intervals and dates for an apartment. May lag behind by the cache TTL.
// @Tags apartments
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/apartments/{id}/availability [get]
func (h *ApartmentHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid apartment id", nil)
		return
	}
	view, err := h.q.Availability(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
