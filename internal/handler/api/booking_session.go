package api

import (
	"net/http"

	reqdto "apartment-booking/internal/handler/dto/request"
	resdto "apartment-booking/internal/handler/dto/response"
	"apartment-booking/internal/handler/httperr"
	"apartment-booking/internal/usecase/commands"
	"apartment-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingSessionHandler struct {
	cmds commands.BookingSessionCommands
	q    queries.BookingSessionQueries
}

func NewBookingSessionHandler(cmds commands.BookingSessionCommands, q queries.BookingSessionQueries) *BookingSessionHandler {
	return &BookingSessionHandler{cmds: cmds, q: q}
}

// @Summary Open booking session
// @Description Start booking an apartment; availability is loaded before the response is sent
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param request body reqdto.OpenSessionRequest true "Apartment to book"
// @Success 201 {object} resdto.BookingSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-sessions [post]
func (h *BookingSessionHandler) Open(c *gin.Context) {
	var req reqdto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Open(c.Request.Context(), req.ApartmentID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.Header("Location", "/api/booking-sessions/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingSessionView(view))
}

// @Summary Get booking session
// @Tags booking-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-sessions/{id} [get]
func (h *BookingSessionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSessionView(view))
}

// @Summary Close booking session
// @Description Discard the draft. Rejected while a submission is in progress.
// @Tags booking-sessions
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-sessions/{id} [delete]
func (h *BookingSessionHandler) Close(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.cmds.Close(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change apartment
// @Description Switch the session to another apartment; dates are cleared, guest and coupon are kept
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.ChangeApartmentRequest true "New apartment"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-sessions/{id}/apartment [put]
func (h *BookingSessionHandler) ChangeApartment(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.ChangeApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respond(c, func() (*queries.BookingSessionView, error) {
		return h.cmds.ChangeApartment(c.Request.Context(), id, req.ApartmentID)
	})
}

// @Summary Select check-in
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectDateRequest true "Check-in date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-sessions/{id}/check-in [put]
func (h *BookingSessionHandler) SelectCheckIn(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	date, err := req.ToDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}
	h.respond(c, func() (*queries.BookingSessionView, error) {
		return h.cmds.SelectCheckIn(c.Request.Context(), id, date)
	})
}

// @Summary Select check-out
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectDateRequest true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-sessions/{id}/check-out [put]
func (h *BookingSessionHandler) SelectCheckOut(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	date, err := req.ToDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}
	h.respond(c, func() (*queries.BookingSessionView, error) {
		return h.cmds.SelectCheckOut(c.Request.Context(), id, date)
	})
}

// @Summary Update guest details
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.UpdateGuestRequest true "Guest name and email"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-sessions/{id}/guest [put]
func (h *BookingSessionHandler) UpdateGuest(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.respond(c, func() (*queries.BookingSessionView, error) {
		return h.cmds.UpdateGuest(c.Request.Context(), id, req.Name, req.Email)
	})
}

// @Summary Apply coupon
// @Description A refused code keeps any previously applied coupon; the session is returned in the error detail
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/booking-sessions/{id}/coupon [post]
func (h *BookingSessionHandler) ApplyCoupon(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.ApplyCoupon(c.Request.Context(), id, req.Code)
	if err != nil {
		var detail any
		if view != nil {
			detail = resdto.FromBookingSessionView(view)
		}
		httperr.AbortWithUsecaseError(c, err, detail)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSessionView(view))
}

// @Summary Remove coupon
// @Tags booking-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/booking-sessions/{id}/coupon [delete]
func (h *BookingSessionHandler) RemoveCoupon(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	h.respond(c, func() (*queries.BookingSessionView, error) {
		return h.cmds.RemoveCoupon(c.Request.Context(), id)
	})
}

// @Summary Refresh availability
// @Description Reload booked dates, e.g. after a failed load
// @Tags booking-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.BookingSessionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/booking-sessions/{id}/availability/refresh [post]
func (h *BookingSessionHandler) RefreshAvailability(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	h.respond(c, func() (*queries.BookingSessionView, error) {
		return h.cmds.RefreshAvailability(c.Request.Context(), id)
	})
}

// @Summary Submit booking
// @Description Re-check availability and hand the booking to checkout
// @Tags booking-sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/booking-sessions/{id}/submit [post]
func (h *BookingSessionHandler) Submit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmitResult(result))
}

func (h *BookingSessionHandler) respond(c *gin.Context, fn func() (*queries.BookingSessionView, error)) {
	view, err := fn()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSessionView(view))
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return uuid.Nil, false
	}
	return id, true
}
