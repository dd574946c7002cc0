package api

import (
	"net/http"

	reqdto "apartment-booking/internal/handler/dto/request"
	resdto "apartment-booking/internal/handler/dto/response"
	"apartment-booking/internal/handler/httperr"
	"apartment-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	validator commands.CouponValidator
}

func NewCouponHandler(validator commands.CouponValidator) *CouponHandler {
	return &CouponHandler{validator: validator}
}

// @Summary Validate coupon
// @Description Check a coupon code without attaching it to a booking session
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cp, err := h.validator.ValidateCoupon(c.Request.Context(), req.Code)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(cp))
}
