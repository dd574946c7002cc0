package httperr

import (
	"log/slog"
	"net/http"

	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/commands"
	"apartment-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string // empty means the error's own message is safe to show
}

// Ordered: the first matching target wins.
var mappings = []mapping{
	{target: commands.ErrSessionNotFound, status: http.StatusNotFound, message: "Booking session not found"},
	{target: commands.ErrApartmentNotFound, status: http.StatusNotFound, message: "Apartment not found"},
	{target: commands.ErrSubmissionInProgress, status: http.StatusConflict},
	{target: commands.ErrSessionClosed, status: http.StatusConflict},
	{target: commands.ErrCouponPending, status: http.StatusConflict},
	{target: commands.ErrSessionBusy, status: http.StatusConflict, message: "Booking session is busy, retry shortly"},
	{target: commands.ErrEmptyCouponCode, status: http.StatusUnprocessableEntity},
	{target: commands.ErrInvalidOrExpiredCoupon, status: http.StatusUnprocessableEntity, message: "Coupon code is invalid or expired"},
	{target: commands.ErrCouponLookupFailed, status: http.StatusServiceUnavailable, message: "Coupon could not be checked, try again"},
	{target: commands.ErrBookingValidation, status: http.StatusUnprocessableEntity},
	{target: commands.ErrCheckoutFailed, status: http.StatusBadGateway, message: "Checkout could not be started, try again"},
	{target: commands.ErrCatalogUnavailable, status: http.StatusServiceUnavailable, message: "Apartment catalog is unavailable"},
	{target: queries.ErrBookingsLoadFailed, status: http.StatusServiceUnavailable, message: "Availability could not be loaded"},
}

// StatusOf maps a usecase error to its HTTP status and the message shown to clients.
func StatusOf(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			if m.message == "" {
				return m.status, err.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUsecaseError logs unexpected failures with a short stack before responding.
func AbortWithUsecaseError(c *gin.Context, err error, detail any) {
	status, msg := StatusOf(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.FullPath(),
			"status", status,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12),
		)
	}
	AbortWithError(c, status, err, msg, detail)
}
