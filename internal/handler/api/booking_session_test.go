//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/domain/booking"
	"apartment-booking/internal/handler/api"
	resdto "apartment-booking/internal/handler/dto/response"
	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/commands"
	"apartment-booking/internal/usecase/queries"
	"apartment-booking/tests/common/builder"
	"apartment-booking/tests/common/httptest"
	"apartment-booking/tests/common/testutil"
	commandsmock "apartment-booking/tests/mock/commands"
	queriesmock "apartment-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingSessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingSessionCommands
	mockQueries  *queriesmock.MockBookingSessionQueries
	handler      *api.BookingSessionHandler
}

func (s *BookingSessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingSessionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingSessionQueries(s.mockCtrl)
	s.handler = api.NewBookingSessionHandler(s.mockCommands, s.mockQueries)

	sessions := s.router.Group("/api/booking-sessions")
	sessions.POST("", s.handler.Open)
	sessions.GET("/:id", s.handler.Get)
	sessions.DELETE("/:id", s.handler.Close)
	sessions.PUT("/:id/apartment", s.handler.ChangeApartment)
	sessions.PUT("/:id/check-in", s.handler.SelectCheckIn)
	sessions.PUT("/:id/check-out", s.handler.SelectCheckOut)
	sessions.PUT("/:id/guest", s.handler.UpdateGuest)
	sessions.POST("/:id/coupon", s.handler.ApplyCoupon)
	sessions.DELETE("/:id/coupon", s.handler.RemoveCoupon)
	sessions.POST("/:id/availability/refresh", s.handler.RefreshAvailability)
	sessions.POST("/:id/submit", s.handler.Submit)
}

func (s *BookingSessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingSessionHandlerTestSuite))
}

func sessionURL(id uuid.UUID, suffix string) string {
	return "/api/booking-sessions/" + id.String() + suffix
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *BookingSessionHandlerTestSuite) TestOpen() {
	url := "/api/booking-sessions"
	b := builder.NewBookingSessionViewBuilder()
	reqBody := b.BuildOpenRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with the session", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), b.ApartmentID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("empty", body.State)
		s.Equal([]string{"2024-06-10", "2024-06-11"}, body.BookedDates)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": sessionURL(view.ID, "")})
	})

	s.Run("error: 400 on invalid payloads", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing apartmentId", mutate: testutil.Field("apartmentId", nil)},
			{name: "malformed apartmentId", mutate: testutil.Field("apartmentId", "not-a-uuid")},
			{name: "nil apartmentId", mutate: testutil.Field("apartmentId", uuid.Nil.String())},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}

		s.Run("malformed json", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"apartmentId":`)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	})

	s.Run("error: 404 for unknown apartment", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), b.ApartmentID).Return(nil, commands.ErrApartmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Apartment not found")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingSessionHandlerTestSuite) TestGet() {
	view := builder.NewBookingSessionViewBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, sessionURL(view.ID, ""), nil)

		var body resdto.BookingSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("Seaside Loft", body.Apartment.Name)
		s.Equal("100.00", body.Price.NightlyRate)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking-sessions/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session id")
	})

	s.Run("error: 404 for unknown or expired session", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, commands.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, sessionURL(view.ID, ""), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking session not found")
	})
}

// ================================================================================
// TestSelectDates
// ================================================================================

func (s *BookingSessionHandlerTestSuite) TestSelectDates() {
	view := builder.NewBookingSessionViewBuilder().With(func(b *builder.BookingSessionViewBuilder) {
		b.State = "dates_partial"
		b.CheckIn = "2024-06-01"
	}).BuildView()

	s.Run("success: parses the date and returns the session", func() {
		s.mockCommands.EXPECT().
			SelectCheckIn(gomock.Any(), view.ID, availability.NewDate(2024, 6, 1)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, sessionURL(view.ID, "/check-in"),
			map[string]any{"date": "2024-06-01"})

		var body resdto.BookingSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2024-06-01", body.CheckIn)
		s.Equal("dates_partial", body.State)
	})

	s.Run("error: 400 for malformed dates without calling the usecase", func() {
		for _, raw := range []string{"2024-6-1", "2024-02-30", "01/06/2024", ""} {
			s.Run(raw, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, sessionURL(view.ID, "/check-out"),
					map[string]any{"date": raw})
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 carries the domain reason", func() {
		cases := []struct {
			name string
			err  error
		}{
			{name: "booked day", err: booking.ErrDateBooked},
			{name: "range conflict", err: booking.ErrRangeConflict},
			{name: "not after check-in", err: booking.ErrCheckOutNotAfterCheckIn},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					SelectCheckOut(gomock.Any(), view.ID, availability.NewDate(2024, 6, 5)).
					Return(nil, errs.Mark(tc.err, commands.ErrBookingValidation)).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, sessionURL(view.ID, "/check-out"),
					map[string]any{"date": "2024-06-05"})
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, tc.err.Error())
			})
		}
	})

	s.Run("error: 409 while submitting", func() {
		s.mockCommands.EXPECT().
			SelectCheckIn(gomock.Any(), view.ID, gomock.Any()).
			Return(nil, commands.ErrSubmissionInProgress).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, sessionURL(view.ID, "/check-in"),
			map[string]any{"date": "2024-06-01"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "submission is in progress")
	})
}

// ================================================================================
// TestUpdateGuest
// ================================================================================

func (s *BookingSessionHandlerTestSuite) TestUpdateGuest() {
	view := builder.NewBookingSessionViewBuilder().With(func(b *builder.BookingSessionViewBuilder) {
		b.GuestName = "Ana"
		b.GuestEmail = "ana@example.com"
	}).BuildView()

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateGuest(gomock.Any(), view.ID, "Ana", "ana@example.com").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, sessionURL(view.ID, "/guest"),
			map[string]any{"name": "Ana", "email": "ana@example.com"})

		var body resdto.BookingSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ana@example.com", body.GuestEmail)
	})

	s.Run("error: 422 for an invalid email", func() {
		s.mockCommands.EXPECT().UpdateGuest(gomock.Any(), view.ID, "Ana", "nope").
			Return(nil, errs.Mark(booking.ErrInvalidEmail, commands.ErrBookingValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, sessionURL(view.ID, "/guest"),
			map[string]any{"name": "Ana", "email": "nope"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, booking.ErrInvalidEmail.Error())
	})
}

// ================================================================================
// TestApplyCoupon
// ================================================================================

func (s *BookingSessionHandlerTestSuite) TestApplyCoupon() {
	view := builder.NewBookingSessionViewBuilder().BuildView()

	s.Run("success", func() {
		applied := builder.NewBookingSessionViewBuilder().With(func(b *builder.BookingSessionViewBuilder) {
			b.ID = view.ID
		}).BuildView()
		applied.Coupon = &queries.AppliedCouponView{Code: "SUMMER10", DiscountPercent: "10"}
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), view.ID, "SUMMER10").Return(applied, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, sessionURL(view.ID, "/coupon"),
			map[string]any{"code": "SUMMER10"})

		var body resdto.BookingSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Coupon)
		s.Equal("SUMMER10", body.Coupon.Code)
		s.Equal("10", body.Coupon.DiscountPercent)
	})

	s.Run("error: refused code returns 422 with the session in detail", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), view.ID, "NOPE").
			Return(view, commands.ErrInvalidOrExpiredCoupon).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, sessionURL(view.ID, "/coupon"),
			map[string]any{"code": "NOPE"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Coupon code is invalid or expired")
		s.Contains(rec.Body.String(), `"detail":{"id":"`+view.ID.String()+`"`)
	})

	s.Run("error: lookup failure returns 503", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), view.ID, "SUMMER10").
			Return(view, errs.Mark(errors.New("connection refused"), commands.ErrCouponLookupFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, sessionURL(view.ID, "/coupon"),
			map[string]any{"code": "SUMMER10"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Coupon could not be checked")
		s.NotContains(rec.Body.String(), "connection refused")
	})

	s.Run("remove coupon", func() {
		s.mockCommands.EXPECT().RemoveCoupon(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, sessionURL(view.ID, "/coupon"), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *BookingSessionHandlerTestSuite) TestSubmit() {
	id := uuid.New()

	s.Run("success: returns the redirect URL", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), id).
			Return(&commands.SubmitResult{SessionID: id, RedirectURL: "https://pay.example.com/c/1"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, sessionURL(id, "/submit"), nil)

		var body resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("https://pay.example.com/c/1", body.RedirectURL)
		s.Equal(id, body.SessionID)
	})

	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "missing field", err: errs.Mark(booking.ErrMissingRequiredField, commands.ErrBookingValidation), status: http.StatusUnprocessableEntity, msg: "missing required field"},
		{name: "already submitting", err: commands.ErrSubmissionInProgress, status: http.StatusConflict},
		{name: "already redirected", err: commands.ErrSessionClosed, status: http.StatusConflict},
		{name: "checkout failure", err: errs.Mark(errors.New("status 500"), commands.ErrCheckoutFailed), status: http.StatusBadGateway, msg: "Checkout could not be started"},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, msg: "Internal server error"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Submit(gomock.Any(), id).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, sessionURL(id, "/submit"), nil)
			httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
		})
	}
}

// ================================================================================
// TestLifecycle
// ================================================================================

func (s *BookingSessionHandlerTestSuite) TestLifecycle() {
	view := builder.NewBookingSessionViewBuilder().BuildView()
	newApartment := uuid.New()

	s.Run("change apartment", func() {
		s.mockCommands.EXPECT().ChangeApartment(gomock.Any(), view.ID, newApartment).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, sessionURL(view.ID, "/apartment"),
			map[string]any{"apartmentId": newApartment.String()})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("refresh availability", func() {
		s.mockCommands.EXPECT().RefreshAvailability(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, sessionURL(view.ID, "/availability/refresh"), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("close", func() {
		s.mockCommands.EXPECT().Close(gomock.Any(), view.ID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, sessionURL(view.ID, ""), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("close while submitting", func() {
		s.mockCommands.EXPECT().Close(gomock.Any(), view.ID).Return(commands.ErrSubmissionInProgress).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, sessionURL(view.ID, ""), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}
