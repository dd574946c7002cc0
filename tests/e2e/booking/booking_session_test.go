//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	resdto "apartment-booking/internal/handler/dto/response"
	"apartment-booking/tests/common/dbtest"
	"apartment-booking/tests/common/httptest"
	"apartment-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BookingSessionE2ETestSuite struct {
	e2e.SharedSuite
	apartmentID uuid.UUID
}

func TestBookingSessionE2ETestSuite(t *testing.T) {
	suite.Run(t, new(BookingSessionE2ETestSuite))
}

func (s *BookingSessionE2ETestSuite) SetupTest() {
	s.SharedSuite.SetupTest()

	s.apartmentID = uuid.New()
	dbtest.Seed(s.T(), s.DB, dbtest.Fixtures{
		Apartments: []dbtest.ApartmentFixture{
			{ID: s.apartmentID, BookingKey: "seaside", Name: "Seaside Loft", NightlyRate: decimal.NewFromInt(100)},
		},
		Bookings: []dbtest.BookingFixture{
			{ApartmentKey: "seaside", CheckIn: "2031-03-10", CheckOut: "2031-03-12"},
		},
		Coupons: []dbtest.CouponFixture{
			{Code: "SPRING15", DiscountPercent: decimal.NewFromInt(15), IsActive: true, ExpiresAt: time.Now().Add(24 * time.Hour)},
		},
	})
}

func sessionURL(id uuid.UUID, suffix string) string {
	return "/api/booking-sessions/" + id.String() + suffix
}

func (s *BookingSessionE2ETestSuite) open() resdto.BookingSessionResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/booking-sessions",
		map[string]any{"apartmentId": s.apartmentID.String()})

	var got resdto.BookingSessionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
	s.Require().NotEqual(uuid.Nil, got.ID)
	return got
}

func (s *BookingSessionE2ETestSuite) put(id uuid.UUID, suffix string, body map[string]any) resdto.BookingSessionResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, sessionURL(id, suffix), body)

	var got resdto.BookingSessionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	return got
}

// ready opens a session and fills it for 13-15 March 2031.
func (s *BookingSessionE2ETestSuite) ready() resdto.BookingSessionResponse {
	view := s.open()
	s.put(view.ID, "/check-in", map[string]any{"date": "2031-03-13"})
	s.put(view.ID, "/check-out", map[string]any{"date": "2031-03-15"})
	view = s.put(view.ID, "/guest", map[string]any{"name": "Ada Lovelace", "email": "ada@example.com"})
	s.Require().Equal("ready", view.State)
	return view
}

func (s *BookingSessionE2ETestSuite) submit(id uuid.UUID) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionURL(id, "/submit"), nil)
}

func (s *BookingSessionE2ETestSuite) get(id uuid.UUID) resdto.BookingSessionResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, sessionURL(id, ""), nil)

	var got resdto.BookingSessionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	return got
}

func (s *BookingSessionE2ETestSuite) TestHappyPathWithCoupon() {
	view := s.open()
	s.Equal("empty", view.State)
	s.Equal("loaded", view.Availability)
	s.Equal([]string{"2031-03-10", "2031-03-11", "2031-03-12"}, view.BookedDates)

	n, err := s.Redis.Exists(context.Background(), "booking:session:"+view.ID.String()).Result()
	s.Require().NoError(err)
	s.Equal(int64(1), n, "session should live in redis")

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, sessionURL(view.ID, "/check-in"),
		map[string]any{"date": "2031-03-12"})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")

	s.put(view.ID, "/check-in", map[string]any{"date": "2031-03-13"})
	view = s.put(view.ID, "/check-out", map[string]any{"date": "2031-03-15"})
	s.Equal("dates_selected", view.State)
	s.Equal("200.00", view.Price.Total)

	view = s.put(view.ID, "/guest", map[string]any{"name": " Ada Lovelace ", "email": "ada@example.com"})
	s.Equal("ready", view.State)
	s.Equal("Ada Lovelace", view.GuestName)
	s.True(view.CanSubmit)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionURL(view.ID, "/coupon"),
		map[string]any{"code": "SPRING15"})
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
	s.Require().NotNil(view.Coupon)
	s.Equal("170.00", view.Price.Total)
	s.Equal(int64(17000), view.Price.TotalMinorUnits)

	rec = s.submit(view.ID)
	var result resdto.SubmitResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &result)
	s.Equal("https://pay.example.test/c/"+view.ID.String(), result.RedirectURL)

	requests := s.Checkout.Requests()
	s.Require().Len(requests, 1)
	s.Equal(s.apartmentID.String(), requests[0]["apartmentId"])
	s.Equal(float64(17000), requests[0]["totalMinorUnits"])
	s.Equal(float64(10000), requests[0]["nightlyRateMinorUnits"])
	s.Equal("eur", requests[0]["currency"])
	s.Equal("2031-03-13", requests[0]["checkIn"])
	s.Equal("2031-03-15", requests[0]["checkOut"])
	s.Equal("SPRING15", requests[0]["couponCode"])
	s.Equal("15", requests[0]["discountPercent"])

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, sessionURL(view.ID, ""), nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
}

func (s *BookingSessionE2ETestSuite) TestRefusedCouponKeepsSessionUsable() {
	view := s.ready()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionURL(view.ID, "/coupon"),
		map[string]any{"code": "NOPE"})

	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Coupon code is invalid or expired")
	view = s.get(view.ID)
	s.Equal("ready", view.State)
	s.Nil(view.Coupon)
	s.Equal("coupon code is invalid or expired", view.LastError)
}

func (s *BookingSessionE2ETestSuite) TestCheckoutFailureThenRetry() {
	view := s.ready()
	s.Checkout.SetFailing(true)

	rec := s.submit(view.ID)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Checkout could not be started")

	failed := s.get(view.ID)
	s.Equal("failed", failed.State)
	s.Equal("2031-03-13", failed.CheckIn)
	s.True(failed.CanSubmit)

	s.Checkout.SetFailing(false)
	rec = s.submit(view.ID)

	var result resdto.SubmitResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &result)
	s.Len(s.Checkout.Requests(), 2)
}

func (s *BookingSessionE2ETestSuite) TestSubmitRechecksBookings() {
	view := s.ready()
	dbtest.Seed(s.T(), s.DB, dbtest.Fixtures{
		Bookings: []dbtest.BookingFixture{{ApartmentKey: "seaside", CheckIn: "2031-03-14", CheckOut: "2031-03-16"}},
	})

	rec := s.submit(view.ID)

	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "selected range contains a booked date")
	s.Empty(s.Checkout.Requests())
	checkIn, checkOut := view.CheckIn, view.CheckOut
	view = s.get(view.ID)
	s.Equal("failed", view.State)
	s.Equal(checkIn, view.CheckIn)
	s.Equal(checkOut, view.CheckOut)
	s.Contains(view.BookedDates, "2031-03-14")
}

// Nothing holds dates between submit and payment, so overlapping sessions both reach checkout.
func (s *BookingSessionE2ETestSuite) TestOverlappingSessionsBothReachCheckout() {
	first := s.ready()
	second := s.ready()

	var r1, r2 resdto.SubmitResponse
	httptest.AssertSuccessResponse(s.T(), s.submit(first.ID), http.StatusOK, &r1)
	httptest.AssertSuccessResponse(s.T(), s.submit(second.ID), http.StatusOK, &r2)

	s.NotEqual(r1.RedirectURL, r2.RedirectURL)
	s.Len(s.Checkout.Requests(), 2)
}

func (s *BookingSessionE2ETestSuite) TestCloseSession() {
	view := s.open()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, sessionURL(view.ID, ""), nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, sessionURL(view.ID, ""), nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
}

func (s *BookingSessionE2ETestSuite) TestOpenUnknownApartment() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/booking-sessions",
		map[string]any{"apartmentId": uuid.NewString()})

	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
}
