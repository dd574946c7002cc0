package response

import (
	"apartment-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ApartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NightlyRate string    `json:"nightlyRate"`
	Features    []string  `json:"features"`
}

type IntervalResponse struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type AvailabilityResponse struct {
	ApartmentID uuid.UUID          `json:"apartmentId"`
	Intervals   []IntervalResponse `json:"intervals"`
	BookedDates []string           `json:"bookedDates"`
}

func FromApartmentView(v *queries.ApartmentView) *ApartmentResponse {
	var res ApartmentResponse
	_ = copier.Copy(&res, v)
	if res.Features == nil {
		res.Features = []string{}
	}
	return &res
}

func FromApartmentViews(vs []*queries.ApartmentView) []*ApartmentResponse {
	res := make([]*ApartmentResponse, len(vs))
	for i, v := range vs {
		res[i] = FromApartmentView(v)
	}
	return res
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{
		ApartmentID: v.ApartmentID,
		Intervals:   make([]IntervalResponse, len(v.Intervals)),
		BookedDates: append([]string{}, v.BookedDates...),
	}
	for i := range v.Intervals {
		_ = copier.Copy(&res.Intervals[i], &v.Intervals[i])
	}
	return res
}
