package availability

import (
	"errors"
	"sort"
)

// Longest span a single stored booking may cover before it is treated as malformed.
const MaxIntervalDays = 366 * 2

var ErrMalformedInterval = errors.New("malformed booked interval")

// BookedInterval blocks every day from CheckIn through CheckOut inclusive.
type BookedInterval struct {
	CheckIn  Date
	CheckOut Date
}

// RawInterval is a booking row as the reservation store returns it.
type RawInterval struct {
	CheckIn  string
	CheckOut string
}

func NewBookedInterval(checkIn, checkOut Date) (BookedInterval, error) {
	if checkIn.IsZero() || checkOut.IsZero() || checkOut.Before(checkIn) {
		return BookedInterval{}, ErrMalformedInterval
	}
	if checkIn.DaysUntil(checkOut) > MaxIntervalDays {
		return BookedInterval{}, ErrMalformedInterval
	}
	return BookedInterval{CheckIn: checkIn, CheckOut: checkOut}, nil
}

func ParseInterval(raw RawInterval) (BookedInterval, error) {
	in, err := ParseDate(raw.CheckIn)
	if err != nil {
		return BookedInterval{}, ErrMalformedInterval
	}
	out, err := ParseDate(raw.CheckOut)
	if err != nil {
		return BookedInterval{}, ErrMalformedInterval
	}
	return NewBookedInterval(in, out)
}

// ParseIntervals drops rows that cannot be parsed and reports how many were dropped.
func ParseIntervals(raws []RawInterval) ([]BookedInterval, int) {
	intervals := make([]BookedInterval, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		iv, err := ParseInterval(raw)
		if err != nil {
			skipped++
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals, skipped
}

func (iv BookedInterval) Days() []Date {
	if iv.CheckOut.Before(iv.CheckIn) {
		return nil
	}
	n := iv.CheckIn.DaysUntil(iv.CheckOut)
	days := make([]Date, 0, n+1)
	for d := iv.CheckIn; !d.After(iv.CheckOut); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// DateSet is the set of days blocked by at least one booked interval.
type DateSet struct {
	days map[Date]struct{}
}

func BuildDateSet(intervals []BookedInterval) DateSet {
	set := DateSet{days: make(map[Date]struct{})}
	for _, iv := range intervals {
		if _, err := NewBookedInterval(iv.CheckIn, iv.CheckOut); err != nil {
			continue
		}
		for _, d := range iv.Days() {
			set.days[d] = struct{}{}
		}
	}
	return set
}

func (s DateSet) IsBooked(d Date) bool {
	_, ok := s.days[d]
	return ok
}

// RangeHasConflict reports whether any day from start through end inclusive is booked.
// Callers reject start >= end before asking.
func (s DateSet) RangeHasConflict(start, end Date) bool {
	if len(s.days) == 0 || end.Before(start) {
		return false
	}
	if start.DaysUntil(end) >= len(s.days) {
		for d := range s.days {
			if !d.Before(start) && !d.After(end) {
				return true
			}
		}
		return false
	}
	for d := start; !d.After(end); d = d.AddDays(1) {
		if s.IsBooked(d) {
			return true
		}
	}
	return false
}

func (s DateSet) Len() int {
	return len(s.days)
}

// Dates returns the blocked days in ascending order.
func (s DateSet) Dates() []Date {
	out := make([]Date, 0, len(s.days))
	for d := range s.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
