package availability

// DayStatus is what the calendar can say about a single day.
type DayStatus string

const (
	DayUnknown   DayStatus = "unknown"
	DayAvailable DayStatus = "available"
	DayBooked    DayStatus = "booked"
)

// LoadState tracks whether a session's DateSet can be trusted.
type LoadState string

const (
	LoadUnknown LoadState = "unknown"
	LoadPending LoadState = "loading"
	LoadDone    LoadState = "loaded"
	LoadFailed  LoadState = "failed"
)

func (s LoadState) String() string {
	return string(s)
}

func (s LoadState) IsKnown() bool {
	return s == LoadDone
}

func (s LoadState) IsValid() bool {
	switch s {
	case LoadUnknown, LoadPending, LoadDone, LoadFailed:
		return true
	default:
		return false
	}
}

// StatusOf answers for a day given the set and whether it has been loaded.
func StatusOf(set DateSet, state LoadState, d Date) DayStatus {
	if !state.IsKnown() {
		return DayUnknown
	}
	if set.IsBooked(d) {
		return DayBooked
	}
	return DayAvailable
}
