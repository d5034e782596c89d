package domain

import "github.com/m04kA/SLN-BookingService/pkg/types"

// IntervalsOverlap reports whether the half-open intervals [s1, e1) and
// [s2, e2) share any instant: s1 < e2 && s2 < e1, with strict inequalities.
// A booking ending at 10:00 does not conflict with one starting at 10:00 -
// back-to-back bookings are always legal.
func IntervalsOverlap(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && s2.IsBefore(e1)
}

// OverlapsActiveBooking reports whether the interval [start, end) overlaps
// any active (non-cancelled) booking in the list. The list is expected to be
// pre-filtered by chair and date; cancelled bookings are skipped here as a
// second line of defence.
func OverlapsActiveBooking(bookings []*Booking, start, end types.TimeString) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingEnd, err := booking.EndTime()
		if err != nil {
			// Некорректный интервал в хранилище - пропускаем
			continue
		}

		if IntervalsOverlap(booking.StartTime, bookingEnd, start, end) {
			return true
		}
	}
	return false
}
