package domain

import "time"

// Service represents a bookable salon offering with a fixed price and
// duration. Bookings snapshot both values at creation time, so editing a
// service never retroactively changes existing bookings.
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int // длительность в минутах, строго > 0
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
