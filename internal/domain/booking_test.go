package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/pkg/types"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "pending to completed skips confirmation", from: StatusPending, to: StatusCompleted, want: false},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "completed to cancelled", from: StatusCompleted, to: StatusCancelled, want: true},
		{name: "completed back to pending", from: StatusCompleted, to: StatusPending, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, want: false},
		{name: "cancelled to confirmed", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "cancelled to cancelled", from: StatusCancelled, to: StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("pending"))
	assert.True(t, IsValidStatus("confirmed"))
	assert.True(t, IsValidStatus("completed"))
	assert.True(t, IsValidStatus("cancelled"))
	assert.False(t, IsValidStatus("canceled"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("done"))
}

func TestBooking_EndTime(t *testing.T) {
	b := &Booking{StartTime: "10:00", DurationMinutes: 75}

	end, err := b.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:15"), end)

	// Интервал через полночь не поддерживается
	b = &Booking{StartTime: "23:30", DurationMinutes: 60}
	_, err = b.EndTime()
	assert.Error(t, err)
}

func TestBooking_IsActive(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s must occupy its interval", status)
	}

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.True(t, cancelled.IsCancelled())
	assert.False(t, cancelled.CanBeCancelled())
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 types.TimeString
		want           bool
	}{
		{name: "identical intervals", s1: "10:00", e1: "11:00", s2: "10:00", e2: "11:00", want: true},
		{name: "partial overlap", s1: "10:00", e1: "10:45", s2: "10:30", e2: "11:15", want: true},
		{name: "containment", s1: "10:00", e1: "12:00", s2: "10:30", e2: "11:00", want: true},
		{name: "back to back is legal", s1: "10:00", e1: "10:45", s2: "10:45", e2: "11:30", want: false},
		{name: "back to back reversed", s1: "10:45", e1: "11:30", s2: "10:00", e2: "10:45", want: false},
		{name: "disjoint", s1: "09:00", e1: "09:30", s2: "11:00", e2: "11:30", want: false},
		{name: "one minute overlap", s1: "10:00", e1: "10:31", s2: "10:30", e2: "11:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalsOverlap(tt.s1, tt.e1, tt.s2, tt.e2))
		})
	}
}

func TestOverlapsActiveBooking(t *testing.T) {
	bookings := []*Booking{
		{StartTime: "10:00", DurationMinutes: 45, Status: StatusConfirmed},
		{StartTime: "12:00", DurationMinutes: 60, Status: StatusCancelled},
	}

	// Пересечение с активным бронированием
	assert.True(t, OverlapsActiveBooking(bookings, "10:30", "11:15"))

	// Отменённое бронирование освобождает интервал
	assert.False(t, OverlapsActiveBooking(bookings, "12:00", "13:00"))

	// Встык к активному бронированию - свободно
	assert.False(t, OverlapsActiveBooking(bookings, "10:45", "11:30"))

	assert.False(t, OverlapsActiveBooking(nil, "10:00", "11:00"))
}
