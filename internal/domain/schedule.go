package domain

import (
	"time"

	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// ScheduleConfig represents the salon-wide booking configuration:
// daily business hours and slot generation parameters.
// Stored as a single row; defaults apply when the row is absent.
type ScheduleConfig struct {
	ID        int64
	OpenTime  types.TimeString
	CloseTime types.TimeString

	// SlotGranularityMinutes - шаг генерации кандидатов времени начала
	SlotGranularityMinutes int

	// MinBookingNoticeMinutes - минимальный интервал от "сейчас" до начала слота
	MinBookingNoticeMinutes int

	// AdvanceBookingDays - горизонт бронирования в днях, 0 = без ограничения
	AdvanceBookingDays int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made.
func (c *ScheduleConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// DefaultScheduleConfig returns the configuration used when none is stored.
func DefaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{
		OpenTime:                DefaultOpenTime,
		CloseTime:               DefaultCloseTime,
		SlotGranularityMinutes:  DefaultSlotGranularityMinutes,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
	}
}
