package domain

import "github.com/m04kA/SLN-BookingService/pkg/types"

// Default schedule configuration values
const (
	DefaultOpenTime                = types.TimeString("09:00")
	DefaultCloseTime               = types.TimeString("21:00")
	DefaultSlotGranularityMinutes  = 15
	DefaultMinBookingNoticeMinutes = 0
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
)

// Business validation constants
const (
	MinSlotGranularityMinutes   = 5
	MaxSlotGranularityMinutes   = 240
	MinNoticeMinutes            = 0
	MaxNoticeMinutes            = 10080 // 1 week
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxClientNameLength         = 200
	MaxClientPhoneLength        = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
