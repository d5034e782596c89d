package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

func testConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		OpenTime:               "09:00",
		CloseTime:              "17:00",
		SlotGranularityMinutes: 15,
	}
}

func TestGenerateCandidateSlots_LastSlotFitsBeforeClose(t *testing.T) {
	cfg := testConfig()
	tomorrow := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	// 75 минут: последний валидный слот 15:45 (конец 17:00 ровно в закрытие)
	slots, err := generateCandidateSlots(cfg, 75, tomorrow, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("15:45"), slots[len(slots)-1])
	assert.NotContains(t, slots, types.TimeString("16:00"))
	assert.NotContains(t, slots, types.TimeString("16:30"))

	// 09:00..15:45 с шагом 15 минут
	assert.Len(t, slots, 28)
}

func TestGenerateCandidateSlots_PastDateReturnsEmpty(t *testing.T) {
	cfg := testConfig()
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	slots, err := generateCandidateSlots(cfg, 30, yesterday, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateCandidateSlots_TodayDropsPassedSlots(t *testing.T) {
	cfg := testConfig()
	cfg.MinBookingNoticeMinutes = 30
	now := time.Date(2026, 9, 15, 12, 10, 0, 0, time.UTC)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	slots, err := generateCandidateSlots(cfg, 30, today, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// now + 30 минут = 12:40, первый слот сетки не раньше 12:45
	assert.Equal(t, types.TimeString("12:45"), slots[0])
	assert.NotContains(t, slots, types.TimeString("12:30"))
}

func TestGenerateCandidateSlots_DurationLongerThanDay(t *testing.T) {
	cfg := testConfig()
	tomorrow := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	// Услуга длиннее рабочего дня - ни один слот не помещается
	slots, err := generateCandidateSlots(cfg, 9*60, tomorrow, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFilterFreeSlots_StrictOverlap(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 45, Status: domain.StatusConfirmed},
	}
	candidates := []types.TimeString{"09:15", "09:30", "10:00", "10:30", "10:45"}

	free := filterFreeSlots(candidates, 45, bookings)

	// 09:15 заканчивается в 10:00 - встык, свободно
	assert.Contains(t, free, types.TimeString("09:15"))
	// 09:30 заканчивается в 10:15 - пересекается
	assert.NotContains(t, free, types.TimeString("09:30"))
	// 10:00 и 10:30 попадают в занятый интервал
	assert.NotContains(t, free, types.TimeString("10:00"))
	assert.NotContains(t, free, types.TimeString("10:30"))
	// 10:45 начинается ровно в момент окончания - свободно
	assert.Contains(t, free, types.TimeString("10:45"))
}

func TestFilterFreeSlots_CancelledBookingFreesInterval(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelled},
	}
	candidates := []types.TimeString{"10:00", "10:30"}

	free := filterFreeSlots(candidates, 30, bookings)
	assert.Equal(t, candidates, free)
}
