package models

import (
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// UpdateScheduleRequest запрос на обновление конфигурации расписания
type UpdateScheduleRequest struct {
	OpenTime                string `json:"openTime"`  // HH:MM
	CloseTime               string `json:"closeTime"` // HH:MM
	SlotGranularityMinutes  int    `json:"slotGranularityMinutes"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"` // 0 = без ограничения
}

// ScheduleResponse конфигурация расписания для ответа
type ScheduleResponse struct {
	OpenTime                string `json:"openTime"`
	CloseTime               string `json:"closeTime"`
	SlotGranularityMinutes  int    `json:"slotGranularityMinutes"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	UpdatedAt               string `json:"updatedAt,omitempty"`
}

// ToDomainConfig конвертирует запрос в domain-конфигурацию
func (r *UpdateScheduleRequest) ToDomainConfig() (*domain.ScheduleConfig, error) {
	openTime, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, err
	}
	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, err
	}

	return &domain.ScheduleConfig{
		OpenTime:                openTime,
		CloseTime:               closeTime,
		SlotGranularityMinutes:  r.SlotGranularityMinutes,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
	}, nil
}

// FromDomainConfig конвертирует domain-конфигурацию в response-модель
func FromDomainConfig(cfg *domain.ScheduleConfig) *ScheduleResponse {
	resp := &ScheduleResponse{
		OpenTime:                cfg.OpenTime.String(),
		CloseTime:               cfg.CloseTime.String(),
		SlotGranularityMinutes:  cfg.SlotGranularityMinutes,
		MinBookingNoticeMinutes: cfg.MinBookingNoticeMinutes,
		AdvanceBookingDays:      cfg.AdvanceBookingDays,
	}
	if !cfg.UpdatedAt.IsZero() {
		resp.UpdatedAt = cfg.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
