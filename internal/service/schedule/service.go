package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SLN-BookingService/internal/service/schedule/models"
)

// Service сервис управления конфигурацией расписания салона
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Get возвращает текущую конфигурацию расписания.
// Если конфигурация еще не сохранялась, возвращает значения по умолчанию.
func (s *Service) Get(ctx context.Context) (*models.ScheduleResponse, error) {
	cfg, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			s.logger.Info("GetSchedule: no stored config, using defaults")
			return models.FromDomainConfig(domain.DefaultScheduleConfig()), nil
		}
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Update валидирует и сохраняет конфигурацию расписания
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: updating config, open=%s close=%s granularity=%d",
		req.OpenTime, req.CloseTime, req.SlotGranularityMinutes)

	cfg, err := req.ToDomainConfig()
	if err != nil {
		s.logger.Warn("UpdateSchedule: invalid time format: %v", err)
		return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	if err := validateConfig(cfg); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("UpdateSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: config saved, open=%s close=%s", saved.OpenTime, saved.CloseTime)
	return models.FromDomainConfig(saved), nil
}

func validateConfig(cfg *domain.ScheduleConfig) error {
	if !cfg.OpenTime.IsBefore(cfg.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	if cfg.SlotGranularityMinutes < domain.MinSlotGranularityMinutes ||
		cfg.SlotGranularityMinutes > domain.MaxSlotGranularityMinutes {
		return fmt.Errorf("%w: slotGranularityMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
	}

	if cfg.MinBookingNoticeMinutes < domain.MinNoticeMinutes ||
		cfg.MinBookingNoticeMinutes > domain.MaxNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinNoticeMinutes, domain.MaxNoticeMinutes)
	}

	if cfg.AdvanceBookingDays < domain.MinAdvanceBookingDays ||
		cfg.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	return nil
}
