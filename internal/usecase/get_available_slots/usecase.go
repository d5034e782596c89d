package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	chairRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/chair"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	chairRepo    ChairRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	chairRepo ChairRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		chairRepo:    chairRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Пустой список слотов - нормальный результат, а не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: chair=%d, date=%s, duration=%d",
		req.ChairID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// Некорректная длительность - защитный пустой ответ, не ошибка
	if req.DurationMinutes <= 0 {
		uc.logger.Warn("GetAvailableSlots: non-positive duration=%d, returning no slots", req.DurationMinutes)
		return emptyResponse(req), nil
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем кресло
	chair, err := uc.chairRepo.GetByID(ctx, req.ChairID)
	if err != nil {
		if errors.Is(err, chairRepo.ErrChairNotFound) {
			uc.logger.Warn("GetAvailableSlots: chair id=%d not found", req.ChairID)
			return nil, ErrChairNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get chair id=%d: %v", req.ChairID, err)
		return nil, fmt.Errorf("%w: failed to get chair: %v", ErrInternal, err)
	}

	// Неактивное кресло не принимает записи - пустой ответ, не ошибка
	if !chair.Active {
		uc.logger.Info("GetAvailableSlots: chair id=%d is inactive, returning no slots", req.ChairID)
		return emptyResponse(req), nil
	}

	// 4. Получаем конфигурацию расписания
	cfg, err := uc.scheduleRepo.Get(ctx)
	if err != nil && !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if cfg == nil {
		cfg = domain.DefaultScheduleConfig()
		uc.logger.Info("GetAvailableSlots: using default schedule config")
	}

	// 5. Проверяем горизонт бронирования
	if err := validateAdvanceLimit(req.Date, now, cfg.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Генерируем кандидаты времени начала
	candidates, err := generateCandidateSlots(cfg, req.DurationMinutes, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate candidate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate candidate slots: %v", ErrInternal, err)
	}

	// 7. Получаем активные бронирования кресла на эту дату
	filter := domain.ChairBookingsFilter{
		ChairID:         req.ChairID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetByChairWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Отбрасываем кандидаты, пересекающиеся с занятыми интервалами
	slots := filterFreeSlots(candidates, req.DurationMinutes, bookings)

	uc.logger.Info("GetAvailableSlots: %d of %d candidate slots free for chair=%d, date=%s",
		len(slots), len(candidates), req.ChairID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ChairID:         req.ChairID,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}

func emptyResponse(req *Request) *Response {
	return &Response{
		Date:            req.Date,
		ChairID:         req.ChairID,
		DurationMinutes: req.DurationMinutes,
		Slots:           []types.TimeString{},
	}
}
