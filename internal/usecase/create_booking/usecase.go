package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/booking"
	chairRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/chair"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/service"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// notifyTimeout таймаут фоновой отправки подтверждения
const notifyTimeout = 10 * time.Second

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	chairRepo    ChairRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics // может быть nil, если метрики выключены
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil - тогда бизнес-метрики не записываются.
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	chairRepo ChairRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		chairRepo:    chairRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Повторная проверка пересечений и вставка выполняются в сериализуемой
// транзакции с блокировкой строк дня (FOR UPDATE) - два конкурентных запроса
// на один слот не могут закоммититься оба, даже если оба прошли проверку
// доступности на чтении.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, chair=%d, services=%v, date=%s, time=%s",
		req.ClientPhone, req.ChairID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услуги и считаем снапшот длительности и стоимости
	services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: unknown service in %v: %v", req.ServiceIDs, err)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	totalDuration := 0
	totalPrice := 0.0
	serviceNames := make([]string, 0, len(services))
	for _, svc := range services {
		if !svc.Active {
			uc.logger.Warn("CreateBooking: service id=%d is inactive", svc.ID)
			return nil, ErrServiceNotFound
		}
		totalDuration += svc.DurationMinutes
		totalPrice += svc.Price
		serviceNames = append(serviceNames, svc.Name)
	}

	// Конец интервала выводится из начала и суммарной длительности
	endTime, err := req.StartTime.AddMinutes(totalDuration)
	if err != nil {
		uc.logger.Warn("CreateBooking: interval crosses midnight: %v", err)
		return nil, fmt.Errorf("%w: booking does not fit in the day", ErrOutsideBusinessHours)
	}

	// 4. Получаем кресло и проверяем совместимость
	chair, err := uc.chairRepo.GetByID(ctx, req.ChairID)
	if err != nil {
		if errors.Is(err, chairRepo.ErrChairNotFound) {
			uc.logger.Warn("CreateBooking: chair id=%d not found", req.ChairID)
			return nil, ErrChairNotFound
		}
		uc.logger.Error("CreateBooking: failed to get chair id=%d: %v", req.ChairID, err)
		return nil, fmt.Errorf("%w: failed to get chair: %v", ErrInternal, err)
	}

	if !chair.Active {
		uc.logger.Warn("CreateBooking: chair id=%d is inactive", req.ChairID)
		return nil, ErrChairInactive
	}

	// Кресло должно поддерживать КАЖДУЮ запрошенную услугу
	if !chair.Supports(req.ServiceIDs) {
		uc.logger.Warn("CreateBooking: chair id=%d does not support services %v", req.ChairID, req.ServiceIDs)
		return nil, ErrCapabilityMismatch
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем конфигурацию расписания
		cfg, err := uc.scheduleRepo.Get(txCtx)
		if err != nil && !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateBooking: failed to get schedule config: %v", err)
			return fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
		}

		// Если конфигурация не найдена, используем дефолтные значения
		if cfg == nil {
			cfg = domain.DefaultScheduleConfig()
			uc.logger.Info("CreateBooking: using default schedule config")
		}

		// 5.2. Валидация даты с учетом конфигурации
		if err := validateDate(req.Date, now, cfg.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 5.3. Интервал должен целиком помещаться в рабочие часы
		if err := validateBusinessHours(req.StartTime, endTime, cfg); err != nil {
			uc.logger.Warn("CreateBooking: business hours validation failed: %v", err)
			return err
		}

		// 5.4. Валидация времени бронирования (minBookingNoticeMinutes)
		if err := validateBookingTime(req.Date, req.StartTime, now, cfg.MinBookingNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return err
		}

		// 5.5. Получаем активные бронирования кресла на дату с блокировкой (FOR UPDATE)
		filter := domain.ChairBookingsFilter{
			ChairID:         req.ChairID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные бронирования
		}

		bookings, err := uc.bookingRepo.GetByChairWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.6. Обязательная повторная проверка пересечений в момент коммита.
		// Слот мог быть занят между показом доступных слотов и этим запросом.
		if domain.OverlapsActiveBooking(bookings, req.StartTime, endTime) {
			uc.logger.Info("CreateBooking: slot %s-%s on chair=%d already taken",
				req.StartTime, endTime, req.ChairID)
			return ErrSlotTaken
		}

		// 5.7. Создаем бронирование со снапшотом данных услуг
		booking := &domain.Booking{
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ChairID:         req.ChairID,
			ServiceIDs:      req.ServiceIDs,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: totalDuration,
			Status:          domain.StatusConfirmed,
			// Денормализация данных услуг
			ServiceNames: serviceNames,
			TotalPrice:   totalPrice,
			// Заметки
			Notes: req.Notes,
		}

		// 5.8. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// Сработала страховка на уровне хранилища
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (chair=%d, %s %s-%s)",
		result.ID, result.ChairID, result.BookingDate.Format(domain.DateFormat), result.StartTime, endTime)

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated()
	}

	// 6. Отправляем подтверждение клиенту.
	// Fire-and-forget: ошибка отправки логируется и не влияет на результат,
	// ответ клиенту не ждёт шлюз.
	uc.notifyClient(result, endTime)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		ChairID:         result.ChairID,
		ServiceIDs:      result.ServiceIDs,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceNames:    result.ServiceNames,
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// notifyClient отправляет подтверждение в фоне, не блокируя ответ
func (uc *UseCase) notifyClient(booking *domain.Booking, endTime types.TimeString) {
	message := buildConfirmationMessage(booking, endTime)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.Send(ctx, booking.ClientPhone, message); err != nil {
			// Бронирование уже создано - только логируем
			uc.logger.Warn("CreateBooking: failed to notify client phone=%s booking_id=%d: %v",
				booking.ClientPhone, booking.ID, err)
		}
	}()
}

// buildConfirmationMessage собирает текст подтверждения для клиента
func buildConfirmationMessage(booking *domain.Booking, endTime types.TimeString) string {
	return fmt.Sprintf("Здравствуйте, %s! Ваша запись подтверждена: %s с %s до %s. Услуги: %s. Итого: %.2f.",
		booking.ClientName,
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime,
		endTime,
		strings.Join(booking.ServiceNames, ", "),
		booking.TotalPrice,
	)
}
