package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SLN-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	metrics     Metrics // может быть nil, если метрики выключены
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// metrics может быть nil - тогда бизнес-метрики не записываются.
func NewService(bookingRepo BookingRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента по телефону
// Опционально фильтрует по статусу
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for phone=%s, status=%v", req.ClientPhone, req.Status)

	if req.ClientPhone == "" {
		return nil, fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientPhone(ctx, req.ClientPhone, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for phone=%s: %v", req.ClientPhone, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: fetched %d bookings for phone=%s", len(bookings), req.ClientPhone)
	return models.FromDomainBookingList(bookings), nil
}

// GetChairBookings получает бронирования кресла с гибкой фильтрацией
// (лист дня для администратора, выгрузки за период)
func (s *Service) GetChairBookings(ctx context.Context, req *models.GetChairBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetChairBookings: fetching bookings for chair=%d", req.ChairID)

	if req.ChairID <= 0 {
		return nil, fmt.Errorf("%w: chairId must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetChairBookings: invalid filter for chair=%d: %v", req.ChairID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByChairWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetChairBookings: repository error for chair=%d: %v", req.ChairID, err)
		return nil, fmt.Errorf("%w: GetChairBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetChairBookings: fetched %d bookings for chair=%d", len(bookings), req.ChairID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Отмена разрешена из любого неотменённого статуса и освобождает интервал
// кресла для новых записей.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.IncBookingCancelled()
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования.
// Переход проверяется по явной таблице допустимых переходов - например,
// completed -> pending отклоняется с ErrIllegalTransition.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, newStatus)
	}

	// Отмена через смену статуса идёт тем же путём, что и Cancel,
	// чтобы проставить cancelled_at
	if newStatus == domain.StatusCancelled {
		if err := s.bookingRepo.Cancel(ctx, bookingID, ""); err != nil {
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
		if s.metrics != nil {
			s.metrics.IncBookingCancelled()
		}
	} else {
		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}
