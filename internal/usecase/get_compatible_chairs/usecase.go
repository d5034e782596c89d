package get_compatible_chairs

import (
	"context"
	"fmt"

	"github.com/m04kA/SLN-BookingService/internal/domain"
)

// UseCase use case подбора кресел, способных выполнить ВСЕ запрошенные услуги.
// Используется и пикером станций на клиенте, и валидацией при создании записи.
type UseCase struct {
	chairRepo ChairRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(chairRepo ChairRepository, logger Logger) *UseCase {
	return &UseCase{
		chairRepo: chairRepo,
		logger:    logger,
	}
}

// Execute возвращает активные кресла, чей набор поддерживаемых услуг
// покрывает каждую запрошенную услугу. Пустой список услуг означает
// отсутствие ограничения - подходят все активные кресла.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			uc.logger.Warn("GetCompatibleChairs: invalid serviceID=%d", id)
			return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	chairs, err := uc.chairRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("GetCompatibleChairs: failed to list chairs: %v", err)
		return nil, fmt.Errorf("%w: failed to list chairs: %v", ErrInternal, err)
	}

	compatible := make([]*domain.Chair, 0, len(chairs))
	for _, chair := range chairs {
		if chair.Supports(req.ServiceIDs) {
			compatible = append(compatible, chair)
		}
	}

	uc.logger.Info("GetCompatibleChairs: %d of %d active chairs support services %v",
		len(compatible), len(chairs), req.ServiceIDs)

	return &Response{Chairs: compatible}, nil
}
