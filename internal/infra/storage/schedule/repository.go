package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SLN-BookingService/pkg/psqlbuilder"
)

// Конфигурация расписания салона хранится одной строкой (id = 1).
// Рабочие часы - настройка, а не производные данные: слот-генератор
// всегда читает их отсюда.
const configRowID = 1

var configColumns = []string{
	"id",
	"open_time",
	"close_time",
	"slot_granularity_minutes",
	"min_booking_notice_minutes",
	"advance_booking_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает конфигурацию расписания
func (r *Repository) Get(ctx context.Context) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("schedule_config").
		Where("id = ?", configRowID).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.ScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.OpenTime,
		&cfg.CloseTime,
		&cfg.SlotGranularityMinutes,
		&cfg.MinBookingNoticeMinutes,
		&cfg.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %w", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Upsert сохраняет конфигурацию расписания (вставка или обновление единственной строки)
func (r *Repository) Upsert(ctx context.Context, cfg *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_config").
		Columns(
			"id",
			"open_time",
			"close_time",
			"slot_granularity_minutes",
			"min_booking_notice_minutes",
			"advance_booking_days",
		).
		Values(
			configRowID,
			cfg.OpenTime,
			cfg.CloseTime,
			cfg.SlotGranularityMinutes,
			cfg.MinBookingNoticeMinutes,
			cfg.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			slot_granularity_minutes = EXCLUDED.slot_granularity_minutes,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %w", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}
