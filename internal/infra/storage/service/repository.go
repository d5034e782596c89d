package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SLN-BookingService/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"price",
	"duration_minutes",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %w", ErrScanRow, err)
	}

	return svc, nil
}

// GetByIDs получает несколько услуг одним запросом.
// Порядок результата повторяет порядок запрошенных ID; если хотя бы одна
// услуга не найдена, возвращается ErrServiceNotFound - бронирование с
// неизвестной услугой не имеет смысла.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Expr("id = ANY(?)", pq.Array(ids))).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	byID := make(map[int64]*domain.Service, len(ids))
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %w", ErrScanRow, err)
		}
		byID[svc.ID] = svc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %w", ErrScanRow, err)
	}

	services := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		services = append(services, svc)
	}

	return services, nil
}

// List получает список услуг, опционально только активные
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("id ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return services, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
