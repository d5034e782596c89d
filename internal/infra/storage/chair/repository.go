package chair

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

var chairColumns = []string{
	"id",
	"name",
	"active",
	"supported_service_ids",
	"staff_ids",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога кресел (станций обслуживания)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория кресел
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает кресло по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Chair, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(chairColumns...).
		From("chairs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	chair, err := scanChair(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrChairNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan chair: %w", ErrScanRow, err)
	}

	return chair, nil
}

// List получает список кресел, опционально только активные
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Chair, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(chairColumns...).
		From("chairs").
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

	chairs := make([]*domain.Chair, 0)
	for rows.Next() {
		chair, err := scanChair(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		chairs = append(chairs, chair)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return chairs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanChair(row rowScanner) (*domain.Chair, error) {
	var chair domain.Chair
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&chair.ID,
		&chair.Name,
		&chair.Active,
		pq.Array(&chair.SupportedServiceIDs),
		pq.Array(&chair.StaffIDs),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	chair.CreatedAt = createdAt.Time
	chair.UpdatedAt = updatedAt.Time

	return &chair, nil
}
