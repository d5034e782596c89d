package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SLN-BookingService/pkg/dbmetrics"
)

// Вариант transaction manager поверх голого *sql.DB - используется,
// когда метрики выключены и dbmetrics-обёртка не создаётся.
// *sql.Tx напрямую удовлетворяет dbmetrics.TxExecutor, поэтому репозитории
// работают одинаково в обоих вариантах.

const serializationFailureCode = "40001"

const maxSerializableRetries = 3

// ErrTransaction возвращается при ошибках начала/фиксации транзакции
var ErrTransaction = errors.New("simpletxmanager: transaction error")

// TransactionManager выполняет функции внутри транзакций над *sql.DB
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a transaction manager over a plain *sql.DB.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction,
// retrying serialization failures (SQLSTATE 40001).
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		// Ошибку драйвера оборачиваем через %w: DoSerializable распознаёт
		// SQLSTATE 40001 по цепочке errors.As
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode
	}
	return false
}
