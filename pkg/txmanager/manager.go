package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SLN-BookingService/pkg/dbmetrics"
)

// serializationFailureCode SQLSTATE сериализационного конфликта в PostgreSQL
const serializationFailureCode = "40001"

// maxSerializableRetries количество повторов сериализуемой транзакции при конфликте
const maxSerializableRetries = 3

// ErrTransaction возвращается при ошибках начала/фиксации транзакции
var ErrTransaction = errors.New("txmanager: transaction error")

// TxBeginner интерфейс источника транзакций (реализуется *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакций,
// пробрасывая транзакцию через контекст (dbmetrics.WithTx)
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager creates a transaction manager over an instrumented DB.
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction.
// Serialization failures (SQLSTATE 40001) are retried a bounded number of
// times: under SERIALIZABLE two concurrent bookings for the same slot cannot
// both commit, one of them aborts and is re-run against the new state.
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

// isSerializationFailure распознаёт сериализационный конфликт PostgreSQL
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode
	}
	return false
}
