package simpletxmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Фейковый драйвер database/sql: фиксация транзакции возвращает заданную ошибку.
// Нужен, потому что TransactionManager работает поверх голого *sql.DB.

type fakeDriver struct {
	conn *fakeConn
}

func (d *fakeDriver) Open(name string) (driver.Conn, error) { return d.conn, nil }

type fakeConn struct {
	begins    int
	commitErr error
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepare is not supported")
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *fakeConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	c.begins++
	return &fakeTx{commitErr: c.commitErr}, nil
}

type fakeTx struct {
	commitErr error
}

func (t *fakeTx) Commit() error   { return t.commitErr }
func (t *fakeTx) Rollback() error { return nil }

func openFakeDB(t *testing.T, driverName string, conn *fakeConn) *sql.DB {
	t.Helper()

	sql.Register(driverName, &fakeDriver{conn: conn})

	db, err := sql.Open(driverName, "")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestDoSerializable_RetriesSerializationFailureOnCommit(t *testing.T) {
	conn := &fakeConn{commitErr: &pq.Error{Code: "40001"}}
	db := openFakeDB(t, "fake-commit-40001", conn)
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransaction)
	// Ошибка драйвера должна остаться в цепочке
	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, serializationFailureCode, string(pqErr.Code))
	assert.Equal(t, maxSerializableRetries, conn.begins)
}

func TestDoSerializable_NoRetryOnOtherCommitErrors(t *testing.T) {
	conn := &fakeConn{commitErr: &pq.Error{Code: "53100", Message: "disk full"}}
	db := openFakeDB(t, "fake-commit-53100", conn)
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransaction)
	assert.Equal(t, 1, conn.begins)
}

func TestDoSerializable_NoRetryOnBusinessErrors(t *testing.T) {
	conn := &fakeConn{}
	db := openFakeDB(t, "fake-business-error", conn)
	m := NewTransactionManager(db)

	bizErr := errors.New("slot is already taken")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return bizErr })

	assert.ErrorIs(t, err, bizErr)
	assert.Equal(t, 1, conn.begins)
}

func TestDo_CommitsOnSuccess(t *testing.T) {
	conn := &fakeConn{}
	db := openFakeDB(t, "fake-commit-ok", conn)
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, 1, conn.begins)
}
