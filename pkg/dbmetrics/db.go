package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SLN-BookingService/pkg/metrics"
)

// DBExecutor интерфейс для выполнения запросов (общий для *sql.DB, *sql.Tx и обёрток)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции (*sql.Tx ему удовлетворяет напрямую)
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// poolStatsInterval период сбора статистики connection pool
const poolStatsInterval = 15 * time.Second

// DB оборачивает *sql.DB и записывает длительность каждого запроса в метрики
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap wraps a *sql.DB with query-duration instrumentation.
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault wraps the DB and starts a background collector of
// connection pool stats; the collector stops when stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh chan struct{}) *DB {
	wrapped := Wrap(db, m)

	go func() {
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.SetDBPoolStats(stats.OpenConnections, stats.Idle, stats.InUse)
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

// ExecContext executes a query and records its duration.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryLabel(query), time.Since(start))
	return res, err
}

// QueryContext executes a query and records its duration.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryLabel(query), time.Since(start))
	return rows, err
}

// QueryRowContext executes a query and records its duration.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryLabel(query), time.Since(start))
	return row
}

// BeginTx starts a transaction; the returned executor is instrumented too.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &instrumentedTx{tx: tx, metrics: d.metrics}, nil
}

// instrumentedTx транзакция с метриками запросов
type instrumentedTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *instrumentedTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryLabel(query), time.Since(start))
	return res, err
}

func (t *instrumentedTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryLabel(query), time.Since(start))
	return rows, err
}

func (t *instrumentedTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryLabel(query), time.Since(start))
	return row
}

func (t *instrumentedTx) Commit() error {
	return t.tx.Commit()
}

func (t *instrumentedTx) Rollback() error {
	return t.tx.Rollback()
}

// queryLabel возвращает короткую метку запроса для метрик (глагол SQL),
// чтобы не раздувать кардинальность лейблов
func queryLabel(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToUpper(fields[0])
}
