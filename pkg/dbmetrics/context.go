package dbmetrics

import "context"

type ctxKey struct{}

// WithTx кладёт активную транзакцию в контекст.
// Репозитории достают её через GetExecutor и выполняют запросы внутри транзакции.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// GetExecutor returns the transaction stored in the context, or the fallback
// executor when no transaction is active.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(ctxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether the context carries an active transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(TxExecutor)
	return ok
}
