package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

type userIDKey struct{}

// Auth проверяет наличие заголовка X-User-ID и кладет его значение в контекст.
// Аутентификацию выполняет API gateway, сервис доверяет заголовку.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(userIDHeader)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
