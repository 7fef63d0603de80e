package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/akozyrev/barbershop-booking-service/internal/api/handlers"
)

// HeaderUserID заголовок с ID аутентифицированного пользователя
// Проставляется API-гейтвеем, сам сервис токены не проверяет
const HeaderUserID = "X-User-ID"

type userIDContextKey struct{}

// Auth middleware, требующий валидный заголовок X-User-ID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
