package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ParkingGateway/internal/api/handlers"
)

type contextKey string

const tokenKey contextKey = "authToken"

const msgMissingToken = "требуется заголовок Authorization: Bearer <token>"

// Auth извлекает Bearer токен из заголовка Authorization и кладёт его
// в контекст запроса. Токен не проверяется локально, ParkingCore
// авторитетен и для аутентификации
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		ctx := context.WithValue(r.Context(), tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromContext возвращает Bearer токен, положенный Auth middleware
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
