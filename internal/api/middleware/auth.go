package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CourtBooking/pkg/authtoken"
)

const bearerPrefix = "Bearer "

// Identify определяет пользователя по bearer токену и кладёт его ID в контекст
// Запрос без токена или с невалидным токеном проходит дальше анонимным: решение об отказе принимает usecase
func Identify(secret string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := authtoken.Parse(secret, strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				log.Warn("%s %s - rejected bearer token: %v", r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(authtoken.WithUserID(r.Context(), userID)))
		})
	}
}

// GetUserID возвращает ID текущего пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	return authtoken.UserIDFromContext(ctx)
}
