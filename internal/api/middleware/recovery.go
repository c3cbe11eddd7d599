package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
)

// Recovery превращает панику обработчика в ответ {"success": false}
func Recovery(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					log.Error("%s %s - panic: %v\n%s", r.Method, r.URL.Path, p, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
