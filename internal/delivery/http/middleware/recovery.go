package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/frontandrew/ferry/internal/pkg/logger"
)

// RecoveryMiddleware восстанавливается после panic и возвращает 500 ошибку.
// Перегрузка парома внутри симуляции - panic, и она не должна ронять сервер.
func RecoveryMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					log.Error("Panic recovered", map[string]interface{}{
						"error":  fmt.Sprint(err),
						"stack":  string(debug.Stack()),
						"method": r.Method,
						"path":   r.URL.Path,
					})

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"success":false,"error":"Internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
