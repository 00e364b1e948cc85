package middleware

import (
	"net/http"
	"time"

	"vet-clinic/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog escribe una línea por request en el access log.
func AccessLog(l logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				fields := map[string]any{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status":      status,
					"bytes":       ww.BytesWritten(),
					"duration_ms": time.Since(start).Milliseconds(),
					"remote":      r.RemoteAddr,
				}
				if id := chimw.GetReqID(r.Context()); id != "" {
					fields["request_id"] = id
				}
				l.Info("request", fields)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
