package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/platform/logger"
)

// Recover reemplaza a chi/middleware.Recoverer: el panic va al log de errores
// del request y el cliente recibe el mismo {"detail"} que cualquier 500.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered", map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"panic":  fmt.Sprint(rec),
				"stack":  string(debug.Stack()),
			})
			httpx.WriteDetail(w, http.StatusInternalServerError, "internal error")
		}()

		next.ServeHTTP(w, r)
	})
}
