// Package httpx agrupa los helpers de request/response que usan los handlers
// de cada dominio (JSON, envelope {"detail": ...}, decode + validación, ids).
package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"vet-clinic/internal/platform/apperr"
	"vet-clinic/internal/platform/logger"
)

// DetailResponse es el envelope de todos los errores (y de los DELETE).
type DetailResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON codifica antes de escribir el header: si el encode falla el
// cliente recibe un 500 y no un 200 vacío.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(DetailResponse{Detail: "internal error"})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func WriteDetail(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, DetailResponse{Detail: detail})
}

// WriteError mapea el tipo de error a status. notFound es el detail para
// ErrNotFound (p.ej. "Breed not found"). Errores desconocidos => log + 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		WriteDetail(w, http.StatusNotFound, notFound)
	case errors.Is(err, apperr.ErrInvalidInput), errors.Is(err, apperr.ErrConflict):
		WriteDetail(w, http.StatusBadRequest, apperr.Detail(err))
	case errors.Is(err, apperr.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", "Bearer")
		WriteDetail(w, http.StatusUnauthorized, apperr.Detail(err))
	case errors.Is(err, apperr.ErrForbidden):
		WriteDetail(w, http.StatusForbidden, apperr.Detail(err))
	default:
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		})
		WriteDetail(w, http.StatusInternalServerError, "internal error")
	}
}

// Deleted es la respuesta de todos los DELETE.
func Deleted(w http.ResponseWriter, entity string) {
	WriteDetail(w, http.StatusOK, entity+" deleted")
}
