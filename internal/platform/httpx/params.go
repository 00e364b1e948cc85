package httpx

import (
	"net/http"
	"strconv"
	"time"

	"vet-clinic/internal/platform/apperr"

	"github.com/go-chi/chi/v5"
)

// IDParam lee un path param entero positivo.
func IDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Invalid("%s must be a positive integer", name)
	}
	return id, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp acepta fechas ISO-8601 (RFC 3339, o sin zona => se asume UTC)
// y devuelve el instante en UTC. El año en UTC tiene que quedar en 1..9999
// (lo que encoding/json puede volver a escribir).
func ParseTimestamp(field, value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		t = t.UTC()
		if y := t.Year(); y < 1 || y > 9999 {
			return time.Time{}, apperr.Invalid("%s is out of range", field)
		}
		return t, nil
	}
	return time.Time{}, apperr.Invalid("%s must be an ISO-8601 date-time", field)
}
