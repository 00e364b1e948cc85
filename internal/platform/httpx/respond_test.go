package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vet-clinic/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSON_EncodeFailureIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, map[string]any{"at": time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"internal error"}`, rec.Body.String())
}

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		detail string
	}{
		{apperr.ErrNotFound, http.StatusNotFound, "Breed not found"},
		{apperr.Invalid("name is required"), http.StatusBadRequest, "name is required"},
		{apperr.Conflict("clinic has appointments"), http.StatusBadRequest, "clinic has appointments"},
		{fmt.Errorf("%w: bad token", apperr.ErrUnauthorized), http.StatusUnauthorized, "bad token"},
		{fmt.Errorf("%w: Not enough permissions", apperr.ErrForbidden), http.StatusForbidden, "Not enough permissions"},
		{errors.New("db error: boom"), http.StatusInternalServerError, "internal error"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err, "Breed not found")
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
		assert.JSONEq(t, fmt.Sprintf(`{"detail":%q}`, tc.detail), rec.Body.String())
	}
}
