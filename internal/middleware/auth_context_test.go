package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic/internal/adapters/capabilities/roles"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/ports/auth"
	"vet-clinic/internal/ports/capabilities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]auth.Claims

func (s stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	c, ok := s[token]
	if !ok {
		return auth.Claims{}, errors.New("bad token")
	}
	return c, nil
}

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

func serve(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken(""))
}

func TestRequireAuth(t *testing.T) {
	v := stubVerifier{"good": {UserID: 1, Subject: "ana@example.com", Role: "user"}}
	h := AuthContext(v)(RequireAuth(http.HandlerFunc(okHandler)))

	rec := serve(h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(h, "bad").Code)
	assert.Equal(t, http.StatusNoContent, serve(h, "good").Code)
}

func TestRequireFeature(t *testing.T) {
	v := stubVerifier{
		"user":  {UserID: 1, Role: roles.RoleUser},
		"staff": {UserID: 2, Role: roles.RoleService},
	}
	resolver := roles.NewResolver(roles.DefaultTable())
	h := AuthContext(v)(RequireFeature(resolver, capabilities.FeatureCatalogWrite)(http.HandlerFunc(okHandler)))

	assert.Equal(t, http.StatusUnauthorized, serve(h, "").Code)

	rec := serve(h, "user")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"detail":"Not enough permissions"}`, rec.Body.String())

	assert.Equal(t, http.StatusNoContent, serve(h, "staff").Code)
}

func TestHasFeature_WithoutClaims(t *testing.T) {
	resolver := roles.NewResolver(roles.DefaultTable())
	assert.False(t, HasFeature(context.Background(), resolver, capabilities.FeaturePetsReadAll))

	ctx := WithClaims(context.Background(), auth.Claims{UserID: 3, Role: "service"})
	assert.True(t, HasFeature(ctx, resolver, capabilities.FeaturePetsReadAll))
	assert.False(t, HasFeature(ctx, nil, capabilities.FeaturePetsReadAll))
}

func TestRecover_Writes500(t *testing.T) {
	h := Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logger.WithContext(req.Context(), logger.Nop()))
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() { h.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"internal error"}`, rec.Body.String())
}
