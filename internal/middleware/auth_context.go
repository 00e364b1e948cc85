package middleware

import (
	"context"
	"net/http"
	"strings"

	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/ports/auth"
	"vet-clinic/internal/ports/capabilities"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - Si viene Bearer token => intenta Verify() y setea claims.
// - Si no hay token o es inválido, el request sigue sin claims; RequireAuth
//   decide el 401.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" || verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.FromContext(r.Context()).Debug("token rejected", map[string]any{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok && c.UserID > 0
}

// WithClaims se usa en tests de handlers.
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// RequireAuth corta con 401 si AuthContext no resolvió identidad.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			httpx.WriteDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireFeature exige que el rol del usuario tenga la feature (403 si no).
func RequireFeature(resolver capabilities.CapabilitiesResolver, feature capabilities.Feature) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetClaims(r.Context()); !ok {
				w.Header().Set("WWW-Authenticate", "Bearer")
				httpx.WriteDetail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if !HasFeature(r.Context(), resolver, feature) {
				httpx.WriteDetail(w, http.StatusForbidden, "Not enough permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HasFeature es la versión "inline" para handlers que cambian de
// comportamiento según la capability (p.ej. GET /pets/?all=true).
func HasFeature(ctx context.Context, resolver capabilities.CapabilitiesResolver, feature capabilities.Feature) bool {
	claims, ok := GetClaims(ctx)
	if !ok || resolver == nil {
		return false
	}
	allowed, err := resolver.HasFeature(ctx, capabilities.CapabilityCheck{Role: claims.Role, Feature: feature})
	if err != nil {
		logger.FromContext(ctx).Warn("capability check failed", map[string]any{
			"feature": string(feature),
			"error":   err.Error(),
		})
		return false
	}
	return allowed
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
