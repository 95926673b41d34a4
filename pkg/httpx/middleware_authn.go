package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dormdesk/dormdesk/pkg/jwtx"
	"github.com/dormdesk/dormdesk/pkg/slogx"
)

// AccessVerifier verifies a raw access token. Satisfied by *jwtx.Codec.
type AccessVerifier interface {
	VerifyAccess(raw string) (jwtx.AccessClaims, error)
}

// AuthnMiddleware authenticates every request through its bearer token and
// injects the caller's identity into the request context. No store lookup is
// performed; the verified claims are trusted as-is.
func AuthnMiddleware(v AccessVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := BearerToken(r)
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, "Authorization header missing")
				return
			}

			claims, err := v.VerifyAccess(raw)
			if err != nil {
				switch {
				case errors.Is(err, jwtx.ErrExpired):
					WriteError(w, http.StatusUnauthorized, "Token has expired")
				case errors.Is(err, jwtx.ErrNoSecret):
					log.Error("token verifier not configured")
					WriteError(w, http.StatusInternalServerError, "Server misconfigured")
				default:
					log.Warn("jwt verify failed", "err", err)
					WriteError(w, http.StatusUnauthorized, "Invalid token")
				}
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from the Authorization header. Both
// "Bearer <token>" and a raw token value are accepted.
func BearerToken(r *http.Request) string {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if after, ok := strings.CutPrefix(authz, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return authz
}

func contextWithAuth(ctx context.Context, c jwtx.AccessClaims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.UserID)
	ctx = context.WithValue(ctx, CtxKeyUsername, c.Username)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
