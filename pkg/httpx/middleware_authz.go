package httpx

import (
	"context"
	"net/http"

	"github.com/dormdesk/dormdesk/pkg/slogx"
)

// RoleResolver resolves a role id to its name. Satisfied by the role store.
type RoleResolver interface {
	FindRoleName(ctx context.Context, roleID string) (string, error)
}

// RequireRole composes with AuthnMiddleware: the caller's role id from the
// verified claims is resolved to a name and compared case-sensitively against
// required. A mismatch is 403, distinct from the 401 family.
func RequireRole(required string, resolver RoleResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			claims, ok := Claims(ctx)
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			name, err := resolver.FindRoleName(ctx, claims.RoleID)
			if err != nil {
				log.Error("role lookup failed", "role_id", claims.RoleID, "err", err)
				WriteError(w, http.StatusInternalServerError, "Failed to resolve role")
				return
			}

			if name != required {
				WriteError(w, http.StatusForbidden, "Insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
