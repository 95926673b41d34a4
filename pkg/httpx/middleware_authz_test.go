package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dormdesk/dormdesk/pkg/httpx"
	"github.com/dormdesk/dormdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type fakeRoleResolver map[string]string

func (f fakeRoleResolver) FindRoleName(_ context.Context, roleID string) (string, error) {
	name, ok := f[roleID]
	if !ok {
		return "", errors.New("role not found")
	}
	return name, nil
}

func roleGatedHandler(t *testing.T, codec *jwtx.Codec, required string, resolver httpx.RoleResolver) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return httpx.Chain(inner,
		httpx.AuthnMiddleware(codec),
		httpx.RequireRole(required, resolver),
	)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	raw, err := codec.SignAccess(jwtx.Profile{UserID: "u1", RoleID: "r-owner"}, time.Now())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/dorms", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	resolver := fakeRoleResolver{"r-owner": "owner"}
	roleGatedHandler(t, codec, "owner", resolver).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireRoleForbidsMismatch(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	raw, err := codec.SignAccess(jwtx.Profile{UserID: "u1", RoleID: "r-tenant"}, time.Now())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/dorms", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	resolver := fakeRoleResolver{"r-tenant": "tenant"}
	roleGatedHandler(t, codec, "owner", resolver).ServeHTTP(rec, req)

	// 403, not 401: the caller is authenticated but lacks the role.
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleIsCaseSensitive(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	raw, err := codec.SignAccess(jwtx.Profile{UserID: "u1", RoleID: "r-owner"}, time.Now())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/dorms", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	resolver := fakeRoleResolver{"r-owner": "Owner"}
	roleGatedHandler(t, codec, "owner", resolver).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleResolverFailure(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	raw, err := codec.SignAccess(jwtx.Profile{UserID: "u1", RoleID: "r-unknown"}, time.Now())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/dorms", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	roleGatedHandler(t, codec, "owner", fakeRoleResolver{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
