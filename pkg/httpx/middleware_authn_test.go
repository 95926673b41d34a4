package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dormdesk/dormdesk/pkg/httpx"
	"github.com/dormdesk/dormdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *jwtx.Codec {
	t.Helper()
	c, err := jwtx.NewCodec([]byte("access"), []byte("refresh"), "dormdesk-test", 0, 0)
	require.NoError(t, err)
	return c
}

func protectedHandler(t *testing.T, codec *jwtx.Codec) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"id":       httpx.UserID(r.Context()),
			"username": httpx.Username(r.Context()),
		})
	})
	return httpx.Chain(inner, httpx.AuthnMiddleware(codec))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body httpx.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAuthnMiddlewareMissingHeader(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)

	protectedHandler(t, newTestCodec(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthnMiddlewareGarbageToken(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	protectedHandler(t, newTestCodec(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid token", errorMessage(t, rec))
}

func TestAuthnMiddlewareExpiredToken(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	raw, err := codec.SignAccess(jwtx.Profile{UserID: "u1", Username: "alice"}, time.Now().Add(-16*time.Minute))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	protectedHandler(t, codec).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Token has expired", errorMessage(t, rec))
}

func TestAuthnMiddlewareValidToken(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	raw, err := codec.SignAccess(jwtx.Profile{UserID: "u1", Username: "alice"}, time.Now())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	protectedHandler(t, codec).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "u1", body["id"])
	require.Equal(t, "alice", body["username"])
}

func TestAuthnMiddlewareAcceptsRawTokenWithoutBearerPrefix(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	raw, err := codec.SignAccess(jwtx.Profile{UserID: "u1", Username: "alice"}, time.Now())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", raw)

	protectedHandler(t, codec).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
