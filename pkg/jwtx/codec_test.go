package jwtx_test

import (
	"testing"
	"time"

	"github.com/dormdesk/dormdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var (
	accessSecret  = []byte("test-access-secret")
	refreshSecret = []byte("test-refresh-secret")
)

func newCodec(t *testing.T) *jwtx.Codec {
	t.Helper()
	c, err := jwtx.NewCodec(accessSecret, refreshSecret, "dormdesk-test", 0, 0)
	require.NoError(t, err)
	return c
}

func testProfile() jwtx.Profile {
	return jwtx.Profile{
		UserID:    "01JC000000000000000000USER",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Username:  "alice",
		Email:     "alice@example.com",
		RoleID:    "01JC000000000000000000ROLE",
	}
}

func TestNewCodecRequiresBothSecrets(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewCodec(nil, refreshSecret, "iss", 0, 0)
	require.ErrorIs(t, err, jwtx.ErrNoSecret)

	_, err = jwtx.NewCodec(accessSecret, nil, "iss", 0, 0)
	require.ErrorIs(t, err, jwtx.ErrNoSecret)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()
	c := newCodec(t)

	raw, err := c.SignAccess(testProfile(), time.Now())
	require.NoError(t, err)

	claims, err := c.VerifyAccess(raw)
	require.NoError(t, err)
	require.Equal(t, jwtx.TokenTypeAccess, claims.TokenType)
	require.Equal(t, testProfile(), claims.Profile)
	require.Equal(t, testProfile().UserID, claims.Subject)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()
	c := newCodec(t)

	raw, err := c.SignRefresh(testProfile(), "$argon2id$current-hash", time.Now())
	require.NoError(t, err)

	claims, err := c.VerifyRefresh(raw)
	require.NoError(t, err)
	require.Equal(t, jwtx.TokenTypeRefresh, claims.TokenType)
	require.Equal(t, "$argon2id$current-hash", claims.Key)
	require.Equal(t, testProfile(), claims.Profile)
}

func TestVerifyAccessRejectsRefreshTokens(t *testing.T) {
	t.Parallel()
	c := newCodec(t)

	raw, err := c.SignRefresh(testProfile(), "hash", time.Now())
	require.NoError(t, err)

	_, err = c.VerifyAccess(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestVerifyRefreshRejectsAccessTokens(t *testing.T) {
	t.Parallel()
	c := newCodec(t)

	raw, err := c.SignAccess(testProfile(), time.Now())
	require.NoError(t, err)

	_, err = c.VerifyRefresh(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestVerifyAccessRejectsExpiredToken(t *testing.T) {
	t.Parallel()
	c := newCodec(t)

	// Signed 16 minutes ago with a 15 minute TTL.
	raw, err := c.SignAccess(testProfile(), time.Now().Add(-16*time.Minute))
	require.NoError(t, err)

	_, err = c.VerifyAccess(raw)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyAccessRejectsGarbageAndWrongSecret(t *testing.T) {
	t.Parallel()
	c := newCodec(t)

	_, err := c.VerifyAccess("garbage.token.value")
	require.ErrorIs(t, err, jwtx.ErrInvalid)

	other, err := jwtx.NewCodec([]byte("other-secret"), refreshSecret, "dormdesk-test", 0, 0)
	require.NoError(t, err)
	raw, err := other.SignAccess(testProfile(), time.Now())
	require.NoError(t, err)

	_, err = c.VerifyAccess(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}
