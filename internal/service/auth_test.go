package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/pkg/cryptox"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Codec: newTestCodec(t)}

	alice := seedUser(t, st, "alice", "correct horse", domain.RoleTenant)

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "whatever")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "battery staple")
		require.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("issues verifiable pair", func(t *testing.T) {
		pair, err := svc.Login(ctx, "alice", "correct horse")
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)

		access, err := svc.Codec.VerifyAccess(pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, alice.ID, access.UserID)
		require.Equal(t, "alice", access.Username)
		require.Equal(t, alice.RoleID, access.RoleID)

		refresh, err := svc.Codec.VerifyRefresh(pair.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, alice.PasswordHash, refresh.Key)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Codec: newTestCodec(t)}

	seedUser(t, st, "alice", "correct horse", domain.RoleTenant)
	pair, err := svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)

	t.Run("rotates to a fresh pair", func(t *testing.T) {
		next, err := svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, next.AccessToken)
		require.NotEmpty(t, next.RefreshToken)

		// The old token keeps working; rotation is not single-use.
		again, err := svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, again.AccessToken)
	})

	t.Run("rejects an access token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, pair.AccessToken)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not.a.token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRefreshAfterPasswordChange(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Codec: newTestCodec(t)}

	bob := seedUser(t, st, "bob", "old password", domain.RoleTenant)
	pair, err := svc.Login(ctx, "bob", "old password")
	require.NoError(t, err)

	newHash, err := cryptox.HashPassword("new password")
	require.NoError(t, err)
	require.NoError(t, st.Users().UpdatePasswordHash(ctx, bob.ID, newHash))

	// Every refresh token issued before the change is now dead.
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrPasswordChanged)

	// A fresh login with the new password works and refreshes again.
	pair, err = svc.Login(ctx, "bob", "new password")
	require.NoError(t, err)
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshDeletedUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Codec: newTestCodec(t)}

	carol := seedUser(t, st, "carol", "pw", domain.RoleTenant)
	pair, err := svc.Login(ctx, "carol", "pw")
	require.NoError(t, err)

	require.NoError(t, st.Users().DeleteUser(ctx, carol.ID))

	_, err = svc.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrUserNotFound)
}
