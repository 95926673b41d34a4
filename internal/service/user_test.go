package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dormdesk/dormdesk/internal/domain"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st, AllowOwnerSignup: true}

	t.Run("defaults to tenant role", func(t *testing.T) {
		u, err := svc.Register(ctx, RegisterParams{
			Username: "dana", Password: "secret", Email: "dana@example.test",
		})
		require.NoError(t, err)

		name, err := st.Roles().FindRoleName(ctx, u.RoleID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleTenant, name)
	})

	t.Run("owner signup honoured when enabled", func(t *testing.T) {
		u, err := svc.Register(ctx, RegisterParams{
			Username: "erin", Password: "secret", Email: "erin@example.test",
			RoleName: "owner",
		})
		require.NoError(t, err)

		name, err := st.Roles().FindRoleName(ctx, u.RoleID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleOwner, name)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterParams{
			Username: "dana", Password: "secret", Email: "dana2@example.test",
		})
		require.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("owner signup refused when disabled", func(t *testing.T) {
		closed := &UserService{Store: st, AllowOwnerSignup: false}
		_, err := closed.Register(ctx, RegisterParams{
			Username: "frank", Password: "secret", Email: "frank@example.test",
			RoleName: "owner",
		})
		require.ErrorIs(t, err, ErrOwnerSignupOff)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	u := seedUser(t, st, "gina", "pw", domain.RoleTenant)

	phone := "0812345678"
	updated, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileParams{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, phone, updated.Phone)

	// Unset fields stay put.
	require.Equal(t, u.FirstName, updated.FirstName)

	_, err = svc.UpdateProfile(ctx, "01J00000000000000000000099", UpdateProfileParams{Phone: &phone})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}
	auth := &AuthService{Store: st, Codec: newTestCodec(t)}

	u := seedUser(t, st, "henry", "first", domain.RoleTenant)

	require.ErrorIs(t, users.ChangePassword(ctx, u.ID, "wrong", "second"), ErrInvalidPassword)
	require.NoError(t, users.ChangePassword(ctx, u.ID, "first", "second"))

	_, err := auth.Login(ctx, "henry", "first")
	require.ErrorIs(t, err, ErrInvalidPassword)
	_, err = auth.Login(ctx, "henry", "second")
	require.NoError(t, err)
}
