package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
	"github.com/dormdesk/dormdesk/internal/store/drivers/sqlite"
	"github.com/dormdesk/dormdesk/pkg/cryptox"
	"github.com/dormdesk/dormdesk/pkg/idx"
	"github.com/dormdesk/dormdesk/pkg/jwtx"
)

var pepperOnce sync.Once

func initPepper(t *testing.T) {
	t.Helper()
	pepperOnce.Do(func() {
		cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
	})
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	initPepper(t)

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestCodec(t *testing.T) *jwtx.Codec {
	t.Helper()
	codec, err := jwtx.NewCodec(
		[]byte("test-access-secret"),
		[]byte("test-refresh-secret"),
		"dormdesk-test",
		jwtx.DefaultAccessTokenTTL,
		jwtx.DefaultRefreshTokenTTL,
	)
	require.NoError(t, err)
	return codec
}

// seedUser inserts a user with the given role name and returns it.
func seedUser(t *testing.T, st store.Store, username, password, roleName string) domain.User {
	t.Helper()
	ctx := context.Background()

	role, err := st.Roles().GetRoleByName(ctx, roleName)
	require.NoError(t, err)

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		FirstName:    "Test",
		LastName:     "User",
		Email:        username + "@example.test",
		PasswordHash: hash,
		RoleID:       role.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))
	return u
}

// seedDorm inserts a dorm owned by ownerID.
func seedDorm(t *testing.T, st store.Store, ownerID string) domain.Dorm {
	t.Helper()
	now := time.Now().UTC()
	d := domain.Dorm{
		ID:              idx.New().String(),
		OwnerID:         ownerID,
		Name:            "Sunrise Hall",
		Address:         "1 College Way",
		WaterRate:       18,
		ElectricityRate: 7.5,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, st.Dorms().CreateDorm(context.Background(), d))
	return d
}

// seedRoom inserts an available room in the dorm.
func seedRoom(t *testing.T, st store.Store, dormID, name string) domain.Room {
	t.Helper()
	now := time.Now().UTC()
	r := domain.Room{
		ID:          idx.New().String(),
		DormID:      dormID,
		Name:        name,
		Floor:       1,
		MonthlyRent: 4500,
		Deposit:     9000,
		Status:      domain.RoomAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, st.Rooms().CreateRoom(context.Background(), r))
	return r
}

// seedActiveContract wires tenant to room with an occupied room and active
// contract, bypassing the reservation flow.
func seedActiveContract(t *testing.T, st store.Store, roomID, tenantID string) domain.Contract {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	c := domain.Contract{
		ID:          idx.New().String(),
		RoomID:      roomID,
		TenantID:    tenantID,
		StartDate:   now,
		Months:      12,
		MonthlyRent: 4500,
		Deposit:     9000,
		Status:      domain.ContractActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, st.Contracts().CreateContract(ctx, c))
	require.NoError(t, st.Rooms().UpdateRoomStatus(ctx, roomID, domain.RoomOccupied))
	return c
}
