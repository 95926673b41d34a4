package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dormdesk/dormdesk/internal/domain"
)

func TestReservationFlow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	rooms := newRoomService(st)
	svc := &ReservationService{Store: st, Rooms: rooms}

	owner := seedUser(t, st, "owner1", "pw", domain.RoleOwner)
	tenant := seedUser(t, st, "tenant1", "pw", domain.RoleTenant)
	dorm := seedDorm(t, st, owner.ID)
	room := seedRoom(t, st, dorm.ID, "A101")

	res, err := svc.Reserve(ctx, room.ID, tenant.ID, "move in next month")
	require.NoError(t, err)
	require.Equal(t, domain.ReservationPending, res.Status)

	t.Run("reserving flips the room", func(t *testing.T) {
		r, err := st.Rooms().GetRoomByID(ctx, room.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoomReserved, r.Status)
	})

	t.Run("reserved room cannot be reserved again", func(t *testing.T) {
		other := seedUser(t, st, "tenant2", "pw", domain.RoleTenant)
		_, err := svc.Reserve(ctx, room.ID, other.ID, "")
		require.ErrorIs(t, err, ErrRoomNotAvailable)
	})

	t.Run("only the owner may approve", func(t *testing.T) {
		_, err := svc.Approve(ctx, res.ID, tenant.ID, ApproveParams{StartDate: time.Now(), Months: 6})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("approval creates a contract and occupies the room", func(t *testing.T) {
		contract, err := svc.Approve(ctx, res.ID, owner.ID, ApproveParams{
			StartDate: time.Now().UTC(), Months: 6,
		})
		require.NoError(t, err)
		require.Equal(t, domain.ContractActive, contract.Status)
		require.Equal(t, tenant.ID, contract.TenantID)

		// Terms are frozen from the room.
		require.Equal(t, room.MonthlyRent, contract.MonthlyRent)
		require.Equal(t, room.Deposit, contract.Deposit)

		r, err := st.Rooms().GetRoomByID(ctx, room.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoomOccupied, r.Status)
	})

	t.Run("settled reservations cannot be re-approved", func(t *testing.T) {
		_, err := svc.Approve(ctx, res.ID, owner.ID, ApproveParams{StartDate: time.Now(), Months: 6})
		require.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestReservationRejectAndCancel(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	rooms := newRoomService(st)
	svc := &ReservationService{Store: st, Rooms: rooms}

	owner := seedUser(t, st, "owner1", "pw", domain.RoleOwner)
	tenant := seedUser(t, st, "tenant1", "pw", domain.RoleTenant)
	dorm := seedDorm(t, st, owner.ID)

	t.Run("reject frees the room", func(t *testing.T) {
		room := seedRoom(t, st, dorm.ID, "B201")
		res, err := svc.Reserve(ctx, room.ID, tenant.ID, "")
		require.NoError(t, err)

		require.NoError(t, svc.Reject(ctx, res.ID, owner.ID))

		r, err := st.Rooms().GetRoomByID(ctx, room.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoomAvailable, r.Status)
	})

	t.Run("tenant cancels their own pending reservation", func(t *testing.T) {
		room := seedRoom(t, st, dorm.ID, "B202")
		res, err := svc.Reserve(ctx, room.ID, tenant.ID, "")
		require.NoError(t, err)

		other := seedUser(t, st, "tenant2", "pw", domain.RoleTenant)
		require.ErrorIs(t, svc.Cancel(ctx, res.ID, other.ID), ErrForbidden)

		require.NoError(t, svc.Cancel(ctx, res.ID, tenant.ID))

		r, err := st.Rooms().GetRoomByID(ctx, room.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoomAvailable, r.Status)
	})
}
