package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
)

func newRoomService(st store.Store) *RoomService {
	dorms := &DormService{Store: st}
	return &RoomService{Store: st, Dorms: dorms}
}

func TestBatchCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newRoomService(st)

	owner := seedUser(t, st, "owner1", "pw", domain.RoleOwner)
	dorm := seedDorm(t, st, owner.ID)

	t.Run("creates a numbered run", func(t *testing.T) {
		rooms, err := svc.BatchCreate(ctx, dorm.ID, owner.ID, BatchCreateParams{
			Prefix: "A", Start: 101, Count: 3, Floor: 1, MonthlyRent: 4000, Deposit: 8000,
		})
		require.NoError(t, err)
		require.Len(t, rooms, 3)
		require.Equal(t, "A101", rooms[0].Name)
		require.Equal(t, "A103", rooms[2].Name)
		for _, r := range rooms {
			require.Equal(t, domain.RoomAvailable, r.Status)
		}
	})

	t.Run("skip mode leaves collisions out", func(t *testing.T) {
		rooms, err := svc.BatchCreate(ctx, dorm.ID, owner.ID, BatchCreateParams{
			Prefix: "A", Start: 102, Count: 4, Mode: BatchSkip,
		})
		require.NoError(t, err)

		// A102 and A103 already exist; only A104 and A105 are created.
		require.Len(t, rooms, 2)
		require.Equal(t, "A104", rooms[0].Name)
		require.Equal(t, "A105", rooms[1].Name)
	})

	t.Run("strict mode aborts the whole batch", func(t *testing.T) {
		_, err := svc.BatchCreate(ctx, dorm.ID, owner.ID, BatchCreateParams{
			Prefix: "A", Start: 104, Count: 3, Mode: BatchStrict,
		})
		require.ErrorIs(t, err, ErrRoomNameTaken)

		// Nothing from the failed batch landed: A106 is still free.
		exists, err := st.Rooms().RoomNameExists(ctx, dorm.ID, "A106")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		other := seedUser(t, st, "owner2", "pw", domain.RoleOwner)
		_, err := svc.BatchCreate(ctx, dorm.ID, other.ID, BatchCreateParams{
			Prefix: "B", Start: 1, Count: 1,
		})
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestRoomStatusTransitions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newRoomService(st)

	owner := seedUser(t, st, "owner1", "pw", domain.RoleOwner)
	dorm := seedDorm(t, st, owner.ID)
	room := seedRoom(t, st, dorm.ID, "C301")

	r, err := svc.SetStatus(ctx, room.ID, owner.ID, domain.RoomMaintenance)
	require.NoError(t, err)
	require.Equal(t, domain.RoomMaintenance, r.Status)

	// maintenance cannot jump straight to occupied
	_, err = svc.SetStatus(ctx, room.ID, owner.ID, domain.RoomOccupied)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.SetStatus(ctx, room.ID, owner.ID, domain.RoomAvailable)
	require.NoError(t, err)
}
