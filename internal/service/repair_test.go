package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dormdesk/dormdesk/internal/domain"
)

func TestRepairFlow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RepairService{Store: st}

	owner := seedUser(t, st, "owner1", "pw", domain.RoleOwner)
	tenant := seedUser(t, st, "tenant1", "pw", domain.RoleTenant)
	dorm := seedDorm(t, st, owner.ID)
	room := seedRoom(t, st, dorm.ID, "A101")

	t.Run("requires an active contract", func(t *testing.T) {
		_, err := svc.Create(ctx, room.ID, tenant.ID, RepairParams{Title: "leaky tap"})
		require.ErrorIs(t, err, ErrNoActiveContract)
	})

	seedActiveContract(t, st, room.ID, tenant.ID)

	rep, err := svc.Create(ctx, room.ID, tenant.ID, RepairParams{
		Title: "leaky tap", Description: "bathroom sink drips",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RepairOpen, rep.Status)

	t.Run("only the dorm owner drives status", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, rep.ID, tenant.ID, domain.RepairInProgress)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("state machine enforced", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, rep.ID, owner.ID, domain.RepairDone)
		require.ErrorIs(t, err, ErrInvalidTransition)

		r, err := svc.UpdateStatus(ctx, rep.ID, owner.ID, domain.RepairInProgress)
		require.NoError(t, err)
		require.Equal(t, domain.RepairInProgress, r.Status)

		r, err = svc.UpdateStatus(ctx, rep.ID, owner.ID, domain.RepairDone)
		require.NoError(t, err)
		require.Equal(t, domain.RepairDone, r.Status)

		// done is terminal
		_, err = svc.UpdateStatus(ctx, rep.ID, owner.ID, domain.RepairInProgress)
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("visibility", func(t *testing.T) {
		_, err := svc.Get(ctx, rep.ID, tenant.ID)
		require.NoError(t, err)
		_, err = svc.Get(ctx, rep.ID, owner.ID)
		require.NoError(t, err)

		stranger := seedUser(t, st, "tenant2", "pw", domain.RoleTenant)
		_, err = svc.Get(ctx, rep.ID, stranger.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})
}
