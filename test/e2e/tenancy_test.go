package e2e_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dormdesk/dormdesk/pkg/dormsdk"
)

// TestTenancyLifecycle walks the whole happy path against a real container:
// owner builds a dorm, tenant reserves, contract, bill, repair.
func TestTenancyLifecycle(t *testing.T) {
	baseURL := setupContainer(t)
	api := dormsdk.NewClient(baseURL)
	ctx := context.Background()

	health, err := api.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)

	owner := signup(t, api, "owner", "ownerpass1", "owner")
	tenant := signup(t, api, "tenant", "tenantpass1", "tenant")

	dorm, err := owner.CreateDorm(ctx, dormsdk.DormRequest{
		Name:            "Harbour House",
		Address:         "42 Quay St",
		WaterRate:       20,
		ElectricityRate: 8,
	})
	require.NoError(t, err)

	rooms, err := owner.BatchCreateRooms(ctx, dorm.ID, dormsdk.BatchRoomRequest{
		Prefix: "H", Start: 201, Count: 3, Floor: 2, MonthlyRent: 5200, Deposit: 10400,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 3)

	listing, err := api.Listing(ctx)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	require.Equal(t, 3, listing[0].AvailableRooms)

	res, err := tenant.Reserve(ctx, rooms[0].ID, "")
	require.NoError(t, err)

	contract, err := owner.ApproveReservation(ctx, res.ID, dormsdk.ApproveReservationRequest{
		StartDate: time.Now().UTC(),
		Months:    12,
	})
	require.NoError(t, err)
	require.Equal(t, "active", contract.Status)

	bill, err := owner.IssueBill(ctx, contract.ID, dormsdk.IssueBillRequest{
		Month:            "2026-08",
		WaterUnits:       12,
		ElectricityUnits: 90,
		DueDate:          time.Now().UTC().AddDate(0, 0, 10),
	})
	require.NoError(t, err)
	require.InDelta(t, 5200+240+720, bill.Total, 1e-9)

	require.NoError(t, tenant.SubmitPayment(ctx, bill.ID, "https://cdn.example/slip.jpg"))
	require.NoError(t, owner.ConfirmBill(ctx, bill.ID))

	rep, err := tenant.CreateRepair(ctx, dormsdk.RepairRequest{
		RoomID: rooms[0].ID,
		Title:  "window latch broken",
	})
	require.NoError(t, err)

	_, err = owner.UpdateRepairStatus(ctx, rep.ID, "in_progress")
	require.NoError(t, err)
	done, err := owner.UpdateRepairStatus(ctx, rep.ID, "done")
	require.NoError(t, err)
	require.Equal(t, "done", done.Status)
}

// TestRefreshRevocation verifies the password-hash-keyed refresh tokens end
// to end: a password change kills outstanding refresh tokens.
func TestRefreshRevocation(t *testing.T) {
	baseURL := setupContainer(t)
	api := dormsdk.NewClient(baseURL)
	ctx := context.Background()

	authed := signup(t, api, "carol", "firstpass1", "tenant")
	tokens, err := api.Login(ctx, "carol", "firstpass1")
	require.NoError(t, err)

	// Refresh rotates but the old refresh token stays valid until expiry.
	next, err := api.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, next.AccessToken)
	_, err = api.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, authed.ChangePassword(ctx, "firstpass1", "secondpass1"))

	_, err = api.Refresh(ctx, tokens.RefreshToken)
	require.Error(t, err)
	apiErr, ok := err.(*dormsdk.APIError)
	require.True(t, ok)
	require.Equal(t, 401, apiErr.StatusCode)
	require.Equal(t, "Password has changed, please login again", apiErr.Message)
}
