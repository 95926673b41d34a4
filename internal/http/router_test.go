package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dormdesk/dormdesk/internal/service"
	"github.com/dormdesk/dormdesk/internal/store/drivers/sqlite"
	"github.com/dormdesk/dormdesk/pkg/cryptox"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
	"github.com/dormdesk/dormdesk/pkg/jwtx"
	"github.com/dormdesk/dormdesk/pkg/slogx"
)

var pepperOnce sync.Once

// newTestServer spins a full router over an in-memory store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	pepperOnce.Do(func() {
		cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
	})

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewCodec(
		[]byte("access-secret"), []byte("refresh-secret"), "dormdesk-test",
		jwtx.DefaultAccessTokenTTL, jwtx.DefaultRefreshTokenTTL,
	)
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{Service: "dormdesk-test", Level: "error", Format: "text"})

	router := NewRouter(codec, "test", st, logger)
	router.AuthService = &service.AuthService{Store: st, Codec: codec}
	router.UserService = &service.UserService{Store: st, AllowOwnerSignup: true}
	router.DormService = &service.DormService{Store: st}
	router.RoomService = &service.RoomService{Store: st, Dorms: router.DormService}
	router.ReservationService = &service.ReservationService{Store: st, Rooms: router.RoomService}
	router.ContractService = &service.ContractService{Store: st}
	router.BillService = &service.BillService{Store: st}
	router.RepairService = &service.RepairService{Store: st}
	router.UploadService = service.NewUploadService(service.S3Config{Bucket: "test"})
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// registerAndLogin creates an account through the API and returns an
// authenticated client.
func registerAndLogin(t *testing.T, api *dormsdk.Client, username, password, role string) *dormsdk.Client {
	t.Helper()
	ctx := context.Background()

	_, err := api.Register(ctx, dormsdk.RegisterRequest{
		Username:  username,
		Password:  password,
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.test",
		Role:      role,
	})
	require.NoError(t, err)

	tokens, err := api.Login(ctx, username, password)
	require.NoError(t, err)
	return api.WithToken(tokens.AccessToken)
}

func TestAuthEndpointErrors(t *testing.T) {
	srv := newTestServer(t)
	api := dormsdk.NewClient(srv.URL)
	ctx := context.Background()

	t.Run("login unknown user is 404", func(t *testing.T) {
		_, err := api.Login(ctx, "ghost", "whatever")
		requireAPIError(t, err, http.StatusNotFound, "User not found")
	})

	t.Run("login wrong password is 401", func(t *testing.T) {
		registerAndLogin(t, api, "alice", "correct horse", "")
		_, err := api.Login(ctx, "alice", "wrong")
		requireAPIError(t, err, http.StatusUnauthorized, "Invalid password")
	})

	t.Run("missing bearer token is 401", func(t *testing.T) {
		_, err := api.Me(ctx)
		requireAPIError(t, err, http.StatusUnauthorized, "Authorization header missing")
	})

	t.Run("garbage bearer token is 401", func(t *testing.T) {
		_, err := api.WithToken("garbage").Me(ctx)
		requireAPIError(t, err, http.StatusUnauthorized, "Invalid token")
	})

	t.Run("refresh with access token is 401", func(t *testing.T) {
		tokens, err := api.Login(ctx, "alice", "correct horse")
		require.NoError(t, err)
		_, err = api.Refresh(ctx, tokens.AccessToken)
		requireAPIError(t, err, http.StatusUnauthorized, "Invalid token")
	})
}

func TestPasswordChangeRevokesRefresh(t *testing.T) {
	srv := newTestServer(t)
	api := dormsdk.NewClient(srv.URL)
	ctx := context.Background()

	authed := registerAndLogin(t, api, "bob", "old password", "")
	tokens, err := api.Login(ctx, "bob", "old password")
	require.NoError(t, err)

	require.NoError(t, authed.ChangePassword(ctx, "old password", "new password"))

	_, err = api.Refresh(ctx, tokens.RefreshToken)
	requireAPIError(t, err, http.StatusUnauthorized, "Password has changed, please login again")

	// New login works; the access token issued before the change still
	// verifies until it expires.
	_, err = api.Login(ctx, "bob", "new password")
	require.NoError(t, err)
	_, err = authed.Me(ctx)
	require.NoError(t, err)
}

func TestRoleGate(t *testing.T) {
	srv := newTestServer(t)
	api := dormsdk.NewClient(srv.URL)
	ctx := context.Background()

	tenant := registerAndLogin(t, api, "tenant1", "password1", "tenant")

	_, err := tenant.CreateDorm(ctx, dormsdk.DormRequest{Name: "Nope Hall"})
	requireAPIError(t, err, http.StatusForbidden, "Insufficient role")
}

func TestFullTenancyFlow(t *testing.T) {
	srv := newTestServer(t)
	api := dormsdk.NewClient(srv.URL)
	ctx := context.Background()

	owner := registerAndLogin(t, api, "owner1", "password1", "owner")
	tenant := registerAndLogin(t, api, "tenant1", "password2", "tenant")

	dorm, err := owner.CreateDorm(ctx, dormsdk.DormRequest{
		Name: "Sunrise Hall", Address: "1 College Way",
		WaterRate: 18, ElectricityRate: 7.5,
	})
	require.NoError(t, err)

	rooms, err := owner.BatchCreateRooms(ctx, dorm.ID, dormsdk.BatchRoomRequest{
		Prefix: "A", Start: 101, Count: 2, Floor: 1, MonthlyRent: 4500, Deposit: 9000,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	// The public listing now shows the dorm with both rooms free.
	listing, err := api.Listing(ctx)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	require.Equal(t, 2, listing[0].AvailableRooms)

	res, err := tenant.Reserve(ctx, rooms[0].ID, "arriving on the 1st")
	require.NoError(t, err)
	require.Equal(t, "pending", res.Status)

	contract, err := owner.ApproveReservation(ctx, res.ID, dormsdk.ApproveReservationRequest{
		StartDate: time.Now().UTC(), Months: 12,
	})
	require.NoError(t, err)
	require.Equal(t, "active", contract.Status)
	require.Equal(t, 4500.0, contract.MonthlyRent)

	bill, err := owner.IssueBill(ctx, contract.ID, dormsdk.IssueBillRequest{
		Month: "2026-08", WaterUnits: 10, ElectricityUnits: 100,
		DueDate: time.Now().UTC().AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	require.Equal(t, 4500+180+750.0, bill.Total)

	require.NoError(t, tenant.SubmitPayment(ctx, bill.ID, "https://cdn.example/slip.png"))
	require.NoError(t, owner.ConfirmBill(ctx, bill.ID))

	bills, err := tenant.ListBills(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	require.Equal(t, "paid", bills[0].Status)

	rep, err := tenant.CreateRepair(ctx, dormsdk.RepairRequest{
		RoomID: rooms[0].ID, Title: "leaky tap",
	})
	require.NoError(t, err)

	rep2, err := owner.UpdateRepairStatus(ctx, rep.ID, "in_progress")
	require.NoError(t, err)
	require.Equal(t, "in_progress", rep2.Status)
}

func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*dormsdk.APIError)
	require.True(t, ok, "expected *dormsdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, message, apiErr.Message)
}
