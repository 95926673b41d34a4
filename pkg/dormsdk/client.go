// Package dormsdk is a thin Go client for the DormDesk HTTP API. It carries
// the wire types shared with the server and a minimal request helper; token
// refresh is left to the caller.
package dormsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to one DormDesk deployment. The zero AccessToken means
// unauthenticated; use WithToken after login.
type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	AccessToken string
}

// NewClient builds a client against baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a copy of the client that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.AccessToken = token
	return &cp
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, expect int) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != expect {
		return parseErrorResponse(resp, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ============================================================================
// Auth
// ============================================================================

func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login",
		LoginRequest{Username: username, Password: password}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/refresh",
		RefreshRequest{RefreshToken: refreshToken}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Profile
// ============================================================================

func (c *Client) Me(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodGet, "/v1/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodPatch, "/v1/me", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return c.do(ctx, http.MethodPut, "/v1/me/password",
		ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}, nil, http.StatusNoContent)
}

// ============================================================================
// Dorms and rooms
// ============================================================================

func (c *Client) Listing(ctx context.Context) ([]ListingResponse, error) {
	var out []ListingResponse
	if err := c.do(ctx, http.MethodGet, "/v1/listing", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDorm(ctx context.Context, req DormRequest) (*DormResponse, error) {
	var out DormResponse
	if err := c.do(ctx, http.MethodPost, "/v1/dorms", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDorms(ctx context.Context) ([]DormResponse, error) {
	var out []DormResponse
	if err := c.do(ctx, http.MethodGet, "/v1/dorms", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRoom(ctx context.Context, dormID string, req RoomRequest) (*RoomResponse, error) {
	var out RoomResponse
	path := "/v1/dorms/" + dormID + "/rooms"
	if err := c.do(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BatchCreateRooms(ctx context.Context, dormID string, req BatchRoomRequest) ([]RoomResponse, error) {
	var out []RoomResponse
	path := "/v1/dorms/" + dormID + "/rooms/batch"
	if err := c.do(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRooms(ctx context.Context, dormID string) ([]RoomResponse, error) {
	var out []RoomResponse
	path := "/v1/dorms/" + dormID + "/rooms"
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ============================================================================
// Reservations and contracts
// ============================================================================

func (c *Client) Reserve(ctx context.Context, roomID, note string) (*ReservationResponse, error) {
	var out ReservationResponse
	err := c.do(ctx, http.MethodPost, "/v1/reservations",
		ReserveRequest{RoomID: roomID, Note: note}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ApproveReservation(ctx context.Context, id string, req ApproveReservationRequest) (*ContractResponse, error) {
	var out ContractResponse
	path := "/v1/reservations/" + id + "/approve"
	if err := c.do(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RejectReservation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/v1/reservations/"+id+"/reject", nil, nil, http.StatusNoContent)
}

func (c *Client) CancelReservation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/v1/reservations/"+id+"/cancel", nil, nil, http.StatusNoContent)
}

func (c *Client) ListContracts(ctx context.Context) ([]ContractResponse, error) {
	var out []ContractResponse
	if err := c.do(ctx, http.MethodGet, "/v1/contracts", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TerminateContract(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/v1/contracts/"+id+"/terminate", nil, nil, http.StatusNoContent)
}

// ============================================================================
// Bills
// ============================================================================

func (c *Client) IssueBill(ctx context.Context, contractID string, req IssueBillRequest) (*BillResponse, error) {
	var out BillResponse
	path := "/v1/contracts/" + contractID + "/bills"
	if err := c.do(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListBills(ctx context.Context) ([]BillResponse, error) {
	var out []BillResponse
	if err := c.do(ctx, http.MethodGet, "/v1/bills", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitPayment(ctx context.Context, billID, evidenceURL string) error {
	return c.do(ctx, http.MethodPost, "/v1/bills/"+billID+"/submit",
		SubmitPaymentRequest{EvidenceURL: evidenceURL}, nil, http.StatusNoContent)
}

func (c *Client) ConfirmBill(ctx context.Context, billID string) error {
	return c.do(ctx, http.MethodPost, "/v1/bills/"+billID+"/confirm", nil, nil, http.StatusNoContent)
}

func (c *Client) VoidBill(ctx context.Context, billID string) error {
	return c.do(ctx, http.MethodPost, "/v1/bills/"+billID+"/void", nil, nil, http.StatusNoContent)
}

// ============================================================================
// Repairs and uploads
// ============================================================================

func (c *Client) CreateRepair(ctx context.Context, req RepairRequest) (*RepairResponse, error) {
	var out RepairResponse
	if err := c.do(ctx, http.MethodPost, "/v1/repairs", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRepairs(ctx context.Context) ([]RepairResponse, error) {
	var out []RepairResponse
	if err := c.do(ctx, http.MethodGet, "/v1/repairs", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateRepairStatus(ctx context.Context, id, status string) (*RepairResponse, error) {
	var out RepairResponse
	path := "/v1/repairs/" + id + "/status"
	if err := c.do(ctx, http.MethodPost, path, RepairStatusRequest{Status: status}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PresignUpload(ctx context.Context, contentType string) (*PresignUploadResponse, error) {
	var out PresignUploadResponse
	err := c.do(ctx, http.MethodPost, "/v1/uploads/presign",
		PresignUploadRequest{ContentType: contentType}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Health
// ============================================================================

func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
