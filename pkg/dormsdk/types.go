package dormsdk

import "time"

// ============================================================================
// Auth
// ============================================================================

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /v1/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenResponse carries a signed access/refresh pair.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"firstname"`
	LastName   string    `json:"lastname"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	PictureURL string    `json:"pictureUrl,omitempty"`
	RoleID     string    `json:"roleId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UpdateProfileRequest patches the caller's profile; absent fields are left
// unchanged.
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstname,omitempty"`
	LastName   *string `json:"lastname,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	PictureURL *string `json:"pictureUrl,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ============================================================================
// Dorms and rooms
// ============================================================================

type DormRequest struct {
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	Description     string  `json:"description,omitempty"`
	PhotoURL        string  `json:"photoUrl,omitempty"`
	WaterRate       float64 `json:"waterRate"`
	ElectricityRate float64 `json:"electricityRate"`
}

type DormResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	Description     string    `json:"description,omitempty"`
	PhotoURL        string    `json:"photoUrl,omitempty"`
	WaterRate       float64   `json:"waterRate"`
	ElectricityRate float64   `json:"electricityRate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListingResponse is the public, unauthenticated dorm listing entry.
type ListingResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Description    string  `json:"description,omitempty"`
	PhotoURL       string  `json:"photoUrl,omitempty"`
	AvailableRooms int     `json:"availableRooms"`
	TotalRooms     int     `json:"totalRooms"`
	MinRent        float64 `json:"minRent"`
	MaxRent        float64 `json:"maxRent"`
}

type RoomRequest struct {
	Name        string  `json:"name"`
	Floor       int     `json:"floor"`
	MonthlyRent float64 `json:"monthlyRent"`
	Deposit     float64 `json:"deposit"`
}

// BatchRoomRequest generates rooms named <prefix><n> for count consecutive
// numbers. Mode "skip" drops colliding names, "strict" fails the batch.
type BatchRoomRequest struct {
	Prefix      string  `json:"prefix"`
	Start       int     `json:"start"`
	Count       int     `json:"count"`
	Floor       int     `json:"floor"`
	MonthlyRent float64 `json:"monthlyRent"`
	Deposit     float64 `json:"deposit"`
	Mode        string  `json:"mode,omitempty"`
}

type RoomResponse struct {
	ID          string    `json:"id"`
	DormID      string    `json:"dormId"`
	Name        string    `json:"name"`
	Floor       int       `json:"floor"`
	MonthlyRent float64   `json:"monthlyRent"`
	Deposit     float64   `json:"deposit"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RoomStatusRequest struct {
	Status string `json:"status"`
}

// ============================================================================
// Reservations and contracts
// ============================================================================

type ReserveRequest struct {
	RoomID string `json:"roomId"`
	Note   string `json:"note,omitempty"`
}

type ReservationResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	TenantID  string    `json:"tenantId"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ApproveReservationRequest sets the terms of the contract created on
// approval.
type ApproveReservationRequest struct {
	StartDate time.Time `json:"startDate"`
	Months    int       `json:"months"`
}

type ContractResponse struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"roomId"`
	TenantID    string    `json:"tenantId"`
	StartDate   time.Time `json:"startDate"`
	Months      int       `json:"months"`
	MonthlyRent float64   `json:"monthlyRent"`
	Deposit     float64   `json:"deposit"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ============================================================================
// Bills
// ============================================================================

// IssueBillRequest carries the owner's metered readings for one month.
type IssueBillRequest struct {
	Month            string    `json:"month"` // "YYYY-MM"
	WaterUnits       float64   `json:"waterUnits"`
	ElectricityUnits float64   `json:"electricityUnits"`
	DueDate          time.Time `json:"dueDate"`
}

type BillResponse struct {
	ID                string    `json:"id"`
	ContractID        string    `json:"contractId"`
	Month             string    `json:"month"`
	RentAmount        float64   `json:"rentAmount"`
	WaterUnits        float64   `json:"waterUnits"`
	WaterAmount       float64   `json:"waterAmount"`
	ElectricityUnits  float64   `json:"electricityUnits"`
	ElectricityAmount float64   `json:"electricityAmount"`
	Total             float64   `json:"total"`
	DueDate           time.Time `json:"dueDate"`
	Status            string    `json:"status"`
	EvidenceURL       string    `json:"evidenceUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

type SubmitPaymentRequest struct {
	EvidenceURL string `json:"evidenceUrl"`
}

// ============================================================================
// Repairs
// ============================================================================

type RepairRequest struct {
	RoomID      string `json:"roomId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

type RepairResponse struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"roomId"`
	TenantID    string    `json:"tenantId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RepairStatusRequest struct {
	Status string `json:"status"`
}

// ============================================================================
// Uploads and health
// ============================================================================

type PresignUploadRequest struct {
	ContentType string `json:"contentType"`
}

type PresignUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database,omitempty"`
}
