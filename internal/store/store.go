package store

import (
	"context"
	"errors"

	"github.com/dormdesk/dormdesk/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Page bounds list queries. Limit is clamped by the HTTP layer.
type Page struct {
	Limit  int
	Offset int
}

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Roles() Roles
	Dorms() Dorms
	Rooms() Rooms
	Reservations() Reservations
	Contracts() Contracts
	Bills() Bills
	Repairs() Repairs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rollback if fn errors,
	// commit otherwise. Use it for multi-step operations that must be
	// atomic (e.g. reservation approval creating a contract).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is the login-path lookup.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists on a username or email collision.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates the editable profile fields and bumps updated_at.
	UpdateProfile(ctx context.Context, userID, firstName, lastName, phone, pictureURL string) error

	// UpdatePasswordHash sets the password_hash. As a side effect every
	// outstanding refresh token keyed on the old hash becomes unusable.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	DeleteUser(ctx context.Context, userID string) error
}

type Roles interface {
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// FindRoleName resolves a role id to its name; used by the role gate.
	FindRoleName(ctx context.Context, roleID string) (string, error)

	ListRoles(ctx context.Context) ([]domain.Role, error)
}

type Dorms interface {
	CreateDorm(ctx context.Context, d domain.Dorm) error
	GetDormByID(ctx context.Context, id string) (domain.Dorm, error)
	ListDormsByOwner(ctx context.Context, ownerID string, p Page) ([]domain.Dorm, error)
	UpdateDorm(ctx context.Context, d domain.Dorm) error

	// DeleteDorm cascades to rooms (per schema).
	DeleteDorm(ctx context.Context, id string) error

	// ListPublic returns the unauthenticated listing projection with room
	// availability counts and rent ranges.
	ListPublic(ctx context.Context, p Page) ([]domain.DormListing, error)
}

type Rooms interface {
	CreateRoom(ctx context.Context, r domain.Room) error
	GetRoomByID(ctx context.Context, id string) (domain.Room, error)

	// ListRoomsByDorm optionally filters by status ("" means all).
	ListRoomsByDorm(ctx context.Context, dormID string, status domain.RoomStatus, p Page) ([]domain.Room, error)

	// RoomNameExists supports collision checking during batch creation.
	RoomNameExists(ctx context.Context, dormID, name string) (bool, error)

	UpdateRoom(ctx context.Context, r domain.Room) error
	UpdateRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus) error
	DeleteRoom(ctx context.Context, id string) error
}

type Reservations interface {
	CreateReservation(ctx context.Context, r domain.Reservation) error
	GetReservationByID(ctx context.Context, id string) (domain.Reservation, error)
	ListReservationsByTenant(ctx context.Context, tenantID string, p Page) ([]domain.Reservation, error)

	// ListReservationsByOwner lists reservations against rooms in the
	// owner's dorms.
	ListReservationsByOwner(ctx context.Context, ownerID string, p Page) ([]domain.Reservation, error)

	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error
}

type Contracts interface {
	CreateContract(ctx context.Context, c domain.Contract) error
	GetContractByID(ctx context.Context, id string) (domain.Contract, error)
	ListContractsByTenant(ctx context.Context, tenantID string, p Page) ([]domain.Contract, error)
	ListContractsByOwner(ctx context.Context, ownerID string, p Page) ([]domain.Contract, error)

	// GetActiveContract returns the tenant's active contract for a room.
	GetActiveContract(ctx context.Context, roomID, tenantID string) (domain.Contract, error)

	UpdateContractStatus(ctx context.Context, id string, status domain.ContractStatus) error
}

type Bills interface {
	CreateBill(ctx context.Context, b domain.Bill) error
	GetBillByID(ctx context.Context, id string) (domain.Bill, error)
	ListBillsByContract(ctx context.Context, contractID string, p Page) ([]domain.Bill, error)
	ListBillsByTenant(ctx context.Context, tenantID string, p Page) ([]domain.Bill, error)
	ListBillsByOwner(ctx context.Context, ownerID string, p Page) ([]domain.Bill, error)

	// BillExistsForMonth enforces one bill per contract-month.
	BillExistsForMonth(ctx context.Context, contractID, month string) (bool, error)

	// UpdateBillStatus also records payment evidence when provided.
	UpdateBillStatus(ctx context.Context, id string, status domain.BillStatus, evidenceURL string) error
}

type Repairs interface {
	CreateRepair(ctx context.Context, r domain.Repair) error
	GetRepairByID(ctx context.Context, id string) (domain.Repair, error)
	ListRepairsByTenant(ctx context.Context, tenantID string, p Page) ([]domain.Repair, error)
	ListRepairsByOwner(ctx context.Context, ownerID string, p Page) ([]domain.Repair, error)
	UpdateRepairStatus(ctx context.Context, id string, status domain.RepairStatus) error
}
