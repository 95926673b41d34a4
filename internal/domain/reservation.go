package domain

import "time"

// ReservationStatus: pending -> approved | rejected | cancelled.
// Approval atomically creates a contract and marks the room occupied.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationApproved  ReservationStatus = "approved"
	ReservationRejected  ReservationStatus = "rejected"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID        string
	RoomID    string
	TenantID  string
	Status    ReservationStatus
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
