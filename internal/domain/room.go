package domain

import "time"

// RoomStatus is the room occupancy state machine:
// available -> reserved -> occupied -> available, with maintenance reachable
// only from (and back to) available.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomReserved    RoomStatus = "reserved"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// ValidRoomTransition reports whether a manual status change is allowed.
// Reservation and contract flows move rooms through their own transitions.
func ValidRoomTransition(from, to RoomStatus) bool {
	switch from {
	case RoomAvailable:
		return to == RoomReserved || to == RoomMaintenance
	case RoomReserved:
		return to == RoomAvailable || to == RoomOccupied
	case RoomOccupied:
		return to == RoomAvailable
	case RoomMaintenance:
		return to == RoomAvailable
	}
	return false
}

type Room struct {
	ID          string
	DormID      string
	Name        string
	Floor       int
	MonthlyRent float64
	Deposit     float64
	Status      RoomStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
