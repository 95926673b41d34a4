package domain

import "time"

// RepairStatus: open -> in_progress -> done, or open -> declined.
type RepairStatus string

const (
	RepairOpen       RepairStatus = "open"
	RepairInProgress RepairStatus = "in_progress"
	RepairDone       RepairStatus = "done"
	RepairDeclined   RepairStatus = "declined"
)

// ValidRepairTransition reports whether the owner may move a request
// between the given states.
func ValidRepairTransition(from, to RepairStatus) bool {
	switch from {
	case RepairOpen:
		return to == RepairInProgress || to == RepairDeclined
	case RepairInProgress:
		return to == RepairDone
	}
	return false
}

type Repair struct {
	ID          string
	RoomID      string
	TenantID    string
	Title       string
	Description string
	PhotoURL    string
	Status      RepairStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
