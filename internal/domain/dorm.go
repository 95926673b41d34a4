package domain

import "time"

type Dorm struct {
	ID          string
	OwnerID     string
	Name        string
	Address     string
	Description string
	PhotoURL    string

	// Utility rates used when issuing bills, per metered unit.
	WaterRate       float64
	ElectricityRate float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DormListing is the public-listing projection of a dorm: aggregate room
// availability and price range, no owner-only fields.
type DormListing struct {
	ID             string
	Name           string
	Address        string
	Description    string
	PhotoURL       string
	AvailableRooms int
	TotalRooms     int
	MinRent        float64
	MaxRent        float64
}
