package domain

import "time"

type ContractStatus string

const (
	ContractActive     ContractStatus = "active"
	ContractTerminated ContractStatus = "terminated"
	ContractExpired    ContractStatus = "expired"
)

// Contract is created only by reservation approval, never directly.
type Contract struct {
	ID          string
	RoomID      string
	TenantID    string
	StartDate   time.Time
	Months      int
	MonthlyRent float64
	Deposit     float64
	Status      ContractStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
