package domain

import "time"

// BillStatus: unpaid -> submitted -> paid, or unpaid -> void.
// The tenant submits payment evidence; the owner confirms or voids.
type BillStatus string

const (
	BillUnpaid    BillStatus = "unpaid"
	BillSubmitted BillStatus = "submitted"
	BillPaid      BillStatus = "paid"
	BillVoid      BillStatus = "void"
)

type Bill struct {
	ID         string
	ContractID string

	// Month the bill covers, formatted "2006-01". One bill per contract-month.
	Month string

	RentAmount       float64
	WaterUnits       float64
	WaterAmount      float64
	ElectricityUnits float64
	ElectricityAmount float64
	Total            float64

	DueDate     time.Time
	Status      BillStatus
	EvidenceURL string // payment evidence uploaded by the tenant

	CreatedAt time.Time
	UpdatedAt time.Time
}
