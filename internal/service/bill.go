package service

import (
	"context"
	"errors"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
	"github.com/dormdesk/dormdesk/pkg/idx"
	"github.com/dormdesk/dormdesk/pkg/slogx"
)

// BillService issues and settles monthly bills against active contracts.
// Utility amounts are computed from the dorm's per-unit rates at issue time.
type BillService struct {
	Store store.Store
}

// IssueParams holds the owner-provided metered readings for one bill.
type IssueParams struct {
	Month            string // "2006-01"
	WaterUnits       float64
	ElectricityUnits float64
	DueDate          time.Time
}

// Issue creates an unpaid bill for a contract-month. The rent comes from the
// contract, utility amounts from the dorm's rates times the given readings.
// At most one bill may exist per contract-month.
func (s *BillService) Issue(ctx context.Context, contractID, ownerID string, p IssueParams) (domain.Bill, error) {
	if _, err := time.Parse("2006-01", p.Month); err != nil {
		return domain.Bill{}, ErrInvalidMonth
	}

	var bill domain.Bill
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Contracts().GetContractByID(ctx, contractID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrContractNotFound
			}
			return err
		}
		if c.Status != domain.ContractActive {
			return ErrNoActiveContract
		}

		room, err := tx.Rooms().GetRoomByID(ctx, c.RoomID)
		if err != nil {
			return err
		}
		dorm, err := tx.Dorms().GetDormByID(ctx, room.DormID)
		if err != nil {
			return err
		}
		if dorm.OwnerID != ownerID {
			return ErrForbidden
		}

		exists, err := tx.Bills().BillExistsForMonth(ctx, contractID, p.Month)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateBill
		}

		waterAmount := p.WaterUnits * dorm.WaterRate
		elecAmount := p.ElectricityUnits * dorm.ElectricityRate

		now := time.Now().UTC()
		bill = domain.Bill{
			ID:                idx.New().String(),
			ContractID:        contractID,
			Month:             p.Month,
			RentAmount:        c.MonthlyRent,
			WaterUnits:        p.WaterUnits,
			WaterAmount:       waterAmount,
			ElectricityUnits:  p.ElectricityUnits,
			ElectricityAmount: elecAmount,
			Total:             c.MonthlyRent + waterAmount + elecAmount,
			DueDate:           p.DueDate,
			Status:            domain.BillUnpaid,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return tx.Bills().CreateBill(ctx, bill)
	})
	if err != nil {
		return domain.Bill{}, err
	}

	slogx.FromContext(ctx).Info("bill issued",
		"bill_id", bill.ID, "contract_id", contractID, "month", p.Month, "total", bill.Total)
	return bill, nil
}

// Get fetches a bill visible to the caller (the contract's tenant or the
// dorm owner).
func (s *BillService) Get(ctx context.Context, billID, callerID string) (domain.Bill, error) {
	b, c, err := s.load(ctx, billID)
	if err != nil {
		return domain.Bill{}, err
	}
	if c.TenantID != callerID {
		if _, err := s.dormOwner(ctx, c, callerID); err != nil {
			return domain.Bill{}, err
		}
	}
	return b, nil
}

// ListByContract lists a contract's bills for either party.
func (s *BillService) ListByContract(ctx context.Context, contractID, callerID string, p store.Page) ([]domain.Bill, error) {
	c, err := s.Store.Contracts().GetContractByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	if c.TenantID != callerID {
		if _, err := s.dormOwner(ctx, c, callerID); err != nil {
			return nil, err
		}
	}
	return s.Store.Bills().ListBillsByContract(ctx, contractID, p)
}

// ListByTenant lists bills across the caller's contracts.
func (s *BillService) ListByTenant(ctx context.Context, tenantID string, p store.Page) ([]domain.Bill, error) {
	return s.Store.Bills().ListBillsByTenant(ctx, tenantID, p)
}

// ListByOwner lists bills across contracts in the owner's dorms.
func (s *BillService) ListByOwner(ctx context.Context, ownerID string, p store.Page) ([]domain.Bill, error) {
	return s.Store.Bills().ListBillsByOwner(ctx, ownerID, p)
}

// SubmitPayment records payment evidence for an unpaid bill; tenant only.
func (s *BillService) SubmitPayment(ctx context.Context, billID, tenantID, evidenceURL string) error {
	b, c, err := s.load(ctx, billID)
	if err != nil {
		return err
	}
	if c.TenantID != tenantID {
		return ErrForbidden
	}
	if b.Status != domain.BillUnpaid {
		return ErrInvalidTransition
	}
	return s.Store.Bills().UpdateBillStatus(ctx, billID, domain.BillSubmitted, evidenceURL)
}

// Confirm marks a submitted bill as paid; dorm owner only.
func (s *BillService) Confirm(ctx context.Context, billID, ownerID string) error {
	b, c, err := s.load(ctx, billID)
	if err != nil {
		return err
	}
	if _, err := s.dormOwner(ctx, c, ownerID); err != nil {
		return err
	}
	if b.Status != domain.BillSubmitted {
		return ErrInvalidTransition
	}
	return s.Store.Bills().UpdateBillStatus(ctx, billID, domain.BillPaid, b.EvidenceURL)
}

// Void cancels an unpaid or submitted bill; dorm owner only.
func (s *BillService) Void(ctx context.Context, billID, ownerID string) error {
	b, c, err := s.load(ctx, billID)
	if err != nil {
		return err
	}
	if _, err := s.dormOwner(ctx, c, ownerID); err != nil {
		return err
	}
	if b.Status != domain.BillUnpaid && b.Status != domain.BillSubmitted {
		return ErrInvalidTransition
	}
	return s.Store.Bills().UpdateBillStatus(ctx, billID, domain.BillVoid, b.EvidenceURL)
}

func (s *BillService) load(ctx context.Context, billID string) (domain.Bill, domain.Contract, error) {
	b, err := s.Store.Bills().GetBillByID(ctx, billID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Bill{}, domain.Contract{}, ErrBillNotFound
		}
		return domain.Bill{}, domain.Contract{}, err
	}
	c, err := s.Store.Contracts().GetContractByID(ctx, b.ContractID)
	if err != nil {
		return domain.Bill{}, domain.Contract{}, err
	}
	return b, c, nil
}

// dormOwner resolves the contract's dorm and checks ownership.
func (s *BillService) dormOwner(ctx context.Context, c domain.Contract, ownerID string) (domain.Dorm, error) {
	room, err := s.Store.Rooms().GetRoomByID(ctx, c.RoomID)
	if err != nil {
		return domain.Dorm{}, err
	}
	dorm, err := s.Store.Dorms().GetDormByID(ctx, room.DormID)
	if err != nil {
		return domain.Dorm{}, err
	}
	if dorm.OwnerID != ownerID {
		return domain.Dorm{}, ErrForbidden
	}
	return dorm, nil
}
