package service

import (
	"context"
	"errors"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
	"github.com/dormdesk/dormdesk/pkg/idx"
)

// RepairService handles maintenance requests. Tenants may only file against
// a room they hold an active contract for; the owner drives the status.
type RepairService struct {
	Store store.Store
}

// RepairParams is the tenant-supplied request payload.
type RepairParams struct {
	Title       string
	Description string
	PhotoURL    string
}

// Create files a repair request for the tenant's room. The tenant must have
// an active contract on the room.
func (s *RepairService) Create(ctx context.Context, roomID, tenantID string, p RepairParams) (domain.Repair, error) {
	if _, err := s.Store.Contracts().GetActiveContract(ctx, roomID, tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Repair{}, ErrNoActiveContract
		}
		return domain.Repair{}, err
	}

	now := time.Now().UTC()
	r := domain.Repair{
		ID:          idx.New().String(),
		RoomID:      roomID,
		TenantID:    tenantID,
		Title:       p.Title,
		Description: p.Description,
		PhotoURL:    p.PhotoURL,
		Status:      domain.RepairOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Repairs().CreateRepair(ctx, r); err != nil {
		return domain.Repair{}, err
	}
	return r, nil
}

// Get fetches a repair visible to the caller: the filing tenant or the dorm
// owner.
func (s *RepairService) Get(ctx context.Context, repairID, callerID string) (domain.Repair, error) {
	r, err := s.Store.Repairs().GetRepairByID(ctx, repairID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Repair{}, ErrRepairNotFound
		}
		return domain.Repair{}, err
	}
	if r.TenantID != callerID {
		if err := s.requireDormOwner(ctx, r.RoomID, callerID); err != nil {
			return domain.Repair{}, err
		}
	}
	return r, nil
}

// ListByTenant lists the caller's own repair requests.
func (s *RepairService) ListByTenant(ctx context.Context, tenantID string, p store.Page) ([]domain.Repair, error) {
	return s.Store.Repairs().ListRepairsByTenant(ctx, tenantID, p)
}

// ListByOwner lists repair requests against rooms in the owner's dorms.
func (s *RepairService) ListByOwner(ctx context.Context, ownerID string, p store.Page) ([]domain.Repair, error) {
	return s.Store.Repairs().ListRepairsByOwner(ctx, ownerID, p)
}

// UpdateStatus moves a repair through its state machine; dorm owner only.
func (s *RepairService) UpdateStatus(ctx context.Context, repairID, ownerID string, status domain.RepairStatus) (domain.Repair, error) {
	r, err := s.Store.Repairs().GetRepairByID(ctx, repairID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Repair{}, ErrRepairNotFound
		}
		return domain.Repair{}, err
	}
	if err := s.requireDormOwner(ctx, r.RoomID, ownerID); err != nil {
		return domain.Repair{}, err
	}
	if !domain.ValidRepairTransition(r.Status, status) {
		return domain.Repair{}, ErrInvalidTransition
	}

	if err := s.Store.Repairs().UpdateRepairStatus(ctx, repairID, status); err != nil {
		return domain.Repair{}, err
	}
	r.Status = status
	return r, nil
}

func (s *RepairService) requireDormOwner(ctx context.Context, roomID, ownerID string) error {
	room, err := s.Store.Rooms().GetRoomByID(ctx, roomID)
	if err != nil {
		return err
	}
	dorm, err := s.Store.Dorms().GetDormByID(ctx, room.DormID)
	if err != nil {
		return err
	}
	if dorm.OwnerID != ownerID {
		return ErrForbidden
	}
	return nil
}
