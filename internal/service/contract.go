package service

import (
	"context"
	"errors"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
)

// ContractService exposes contracts for both parties. Contracts are created
// exclusively by reservation approval; this service only reads and ends them.
type ContractService struct {
	Store store.Store
}

// Get returns a contract visible to the caller: its tenant or the owner of
// the dorm containing its room.
func (s *ContractService) Get(ctx context.Context, contractID, callerID string) (domain.Contract, error) {
	c, err := s.Store.Contracts().GetContractByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Contract{}, ErrContractNotFound
		}
		return domain.Contract{}, err
	}
	if err := s.authorize(ctx, c, callerID); err != nil {
		return domain.Contract{}, err
	}
	return c, nil
}

// ListByTenant lists the caller's contracts.
func (s *ContractService) ListByTenant(ctx context.Context, tenantID string, p store.Page) ([]domain.Contract, error) {
	return s.Store.Contracts().ListContractsByTenant(ctx, tenantID, p)
}

// ListByOwner lists contracts over rooms in the owner's dorms.
func (s *ContractService) ListByOwner(ctx context.Context, ownerID string, p store.Page) ([]domain.Contract, error) {
	return s.Store.Contracts().ListContractsByOwner(ctx, ownerID, p)
}

// Terminate ends an active contract early (owner only) and frees the room
// in the same transaction.
func (s *ContractService) Terminate(ctx context.Context, contractID, ownerID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Contracts().GetContractByID(ctx, contractID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrContractNotFound
			}
			return err
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
		if c.Status != domain.ContractActive {
			return ErrInvalidTransition
		}

		if err := tx.Contracts().UpdateContractStatus(ctx, c.ID, domain.ContractTerminated); err != nil {
			return err
		}
		return tx.Rooms().UpdateRoomStatus(ctx, room.ID, domain.RoomAvailable)
	})
}

// authorize checks the caller is a party to the contract.
func (s *ContractService) authorize(ctx context.Context, c domain.Contract, callerID string) error {
	if c.TenantID == callerID {
		return nil
	}
	room, err := s.Store.Rooms().GetRoomByID(ctx, c.RoomID)
	if err != nil {
		return err
	}
	dorm, err := s.Store.Dorms().GetDormByID(ctx, room.DormID)
	if err != nil {
		return err
	}
	if dorm.OwnerID != callerID {
		return ErrForbidden
	}
	return nil
}
