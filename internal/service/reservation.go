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

// ReservationService drives the reservation state machine:
// pending -> approved | rejected | cancelled. Approval is the only way a
// contract comes into existence.
type ReservationService struct {
	Store store.Store
	Rooms *RoomService
}

// Reserve places a pending reservation for an available room and flips the
// room to reserved, atomically.
func (s *ReservationService) Reserve(ctx context.Context, roomID, tenantID, note string) (domain.Reservation, error) {
	var res domain.Reservation
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		room, err := tx.Rooms().GetRoomByID(ctx, roomID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.Status != domain.RoomAvailable {
			return ErrRoomNotAvailable
		}

		now := time.Now().UTC()
		res = domain.Reservation{
			ID:        idx.New().String(),
			RoomID:    roomID,
			TenantID:  tenantID,
			Status:    domain.ReservationPending,
			Note:      note,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Reservations().CreateReservation(ctx, res); err != nil {
			return err
		}
		return tx.Rooms().UpdateRoomStatus(ctx, roomID, domain.RoomReserved)
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	return res, nil
}

// Get fetches a reservation by id.
func (s *ReservationService) Get(ctx context.Context, id string) (domain.Reservation, error) {
	r, err := s.Store.Reservations().GetReservationByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Reservation{}, ErrReservationNotFound
	}
	return r, err
}

// ListByTenant lists the caller's own reservations.
func (s *ReservationService) ListByTenant(ctx context.Context, tenantID string, p store.Page) ([]domain.Reservation, error) {
	return s.Store.Reservations().ListReservationsByTenant(ctx, tenantID, p)
}

// ListByOwner lists reservations against rooms in the owner's dorms.
func (s *ReservationService) ListByOwner(ctx context.Context, ownerID string, p store.Page) ([]domain.Reservation, error) {
	return s.Store.Reservations().ListReservationsByOwner(ctx, ownerID, p)
}

// ApproveParams sets the terms of the contract created on approval.
type ApproveParams struct {
	StartDate time.Time
	Months    int
}

// Approve moves a pending reservation to approved and, in the same
// transaction, creates an active contract and marks the room occupied.
// Rent and deposit are frozen from the room at approval time.
func (s *ReservationService) Approve(ctx context.Context, reservationID, ownerID string, p ApproveParams) (domain.Contract, error) {
	var contract domain.Contract
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		res, room, err := s.ownedPending(ctx, tx, reservationID, ownerID)
		if err != nil {
			return err
		}

		if err := tx.Reservations().UpdateReservationStatus(ctx, res.ID, domain.ReservationApproved); err != nil {
			return err
		}

		now := time.Now().UTC()
		contract = domain.Contract{
			ID:          idx.New().String(),
			RoomID:      room.ID,
			TenantID:    res.TenantID,
			StartDate:   p.StartDate,
			Months:      p.Months,
			MonthlyRent: room.MonthlyRent,
			Deposit:     room.Deposit,
			Status:      domain.ContractActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.Contracts().CreateContract(ctx, contract); err != nil {
			return err
		}
		return tx.Rooms().UpdateRoomStatus(ctx, room.ID, domain.RoomOccupied)
	})
	if err != nil {
		return domain.Contract{}, err
	}

	slogx.FromContext(ctx).Info("reservation approved",
		"reservation_id", reservationID, "contract_id", contract.ID)
	return contract, nil
}

// Reject moves a pending reservation to rejected and frees the room.
func (s *ReservationService) Reject(ctx context.Context, reservationID, ownerID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		res, room, err := s.ownedPending(ctx, tx, reservationID, ownerID)
		if err != nil {
			return err
		}
		if err := tx.Reservations().UpdateReservationStatus(ctx, res.ID, domain.ReservationRejected); err != nil {
			return err
		}
		return tx.Rooms().UpdateRoomStatus(ctx, room.ID, domain.RoomAvailable)
	})
}

// Cancel lets the tenant withdraw their own pending reservation, freeing the
// room.
func (s *ReservationService) Cancel(ctx context.Context, reservationID, tenantID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		res, err := tx.Reservations().GetReservationByID(ctx, reservationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if res.TenantID != tenantID {
			return ErrForbidden
		}
		if res.Status != domain.ReservationPending {
			return ErrInvalidTransition
		}
		if err := tx.Reservations().UpdateReservationStatus(ctx, res.ID, domain.ReservationCancelled); err != nil {
			return err
		}
		return tx.Rooms().UpdateRoomStatus(ctx, res.RoomID, domain.RoomAvailable)
	})
}

// ownedPending loads a reservation, verifies it is pending and that ownerID
// owns the dorm of its room.
func (s *ReservationService) ownedPending(ctx context.Context, tx store.Tx, reservationID, ownerID string) (domain.Reservation, domain.Room, error) {
	res, err := tx.Reservations().GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Reservation{}, domain.Room{}, ErrReservationNotFound
		}
		return domain.Reservation{}, domain.Room{}, err
	}

	room, err := tx.Rooms().GetRoomByID(ctx, res.RoomID)
	if err != nil {
		return domain.Reservation{}, domain.Room{}, err
	}
	dorm, err := tx.Dorms().GetDormByID(ctx, room.DormID)
	if err != nil {
		return domain.Reservation{}, domain.Room{}, err
	}
	if dorm.OwnerID != ownerID {
		return domain.Reservation{}, domain.Room{}, ErrForbidden
	}
	if res.Status != domain.ReservationPending {
		return domain.Reservation{}, domain.Room{}, ErrInvalidTransition
	}
	return res, room, nil
}
