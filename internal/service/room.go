package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
	"github.com/dormdesk/dormdesk/pkg/idx"
	"github.com/dormdesk/dormdesk/pkg/slogx"
)

// BatchCollisionMode controls what happens when a generated room name
// already exists in the dorm.
type BatchCollisionMode string

const (
	// BatchSkip silently skips colliding names and creates the rest.
	BatchSkip BatchCollisionMode = "skip"

	// BatchStrict aborts the whole batch on the first collision.
	BatchStrict BatchCollisionMode = "strict"
)

// RoomService manages rooms within a dorm. Mutations require dorm ownership.
type RoomService struct {
	Store store.Store
	Dorms *DormService
}

// RoomParams is the create/update payload for a single room.
type RoomParams struct {
	Name        string
	Floor       int
	MonthlyRent float64
	Deposit     float64
}

// Create adds one room to an owned dorm.
func (s *RoomService) Create(ctx context.Context, dormID, ownerID string, p RoomParams) (domain.Room, error) {
	if _, err := s.Dorms.getOwned(ctx, dormID, ownerID); err != nil {
		return domain.Room{}, err
	}

	now := time.Now().UTC()
	r := domain.Room{
		ID:          idx.New().String(),
		DormID:      dormID,
		Name:        p.Name,
		Floor:       p.Floor,
		MonthlyRent: p.MonthlyRent,
		Deposit:     p.Deposit,
		Status:      domain.RoomAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Rooms().CreateRoom(ctx, r); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Room{}, ErrRoomNameTaken
		}
		return domain.Room{}, err
	}
	return r, nil
}

// BatchCreateParams describes a run of rooms to generate, named
// <prefix><number> for count consecutive numbers starting at start.
type BatchCreateParams struct {
	Prefix      string
	Start       int
	Count       int
	Floor       int
	MonthlyRent float64
	Deposit     float64
	Mode        BatchCollisionMode
}

// BatchCreate generates a numbered run of rooms inside a transaction.
// In skip mode colliding names are left out of the result; in strict mode
// any collision fails the whole batch with ErrRoomNameTaken.
func (s *RoomService) BatchCreate(ctx context.Context, dormID, ownerID string, p BatchCreateParams) ([]domain.Room, error) {
	if _, err := s.Dorms.getOwned(ctx, dormID, ownerID); err != nil {
		return nil, err
	}
	mode := p.Mode
	if mode == "" {
		mode = BatchSkip
	}

	var created []domain.Room
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		now := time.Now().UTC()
		for i := 0; i < p.Count; i++ {
			name := fmt.Sprintf("%s%d", p.Prefix, p.Start+i)

			exists, err := tx.Rooms().RoomNameExists(ctx, dormID, name)
			if err != nil {
				return err
			}
			if exists {
				if mode == BatchStrict {
					return ErrRoomNameTaken
				}
				continue
			}

			r := domain.Room{
				ID:          idx.New().String(),
				DormID:      dormID,
				Name:        name,
				Floor:       p.Floor,
				MonthlyRent: p.MonthlyRent,
				Deposit:     p.Deposit,
				Status:      domain.RoomAvailable,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tx.Rooms().CreateRoom(ctx, r); err != nil {
				return err
			}
			created = append(created, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Info("rooms batch created",
		"dorm_id", dormID, "requested", p.Count, "created", len(created))
	return created, nil
}

// Get fetches a room by id.
func (s *RoomService) Get(ctx context.Context, id string) (domain.Room, error) {
	r, err := s.Store.Rooms().GetRoomByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Room{}, ErrRoomNotFound
	}
	return r, err
}

// ListByDorm lists a dorm's rooms, optionally filtered by status.
func (s *RoomService) ListByDorm(ctx context.Context, dormID string, status domain.RoomStatus, p store.Page) ([]domain.Room, error) {
	if _, err := s.Dorms.Get(ctx, dormID); err != nil {
		return nil, err
	}
	return s.Store.Rooms().ListRoomsByDorm(ctx, dormID, status, p)
}

// Update replaces the editable fields of a room in an owned dorm.
func (s *RoomService) Update(ctx context.Context, roomID, ownerID string, p RoomParams) (domain.Room, error) {
	r, err := s.getOwned(ctx, roomID, ownerID)
	if err != nil {
		return domain.Room{}, err
	}

	r.Name = p.Name
	r.Floor = p.Floor
	r.MonthlyRent = p.MonthlyRent
	r.Deposit = p.Deposit
	r.UpdatedAt = time.Now().UTC()

	if err := s.Store.Rooms().UpdateRoom(ctx, r); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Room{}, ErrRoomNameTaken
		}
		return domain.Room{}, err
	}
	return r, nil
}

// SetStatus applies a manual status change, validated against the room state
// machine. Reservation and contract flows bypass this and drive their own
// transitions.
func (s *RoomService) SetStatus(ctx context.Context, roomID, ownerID string, status domain.RoomStatus) (domain.Room, error) {
	r, err := s.getOwned(ctx, roomID, ownerID)
	if err != nil {
		return domain.Room{}, err
	}

	if !domain.ValidRoomTransition(r.Status, status) {
		return domain.Room{}, ErrInvalidTransition
	}
	if err := s.Store.Rooms().UpdateRoomStatus(ctx, roomID, status); err != nil {
		return domain.Room{}, err
	}
	r.Status = status
	return r, nil
}

// Delete removes a room from an owned dorm.
func (s *RoomService) Delete(ctx context.Context, roomID, ownerID string) error {
	if _, err := s.getOwned(ctx, roomID, ownerID); err != nil {
		return err
	}
	return s.Store.Rooms().DeleteRoom(ctx, roomID)
}

// getOwned fetches a room and verifies the caller owns its dorm.
func (s *RoomService) getOwned(ctx context.Context, roomID, ownerID string) (domain.Room, error) {
	r, err := s.Get(ctx, roomID)
	if err != nil {
		return domain.Room{}, err
	}
	if _, err := s.Dorms.getOwned(ctx, r.DormID, ownerID); err != nil {
		return domain.Room{}, err
	}
	return r, nil
}
