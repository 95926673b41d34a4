package service

import (
	"context"
	"errors"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
	"github.com/dormdesk/dormdesk/pkg/idx"
)

// DormService manages dormitory records. All mutating operations are scoped
// to the owning user: touching someone else's dorm yields ErrForbidden.
type DormService struct {
	Store store.Store
}

// DormParams is the create/update payload for a dorm.
type DormParams struct {
	Name            string
	Address         string
	Description     string
	PhotoURL        string
	WaterRate       float64
	ElectricityRate float64
}

// Create registers a new dorm under ownerID.
func (s *DormService) Create(ctx context.Context, ownerID string, p DormParams) (domain.Dorm, error) {
	now := time.Now().UTC()
	d := domain.Dorm{
		ID:              idx.New().String(),
		OwnerID:         ownerID,
		Name:            p.Name,
		Address:         p.Address,
		Description:     p.Description,
		PhotoURL:        p.PhotoURL,
		WaterRate:       p.WaterRate,
		ElectricityRate: p.ElectricityRate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Store.Dorms().CreateDorm(ctx, d); err != nil {
		return domain.Dorm{}, err
	}
	return d, nil
}

// Get fetches a dorm by id.
func (s *DormService) Get(ctx context.Context, id string) (domain.Dorm, error) {
	d, err := s.Store.Dorms().GetDormByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Dorm{}, ErrDormNotFound
	}
	return d, err
}

// getOwned fetches a dorm and enforces ownership.
func (s *DormService) getOwned(ctx context.Context, dormID, ownerID string) (domain.Dorm, error) {
	d, err := s.Get(ctx, dormID)
	if err != nil {
		return domain.Dorm{}, err
	}
	if d.OwnerID != ownerID {
		return domain.Dorm{}, ErrForbidden
	}
	return d, nil
}

// ListByOwner lists the caller's dorms.
func (s *DormService) ListByOwner(ctx context.Context, ownerID string, p store.Page) ([]domain.Dorm, error) {
	return s.Store.Dorms().ListDormsByOwner(ctx, ownerID, p)
}

// Update replaces the editable fields of an owned dorm.
func (s *DormService) Update(ctx context.Context, dormID, ownerID string, p DormParams) (domain.Dorm, error) {
	d, err := s.getOwned(ctx, dormID, ownerID)
	if err != nil {
		return domain.Dorm{}, err
	}

	d.Name = p.Name
	d.Address = p.Address
	d.Description = p.Description
	d.PhotoURL = p.PhotoURL
	d.WaterRate = p.WaterRate
	d.ElectricityRate = p.ElectricityRate
	d.UpdatedAt = time.Now().UTC()

	if err := s.Store.Dorms().UpdateDorm(ctx, d); err != nil {
		return domain.Dorm{}, err
	}
	return d, nil
}

// Delete removes an owned dorm. Rooms cascade at the schema level.
func (s *DormService) Delete(ctx context.Context, dormID, ownerID string) error {
	if _, err := s.getOwned(ctx, dormID, ownerID); err != nil {
		return err
	}
	return s.Store.Dorms().DeleteDorm(ctx, dormID)
}

// ListPublic serves the unauthenticated dorm listing with availability
// aggregates.
func (s *DormService) ListPublic(ctx context.Context, p store.Page) ([]domain.DormListing, error) {
	return s.Store.Dorms().ListPublic(ctx, p)
}
