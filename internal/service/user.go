package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
	"github.com/dormdesk/dormdesk/pkg/cryptox"
	"github.com/dormdesk/dormdesk/pkg/idx"
	"github.com/dormdesk/dormdesk/pkg/slogx"
)

// UserService owns registration and self-service profile management.
type UserService struct {
	Store store.Store

	// AllowOwnerSignup gates self-registration with the owner role. When
	// false, owner accounts can only be provisioned out of band.
	AllowOwnerSignup bool
}

// RegisterParams carries the self-registration payload after HTTP-level
// validation.
type RegisterParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	RoleName  string
}

// Register creates a user account. The role is given by name ("owner" or
// "tenant"); unknown names and an empty string both default to tenant.
func (s *UserService) Register(ctx context.Context, p RegisterParams) (domain.User, error) {
	l := slogx.FromContext(ctx)

	roleName := strings.ToLower(strings.TrimSpace(p.RoleName))
	if roleName == "" {
		roleName = domain.RoleTenant
	}
	if roleName == domain.RoleOwner && !s.AllowOwnerSignup {
		return domain.User{}, ErrOwnerSignupOff
	}

	role, err := s.Store.Roles().GetRoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			role, err = s.Store.Roles().GetRoleByName(ctx, domain.RoleTenant)
		}
		if err != nil {
			return domain.User{}, err
		}
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Phone:        p.Phone,
		PasswordHash: hash,
		RoleID:       role.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateUser
		}
		return domain.User{}, err
	}

	l.Info("user registered", "user_id", u.ID, "role", roleName)
	return u, nil
}

// Get fetches a user by id.
func (s *UserService) Get(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// UpdateProfileParams holds the mutable self-profile fields. Nil pointers
// mean "leave unchanged".
type UpdateProfileParams struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	PictureURL *string
}

// UpdateProfile patches the caller's profile and returns the updated record.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, p UpdateProfileParams) (domain.User, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.PictureURL != nil {
		u.PictureURL = *p.PictureURL
	}

	if err := s.Store.Users().UpdateProfile(ctx, u.ID, u.FirstName, u.LastName, u.Phone, u.PictureURL); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return s.Get(ctx, userID)
}

// ChangePassword verifies the current password before swapping the hash.
// Rotating the hash invalidates every refresh token issued before the change.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}

	if err := cryptox.VerifyPassword(oldPassword, u.PasswordHash); err != nil {
		return ErrInvalidPassword
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("password changed", "user_id", userID)
	return nil
}
