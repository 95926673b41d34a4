package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
	"github.com/dormdesk/dormdesk/pkg/cryptox"
	"github.com/dormdesk/dormdesk/pkg/jwtx"
	"github.com/dormdesk/dormdesk/pkg/slogx"
)

// AuthService mediates between presented credentials or tokens and the user
// store, producing token pairs. It never mutates user records.
type AuthService struct {
	Store store.Store
	Codec *jwtx.Codec
}

// Login authenticates a username/password pair and issues a fresh token pair.
// Returns ErrUserNotFound when the username is unknown and ErrInvalidPassword
// on a hash mismatch.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login password verification failed", "username", username)
		return nil, ErrInvalidPassword
	}

	return s.issuePair(u, time.Now())
}

// Refresh validates a refresh token and issues a brand-new pair (full
// rotation). The token's embedded key must still equal the user's current
// password hash; that equality is the sole revocation mechanism, so a
// password change invalidates every outstanding refresh token at once.
func (s *AuthService) Refresh(ctx context.Context, raw string) (*domain.TokenPair, error) {
	claims, err := s.Codec.VerifyRefresh(raw)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	// Re-resolve the user fresh from the store; the claims may be up to a
	// day old.
	u, err := s.Store.Users().GetUserByUsername(ctx, claims.Username)
	if errors.Is(err, store.ErrNotFound) && claims.Email != "" {
		u, err = s.Store.Users().GetUserByEmail(ctx, claims.Email)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(claims.Key), []byte(u.PasswordHash)) != 1 {
		return nil, ErrPasswordChanged
	}

	return s.issuePair(u, time.Now())
}

// issuePair signs the access/refresh pair for a user. The refresh token's key
// is a snapshot of the current password hash.
func (s *AuthService) issuePair(u domain.User, now time.Time) (*domain.TokenPair, error) {
	profile := jwtx.Profile{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		RoleID:    u.RoleID,
	}

	access, err := s.Codec.SignAccess(profile, now)
	if err != nil {
		return nil, err
	}

	refresh, err := s.Codec.SignRefresh(profile, u.PasswordHash, now)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
