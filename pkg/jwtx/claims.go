package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token type discriminators. Every token carries one so an access token can
// never be replayed at the refresh endpoint (and vice versa), even before
// the secret check.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Default token TTLs. Access tokens are short-lived bearer credentials;
// refresh tokens live for a day and are revoked implicitly by password change.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 24 * time.Hour
)

// Profile is the non-secret user payload embedded in every token. It is
// trusted at verification time without a store lookup.
type Profile struct {
	UserID    string `json:"uid,omitempty"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`

	// RoleID references the role entity; the role *name* is deliberately not
	// embedded and must be resolved through the role store when needed.
	RoleID string `json:"role_id,omitempty"`
}

// AccessClaims are the claims of a short-lived access token.
type AccessClaims struct {
	jwt.RegisteredClaims

	TokenType string `json:"type"`
	Profile
}

// RefreshClaims are the claims of a refresh token. Key is the password-hash
// snapshot taken at issuance: the token is usable only while it still equals
// the user's current hash, which makes a password change revoke every
// outstanding refresh token without a server-side blacklist.
type RefreshClaims struct {
	jwt.RegisteredClaims

	TokenType string `json:"type"`
	Key       string `json:"key"`
	Profile
}

func newRegisteredClaims(subject, issuer string, ttl time.Duration, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}
