// Package jwtx signs and verifies the two token kinds issued by the service:
// short-lived access tokens and password-hash-keyed refresh tokens. Both are
// HS256 JWTs signed with distinct symmetric secrets.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret reports a missing signing secret. This is a deployment
	// misconfiguration and is terminal.
	ErrNoSecret = errors.New("jwtx: signing secret not configured")

	// ErrInvalid covers malformed tokens, bad signatures and wrong token types.
	ErrInvalid = errors.New("jwtx: invalid token")

	// ErrExpired reports a token past its exp claim.
	ErrExpired = errors.New("jwtx: token expired")
)

// Codec signs and verifies token pairs. Secrets are fixed at construction and
// never rotated at runtime; rotating them invalidates all outstanding tokens
// of that kind.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewCodec builds a Codec from explicit configuration. Both secrets are
// required; an empty secret returns ErrNoSecret.
func NewCodec(accessSecret, refreshSecret []byte, issuer string, accessTTL, refreshTTL time.Duration) (*Codec, error) {
	if len(accessSecret) == 0 || len(refreshSecret) == 0 {
		return nil, ErrNoSecret
	}
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &Codec{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// AccessTTL returns the configured access-token lifetime.
func (c *Codec) AccessTTL() time.Duration { return c.accessTTL }

// SignAccess issues an access token for the given profile.
func (c *Codec) SignAccess(p Profile, now time.Time) (string, error) {
	claims := AccessClaims{
		RegisteredClaims: newRegisteredClaims(p.UserID, c.issuer, c.accessTTL, now),
		TokenType:        TokenTypeAccess,
		Profile:          p,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.accessSecret)
}

// SignRefresh issues a refresh token carrying the password-hash snapshot key.
func (c *Codec) SignRefresh(p Profile, key string, now time.Time) (string, error) {
	claims := RefreshClaims{
		RegisteredClaims: newRegisteredClaims(p.UserID, c.issuer, c.refreshTTL, now),
		TokenType:        TokenTypeRefresh,
		Key:              key,
		Profile:          p,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.refreshSecret)
}

// VerifyAccess parses and validates an access token. It returns ErrExpired
// for tokens past their exp claim and ErrInvalid for everything else that is
// wrong: bad signature, malformed token, or a non-access token type.
func (c *Codec) VerifyAccess(raw string) (AccessClaims, error) {
	var claims AccessClaims
	if err := c.parse(raw, &claims, c.accessSecret); err != nil {
		return AccessClaims{}, err
	}
	if claims.TokenType != TokenTypeAccess {
		return AccessClaims{}, ErrInvalid
	}
	return claims, nil
}

// VerifyRefresh parses and validates a refresh token, enforcing the refresh
// type discriminator and a non-empty key claim.
func (c *Codec) VerifyRefresh(raw string) (RefreshClaims, error) {
	var claims RefreshClaims
	if err := c.parse(raw, &claims, c.refreshSecret); err != nil {
		return RefreshClaims{}, err
	}
	if claims.TokenType != TokenTypeRefresh || claims.Key == "" {
		return RefreshClaims{}, ErrInvalid
	}
	return claims, nil
}

func (c *Codec) parse(raw string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpired
		}
		return ErrInvalid
	}
	if !token.Valid {
		return ErrInvalid
	}
	return nil
}
