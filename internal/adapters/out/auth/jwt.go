// Package auth implements bearer tokens (HS256 JWT) and bcrypt password hashing.
package auth

import (
	"errors"
	"fmt"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTokenTTL = 72 * time.Hour
	accessTokenType = "access"
)

// ErrInvalidToken covers every reason a bearer token is refused: bad signature, expiry, wrong
// type or a malformed subject.
var ErrInvalidToken = errors.New("invalid token")

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var (
	_ ports.TokenIssuer   = (*TokenService)(nil)
	_ ports.TokenVerifier = (*TokenService)(nil)
)

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs an access token for userID.
func (s *TokenService) Issue(userID kernel.UUID) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"type": accessTokenType,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify returns the user the token was issued for.
func (s *TokenService) Verify(raw string) (kernel.UUID, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != accessTokenType {
		return kernel.UUID{}, fmt.Errorf("%w: not an access token", ErrInvalidToken)
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	id, err := kernel.UUIDFromString(sub)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return id, nil
}
