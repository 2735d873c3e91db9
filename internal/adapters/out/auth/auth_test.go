package auth

import (
	"testing"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := NewTokenService("secret", 0)
	require.NoError(t, err)
	userID := kernel.NewUUID()

	token, expiresAt, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), expiresAt, time.Minute)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)
	token, _, err := svc.Issue(kernel.NewUUID())
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsForeignSecret(t *testing.T) {
	issuer, err := NewTokenService("one", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenService("two", time.Hour)
	require.NoError(t, err)
	token, _, err := issuer.Issue(kernel.NewUUID())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsRefreshTokens(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  kernel.NewUUID().String(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "refresh",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, h.Compare(hash, "password123"))
	assert.Error(t, h.Compare(hash, "password124"))
}
