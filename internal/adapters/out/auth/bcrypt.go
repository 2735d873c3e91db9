package auth

import (
	"hyperlocal/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

type BcryptHasher struct {
	cost int
}

var _ ports.PasswordHasher = BcryptHasher{}

// NewBcryptHasher uses bcrypt.DefaultCost when cost is outside bcrypt's range.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(b), err
}

func (h BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
