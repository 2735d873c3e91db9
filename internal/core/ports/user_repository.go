package ports

import (
	"context"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add stores a new user. A taken email yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	// GetByEmail looks up a user by lower-cased email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
