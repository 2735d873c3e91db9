package queries

import (
	"errors"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New("GetCartQuery must be created via NewGetCartQuery")

// GetCartQuery reads the user's cart priced against the current catalogue.
type GetCartQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}
