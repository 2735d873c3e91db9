package queries

import (
	"errors"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New("GetDashboardQuery must be created via NewGetDashboardQuery")

// GetDashboardQuery asks for the statistics of the user's active role.
type GetDashboardQuery struct {
	userID kernel.UUID
	role   kernel.Role

	guard guard.ConstructorGuard
}

func NewGetDashboardQuery(userID kernel.UUID, role kernel.Role) (GetDashboardQuery, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return GetDashboardQuery{}, err
	}
	return GetDashboardQuery{userID: userID, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}
