package commands

import (
	"errors"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/guard"
)

var ErrSwitchRoleCommandIsNotConstructed = errors.New(
	"SwitchRoleCommand must be created via NewSwitchRoleCommand constructor",
)

// SwitchRoleCommand changes the role a user acts under.
type SwitchRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   kernel.Role

	guard guard.ConstructorGuard
}

func NewSwitchRoleCommand(userID kernel.UUID, role string) (SwitchRoleCommand, error) {
	r, err := kernel.ParseRole(role)
	if err = errors.Join(userID.Validate(), err); err != nil {
		return SwitchRoleCommand{}, err
	}
	return SwitchRoleCommand{userID: userID, role: r, guard: guard.NewConstructorGuard()}, nil
}

func (c SwitchRoleCommand) Validate() error {
	return c.guard.Validate(ErrSwitchRoleCommandIsNotConstructed)
}

func (c SwitchRoleCommand) UserID() kernel.UUID {
	return c.userID
}

func (c SwitchRoleCommand) Role() kernel.Role {
	return c.role
}
