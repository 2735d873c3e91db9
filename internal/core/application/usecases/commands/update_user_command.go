package commands

import (
	"errors"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/user"
	"hyperlocal/internal/pkg/guard"
)

var (
	ErrToggleOnlineCommandIsNotConstructed = errors.New(
		"ToggleOnlineCommand must be created via NewToggleOnlineCommand constructor",
	)
	ErrUpdateProfileCommandIsNotConstructed = errors.New(
		"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
	)
)

// ToggleOnlineCommand flips the user's availability. Agents must be online to claim orders.
type ToggleOnlineCommand struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewToggleOnlineCommand(userID kernel.UUID) (ToggleOnlineCommand, error) {
	if err := userID.Validate(); err != nil {
		return ToggleOnlineCommand{}, err
	}
	return ToggleOnlineCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleOnlineCommand) Validate() error {
	return c.guard.Validate(ErrToggleOnlineCommandIsNotConstructed)
}

func (c ToggleOnlineCommand) UserID() kernel.UUID {
	return c.userID
}

// UpdateProfileCommand changes the editable profile fields. Nil fields are left as they are.
type UpdateProfileCommand struct {
	userID kernel.UUID
	patch  user.ProfilePatch

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(userID kernel.UUID, patch user.ProfilePatch) (UpdateProfileCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}
	return UpdateProfileCommand{userID: userID, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateProfileCommand) Patch() user.ProfilePatch {
	return c.patch
}
