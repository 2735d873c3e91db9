package commands

import (
	"context"
)

// SwitchRoleCommandHandler moves the active role to one of the roles the user already holds.
type SwitchRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewSwitchRoleCommandHandler(uowFactory UserUoWFactory) SwitchRoleCommandHandler {
	return SwitchRoleCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrValueIsInvalid when the user lacks the requested role.
func (h SwitchRoleCommandHandler) Handle(ctx context.Context, cmd SwitchRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = u.SwitchRole(cmd.Role()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
