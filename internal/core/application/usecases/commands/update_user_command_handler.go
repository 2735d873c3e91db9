package commands

import (
	"context"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/user"
)

// ToggleOnlineCommandHandler flips an agent between online and offline. Offline agents cannot claim orders.
type ToggleOnlineCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewToggleOnlineCommandHandler creates a handler for the online flag.
func NewToggleOnlineCommandHandler(uowFactory UserUoWFactory) ToggleOnlineCommandHandler {
	return ToggleOnlineCommandHandler{uowFactory: uowFactory}
}

// Handle flips the online flag and returns the new value.
func (h ToggleOnlineCommandHandler) Handle(ctx context.Context, cmd ToggleOnlineCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var online bool
	err := mutateUser(ctx, h.uowFactory, cmd.UserID(), func(u *user.User) error {
		online = u.ToggleOnline()
		return nil
	})
	return online, err
}

// UpdateProfileCommandHandler applies a partial profile patch.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{uowFactory: uowFactory}
}

func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateUser(ctx, h.uowFactory, cmd.UserID(), func(u *user.User) error {
		return u.UpdateProfile(cmd.Patch())
	})
}

// mutateUser loads a user, applies fn and stores the result in one transaction.
func mutateUser(ctx context.Context, factory UserUoWFactory, userID kernel.UUID, fn func(*user.User) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if err = fn(u); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
