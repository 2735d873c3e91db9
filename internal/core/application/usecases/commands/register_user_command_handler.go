package commands

import (
	"context"
	"errors"
	"time"

	"hyperlocal/internal/core/domain/model/user"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/pkg/errs"
)

// RegisterUserCommandHandler hashes the password and stores the new account.
// A taken email is reported as errs.ErrObjectAlreadyExists.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler that hashes passwords with hasher.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle registers the account.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // email is taken
//	}
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(), hash, cmd.Roles(), cmd.Profile(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	_, err = userRepo.GetByEmail(ctx, u.Email())
	switch {
	case err == nil:
		return errs.NewObjectAlreadyExistsError("email", u.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
