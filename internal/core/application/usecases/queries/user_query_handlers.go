package queries

import (
	"context"
	"errors"

	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/pkg/errs"
)

// LoginQueryHandler checks credentials and issues a bearer token.
type LoginQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewLoginQueryHandler(uowFactory ports.UnitOfWorkFactory, hasher ports.PasswordHasher, tokens ports.TokenIssuer) LoginQueryHandler {
	return LoginQueryHandler{uowFactory: uowFactory, hasher: hasher, tokens: tokens}
}

func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginResult, error) {
	if err := query.Validate(); err != nil {
		return LoginResult{}, err
	}

	u, err := h.uowFactory.Create().UserRepository().GetByEmail(ctx, query.email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), query.password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := h.tokens.Issue(u.ID())
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, ExpiresAt: expiresAt, User: userView(u)}, nil
}

// GetCurrentUserQueryHandler re-reads the user on every request so that role switches and
// online toggles take effect immediately.
type GetCurrentUserQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetCurrentUserQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCurrentUserQueryHandler {
	return GetCurrentUserQueryHandler{uowFactory: uowFactory}
}

func (h GetCurrentUserQueryHandler) Handle(ctx context.Context, query GetCurrentUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	u, err := h.uowFactory.Create().UserRepository().Get(ctx, query.userID)
	if err != nil {
		return UserView{}, err
	}
	return userView(u), nil
}
