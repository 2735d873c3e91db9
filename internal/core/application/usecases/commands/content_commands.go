package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hyperlocal/internal/core/domain/model/content"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var ErrContentCommandIsNotConstructed = errors.New("content command must be created via its constructor")

func requireAdmin(role kernel.Role, action string) error {
	if role != kernel.RoleAdmin {
		return errs.NewForbiddenError(action + " as " + role.String())
	}
	return nil
}

// CreateBannerCommand adds an active banner. Admin only.
type CreateBannerCommand struct {
	banner *content.Banner

	guard guard.ConstructorGuard
}

func NewCreateBannerCommand(
	bannerID kernel.UUID,
	role kernel.Role,
	title, imageURL, link string,
	position int,
) (CreateBannerCommand, error) {
	if err := requireAdmin(role, "create banner"); err != nil {
		return CreateBannerCommand{}, err
	}
	b, err := content.NewBanner(bannerID, title, imageURL, link, position, time.Now())
	if err != nil {
		return CreateBannerCommand{}, err
	}
	return CreateBannerCommand{banner: b, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateBannerCommand) Validate() error {
	return c.guard.Validate(ErrContentCommandIsNotConstructed)
}

func (c CreateBannerCommand) Banner() *content.Banner {
	return c.banner
}

// UpsertCMSCommand stores a CMS value under key, replacing any previous value. Admin only.
type UpsertCMSCommand struct {
	entry *content.CMSEntry

	guard guard.ConstructorGuard
}

func NewUpsertCMSCommand(role kernel.Role, key string, value json.RawMessage) (UpsertCMSCommand, error) {
	if err := requireAdmin(role, "update cms"); err != nil {
		return UpsertCMSCommand{}, err
	}
	e, err := content.NewCMSEntry(key, value, time.Now())
	if err != nil {
		return UpsertCMSCommand{}, err
	}
	return UpsertCMSCommand{entry: e, guard: guard.NewConstructorGuard()}, nil
}

func (c UpsertCMSCommand) Validate() error {
	return c.guard.Validate(ErrContentCommandIsNotConstructed)
}

func (c UpsertCMSCommand) Entry() *content.CMSEntry {
	return c.entry
}

// CreateBannerCommandHandler stores a new banner.
type CreateBannerCommandHandler struct {
	uowFactory ContentUoWFactory
}

func NewCreateBannerCommandHandler(uowFactory ContentUoWFactory) CreateBannerCommandHandler {
	return CreateBannerCommandHandler{uowFactory: uowFactory}
}

func (h CreateBannerCommandHandler) Handle(ctx context.Context, cmd CreateBannerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return withContent(ctx, h.uowFactory, func(ctx context.Context, uow ContentUoW) error {
		return uow.ContentRepository().AddBanner(ctx, cmd.Banner())
	})
}

// UpsertCMSCommandHandler creates or replaces the CMS entry under its key.
type UpsertCMSCommandHandler struct {
	uowFactory ContentUoWFactory
}

func NewUpsertCMSCommandHandler(uowFactory ContentUoWFactory) UpsertCMSCommandHandler {
	return UpsertCMSCommandHandler{uowFactory: uowFactory}
}

// Handle writes the entry. An existing entry with the same key is replaced in place.
func (h UpsertCMSCommandHandler) Handle(ctx context.Context, cmd UpsertCMSCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return withContent(ctx, h.uowFactory, func(ctx context.Context, uow ContentUoW) error {
		return uow.ContentRepository().UpsertCMS(ctx, cmd.Entry())
	})
}

func withContent(ctx context.Context, factory ContentUoWFactory, fn func(context.Context, ContentUoW) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(ctx, uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
