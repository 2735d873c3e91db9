package commands

import (
	"context"
	"time"

	"hyperlocal/internal/core/domain/model/settlement"
)

// RequestSettlementCommandHandler files a payout request for a merchant or agent.
type RequestSettlementCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewRequestSettlementCommandHandler creates a handler for payout requests.
func NewRequestSettlementCommandHandler(uowFactory SettlementUoWFactory) RequestSettlementCommandHandler {
	return RequestSettlementCommandHandler{uowFactory: uowFactory}
}

// Handle records the request. The amount is not checked against earnings.
func (h RequestSettlementCommandHandler) Handle(ctx context.Context, cmd RequestSettlementCommand) error {
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

	u, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	s, err := settlement.NewSettlement(cmd.SettlementID(), u.ID(), u.Name(), u.ActiveRole(), cmd.Amount(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.SettlementRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// SettleCommandHandler marks a pending request as paid.
type SettleCommandHandler struct {
	uowFactory SettlementUoWFactory
}

func NewSettleCommandHandler(uowFactory SettlementUoWFactory) SettleCommandHandler {
	return SettleCommandHandler{uowFactory: uowFactory}
}

// Handle settles the request. Only admins may settle, and a request is settled once;
// a second call returns settlement.ErrAlreadySettled.
func (h SettleCommandHandler) Handle(ctx context.Context, cmd SettleCommand) error {
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

	repo := uow.SettlementRepository()
	s, err := repo.Get(ctx, cmd.SettlementID())
	if err != nil {
		return err
	}

	if err = s.Settle(cmd.ActorID(), cmd.Role(), time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
