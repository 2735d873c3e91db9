package commands

import (
	"errors"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/guard"
)

var ErrSettlementCommandIsNotConstructed = errors.New("settlement command must be created via its constructor")

// RequestSettlementCommand opens a pending payout for the requesting user. The role recorded
// on the settlement is the user's active role at the time of the request.
type RequestSettlementCommand struct {
	settlementID kernel.UUID
	userID       kernel.UUID
	amount       kernel.Money

	guard guard.ConstructorGuard
}

func NewRequestSettlementCommand(settlementID, userID kernel.UUID, amount kernel.Money) (RequestSettlementCommand, error) {
	if err := errors.Join(settlementID.Validate(), userID.Validate()); err != nil {
		return RequestSettlementCommand{}, err
	}
	return RequestSettlementCommand{
		settlementID: settlementID,
		userID:       userID,
		amount:       amount,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RequestSettlementCommand) Validate() error {
	return c.guard.Validate(ErrSettlementCommandIsNotConstructed)
}

func (c RequestSettlementCommand) SettlementID() kernel.UUID { return c.settlementID }
func (c RequestSettlementCommand) UserID() kernel.UUID { return c.userID }
func (c RequestSettlementCommand) Amount() kernel.Money { return c.amount }

// SettleCommand marks a pending settlement as paid out.
type SettleCommand struct {
	settlementID kernel.UUID
	actorID      kernel.UUID
	role         kernel.Role

	guard guard.ConstructorGuard
}

func NewSettleCommand(settlementID, actorID kernel.UUID, role kernel.Role) (SettleCommand, error) {
	if err := errors.Join(settlementID.Validate(), actorID.Validate(), role.Validate()); err != nil {
		return SettleCommand{}, err
	}
	return SettleCommand{settlementID: settlementID, actorID: actorID, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (c SettleCommand) Validate() error {
	return c.guard.Validate(ErrSettlementCommandIsNotConstructed)
}

func (c SettleCommand) SettlementID() kernel.UUID { return c.settlementID }
func (c SettleCommand) ActorID() kernel.UUID { return c.actorID }
func (c SettleCommand) Role() kernel.Role { return c.role }
