// Package settlement models payout requests by merchants and agents and their settlement by
// an admin. Each request is its own record; there is no running balance.
package settlement

import (
	"errors"
	"fmt"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var (
	ErrSettlementIsNotConstructed = errors.New("Settlement must be created via NewSettlement or RestoreSettlement")

	// ErrAlreadySettled is returned when settling a record that is no longer pending.
	ErrAlreadySettled = errors.New("settlement is already settled")
)

type Status string

const (
	Pending Status = "pending"
	Settled Status = "settled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Pending, Settled:
		return Status(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a settlement status", s))
	}
}

func (s Status) String() string {
	return string(s)
}

// Settlement is a single payout claim.
type Settlement struct {
	id          kernel.UUID
	userID      kernel.UUID
	userName    string
	role        kernel.Role
	amount      kernel.Money
	status      Status
	createdAt   time.Time
	settledAt   *time.Time
	settledByID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSettlement opens a pending request. Only merchants and agents request payouts, and the
// amount must be positive.
func NewSettlement(id, userID kernel.UUID, userName string, role kernel.Role, amount kernel.Money, now time.Time) (
	*Settlement, error,
) {
	if role != kernel.RoleMerchant && role != kernel.RoleAgent {
		return nil, errs.NewForbiddenError("request settlement as " + role.String())
	}

	var amountErr error
	if !amount.IsPositive() {
		amountErr = errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is not positive", amount))
	}
	if err := errors.Join(id.Validate(), userID.Validate(), amountErr); err != nil {
		return nil, err
	}

	return &Settlement{
		id:        id,
		userID:    userID,
		userName:  userName,
		role:      role,
		amount:    amount,
		status:    Pending,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func RestoreSettlement(
	id, userID kernel.UUID,
	userName string,
	role kernel.Role,
	amount kernel.Money,
	status Status,
	createdAt time.Time,
	settledAt *time.Time,
	settledByID *kernel.UUID,
) (*Settlement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}
	return &Settlement{
		id:          id,
		userID:      userID,
		userName:    userName,
		role:        role,
		amount:      amount,
		status:      status,
		createdAt:   createdAt,
		settledAt:   settledAt,
		settledByID: settledByID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (s *Settlement) Validate() error {
	if s == nil {
		return ErrSettlementIsNotConstructed
	}
	return s.guard.Validate(ErrSettlementIsNotConstructed)
}

func (s *Settlement) ID() kernel.UUID {
	return s.id
}

func (s *Settlement) UserID() kernel.UUID {
	return s.userID
}

func (s *Settlement) UserName() string {
	return s.userName
}

func (s *Settlement) Role() kernel.Role {
	return s.role
}

func (s *Settlement) Amount() kernel.Money {
	return s.amount
}

func (s *Settlement) Status() Status {
	return s.status
}

func (s *Settlement) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Settlement) SettledAt() *time.Time {
	return s.settledAt
}

func (s *Settlement) SettledBy() *kernel.UUID {
	return s.settledByID
}

// Settle marks the request paid. Only an admin may settle, and only once.
func (s *Settlement) Settle(actorID kernel.UUID, role kernel.Role, now time.Time) error {
	if role != kernel.RoleAdmin {
		return errs.NewForbiddenError("settle settlement " + s.id.String())
	}
	if s.status != Pending {
		return fmt.Errorf("%w: %s", ErrAlreadySettled, s.id)
	}

	at := now.UTC()
	s.status = Settled
	s.settledAt = &at
	s.settledByID = &actorID
	return nil
}
