package kernel

import (
	"hyperlocal/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("id")

var errUUIDFormat = errors.New("invalid UUID format")

// UUID identifies users, stores, products, orders and every other aggregate.
// The nil UUID never identifies anything; Validate rejects it.
type UUID struct {
	id uuid.UUID
}

func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses ids arriving from path params and token subjects.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errors.Wrapf(errUUIDFormat, "%q: %v", s, err)
	}
	return fromGoogle(id)
}

// UUIDFromBytes restores an id from a 16-byte storage column.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errors.Wrapf(errUUIDFormat, "%d bytes: %v", len(b), err)
	}
	return fromGoogle(id)
}

func fromGoogle(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the google/uuid value for storage DTOs and the generated API types.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
