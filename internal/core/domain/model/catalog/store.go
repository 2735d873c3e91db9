package catalog

import (
	"errors"
	"strings"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore or RestoreStore")

const (
	DefaultWorkingHours = "9:00 AM - 10:00 PM"
	DefaultRating       = 4.5
)

// StorePatch is a partial update. Nil fields are left unchanged.
type StorePatch struct {
	Name         *string
	IsOpen       *bool
	WorkingHours *string
}

// Store is owned by one merchant.
type Store struct {
	id           kernel.UUID
	merchantID   kernel.UUID
	name         string
	address      string
	location     kernel.Location
	imageURL     string
	isOpen       bool
	workingHours string
	rating       float64
	totalOrders  int
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewStore opens a new store for merchantID.
func NewStore(
	id, merchantID kernel.UUID,
	name, address string,
	location kernel.Location,
	imageURL, workingHours string,
	now time.Time,
) (*Store, error) {
	if strings.TrimSpace(workingHours) == "" {
		workingHours = DefaultWorkingHours
	}

	s := &Store{
		address:      strings.TrimSpace(address),
		imageURL:     imageURL,
		isOpen:       true,
		workingHours: workingHours,
		rating:       DefaultRating,
		createdAt:    now.UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateID(id, &s.id),
		validateID(merchantID, &s.merchantID),
		s.setName(name),
		s.setLocation(location),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore rebuilds a persisted store.
func RestoreStore(
	id, merchantID kernel.UUID,
	name, address string,
	location kernel.Location,
	imageURL string,
	isOpen bool,
	workingHours string,
	rating float64,
	totalOrders int,
	createdAt time.Time,
) (*Store, error) {
	s := &Store{
		address:      address,
		imageURL:     imageURL,
		isOpen:       isOpen,
		workingHours: workingHours,
		rating:       rating,
		totalOrders:  totalOrders,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateID(id, &s.id),
		validateID(merchantID, &s.merchantID),
		s.setName(name),
		s.setLocation(location),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

func (s *Store) IsEqual(other *Store) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Store) ID() kernel.UUID {
	return s.id
}

func (s *Store) MerchantID() kernel.UUID {
	return s.merchantID
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Address() string {
	return s.address
}

func (s *Store) Location() kernel.Location {
	return s.location
}

func (s *Store) ImageURL() string {
	return s.imageURL
}

func (s *Store) IsOpen() bool {
	return s.isOpen
}

func (s *Store) WorkingHours() string {
	return s.workingHours
}

func (s *Store) Rating() float64 {
	return s.rating
}

func (s *Store) TotalOrders() int {
	return s.totalOrders
}

func (s *Store) CreatedAt() time.Time {
	return s.createdAt
}

// IsOwnedBy reports whether merchantID owns the store.
func (s *Store) IsOwnedBy(merchantID kernel.UUID) bool {
	return s.merchantID.IsEqual(merchantID)
}

// Update applies patch on behalf of actorID acting as role. Only the owning merchant or an
// admin may change a store.
func (s *Store) Update(actorID kernel.UUID, role kernel.Role, patch StorePatch) error {
	switch {
	case role == kernel.RoleAdmin:
	case role == kernel.RoleMerchant && s.IsOwnedBy(actorID):
	default:
		return errs.NewForbiddenError("update store " + s.id.String())
	}

	if patch.Name != nil {
		if err := s.setName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.IsOpen != nil {
		s.isOpen = *patch.IsOpen
	}
	if patch.WorkingHours != nil {
		s.workingHours = strings.TrimSpace(*patch.WorkingHours)
	}
	return nil
}

func (s *Store) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Store) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}

func validateID(id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}
