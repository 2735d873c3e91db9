package commands

import (
	"errors"

	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var (
	ErrCreateStoreCommandIsNotConstructed = errors.New(
		"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
	)
	ErrUpdateStoreCommandIsNotConstructed = errors.New(
		"UpdateStoreCommand must be created via NewUpdateStoreCommand constructor",
	)
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// requireSeller rejects actors that are neither merchants nor admins.
func requireSeller(role kernel.Role, action string) error {
	if role != kernel.RoleMerchant && role != kernel.RoleAdmin {
		return errs.NewForbiddenError(action + " as " + role.String())
	}
	return nil
}

// CreateStoreCommand opens a store owned by the acting merchant (or admin).
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID      kernel.UUID
	ownerID      kernel.UUID
	name         string
	address      string
	location     kernel.Location
	imageURL     string
	workingHours string

	guard guard.ConstructorGuard
}

func NewCreateStoreCommand(
	storeID, actorID kernel.UUID,
	role kernel.Role,
	name, address string,
	lat, lng float64,
	imageURL, workingHours string,
) (CreateStoreCommand, error) {
	if err := requireSeller(role, "create store"); err != nil {
		return CreateStoreCommand{}, err
	}

	location, locErr := kernel.NewLocation(lat, lng)
	if err := errors.Join(storeID.Validate(), actorID.Validate(), locErr); err != nil {
		return CreateStoreCommand{}, err
	}

	return CreateStoreCommand{
		storeID:      storeID,
		ownerID:      actorID,
		name:         name,
		address:      address,
		location:     location,
		imageURL:     imageURL,
		workingHours: workingHours,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

func (c CreateStoreCommand) StoreID() kernel.UUID { return c.storeID }
func (c CreateStoreCommand) OwnerID() kernel.UUID { return c.ownerID }
func (c CreateStoreCommand) Name() string { return c.name }
func (c CreateStoreCommand) Address() string { return c.address }
func (c CreateStoreCommand) Location() kernel.Location { return c.location }
func (c CreateStoreCommand) ImageURL() string { return c.imageURL }
func (c CreateStoreCommand) WorkingHours() string { return c.workingHours }

// UpdateStoreCommand applies a partial store update. Ownership is checked by the store.
type UpdateStoreCommand struct {
	storeID kernel.UUID
	actorID kernel.UUID
	role    kernel.Role
	patch   catalog.StorePatch

	guard guard.ConstructorGuard
}

func NewUpdateStoreCommand(
	storeID, actorID kernel.UUID,
	role kernel.Role,
	patch catalog.StorePatch,
) (UpdateStoreCommand, error) {
	if err := errors.Join(storeID.Validate(), actorID.Validate(), role.Validate()); err != nil {
		return UpdateStoreCommand{}, err
	}
	return UpdateStoreCommand{
		storeID: storeID,
		actorID: actorID,
		role:    role,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStoreCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreCommandIsNotConstructed)
}

func (c UpdateStoreCommand) StoreID() kernel.UUID { return c.storeID }
func (c UpdateStoreCommand) ActorID() kernel.UUID { return c.actorID }
func (c UpdateStoreCommand) Role() kernel.Role { return c.role }
func (c UpdateStoreCommand) Patch() catalog.StorePatch { return c.patch }

// SizeInput describes a size to create with a product.
type SizeInput struct {
	Name          string
	PriceModifier kernel.Money
	IsDefault     bool
}

// VariantInput describes a variant to create with a product.
type VariantInput struct {
	Name              string
	VariantType       string
	Price             kernel.Money
	SubscriptionDays  int
	SubscriptionPrice kernel.Money
	Sizes             []SizeInput
}

// CreateProductCommand adds a product with its variants and sizes to a store.
//
// Example:
//
//	cmd, err := NewCreateProductCommand(kernel.NewUUID(), merchantID, kernel.RoleMerchant, storeID,
//	    "Masala Dosa", "Crisp and hot", "food", "",
//	    []VariantInput{{Name: "Regular", Price: kernel.MoneyFromInt(80)}})
type CreateProductCommand struct {
	productID   kernel.UUID
	actorID     kernel.UUID
	role        kernel.Role
	storeID     kernel.UUID
	name        string
	description string
	baseType    string
	imageURL    string
	variants    []catalog.Variant

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID, actorID kernel.UUID,
	role kernel.Role,
	storeID kernel.UUID,
	name, description, baseType, imageURL string,
	variants []VariantInput,
) (CreateProductCommand, error) {
	if err := requireSeller(role, "create product"); err != nil {
		return CreateProductCommand{}, err
	}
	if err := errors.Join(productID.Validate(), actorID.Validate(), storeID.Validate()); err != nil {
		return CreateProductCommand{}, err
	}
	if len(variants) == 0 {
		return CreateProductCommand{}, errs.NewValueIsRequiredError("variants")
	}

	built := make([]catalog.Variant, 0, len(variants))
	for _, in := range variants {
		sizes := make([]catalog.Size, 0, len(in.Sizes))
		for _, s := range in.Sizes {
			size, err := catalog.NewSize(kernel.NewUUID(), s.Name, s.PriceModifier, s.IsDefault)
			if err != nil {
				return CreateProductCommand{}, err
			}
			sizes = append(sizes, size)
		}
		v, err := catalog.NewVariant(kernel.NewUUID(), in.Name, in.VariantType, in.Price,
			in.SubscriptionDays, in.SubscriptionPrice, sizes)
		if err != nil {
			return CreateProductCommand{}, err
		}
		built = append(built, v)
	}

	return CreateProductCommand{
		productID:   productID,
		actorID:     actorID,
		role:        role,
		storeID:     storeID,
		name:        name,
		description: description,
		baseType:    baseType,
		imageURL:    imageURL,
		variants:    built,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c CreateProductCommand) ActorID() kernel.UUID { return c.actorID }
func (c CreateProductCommand) Role() kernel.Role { return c.role }
func (c CreateProductCommand) StoreID() kernel.UUID { return c.storeID }
func (c CreateProductCommand) Name() string { return c.name }
func (c CreateProductCommand) Description() string { return c.description }
func (c CreateProductCommand) BaseType() string { return c.baseType }
func (c CreateProductCommand) ImageURL() string { return c.imageURL }
func (c CreateProductCommand) Variants() []catalog.Variant { return c.variants }
