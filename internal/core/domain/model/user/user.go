package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// Profile holds the optional details collected at sign-up for merchants and agents.
type Profile struct {
	LicenseNo    string
	VehicleNo    string
	ShopName     string
	ShopAddress  string
	WorkingHours string
	ProfilePhoto string
	JoinWhatsapp bool
}

// ProfilePatch carries the fields a user may change after registration. Nil fields are kept.
type ProfilePatch struct {
	Name         *string
	Phone        *string
	ProfilePhoto *string
}

// User is the account aggregate.
//
// Invariants:
//   - roles is never empty and always contains customer
//   - activeRole is one of roles
//   - email is stored lower-cased
type User struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	passwordHash string
	roles        kernel.Roles
	activeRole   kernel.Role
	isOnline     bool
	profile      Profile
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser registers a user. An empty role list yields [customer]; customer is appended when
// missing. The first requested role becomes the active role.
func NewUser(
	id kernel.UUID,
	name, email, phone, passwordHash string,
	roles []kernel.Role,
	profile Profile,
	now time.Time,
) (*User, error) {
	u := &User{
		phone:     strings.TrimSpace(phone),
		profile:   profile,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRoles(roles),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user without applying registration defaults.
func RestoreUser(
	id kernel.UUID,
	name, email, phone, passwordHash string,
	roles kernel.Roles,
	activeRole kernel.Role,
	isOnline bool,
	profile Profile,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		roles:        roles,
		activeRole:   activeRole,
		isOnline:     isOnline,
		profile:      profile,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, errs.NewValueIsRequiredError("roles")
	}
	if !roles.Has(activeRole) {
		return nil, errs.NewValueIsInvalidErrorWithCause("active_role",
			fmt.Errorf("%s is not one of %v", activeRole, roles.Strings()))
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) Phone() string { return u.phone }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) ActiveRole() kernel.Role { return u.activeRole }
func (u *User) IsOnline() bool { return u.isOnline }
func (u *User) Profile() Profile { return u.profile }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) HasRole(r kernel.Role) bool { return u.roles.Has(r) }

// Roles returns a copy of the granted roles.
func (u *User) Roles() kernel.Roles {
	out := make(kernel.Roles, len(u.roles))
	copy(out, u.roles)
	return out
}

// SwitchRole changes the active role. The role must already be granted.
func (u *User) SwitchRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !u.roles.Has(role) {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("role %s is not available for this user", role))
	}

	u.activeRole = role
	return nil
}

// ToggleOnline flips the availability flag used by agents and returns the new value.
func (u *User) ToggleOnline() bool {
	u.isOnline = !u.isOnline
	return u.isOnline
}

// UpdateProfile applies a partial update.
func (u *User) UpdateProfile(p ProfilePatch) error {
	if p.Name != nil {
		if err := u.setName(*p.Name); err != nil {
			return err
		}
	}
	if p.Phone != nil {
		u.phone = strings.TrimSpace(*p.Phone)
	}
	if p.ProfilePhoto != nil {
		u.profile.ProfilePhoto = strings.TrimSpace(*p.ProfilePhoto)
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRoles(requested []kernel.Role) error {
	roles, err := kernel.NewRoles(requested...)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		roles = kernel.Roles{kernel.RoleCustomer}
	}
	active := roles[0]
	if !roles.Has(kernel.RoleCustomer) {
		roles = append(roles, kernel.RoleCustomer)
	}

	u.roles = roles
	u.activeRole = active
	return nil
}
