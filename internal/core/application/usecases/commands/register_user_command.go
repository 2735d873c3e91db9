package commands

import (
	"errors"
	"strings"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/user"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")

	// ErrAdminSelfRegistration is returned when a sign-up asks for the admin role.
	ErrAdminSelfRegistration = errs.NewForbiddenError("register as admin")
)

// RegisterUserCommand represents a sign-up request.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(kernel.NewUUID(), "Asha", "asha@example.com", "98450",
//	    "secret", []string{"merchant"}, user.Profile{ShopName: "Asha Bakes"})
//	if err != nil {
//	    return fmt.Errorf("invalid sign-up: %w", err)
//	}
//	err = handler.Handle(ctx, cmd) // the user is stored with roles [merchant customer]
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	phone    string
	password string
	roles    []kernel.Role
	profile  user.Profile

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand parses the requested roles. Admin accounts are created by seeding only.
func NewRegisterUserCommand(
	userID kernel.UUID,
	name, email, phone, password string,
	roles []string,
	profile user.Profile,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		name:    strings.TrimSpace(name),
		email:   strings.TrimSpace(email),
		phone:   strings.TrimSpace(phone),
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPassword(password),
		cmd.setRoles(roles),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Phone() string {
	return c.phone
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Roles() []kernel.Role {
	return append([]kernel.Role(nil), c.roles...)
}

func (c RegisterUserCommand) Profile() user.Profile {
	return c.profile
}

func (c *RegisterUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRoles(raw []string) error {
	roles := make([]kernel.Role, 0, len(raw))
	for _, s := range raw {
		r, err := kernel.ParseRole(s)
		if err != nil {
			return err
		}
		if r == kernel.RoleAdmin {
			return ErrAdminSelfRegistration
		}
		roles = append(roles, r)
	}
	c.roles = roles
	return nil
}
