package kernel

import (
	"fmt"
	"slices"

	"hyperlocal/internal/pkg/errs"
)

// Role is one of the marketplace roles a user may hold.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMerchant Role = "merchant"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

// AllRoles lists the roles in their canonical order.
func AllRoles() []Role {
	return []Role{RoleCustomer, RoleMerchant, RoleAgent, RoleAdmin}
}

// ParseRole accepts the lower-case role names used on the wire.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	if !slices.Contains(AllRoles(), r) {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
	return nil
}

func (r Role) String() string {
	return string(r)
}

// Roles is an ordered set of roles without duplicates.
type Roles []Role

// NewRoles validates every role and drops duplicates, keeping first occurrence order.
func NewRoles(roles ...Role) (Roles, error) {
	out := make(Roles, 0, len(roles))
	for _, r := range roles {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (rs Roles) Has(r Role) bool {
	return slices.Contains(rs, r)
}

func (rs Roles) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
