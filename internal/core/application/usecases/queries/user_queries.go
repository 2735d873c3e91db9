package queries

import (
	"errors"
	"strings"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/user"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed          = errors.New("LoginQuery must be created via NewLoginQuery")
	ErrGetCurrentUserQueryIsNotConstructed = errors.New("GetCurrentUserQuery must be created via NewGetCurrentUserQuery")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type LoginQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginQuery(email, password string) (LoginQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("password")
	}
	return LoginQuery{email: email, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// LoginResult carries the bearer token and the user it was issued for.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserView
}

type GetCurrentUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCurrentUserQuery(userID kernel.UUID) (GetCurrentUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCurrentUserQuery{}, err
	}
	return GetCurrentUserQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCurrentUserQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentUserQueryIsNotConstructed)
}

func userView(u *user.User) UserView {
	p := u.Profile()
	return UserView{
		ID:         u.ID(),
		Name:       u.Name(),
		Email:      u.Email(),
		Phone:      u.Phone(),
		Roles:      u.Roles(),
		ActiveRole: u.ActiveRole(),
		IsOnline:   u.IsOnline(),
		Profile: ProfileView{
			LicenseNo:    p.LicenseNo,
			VehicleNo:    p.VehicleNo,
			ShopName:     p.ShopName,
			ShopAddress:  p.ShopAddress,
			WorkingHours: p.WorkingHours,
			ProfilePhoto: p.ProfilePhoto,
			JoinWhatsapp: p.JoinWhatsapp,
		},
		CreatedAt: u.CreatedAt(),
	}
}
