package client

import (
	"context"
	"net/http"

	"hyperlocal/internal/generated/servers"

	"github.com/pkg/errors"
)

// Restore resumes the session from the token store. A missing token yields ErrNoSession; a
// token the server rejects is dropped from the store and yields ErrUnauthorized.
func (c *Client) Restore(ctx context.Context) (User, error) {
	token, err := c.session.load(ctx)
	if err != nil {
		return User{}, errors.Wrap(err, "load token")
	}
	if token == "" {
		return User{}, ErrNoSession
	}

	var u User
	if err := c.get(ctx, "/auth/me", nil, &u); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			if endErr := c.session.end(ctx); endErr != nil {
				c.log.WarnContext(ctx, "clear rejected token", "error", endErr)
			}
		}
		return User{}, err
	}
	c.session.setUser(u)
	return u, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var resp servers.AuthResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: req}, &resp); err != nil {
		return User{}, err
	}
	if err := c.session.begin(ctx, resp.Token, resp.User); err != nil {
		return User{}, errors.Wrap(err, "save token")
	}
	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var resp servers.AuthResponse
	body := servers.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: body}, &resp); err != nil {
		return User{}, err
	}
	if err := c.session.begin(ctx, resp.Token, resp.User); err != nil {
		return User{}, errors.Wrap(err, "save token")
	}
	return resp.User, nil
}

// Logout forgets the token locally; tokens are stateless so the server is not called.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.end(ctx)
}

// Refresh re-reads the signed-in user into the session.
func (c *Client) Refresh(ctx context.Context) (User, error) {
	if !c.session.IsAuthenticated() {
		return User{}, ErrNoSession
	}
	var u User
	if err := c.get(ctx, "/auth/me", nil, &u); err != nil {
		return User{}, err
	}
	c.session.setUser(u)
	return u, nil
}

// SwitchRole changes the active role and returns the user as re-read afterwards.
func (c *Client) SwitchRole(ctx context.Context, role string) (User, error) {
	var u User
	if err := c.mutate(ctx, http.MethodPut, "/auth/switch-role", servers.SwitchRoleRequest{Role: role}, &u); err != nil {
		return User{}, err
	}
	c.session.setUser(u)
	return c.refetchUser(ctx, u)
}

// ToggleOnline flips the availability flag and returns the user as re-read afterwards.
func (c *Client) ToggleOnline(ctx context.Context) (User, error) {
	var resp servers.ToggleOnlineResponse
	if err := c.mutate(ctx, http.MethodPut, "/auth/toggle-online", nil, &resp); err != nil {
		return User{}, err
	}
	fallback := User{}
	if u := c.session.User(); u != nil {
		fallback = *u
		fallback.IsOnline = resp.IsOnline
	}
	return c.refetchUser(ctx, fallback)
}

func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (User, error) {
	var u User
	if err := c.mutate(ctx, http.MethodPut, "/auth/profile", req, &u); err != nil {
		return User{}, err
	}
	return c.refetchUser(ctx, u)
}

func (c *Client) refetchUser(ctx context.Context, fallback User) (User, error) {
	u, err := c.Refresh(ctx)
	if err != nil {
		return fallback, &RefetchError{Resource: "user", Err: err}
	}
	return u, nil
}
