package api

import (
	"context"

	"rota-cli/internal/model"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates and establishes the cookie session. The session
// cookie is captured from the response and available via Session().
func (c *Client) Login(ctx context.Context, username, password string) error {
	return c.post(ctx, "/auth/login", loginRequest{Username: username, Password: password}, nil)
}

// CheckAuth validates the current session and returns the username it
// belongs to. An *Error means the session is missing or expired.
func (c *Client) CheckAuth(ctx context.Context) (string, error) {
	var username string
	if err := c.get(ctx, "/auth/check", &username); err != nil {
		return "", err
	}
	return username, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.post(ctx, "/auth/logout", nil, nil)
	if err == nil {
		c.session = ""
	}
	return err
}

// ActiveUsers lists users eligible as targets for SPECIFIC announcements.
func (c *Client) ActiveUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, "/users/active", &users); err != nil {
		return nil, err
	}
	return users, nil
}
