package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chetan-code/todoweb/internal/models"
)

// Login exchanges credentials for a token. An answer without a token is not an
// error here; the caller decides what an empty token means.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates an account and returns its token, same contract as Login.
func (c *Client) Register(ctx context.Context, reg models.Registration) (string, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", "", reg, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// FetchUser returns the account the token belongs to.
func (c *Client) FetchUser(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/user", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, id int, in models.UserInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), token, in, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), token, nil, nil)
}
