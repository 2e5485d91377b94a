package api

import (
	"context"

	"github.com/harborbank/teller/internal/errors"
	"github.com/harborbank/teller/internal/session"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login response: the bearer token plus the
// profile the session store persists under the user key.
type LoginResponse struct {
	Token string          `json:"token"`
	User  session.Profile `json:"user"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Login authenticates with the backend and returns the token and profile
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := c.doRequest(ctx, "POST", "/login", req)
	if err != nil {
		return nil, errors.NewAPIUnreachableError(c.BaseURL, err)
	}

	var loginResp LoginResponse
	if err := parseResponse(resp, &loginResp); err != nil {
		return nil, errors.NewAPIAuthError(err.Error())
	}

	return &loginResp, nil
}

// Register creates a new customer account and logs in with the new
// credentials. Fresh accounts start unapproved; the welcome screen is
// their landing page until an employee approves them.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, "POST", "/register", req)
	if err != nil {
		return nil, errors.NewAPIUnreachableError(c.BaseURL, err)
	}

	if err := parseResponse(resp, nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIRequestFailed, "registration failed", err)
	}

	loginResp, err := c.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIAuthFailed, "registration succeeded but login failed", err)
	}

	return loginResp, nil
}
