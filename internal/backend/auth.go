package backend

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyKozhin/liferabbit/internal/model"
)

// Register creates an account. A 409 APIError means the email is taken.
func (c *Client) Register(ctx context.Context, email, password string) (*model.Account, error) {
	resp := &registerResp{}
	if err := c.do(ctx, "Register", http.MethodPost, "/api/auth/register", &credentials{Email: email, Password: password}, resp); err != nil {
		return nil, err
	}

	acc := &model.Account{ID: resp.ID, Email: resp.Email, Token: resp.Token}
	if acc.Email == "" {
		acc.Email = strings.ToLower(email)
	}

	return acc, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp := &tokenResp{}
	if err := c.do(ctx, "Login", http.MethodPost, "/api/auth/login", &credentials{Email: email, Password: password}, resp); err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", invalid("login response without token")
	}

	return resp.Token, nil
}
