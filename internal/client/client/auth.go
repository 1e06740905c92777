package client

import (
	"context"

	"github.com/dmitrijs2005/growlog/internal/client/models"
)

// GoogleExchangePath is the backend endpoint trading a Google ID token for
// an application session token.
const GoogleExchangePath = "/auth/google"

type GoogleExchangeRequest struct {
	IDToken  string `json:"idToken"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// AuthResponse is the exchange reply. Only Success together with a non-empty
// Token means the exchange worked.
type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
	Message string       `json:"message"`
}

func (c *APIClient) ExchangeGoogleToken(ctx context.Context, req GoogleExchangeRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.Post(ctx, GoogleExchangePath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
