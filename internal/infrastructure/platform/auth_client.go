package platform

import (
	"context"

	"earnhub/internal/domain/entity"
)

// AuthClient talks to the remote platform's auth endpoints. Credentials are
// verified remotely; the console never checks a password itself.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

type authPayload struct {
	Token string          `json:"token"`
	User  entity.Identity `json:"user"`
}

func (a *AuthClient) SignIn(ctx context.Context, email, password string) (string, *entity.Identity, error) {
	req := map[string]string{
		"email":    email,
		"password": password,
	}

	var payload authPayload
	if err := a.client.PostPublic(ctx, "/api/auth/login", req, &payload); err != nil {
		return "", nil, err
	}

	return payload.Token, &payload.User, nil
}

func (a *AuthClient) Register(ctx context.Context, fullName, email, password, referralCode string) (string, *entity.Identity, error) {
	req := map[string]string{
		"name":     fullName,
		"email":    email,
		"password": password,
	}
	if referralCode != "" {
		req["referralCode"] = referralCode
	}

	var payload authPayload
	if err := a.client.PostPublic(ctx, "/api/auth/register", req, &payload); err != nil {
		return "", nil, err
	}

	return payload.Token, &payload.User, nil
}
