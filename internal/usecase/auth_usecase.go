package usecase

import (
	"context"
	"strings"

	"earnhub/internal/domain/entity"
	"earnhub/internal/infrastructure/session"
	"earnhub/internal/infrastructure/token"
	"earnhub/pkg/errors"
	"earnhub/pkg/logger"
)

// AuthUseCase owns the session lifecycle: resolving the stored identity on
// every request, logging in against the remote auth endpoint, and tearing
// the whole session (cookies plus cached domain mirrors) down on logout.
type AuthUseCase struct {
	authClient AuthClient
	registry   *ContextRegistry
}

func NewAuthUseCase(authClient AuthClient, registry *ContextRegistry) *AuthUseCase {
	return &AuthUseCase{
		authClient: authClient,
		registry:   registry,
	}
}

type RegisterInput struct {
	FullName     string
	Email        string
	Password     string
	ReferralCode string
}

// Resolve loads the stored session, failing soft to anonymous. A token that
// is locally known to be expired counts as absent and is cleared.
func (uc *AuthUseCase) Resolve(store session.Store) *session.Session {
	sess, err := store.Load()
	if err != nil || sess == nil {
		return nil
	}

	if token.IsExpired(sess.Token) {
		store.Clear()
		uc.registry.Invalidate(sess.Token)
		return nil
	}

	return sess
}

func (uc *AuthUseCase) Login(ctx context.Context, store session.Store, email, password string) (*entity.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errors.Validation("Email and password are required")
	}

	bearer, user, err := uc.authClient.SignIn(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, err
	}

	if err := store.Save(&session.Session{Token: bearer, User: *user}); err != nil {
		return nil, errors.Internal("Failed to persist session", err)
	}

	return user, nil
}

func (uc *AuthUseCase) Register(ctx context.Context, store session.Store, input RegisterInput) (*entity.Identity, error) {
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, errors.Validation("Name, email and password are required")
	}

	bearer, user, err := uc.authClient.Register(ctx, input.FullName, input.Email, input.Password, input.ReferralCode)
	if err != nil {
		return nil, err
	}

	if err := store.Save(&session.Session{Token: bearer, User: *user}); err != nil {
		return nil, errors.Internal("Failed to persist session", err)
	}

	return user, nil
}

// Logout clears the session unconditionally and drops every domain mirror
// cached for it. Safe to call when already anonymous, any number of times.
func (uc *AuthUseCase) Logout(store session.Store) error {
	sess, _ := store.Load()
	if sess != nil {
		uc.registry.Invalidate(sess.Token)
	}
	return store.Clear()
}
