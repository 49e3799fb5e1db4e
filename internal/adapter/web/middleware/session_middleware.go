package middleware

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/infrastructure/session"
	"earnhub/internal/usecase"
)

// SessionMiddleware resolves the cookie-backed session before any handler
// runs, so every downstream middleware and handler sees either a concrete
// identity or a clean anonymous state. It never rejects a request itself.
type SessionMiddleware struct {
	authUseCase  *usecase.AuthUseCase
	cookieDomain string
	cookieSecure bool
}

func NewSessionMiddleware(authUseCase *usecase.AuthUseCase, cookieDomain string, cookieSecure bool) *SessionMiddleware {
	return &SessionMiddleware{
		authUseCase:  authUseCase,
		cookieDomain: cookieDomain,
		cookieSecure: cookieSecure,
	}
}

// Resolve loads the stored session and stashes the identity, bearer token
// and the store itself in the echo context. Corrupt or expired sessions are
// cleared by the resolver and the request continues anonymous.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		store := session.NewCookieStore(c, m.cookieDomain, m.cookieSecure)
		c.Set("store", store)

		if sess := m.authUseCase.Resolve(store); sess != nil {
			c.Set("identity", &sess.User)
			c.Set("token", sess.Token)
		}

		return next(c)
	}
}
