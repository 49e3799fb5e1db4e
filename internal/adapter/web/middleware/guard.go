package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"earnhub/internal/domain/entity"
	"earnhub/pkg/errors"
	"earnhub/pkg/response"
)

// publicPaths are reachable regardless of identity.
var publicPaths = map[string]bool{
	"/":         true,
	"/login":    true,
	"/register": true,
	"/logout":   true,
	"/health":   true,
}

// userPrefixes is the signed-in user's tree. Admins do not get a pass here:
// each role sees only its own console.
var userPrefixes = []string{
	"/dashboard",
	"/ads",
	"/products",
	"/ratings",
	"/payouts",
	"/fund",
	"/tickets",
	"/settings",
	"/referrals",
	"/ws",
}

// CanAccess decides whether the identity may reach the path. Evaluated fresh
// on every request. Paths outside the public set, the admin tree and the
// user tree are denied to everyone.
func CanAccess(identity *entity.Identity, path string) bool {
	if publicPaths[path] {
		return true
	}

	if strings.HasPrefix(path, "/admin") {
		return identity.IsAdmin()
	}

	for _, prefix := range userPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return identity.IsUser()
		}
	}

	return false
}

// RedirectTarget is the identity's home: where a denied navigation lands.
func RedirectTarget(identity *entity.Identity) string {
	switch {
	case identity.IsAdmin():
		return "/admin/dashboard"
	case identity.IsUser():
		return "/dashboard"
	default:
		return "/login"
	}
}

// GuardMiddleware enforces the role route map on every request.
type GuardMiddleware struct{}

func NewGuardMiddleware() *GuardMiddleware {
	return &GuardMiddleware{}
}

// Enforce redirects denied navigations to the identity's home and answers
// denied API-style requests with a neutral 403 envelope that leaks nothing
// about why.
func (m *GuardMiddleware) Enforce(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, _ := c.Get("identity").(*entity.Identity)

		if CanAccess(identity, c.Request().URL.Path) {
			return next(c)
		}

		if wantsJSON(c) {
			return response.Error(c, errors.Forbidden("Access denied", nil))
		}

		return c.Redirect(http.StatusFound, RedirectTarget(identity))
	}
}

// wantsJSON distinguishes fetch/XHR calls from browser navigations.
func wantsJSON(c echo.Context) bool {
	if c.Request().Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	accept := c.Request().Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
