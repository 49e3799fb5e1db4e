package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"earnhub/internal/infrastructure/ratelimit"
	"earnhub/pkg/errors"
	"earnhub/pkg/logger"
	"earnhub/pkg/response"
)

// loginLimiter throttles credential attempts per client IP: 5 attempts,
// refilling one per minute.
var loginLimiter = ratelimit.NewRateLimiter(5, 1, time.Minute)

// LoginRateLimit guards the credential endpoints against brute forcing.
func LoginRateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, retryAfter := loginLimiter.Allow(ip)
			if !allowed {
				logger.Warn("Login rate limit hit for %s", ip)
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many attempts, retry in %d seconds", int(retryAfter.Seconds())),
				))
			}

			return next(c)
		}
	}
}
