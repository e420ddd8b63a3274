package http

import (
	"net/http"
	"strconv"

	"haulaway/internal/generated/servers"
	"haulaway/internal/pkg/ratelimit"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// QuoteRateLimiter limits POST /quotes per caller IP. Other routes pass
// through untouched. A denied request gets 429 with a Retry-After hint of
// one full window, the conservative upper bound on the wait.
func QuoteRateLimiter(store *ratelimit.SlidingWindowStore) echo.MiddlewareFunc {
	retryAfter := strconv.Itoa(int(store.Window().Seconds()))

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method != http.MethodPost ||
				c.Path() != "/api/v1/quotes"
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP() + ":quotes", nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, servers.Error{
				Code:    http.StatusForbidden,
				Message: "Could not identify caller",
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			c.Response().Header().Set("Retry-After", retryAfter)
			return echo.NewHTTPError(http.StatusTooManyRequests, servers.Error{
				Code:    http.StatusTooManyRequests,
				Message: "Quote rate limit exceeded, retry later",
			})
		},
	})
}
