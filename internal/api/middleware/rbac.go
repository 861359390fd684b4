package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/account-service/internal/core/domain"
)

// RestrictTo enforces role-based access on top of Protect. The allowed-role
// set is built once at wiring time; the middleware itself is stateless and
// reusable across routes.
func RestrictTo(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserContextKey).(*domain.User)
			if user == nil {
				return domain.NewAPIError(http.StatusUnauthorized, "You are not logged in")
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.NewAPIError(http.StatusForbidden, "You do not have permission to perform this action.")
			}
			return next(c)
		}
	}
}
