package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/account-service/internal/api/metrics"
	"github.com/accounthub/account-service/internal/core/domain"
	"github.com/accounthub/account-service/internal/core/ports"
)

// UserContextKey is the echo context key under which Protect stores the
// resolved *domain.User.
const UserContextKey = "currentUser"

// Protect gates a route behind a valid bearer token. It verifies the token,
// resolves the embedded subject against the user store (so tokens cannot
// outlive a deleted account), and attaches the resolved user to the request
// context. A handler behind Protect always sees a live user.
func Protect(tokens ports.TokenService, repo ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")

			var token string
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}
			if token == "" {
				return domain.NewAPIError(http.StatusUnauthorized, "You are not logged in")
			}

			subject, err := tokens.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return err
			}

			user, err := repo.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenVerificationsTotal.WithLabelValues("unknown_subject").Inc()
					return domain.NewAPIError(http.StatusUnauthorized, "User no longer exists")
				}
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
