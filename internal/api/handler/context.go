package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/account-service/internal/api/middleware"
	"github.com/accounthub/account-service/internal/core/domain"
)

// currentUser extracts the user attached by the Protect middleware. Routes
// calling this must be wired behind Protect; a missing user means the route
// was wired without it, so fail closed with a 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, domain.NewAPIError(http.StatusUnauthorized, "You are not logged in")
	}
	return user, nil
}
