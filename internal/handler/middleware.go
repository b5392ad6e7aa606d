package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/balaios/fast-zero-madr/internal/auth"
	"github.com/balaios/fast-zero-madr/internal/errors"
	"github.com/balaios/fast-zero-madr/internal/model"
	"github.com/balaios/fast-zero-madr/internal/repository"
)

const currentUserKey = "current_user"

// CurrentUserMiddleware resolves the authenticated user from the verified
// token claims left in the context by the JWT middleware. It is the single
// checkpoint every protected route passes through: a missing subject or a
// subject that no longer maps to a user (deleted after the token was
// issued) ends the request with the uniform 401 body.
func CurrentUserMiddleware(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok || claims.Subject == "" {
				return Unauthorized(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				return Unauthorized(c)
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the resolved user, or nil outside a protected route.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}

// Unauthorized writes the uniform 401 body. The message never varies with
// the rejection reason.
func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errors.DetailResponse{Detail: errors.DetailCouldNotValidate})
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}

// defaultPageSize caps unbounded catalog listings.
const defaultPageSize = 20

func queryLimit(c echo.Context) int {
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		return v
	}
	return defaultPageSize
}
