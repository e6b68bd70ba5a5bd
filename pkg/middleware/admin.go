package middleware

import (
	"net/http"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/user"
	"github.com/fanvault/backend/pkg/models"
	"github.com/labstack/echo/v4"
)

// RequireAdmin ensures the authenticated user has the admin role. The role is
// re-checked against the database so a revoked admin loses access before the
// token expires.
func RequireAdmin(db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authentication required",
				})
			}

			userData, err := db.User.Get(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "user_not_found",
					Message: "User not found",
				})
			}

			if userData.Role != user.RoleAdmin {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "forbidden",
					Message: "Admin access required",
				})
			}

			c.Set("user_role", string(userData.Role))

			return next(c)
		}
	}
}
