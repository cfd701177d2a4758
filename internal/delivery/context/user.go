package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SetUser stores the authenticated identity in echo.Context.
func SetUser(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(echoKeyUserID, userID)
	c.Set(echoKeyRoles, roles)
}

// GetUserID extracts the authenticated user ID from echo.Context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(echoKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
