package middleware

import (
	"net/http"
	"strings"

	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/pkg/id"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// ActorResolver turns the Ax-Actor-Id header into an identity.Actor on the
// echo context. Credentials are never checked here — an upstream gateway owns
// authentication; this service only needs the attributed principal and role.
func ActorResolver(principals identity.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actorID := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
			if actorID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Ax-Actor-Id"})
			}
			if !id.IsID32(actorID) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid Ax-Actor-Id format"})
			}
			p, err := principals.GetByUserID(c.Request().Context(), actorID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown actor"})
			}
			c.Set(actorContextKey, identity.Actor{UserID: p.UserID, Role: p.Role})
			return next(c)
		}
	}
}

// ActorFrom fetches the actor resolved by ActorResolver.
func ActorFrom(c echo.Context) (identity.Actor, bool) {
	a, ok := c.Get(actorContextKey).(identity.Actor)
	return a, ok
}
