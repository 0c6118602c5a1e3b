package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/taskdesk/internal/auth"
)

const (
	bearerScheme   = "Bearer"
	agentClaimsKey = "agentClaims"
)

// Authorize verifies bearer jwt and stores agent claims in context
func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get(echo.HeaderAuthorization)
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 || !strings.EqualFold(hdrSplit[0], bearerScheme) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(agentClaimsKey, claims)
			return next(c)
		}
	}
}

// AgentClaims returns claims stored by Authorize, ok is false on unprotected routes
func AgentClaims(c echo.Context) (auth.AgentClaims, bool) {
	claims, ok := c.Get(agentClaimsKey).(auth.AgentClaims)
	return claims, ok
}
