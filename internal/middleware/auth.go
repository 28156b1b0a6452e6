package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Rolo3650/sicove-api/internal/apperr"
	"github.com/Rolo3650/sicove-api/pkg/jwtutil"
	"github.com/Rolo3650/sicove-api/pkg/logger"
	"github.com/Rolo3650/sicove-api/prometheus"
)

// Skipper decides whether a request bypasses authentication (the login route).
type Skipper func(c echo.Context) bool

// JWTAuth verifies the bearer credential on every request. The token must be
// a three-segment signed token; an expired token and any other verification
// failure are both Forbidden, expiry with its own message.
func JWTAuth(jwtUtil *jwtutil.JWTUtil, skip Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip != nil && skip(c) {
				return next(c)
			}

			log := logger.FromEcho(c)

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || scheme != "Bearer" || strings.Count(token, ".") != 2 {
				log.Warn("Rejected credential", zap.String("path", c.Path()))
				prometheus.RecordAuthError("wrong_credential")
				return apperr.Forbidden("Wrong credential")
			}

			claims, err := jwtUtil.ValidateToken(token)
			if err != nil {
				if jwtutil.IsExpired(err) {
					log.Warn("Expired token", zap.String("path", c.Path()))
					prometheus.RecordAuthError("token_expired")
					return apperr.Forbidden("Token expired")
				}
				log.Warn("Invalid token", zap.Error(err))
				prometheus.RecordAuthError("wrong_credential")
				return apperr.Forbidden("Wrong credential")
			}

			c.Set("user", claims)
			log.Debug("JWT token validated successfully",
				zap.String("user_id", claims.UserID),
				zap.String("email", claims.Email))

			return next(c)
		}
	}
}

// Principal returns the decoded claims the auth middleware attached.
func Principal(c echo.Context) (*jwtutil.UserClaims, bool) {
	claims, ok := c.Get("user").(*jwtutil.UserClaims)
	return claims, ok
}
