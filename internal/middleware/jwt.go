package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth validates a Bearer access token and injects the organiser id
// and role claims into the request context. Handlers read them via
// c.Get("organiser_id") (uint64) and c.Get("role") (string).
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			id, ok := subjectID(claims["sub"])
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			c.Set("organiser_id", id)
			c.Set("role", claims["role"])
			return next(c)
		}
	}
}

// subjectID normalizes the sub claim to uint64. JSON numbers decode as
// float64; some issuers encode the subject as a string.
func subjectID(v interface{}) (uint64, bool) {
	switch t := v.(type) {
	case float64:
		return uint64(t), true
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
