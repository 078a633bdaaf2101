package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jcallahan/flock-backend/internal/httperr"
	"github.com/jcallahan/flock-backend/internal/models"
	"github.com/labstack/echo/v4"
)

// JWTAuth checks for a valid bearer token and stores the user claims in the
// request context under "user".
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return httperr.Unauthorized("Unauthorized", "Missing Authorization header.")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return httperr.Unauthorized("Unauthorized", "Invalid Authorization header format.")
			}
			tokenString := parts[1]

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return httperr.Unauthorized("Unauthorized", "Invalid token.")
			}

			c.Set("user", claims)

			return next(c)
		}
	}
}
