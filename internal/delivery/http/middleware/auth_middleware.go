package middleware

import (
	"net/http"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT bearer-token authentication.
type AuthMiddleware struct {
	accessSecret []byte
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{accessSecret: []byte(cfg.Auth.AccessSecret)}
}

// Authenticate validates the bearer token and stores the user ID from its
// subject claim on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
			}

			return m.accessSecret, nil
		})
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
		}

		userID, err := uuid.Parse(subject)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID format in token"})
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(c echo.Context) (string, error) {
	const prefix = "Bearer "

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header is missing")
	}

	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		return "", errors.New("Invalid token format, must be Bearer token")
	}

	return authHeader[len(prefix):], nil
}
