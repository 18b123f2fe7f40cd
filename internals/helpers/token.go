package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"gymku_backend/internals/configs"
)

const AccessTokenTTL = 24 * time.Hour

// SignAccessToken issues the HS256 token consumed by the auth middleware.
// Claims: id, role, email, exp.
func SignAccessToken(id, role, email string) (string, error) {
	if strings.TrimSpace(configs.JWTSecret) == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	claims := jwt.MapClaims{
		"id":    id,
		"role":  role,
		"email": email,
		"exp":   time.Now().Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// GetRawAccessToken returns the bearer token from the Authorization header.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// GetUserUUID reads the principal id stored by the auth middleware.
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	if raw := c.Locals("user_id"); raw != nil {
		if s, ok := raw.(string); ok {
			if parsed, err := uuid.Parse(s); err == nil {
				return parsed
			}
		}
	}
	return uuid.Nil
}

// GetUserRole reads the role stored by the auth middleware.
func GetUserRole(c *fiber.Ctx) string {
	if raw := c.Locals("userRole"); raw != nil {
		if s, ok := raw.(string); ok {
			return s
		}
	}
	return ""
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
