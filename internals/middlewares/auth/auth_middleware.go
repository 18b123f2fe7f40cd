// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	"gymku_backend/internals/constants"
)

// AuthMiddleware parses the bearer token, validates expiry, confirms the
// principal still exists for member/trainer roles, and stores the claims in
// Locals (user_id, userRole, userEmail).
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - No auth token found")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		id, _ := claims["id"].(string)
		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)
		if id == "" || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token claims")
		}

		// member/trainer tokens must still point at a live row
		if err := ensurePrincipalExists(db, role, id); err != nil {
			log.Println("[ERROR] ensurePrincipalExists:", err)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Account not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals("user_id", id)
		c.Locals("userRole", role)
		c.Locals("userEmail", email)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		// tokens without exp are accepted (legacy admin tokens)
		return nil
	}
	exp, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	if time.Now().Add(-leeway).Unix() > int64(exp) {
		return errors.New("token expired")
	}
	return nil
}

func ensurePrincipalExists(db *gorm.DB, role, id string) error {
	var table, column string
	switch role {
	case constants.RoleMember:
		table, column = "members", "member_id"
	case constants.RoleTrainer:
		table, column = "trainers", "trainer_id"
	default:
		// admin is env-configured, no row to check
		return nil
	}

	var exists bool
	if err := db.Raw(
		"SELECT EXISTS(SELECT 1 FROM "+table+" WHERE "+column+" = ?)", id,
	).Scan(&exists).Error; err != nil {
		return err
	}
	if !exists {
		return gorm.ErrRecordNotFound
	}
	return nil
}
