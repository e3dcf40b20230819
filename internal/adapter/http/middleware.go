package http

import (
	"strings"

	"resume-builder/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localOwnerID = "ownerID"

// AuthMiddleware verifies the bearer token and stashes the owner ID for
// handlers. Token issuance belongs to the auth provider, not this API.
func AuthMiddleware(jwtSvc *auth.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization header is required"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token format"})
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(localOwnerID, claims.OwnerID)
		return c.Next()
	}
}

func ownerIDFromCtx(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(localOwnerID).(uuid.UUID)
	return id, ok
}
