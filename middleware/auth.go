package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jahnavi-74/e-learning/config"
	"github.com/Jahnavi-74/e-learning/models"
	"github.com/Jahnavi-74/e-learning/utils"
)

const ClaimsKey = "claims"

// RequireAuth verifies the bearer token and stores the caller's identity in
// the request locals for the handlers downstream.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Not authenticated")
		}
		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// RequireTeacher verifies the token and rejects callers without the teacher role.
func RequireTeacher(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Not authenticated")
		}
		if claims.Role != models.RoleTeacher {
			return utils.Forbidden(c, "Teacher role required")
		}
		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// CurrentClaims returns the identity RequireAuth stored on the context.
func CurrentClaims(c *fiber.Ctx) *utils.Claims {
	claims, _ := c.Locals(ClaimsKey).(*utils.Claims)
	return claims
}
