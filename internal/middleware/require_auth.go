package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireOperator checks if the request carries an operator in Locals.
// If not -> return 401 Unauthorized. Mounted on every CMS mutation route.
func RequireOperator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v := c.Locals("operator"); v == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		} else if op, ok := v.(string); !ok || strings.TrimSpace(op) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
