package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "centralcelular_backend/internals/helpers"
)

// OnlyRoles gates a route group to the given roles. The role comes from
// the triple stored by AuthMiddleware.
func OnlyRoles(allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, err := helper.GetRoleFromToken(c)
		if err != nil {
			return err
		}
		if _, ok := allowedSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient role for this resource")
		}
		return c.Next()
	}
}
