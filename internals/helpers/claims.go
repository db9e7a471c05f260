package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"centralcelular_backend/internals/constants"
)

// Locals keys written by the auth middleware. Everything downstream reads
// the normalized (user_id, account_id, role) triple from here and never
// touches the token again.
const (
	LocUserID    = "user_id"
	LocAccountID = "account_id"
	LocRole      = "role"
)

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing from token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing from token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+key+" format in token")
	}
	return id, nil
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID)
}

func GetAccountIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocAccountID)
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals(LocRole)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "role missing from token")
	}
	return strings.TrimSpace(s), nil
}

func IsAdmin(c *fiber.Ctx) bool {
	role, err := GetRoleFromToken(c)
	return err == nil && role == constants.RoleAdmin
}
