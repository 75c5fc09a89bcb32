package middleware

import (
	"github.com/garagesale/backend/internal/dto"
	"github.com/garagesale/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired admits admins and super admins. Must run after JWTProtected.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
		}
		if role != models.RoleAdmin && role != models.RoleSuperAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "requires admin privileges"})
		}
		return c.Next()
	}
}

// SuperAdminRequired admits super admins only. Must run after JWTProtected.
func SuperAdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
		}
		if role != models.RoleSuperAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "requires super admin privileges"})
		}
		return c.Next()
	}
}
