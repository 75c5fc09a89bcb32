package middleware

import (
	"errors"

	"github.com/garagesale/backend/internal/config"
	"github.com/garagesale/backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected verifies the Bearer token and stores the parsed token in
// c.Locals("user") for the role gates downstream.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			msg := "invalid or expired token"
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				msg = "no token provided"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: msg})
		},
	})
}
