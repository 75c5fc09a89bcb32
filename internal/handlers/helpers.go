package handlers

import (
	"log/slog"
	"strconv"

	"github.com/garagesale/backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// internalError logs the cause and answers with a generic message.
// Internals are never echoed to the caller.
func internalError(c *fiber.Ctx, action string, err error) error {
	slog.Error(action, "error", err, "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
