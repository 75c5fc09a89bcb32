package handlers

import (
	"errors"
	"log/slog"

	"github.com/garagesale/backend/internal/dto"
	"github.com/garagesale/backend/internal/middleware"
	"github.com/garagesale/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	listings *services.ListingService
}

func NewImageHandler(listings *services.ListingService) *ImageHandler {
	return &ImageHandler{listings: listings}
}

func (h *ImageHandler) List(c *fiber.Ctx) error {
	images, err := h.listings.List()
	if err != nil {
		return internalError(c, "failed to list images", err)
	}
	return c.JSON(images)
}

func (h *ImageHandler) Create(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "no image uploaded"})
	}

	src, err := file.Open()
	if err != nil {
		return internalError(c, "failed to open upload", err)
	}
	defer src.Close()

	image, err := h.listings.Create(src, services.Upload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
	}, c.FormValue("title"), c.FormValue("description"), c.FormValue("price"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedMedia):
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrProcessing):
			return internalError(c, "image processing failed", err)
		}
		return internalError(c, "failed to create image", err)
	}

	slog.Info("image created", "id", image.ID, "title", image.Title, "user", middleware.Username(c))
	return c.Status(fiber.StatusCreated).JSON(image)
}

func (h *ImageHandler) Buy(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid image id"})
	}

	// The body is optional; an anonymous purchase is fine.
	var req dto.BuyRequest
	_ = c.BodyParser(&req)

	if err := h.listings.Buy(id, req.CustomerName); err != nil {
		if errors.Is(err, services.ErrNotAvailable) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "image not available for purchase"})
		}
		return internalError(c, "failed to process purchase", err)
	}

	return c.JSON(dto.MessageResponse{Message: "Purchase successful"})
}

func (h *ImageHandler) ToggleBlock(c *fiber.Ctx) error {
	return h.toggle(c, h.listings.ToggleBlock, "Image block status updated successfully")
}

func (h *ImageHandler) ToggleSold(c *fiber.Ctx) error {
	return h.toggle(c, h.listings.ToggleSold, "Image sold status updated successfully")
}

func (h *ImageHandler) ToggleComingSoon(c *fiber.Ctx) error {
	return h.toggle(c, h.listings.ToggleComingSoon, "Image coming soon status updated successfully")
}

func (h *ImageHandler) toggle(c *fiber.Ctx, fn func(uint) error, message string) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid image id"})
	}

	if err := fn(id); err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "image not found"})
		}
		return internalError(c, "failed to update image status", err)
	}

	return c.JSON(dto.MessageResponse{Message: message})
}

func (h *ImageHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid image id"})
	}

	var req dto.UpdateImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if err := h.listings.Update(id, req.Title, req.Description, req.Price); err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "image not found"})
		}
		return internalError(c, "failed to update image", err)
	}

	return c.JSON(dto.MessageResponse{Message: "Image updated successfully"})
}

func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid image id"})
	}

	if err := h.listings.Delete(id); err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "image not found"})
		}
		return internalError(c, "failed to delete image", err)
	}

	return c.JSON(dto.MessageResponse{Message: "Image deleted successfully"})
}
