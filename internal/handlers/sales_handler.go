package handlers

import (
	"github.com/garagesale/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	sales *services.SalesService
}

func NewSalesHandler(sales *services.SalesService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

func (h *SalesHandler) List(c *fiber.Ctx) error {
	records, err := h.sales.List()
	if err != nil {
		return internalError(c, "failed to fetch sales", err)
	}
	return c.JSON(records)
}
