package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dorixona/pharmacy-api/internal/application/dto"
	"github.com/dorixona/pharmacy-api/internal/application/sales"
)

// SalesHandler serves the pharmacy counter sale screen: the draft sale
// under construction and the history of completed sales.
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler builds the sales handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Show renders the sales screen: current draft plus history.
func (h *SalesHandler) Show(c *fiber.Ctx) error {
	history := h.uc.History()
	return c.JSON(fiber.Map{
		"current": fiber.Map{
			"items": h.uc.Items(),
			"total": h.uc.Total(),
		},
		"sales":      history,
		"totalSales": len(history),
	})
}

// Add puts a catalog item in the draft sale.
func (h *SalesHandler) Add(c *fiber.Ctx) error {
	var in dto.CartAddRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.uc.Add(in.MedicineID, in.Quantity); err != nil {
		return cartError(c, err)
	}
	return h.Show(c)
}

// Update sets the exact quantity of a draft line.
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	var in dto.CartUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.uc.SetQuantity(c.Params("medicineId"), in.Quantity); err != nil {
		return cartError(c, err)
	}
	return h.Show(c)
}

// Remove drops a draft line.
func (h *SalesHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("medicineId")); err != nil {
		return cartError(c, err)
	}
	return h.Show(c)
}

// Complete closes the draft into a sale record.
func (h *SalesHandler) Complete(c *fiber.Ctx) error {
	var in dto.SaleCompleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	sale, err := h.uc.Complete(in.CustomerName, in.CustomerPhone)
	if err != nil {
		return cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
