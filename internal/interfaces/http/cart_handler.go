package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dorixona/pharmacy-api/internal/application/cart"
	"github.com/dorixona/pharmacy-api/internal/application/dto"
	"github.com/dorixona/pharmacy-api/internal/domain"
)

// CartHandler serves the cart screen and its mutations.
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler builds the cart handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Show renders the cart screen.
func (h *CartHandler) Show(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items": h.uc.Items(),
		"total": h.uc.Total(),
	})
}

// Add puts a catalog item in the cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.CartAddRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.uc.Add(in.MedicineID, in.Quantity); err != nil {
		return cartError(c, err)
	}
	return h.Show(c)
}

// Update sets the exact quantity of a cart line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	var in dto.CartUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.uc.SetQuantity(c.Params("medicineId"), in.Quantity); err != nil {
		return cartError(c, err)
	}
	return h.Show(c)
}

// Clear empties the whole cart.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.uc.Clear()
	return h.Show(c)
}

// Remove drops a cart line.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("medicineId")); err != nil {
		return cartError(c, err)
	}
	return h.Show(c)
}

// Checkout turns the cart into an order. Anonymous visitors are sent to
// the auth screen first.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return c.Redirect("/auth", fiber.StatusFound)
	}
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	order, err := h.uc.Checkout(*user, in.ShippingAddress, in.Notes)
	if err != nil {
		return cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func cartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicine not found"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "not enough stock"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
