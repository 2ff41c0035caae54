package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dorixona/pharmacy-api/internal/application/dto"
	"github.com/dorixona/pharmacy-api/internal/application/orders"
	"github.com/dorixona/pharmacy-api/internal/domain"
)

// OrdersHandler serves the customer orders screen and the admin orders
// console.
type OrdersHandler struct {
	uc *orders.UseCase
}

// NewOrdersHandler builds the orders handler.
func NewOrdersHandler(uc *orders.UseCase) *OrdersHandler {
	return &OrdersHandler{uc: uc}
}

// ListMine renders the customer orders screen: the orders of the
// current identity, or an empty list for anonymous visitors.
func (h *OrdersHandler) ListMine(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return c.JSON(fiber.Map{"orders": []any{}, "total": 0})
	}
	list := h.uc.ListForCustomer(user.ID)
	return c.JSON(fiber.Map{"orders": list, "total": len(list)})
}

// ListAll renders the admin orders console.
func (h *OrdersHandler) ListAll(c *fiber.Ctx) error {
	list := h.uc.ListAll()
	return c.JSON(fiber.Map{"orders": list, "total": len(list)})
}

// SetStatus moves an order through the status lifecycle.
func (h *OrdersHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.OrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	order, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown order status"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(order)
}
