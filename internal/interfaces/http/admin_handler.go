package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dorixona/pharmacy-api/internal/application/dto"
	"github.com/dorixona/pharmacy-api/internal/application/inventory"
	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

// AdminHandler serves the remaining admin console screens: customers,
// inventory and notifications.
type AdminHandler struct {
	inventory     *inventory.UseCase
	customers     repository.CustomerRepository
	notifications repository.NotificationRepository
}

// NewAdminHandler builds the admin handler.
func NewAdminHandler(inv *inventory.UseCase, customers repository.CustomerRepository, notifications repository.NotificationRepository) *AdminHandler {
	return &AdminHandler{inventory: inv, customers: customers, notifications: notifications}
}

// Customers renders the customer directory screen.
func (h *AdminHandler) Customers(c *fiber.Ctx) error {
	list := h.customers.List()
	return c.JSON(fiber.Map{"customers": list, "total": len(list)})
}

// Inventory renders the inventory screen: movement log plus low-stock
// alerts.
func (h *AdminHandler) Inventory(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"movements": h.inventory.Movements(),
		"lowStock":  h.inventory.LowStock(),
	})
}

// RegisterMovement applies a stock movement on behalf of the current
// admin identity.
func (h *AdminHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	input := inventory.MovementInput{
		MedicineID: in.MedicineID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
	}
	if user := CurrentUser(c); user != nil {
		input.ActorID = user.ID
		input.ActorName = user.Name
	}
	movement, err := h.inventory.RegisterMovement(input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicine not found"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "not enough stock for outbound movement"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(movement)
}

// Notifications renders the notification drawer list.
func (h *AdminHandler) Notifications(c *fiber.Ctx) error {
	list := h.notifications.List()
	return c.JSON(fiber.Map{"notifications": list, "total": len(list)})
}

// Notification renders the notification detail screen.
func (h *AdminHandler) Notification(c *fiber.Ctx) error {
	n, err := h.notifications.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notification not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(n)
}
