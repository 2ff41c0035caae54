package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/dorixona/pharmacy-api/internal/application/catalog"
	"github.com/dorixona/pharmacy-api/internal/application/dto"
	"github.com/dorixona/pharmacy-api/internal/domain"
)

// CatalogHandler serves the customer medicine browsing and search
// screens.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler builds the catalog handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List renders the medicines screen: full catalog narrowed by the
// optional q, category, min_price and max_price query params.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	f := catalog.Filter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}
	if raw := c.Query("min_price"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min_price must be a number"})
		}
		f.MinPrice = p
	}
	if raw := c.Query("max_price"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max_price must be a number"})
		}
		f.MaxPrice = p
	}
	items := h.uc.List(f)
	return c.JSON(fiber.Map{
		"medicines":  items,
		"total":      len(items),
		"categories": h.uc.Categories(),
	})
}

// Search is the dedicated search screen; q is required.
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.JSON(fiber.Map{"medicines": []any{}, "total": 0})
	}
	items := h.uc.List(catalog.Filter{Query: q})
	return c.JSON(fiber.Map{"medicines": items, "total": len(items)})
}

// Get returns a single catalog item.
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	m, err := h.uc.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicine not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(m)
}
