package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dorixona/pharmacy-api/internal/application/dto"
	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/routing"
	"github.com/dorixona/pharmacy-api/internal/session"
)

// AuthHandler exposes the session operations: login, register, logout,
// and the session snapshot the screens personalize from.
type AuthHandler struct {
	store *session.Store
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(store *session.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// Screen renders the authentication screen payload.
func (h *AuthHandler) Screen(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"screen": "auth",
		"title":  "Dorixona - Kirish",
	})
}

// Session returns the current session state read-only.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	st := h.store.Snapshot()
	return c.JSON(dto.SessionResponse{
		Authenticated: st.Authenticated(),
		Loading:       st.Loading,
		User:          st.Identity,
		Mode:          routing.ModeFor(st).String(),
	})
}

// Login checks credentials against the demo account directory.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email and password are required"})
	}
	user, err := h.store.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// The form displays this; the store never notifies the UI itself.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Noto'g'ri email yoki parol"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"user": user, "redirect": redirectFor(h.store)})
}

// Register creates a fresh customer identity and signs it in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, phone and password are required"})
	}
	user, err := h.store.Register(c.Context(), session.Profile{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "redirect": "/customer"})
}

// Logout clears the session; calling it while logged out is a no-op.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.store.Logout(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"redirect": "/auth"})
}

// redirectFor picks the landing route for the active mode.
func redirectFor(store *session.Store) string {
	if routing.ModeFor(store.Snapshot()) == routing.ModeAdmin {
		return "/admin"
	}
	return "/customer"
}
