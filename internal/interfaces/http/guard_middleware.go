package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/routing"
	"github.com/dorixona/pharmacy-api/internal/session"
)

// Locals key for the identity resolved by a guard.
const localUser = "session_user"

// RequireRoles gates a route by required-role membership. The guard is
// re-evaluated on every request against a fresh session snapshot; it
// redirects instead of erroring, per the routing contract.
func RequireRoles(store *session.Store, allowed routing.RoleSet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Snapshot()
		switch routing.Guard(st, allowed) {
		case routing.Loading:
			// A login is in flight: neutral indicator, no decision yet.
			return c.JSON(fiber.Map{"status": "loading"})
		case routing.RedirectAuth:
			return c.Redirect("/auth", fiber.StatusFound)
		case routing.RedirectUnauthorized:
			return c.Redirect("/unauthorized", fiber.StatusFound)
		}
		c.Locals(localUser, st.Identity)
		return c.Next()
	}
}

// CustomerAccess guards the customer route set. In public mode the
// routes render ungated (anonymous browsing is allowed); once a session
// exists they are wrapped in the customer role guard.
func CustomerAccess(store *session.Store) fiber.Handler {
	customerOnly := routing.CustomerOnly()
	return func(c *fiber.Ctx) error {
		st := store.Snapshot()
		if routing.ModeFor(st) == routing.ModePublic && !st.Loading {
			return c.Next()
		}
		switch routing.Guard(st, customerOnly) {
		case routing.Loading:
			return c.JSON(fiber.Map{"status": "loading"})
		case routing.RedirectAuth:
			return c.Redirect("/auth", fiber.StatusFound)
		case routing.RedirectUnauthorized:
			return c.Redirect("/unauthorized", fiber.StatusFound)
		}
		c.Locals(localUser, st.Identity)
		return c.Next()
	}
}

// CurrentUser returns the identity a guard resolved for this request,
// or nil on ungated public routes.
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(localUser).(*entity.User)
	return u
}
