// Package routing decides which route tree is active and whether a
// given route is accessible. Everything here is a pure function of the
// session state, re-evaluated on every request: there is no router
// state to desynchronize from the session.
package routing

import (
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/session"
)

// Mode is the active top-level route tree.
type Mode int

const (
	// ModePublic exposes the auth screen and the ungated customer routes.
	ModePublic Mode = iota
	// ModeAdmin exposes the admin console.
	ModeAdmin
	// ModeCustomer exposes the guarded customer routes.
	ModeCustomer
)

func (m Mode) String() string {
	switch m {
	case ModeAdmin:
		return "admin"
	case ModeCustomer:
		return "customer"
	default:
		return "public"
	}
}

// ModeFor selects the route tree for the given session state. Logged
// out is always public; an admin-like role gets the admin console;
// customers get the customer tree.
func ModeFor(st session.State) Mode {
	if !st.Authenticated() {
		return ModePublic
	}
	if st.Identity.Role.IsAdmin() {
		return ModeAdmin
	}
	return ModeCustomer
}

// RoleSet is a required-role set for a guarded route.
type RoleSet map[entity.Role]struct{}

// Roles builds a RoleSet.
func Roles(roles ...entity.Role) RoleSet {
	rs := make(RoleSet, len(roles))
	for _, r := range roles {
		rs[r] = struct{}{}
	}
	return rs
}

// Contains reports membership.
func (rs RoleSet) Contains(r entity.Role) bool {
	_, ok := rs[r]
	return ok
}

// AdminOnly is the required-role set of the admin console routes.
func AdminOnly() RoleSet {
	return Roles(entity.AdminRoles...)
}

// CustomerOnly is the required-role set of the customer routes.
func CustomerOnly() RoleSet {
	return Roles(entity.RoleCustomer)
}

// Decision is the three-way (plus loading) guard outcome.
type Decision int

const (
	// Allow renders the requested screen.
	Allow Decision = iota
	// Loading renders a neutral indicator; no routing decision yet.
	Loading
	// RedirectAuth sends the caller to the authentication screen.
	RedirectAuth
	// RedirectUnauthorized sends the caller to the unauthorized page.
	RedirectUnauthorized
)

// Guard gates a route by required-role membership. It never errors:
// every outcome is a terminal, well-defined decision.
func Guard(st session.State, allowed RoleSet) Decision {
	if st.Loading {
		return Loading
	}
	if !st.Authenticated() {
		return RedirectAuth
	}
	if !allowed.Contains(st.Identity.Role) {
		return RedirectUnauthorized
	}
	return Allow
}
