package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/routing"
	"github.com/dorixona/pharmacy-api/internal/session"
)

func stateFor(role entity.Role) session.State {
	return session.State{Identity: &entity.User{ID: "1", Role: role}}
}

func TestModeFor(t *testing.T) {
	cases := []struct {
		name  string
		state session.State
		want  routing.Mode
	}{
		{"logged out", session.State{}, routing.ModePublic},
		{"logged out while loading", session.State{Loading: true}, routing.ModePublic},
		{"super_admin", stateFor(entity.RoleSuperAdmin), routing.ModeAdmin},
		{"pharmacy_admin", stateFor(entity.RolePharmacyAdmin), routing.ModeAdmin},
		{"warehouse", stateFor(entity.RoleWarehouse), routing.ModeAdmin},
		{"operator", stateFor(entity.RoleOperator), routing.ModeAdmin},
		{"customer", stateFor(entity.RoleCustomer), routing.ModeCustomer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, routing.ModeFor(tc.state))
		})
	}
}

func TestGuard(t *testing.T) {
	adminOnly := routing.AdminOnly()
	customerOnly := routing.CustomerOnly()

	cases := []struct {
		name    string
		state   session.State
		allowed routing.RoleSet
		want    routing.Decision
	}{
		{"loading makes no decision", session.State{Loading: true}, adminOnly, routing.Loading},
		{"logged out goes to auth", session.State{}, adminOnly, routing.RedirectAuth},
		{"pharmacy_admin on a customer route", stateFor(entity.RolePharmacyAdmin), customerOnly, routing.RedirectUnauthorized},
		{"pharmacy_admin on an admin route", stateFor(entity.RolePharmacyAdmin), adminOnly, routing.Allow},
		{"warehouse on an admin route", stateFor(entity.RoleWarehouse), adminOnly, routing.Allow},
		{"customer on an admin route", stateFor(entity.RoleCustomer), adminOnly, routing.RedirectUnauthorized},
		{"customer on a customer route", stateFor(entity.RoleCustomer), customerOnly, routing.Allow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, routing.Guard(tc.state, tc.allowed))
		})
	}
}

func TestRoleSet(t *testing.T) {
	rs := routing.Roles(entity.RoleSuperAdmin, entity.RoleOperator)
	assert.True(t, rs.Contains(entity.RoleSuperAdmin))
	assert.True(t, rs.Contains(entity.RoleOperator))
	assert.False(t, rs.Contains(entity.RoleCustomer))
}
