package entity

import "fmt"

// Role is the closed set of principal roles in the system.
type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RolePharmacyAdmin Role = "pharmacy_admin"
	RoleWarehouse     Role = "warehouse"
	RoleOperator      Role = "operator"
	RoleCustomer      Role = "customer"
)

// AdminRoles are the roles that get the admin console.
var AdminRoles = []Role{RoleSuperAdmin, RolePharmacyAdmin, RoleWarehouse, RoleOperator}

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether the role is one of the five enumerated values.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RolePharmacyAdmin, RoleWarehouse, RoleOperator, RoleCustomer:
		return true
	}
	return false
}

// IsAdmin reports whether the role belongs to the admin console surface.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleSuperAdmin, RolePharmacyAdmin, RoleWarehouse, RoleOperator:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
