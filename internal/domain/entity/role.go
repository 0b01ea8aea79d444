package entity

import "slices"

// Role is the closed set of account kinds. It drives authorization and which navigation an account sees.
type Role string

const (
	// RoleTenant rents a property.
	RoleTenant Role = "tenant"
	// RoleLandlord owns and manages properties.
	RoleLandlord Role = "landlord"
	// RoleAdmin administers the platform.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleTenant, RoleLandlord, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// AllRoles lists every valid role in a stable order.
func AllRoles() Roles {
	return Roles{RoleTenant, RoleLandlord, RoleAdmin}
}
