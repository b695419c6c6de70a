package identity

// Role is the closed set of user roles. Authorization decisions go through
// the capability table rather than comparing role literals at call sites.
type Role string

const (
	// RoleClient is a basic customer account
	RoleClient Role = "CLIENT"
	// RoleManager runs day-to-day operations
	RoleManager Role = "MANAGER"
	// RoleAdmin administers the whole system
	RoleAdmin Role = "ADMIN"
	// RoleSuperAdmin is the unrestricted owner account
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// IsValid returns true if the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleManager, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// RoleCapabilities describes what a role is allowed to do
type RoleCapabilities struct {
	CanReceiveLowStockAlerts bool
	CanManageClients         bool
	CanManageInventory       bool
	CanViewDashboard         bool
}

var roleCapabilities = map[Role]RoleCapabilities{
	RoleClient: {},
	RoleManager: {
		CanReceiveLowStockAlerts: true,
		CanManageClients:         true,
		CanManageInventory:       true,
		CanViewDashboard:         true,
	},
	RoleAdmin: {
		CanReceiveLowStockAlerts: true,
		CanManageClients:         true,
		CanManageInventory:       true,
		CanViewDashboard:         true,
	},
	RoleSuperAdmin: {
		CanReceiveLowStockAlerts: true,
		CanManageClients:         true,
		CanManageInventory:       true,
		CanViewDashboard:         true,
	},
}

// Capabilities returns the capability set for the role. Unknown roles get an
// empty capability set.
func (r Role) Capabilities() RoleCapabilities {
	return roleCapabilities[r]
}

// RolesWithCapability returns every role for which the selector reports true
func RolesWithCapability(selector func(RoleCapabilities) bool) []Role {
	roles := make([]Role, 0, len(roleCapabilities))
	for _, role := range []Role{RoleClient, RoleManager, RoleAdmin, RoleSuperAdmin} {
		if selector(role.Capabilities()) {
			roles = append(roles, role)
		}
	}
	return roles
}

// ElevatedRoles returns the roles eligible to receive operational alerts
func ElevatedRoles() []Role {
	return RolesWithCapability(func(c RoleCapabilities) bool {
		return c.CanReceiveLowStockAlerts
	})
}
