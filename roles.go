package portal

// Role is the ordered capability level carried in a profile. The portal
// knows three tiers: user < ops < admin.
type Role string

const (
	RoleUser  Role = "user"
	RoleOps   Role = "ops"
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOps, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAtLeast checks if this role meets the minimum required level. Unknown
// role tags rank below every valid role.
func (r Role) IsAtLeast(minRole Role) bool {
	roleHierarchy := map[Role]int{
		RoleUser:  0,
		RoleOps:   1,
		RoleAdmin: 2,
	}

	currentLevel, exists := roleHierarchy[r]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// GetAllRoles returns all predefined roles in hierarchical order
func GetAllRoles() []Role {
	return []Role{
		RoleUser,
		RoleOps,
		RoleAdmin,
	}
}

// ParseRole maps a string to a Role. Anything outside the closed set
// resolves to RoleUser, the lowest privilege.
func ParseRole(roleStr string) Role {
	role := Role(roleStr)
	if !role.IsValid() {
		return RoleUser
	}
	return role
}
