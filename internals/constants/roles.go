package constants

// User roles within an account.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleLider      = "lider"
)

// AllowedRoles is the whitelist applied when creating/updating users.
var AllowedRoles = map[string]struct{}{
	RoleAdmin:      {},
	RoleSupervisor: {},
	RoleLider:      {},
}

func IsValidRole(role string) bool {
	_, ok := AllowedRoles[role]
	return ok
}
