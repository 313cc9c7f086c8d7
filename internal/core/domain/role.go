package domain

// Role is the closed set of actor categories governing feature access.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleMedecin         Role = "medecin"
	RoleSoignant        Role = "soignant"
	RoleAssistantSocial Role = "assistant_social"
	RoleLogisticien     Role = "logisticien"
	RoleDonateur        Role = "donateur"
	RoleParrain         Role = "parrain"
	RoleVisiteur        Role = "visiteur"
)

// Roles lists every valid role, in declaration order.
var Roles = []Role{
	RoleAdmin,
	RoleMedecin,
	RoleSoignant,
	RoleAssistantSocial,
	RoleLogisticien,
	RoleDonateur,
	RoleParrain,
	RoleVisiteur,
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Allowed reports whether role is a member of allowed. Every role gate in the
// codebase (middleware and services alike) goes through this predicate so the
// access rules stay auditable in one place.
func Allowed(role Role, allowed []Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
