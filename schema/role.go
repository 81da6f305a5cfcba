package schema

import (
	"fmt"
	"strings"
)

// Role is the kind of actor calling into the system
type Role string

const (
	RoleRequester        Role = "requester"
	RoleVolunteer        Role = "volunteer"
	RoleReliefProvider   Role = "relief_provider"
	RoleGovernmentAgency Role = "government_agency"
	RoleAdmin            Role = "admin"
)

var Roles = []Role{
	RoleRequester,
	RoleVolunteer,
	RoleReliefProvider,
	RoleGovernmentAgency,
	RoleAdmin,
}

// ParseRole converts a role name into a Role. It is case-insensitive and
// treats spaces and dashes as underscores.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	for _, r := range Roles {
		if string(r) == normalized {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
