package domain

import "strings"

// Role is a coarse permission group. The set is closed and fixed at compile
// time; every user holds at least one role at all times.
type Role string

const (
	RoleAdmin   Role = "ROLE_ADMIN"
	RoleTeacher Role = "ROLE_TEACHER"
	RoleParent  Role = "ROLE_PARENT"
	RoleStaff   Role = "ROLE_STAFF"
)

// DefaultRole is assigned at signup when no role is requested or the
// requested role name is not recognised.
const DefaultRole = RoleParent

// AllRoles lists every known role.
var AllRoles = []Role{RoleAdmin, RoleTeacher, RoleParent, RoleStaff}

// ParseRole resolves a role name exchanged over the API boundary. Matching is
// case-insensitive and accepts both the bare name ("admin") and the prefixed
// internal form ("ROLE_ADMIN"). The second return value is false for unknown
// names.
func ParseRole(name string) (Role, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.TrimPrefix(normalized, "ROLE_")

	switch normalized {
	case "ADMIN":
		return RoleAdmin, true
	case "TEACHER":
		return RoleTeacher, true
	case "PARENT":
		return RoleParent, true
	case "STAFF":
		return RoleStaff, true
	}
	return "", false
}

// ShortName returns the role name without the ROLE_ prefix, lowercased, as
// used in URLs and signup payloads.
func (r Role) ShortName() string {
	return strings.ToLower(strings.TrimPrefix(string(r), "ROLE_"))
}
