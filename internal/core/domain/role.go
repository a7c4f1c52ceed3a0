package domain

// Role is the closed set of capabilities a committee user can hold.
// Exactly one role is attributed to a user at a time.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAdminGroup Role = "adminGroup"
	RoleMember     Role = "member"
)

// Token tags as issued by the backend, with their legacy numeric ids.
const (
	TagAdmin      = "ROLE_ADMIN"
	TagAdminGroup = "ROLE_ADMINGROUP"
	TagMember     = "ROLE_MEMBER"
)

var roleTags = map[Role]string{
	RoleAdmin:      TagAdmin,
	RoleAdminGroup: TagAdminGroup,
	RoleMember:     TagMember,
}

var roleIDs = map[Role]int{
	RoleAdmin:      1,
	RoleAdminGroup: 2,
	RoleMember:     3,
}

// Tag returns the backend token tag for the role, or "" for an unknown role.
func (r Role) Tag() string {
	return roleTags[r]
}

// ID returns the legacy numeric role id (1, 2, 3), or 0 for an unknown role.
func (r Role) ID() int {
	return roleIDs[r]
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	_, ok := roleTags[r]
	return ok
}

// RoleFromTag resolves a "ROLE_*" token tag. Returns "" when unrecognised.
func RoleFromTag(tag string) Role {
	for role, t := range roleTags {
		if t == tag {
			return role
		}
	}
	return ""
}

// RoleFromID resolves a legacy numeric role id. Returns "" when unrecognised.
func RoleFromID(id int) Role {
	for role, n := range roleIDs {
		if n == id {
			return role
		}
	}
	return ""
}

// ParseRole accepts the console spelling ("admin", "adminGroup", "member")
// or a backend token tag.
func ParseRole(s string) (Role, bool) {
	if r := Role(s); r.Valid() {
		return r, true
	}
	if r := RoleFromTag(s); r != "" {
		return r, true
	}
	return "", false
}
