package domain

// User mirrors the backend's committee-member records. JSON keys follow the
// backend's wire format, Spanish field names included.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	NombreCompleto string    `json:"nombreCompleto,omitempty"`
	Telefono       string    `json:"telefono,omitempty"`
	Correo         string    `json:"correo,omitempty"`
	RolID          int       `json:"rol_id,omitempty"`
	Rol            *RoleRef  `json:"rol,omitempty"`
	Group          *GroupRef `json:"group,omitempty"`
	Grupo          *GroupRef `json:"grupo,omitempty"`
	GroupID        int       `json:"groupId,omitempty"`
}

// RoleRef is the backend's embedded role record.
type RoleRef struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// GroupRef is a minimal group reference as embedded in user records.
type GroupRef struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// Role derives the user's role from whichever legacy field the backend
// populated. Returns "" when no role can be attributed.
func (u User) Role() Role {
	if u.RolID != 0 {
		return RoleFromID(u.RolID)
	}
	if u.Rol != nil {
		return RoleFromID(u.Rol.ID)
	}
	return ""
}

// HasGroup reports whether the user already holds a group through any of the
// reference shapes the backend has used. Group admins are one-to-one with
// groups, so a user with a group is not available for assignment.
func (u User) HasGroup() bool {
	return u.Group != nil || u.Grupo != nil || u.GroupID != 0
}
