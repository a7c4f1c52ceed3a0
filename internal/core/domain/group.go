package domain

// Group is a committee working group tied to a locality.
type Group struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Municipio string    `json:"municipio"`
	Colonia   string    `json:"colonia"`
	Users     []UserRef `json:"users,omitempty"`
	Admin     *UserRef  `json:"admin,omitempty"` // at most one admin per group
}

// UserRef is the `{"id": n}` shape the backend expects for member
// references inside group payloads.
type UserRef struct {
	ID int `json:"id"`
}
