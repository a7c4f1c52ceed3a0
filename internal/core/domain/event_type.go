package domain

// EventType is a catalog entry events reference by name.
type EventType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
