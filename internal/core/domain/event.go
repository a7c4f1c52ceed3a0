package domain

import "time"

// EventStatus is the lifecycle state of a committee event. The wire values
// are fixed by the backend and are Spanish.
type EventStatus string

const (
	StatusUpcoming   EventStatus = "PROXIMAMENTE"
	StatusInProgress EventStatus = "EN_EJECUCION"
	StatusFinished   EventStatus = "FINALIZADO"
)

var eventStatusLabels = map[EventStatus]string{
	StatusUpcoming:   "Próximamente",
	StatusInProgress: "En Ejecución",
	StatusFinished:   "Finalizado",
}

// Valid reports whether s is one of the three known statuses.
func (s EventStatus) Valid() bool {
	_, ok := eventStatusLabels[s]
	return ok
}

// Label returns the human-readable Spanish label, or the raw value when the
// status is not recognised.
func (s EventStatus) Label() string {
	if label, ok := eventStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// EventStatuses lists the known statuses in lifecycle order.
func EventStatuses() []EventStatus {
	return []EventStatus{StatusUpcoming, StatusInProgress, StatusFinished}
}

// Event is a committee activity. Events are identified on the wire either by
// their numeric id (full updates) or by the compound key
// {title, creatorUsername} (status updates and deletes), a backend quirk
// the console has to follow.
type Event struct {
	ID              int         `json:"id,omitempty"`
	Title           string      `json:"title"`
	EventDate       time.Time   `json:"eventDate,omitempty"`
	EventType       string      `json:"eventType,omitempty"` // type name, not id
	Description     string      `json:"description,omitempty"`
	Status          EventStatus `json:"status,omitempty"`
	CreatorUsername string      `json:"creatorUsername,omitempty"`
}

// SameEvent reports whether other refers to the same event under the
// compound {title, creatorUsername} identity.
func (e Event) SameEvent(other Event) bool {
	return e.Title == other.Title && e.CreatorUsername == other.CreatorUsername
}
