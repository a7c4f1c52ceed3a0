package rest

import "encoding/json"

// envelope is the backend's uniform response wrapper. Not every endpoint
// uses it; bare payloads must be accepted too.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   bool            `json:"error"`
	Status  string          `json:"status"`
}

// wrapped reports whether the decoded value actually was an envelope, as
// opposed to a bare entity that merely unmarshalled without error. Events
// carry their own "status" field, so status alone is not a signal.
func (e envelope) wrapped() bool {
	return e.Data != nil || e.Message != ""
}
